// internal/app/runtime.go
package app

import (
	"context"
	"errors"
	"fmt"
	"go-sea-battle/internal/config"
	"go-sea-battle/internal/defs"
	"go-sea-battle/internal/interfaces"
	"go-sea-battle/internal/logging"
	"go-sea-battle/internal/spectate"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runtime — всё, что нужно front-end'у до создания игры
type Runtime struct {
	Settings *config.Settings
	Logger   *zap.Logger
	Library  defs.Library
}

// Bootstrap читает настройки и определения моделей и создаёт логгер.
// Если файл определений не читается, используются встроенные.
func Bootstrap(configPath string) (*Runtime, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		return nil, err
	}

	library, err := defs.LoadModels(settings.DefsPath)
	if err != nil {
		logger.Warn("using builtin model definitions", zap.String("path", settings.DefsPath), zap.Error(err))
		library = defs.Builtin()
	}
	return &Runtime{Settings: settings, Logger: logger, Library: library}, nil
}

// StartServices запускает фоновые HTTP-серверы: pprof и, если задан адрес,
// трансляцию для зрителей. Серверы останавливаются при отмене ctx;
// ошибку возвращает Wait у группы.
func (r *Runtime) StartServices(ctx context.Context) (*errgroup.Group, []interfaces.SnapshotSink, error) {
	g, ctx := errgroup.WithContext(ctx)

	pprof := &http.Server{Addr: config.PprofAddr, Handler: http.DefaultServeMux, ReadHeaderTimeout: 5 * time.Second}
	g.Go(func() error {
		if err := pprof.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			// pprof необязателен: порт может быть занят второй копией игры
			r.Logger.Warn("pprof server stopped", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return pprof.Shutdown(context.Background())
	})

	var sinks []interfaces.SnapshotSink
	if r.Settings.SpectateAddr != "" {
		hub := spectate.NewHub(r.Logger)
		server, err := spectate.Listen(r.Settings.SpectateAddr, hub, r.Logger)
		if err != nil {
			return g, nil, fmt.Errorf("failed to start spectator server: %w", err)
		}
		g.Go(func() error { return server.Run(ctx) })
		sinks = append(sinks, hub)
	}
	return g, sinks, nil
}
