// internal/spectate/server.go
package spectate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 3 * time.Second

// Server — HTTP-сервер трансляции с эндпоинтом /ws
type Server struct {
	hub      *Hub
	listener net.Listener
	http     *http.Server
	logger   *zap.Logger
}

// Listen открывает порт addr. Порт ":0" выбирает свободный.
func Listen(addr string, hub *Hub, logger *zap.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	return &Server{
		hub:      hub,
		listener: listener,
		http:     &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		logger:   logger,
	}, nil
}

// Addr возвращает фактический адрес сервера
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Run обслуживает запросы до отмены ctx, затем корректно останавливает сервер.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("spectator server started", zap.String("addr", s.Addr()))
		if err := s.http.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("spectator server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
