// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"go-sea-battle/internal/app"
	"go-sea-battle/internal/assets"
	"go-sea-battle/internal/audio"
	"go-sea-battle/internal/config"
	"go-sea-battle/internal/scene"
	"go-sea-battle/internal/ui"
	"go-sea-battle/internal/utils"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

func main() {
	// --- Флаги командной строки ---
	devMode := flag.Bool("dev", false, "Start directly in the game state for development")
	configPath := flag.String("config", "", "Path to settings file (yaml, json or toml)")
	flag.Parse()

	runtime, err := app.Bootstrap(*configPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	logger := runtime.Logger
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	services, sinks, err := runtime.StartServices(ctx)
	if err != nil {
		logger.Fatal("failed to start services", zap.Error(err))
	}

	// --- Инициализация Raylib ---
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Sea Battle")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)

	models := assets.NewModelManager(runtime.Library, logger)
	defer models.Cleanup()
	scene3D := scene.NewScene3D(logger)

	game := app.NewGame(app.Options{
		Settings: runtime.Settings,
		Clock:    utils.NewSystemClock(),
		Models:   models,
		Renderer: scene3D,
		Sinks:    sinks,
		Logger:   logger,
		Dev:      *devMode,
	})
	if *devMode {
		logger.Info("DEV MODE: starting game directly")
	}

	sound := audio.NewSoundManager(logger)
	if runtime.Settings.Audio {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		}
	}
	defer sound.Cleanup()
	sound.Subscribe(game.EventDispatcher)

	// --- Главный цикл игры ---
	for !rl.WindowShouldClose() {
		pollInput(game)
		models.Poll()
		game.Update()

		rl.BeginDrawing()
		rl.ClearBackground(ui.ToRL(config.BackgroundColor))
		scene3D.Draw()
		rl.DrawFPS(config.ScreenWidth-90, config.ScreenHeight-30)
		rl.EndDrawing()
	}

	cancel()
	if err := services.Wait(); err != nil {
		logger.Error("background services failed", zap.Error(err))
	}
}
