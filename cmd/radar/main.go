// cmd/radar/main.go
package main

import (
	"context"
	"flag"
	"go-sea-battle/internal/app"
	"go-sea-battle/internal/audio"
	"go-sea-battle/internal/config"
	"go-sea-battle/internal/interfaces"
	"go-sea-battle/internal/utils"
	"go-sea-battle/pkg/render"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

var keyMap = interfaces.KeyMap[ebiten.Key]{
	Movement: []interfaces.KeyBinding[ebiten.Key]{
		{Key: ebiten.KeyW, Intent: interfaces.IntentForward},
		{Key: ebiten.KeyS, Intent: interfaces.IntentReverse},
		{Key: ebiten.KeyA, Intent: interfaces.IntentYawLeft},
		{Key: ebiten.KeyD, Intent: interfaces.IntentYawRight},
	},
	Actions: []interfaces.KeyBinding[ebiten.Key]{
		{Key: ebiten.KeySpace, Intent: interfaces.IntentFire},
		{Key: ebiten.KeyC, Intent: interfaces.IntentToggleCamera},
		{Key: ebiten.KeyEnter, Intent: interfaces.IntentStartGame},
	},
}

// AppGame — радар поверх той же симуляции, без 3D
type AppGame struct {
	game  *app.Game
	radar *render.Radar
}

func (a *AppGame) Update() error {
	keyMap.Collect(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased, a.game)
	a.game.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.radar.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
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
	defer cancel()
	services, sinks, err := runtime.StartServices(ctx)
	if err != nil {
		logger.Fatal("failed to start services", zap.Error(err))
	}

	radar := render.NewRadar(config.ScreenWidth, config.ScreenHeight, config.RadarScale, config.RadarBullet, render.RadarColors{
		BackgroundColor:   config.BackgroundColor,
		GridColor:         config.WaterHighlightColor,
		PlayerBulletColor: config.PlayerBulletColor,
		EnemyBulletColor:  config.EnemyBulletColor,
		TextColor:         config.TextLightColor,
		BorderColor:       config.UIBorderColor,
	})
	game := app.NewGame(app.Options{
		Settings: runtime.Settings,
		Clock:    utils.NewSystemClock(),
		Models:   render.NewMarkerProvider(runtime.Library, logger),
		Renderer: radar,
		Sinks:    sinks,
		Logger:   logger,
		Dev:      *devMode,
	})

	sound := audio.NewSoundManager(logger)
	if runtime.Settings.Audio {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		}
	}
	defer sound.Cleanup()
	sound.Subscribe(game.EventDispatcher)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Sea Battle Radar")
	ebiten.SetTPS(config.TargetFPS)
	if err := ebiten.RunGame(&AppGame{game: game, radar: radar}); err != nil {
		logger.Error("game loop failed", zap.Error(err))
	}

	cancel()
	if err := services.Wait(); err != nil {
		logger.Error("background services failed", zap.Error(err))
	}
}
