package main

import (
	"log"
	"os"

	"decimal-converter/internal/convert"
	"decimal-converter/internal/gui"
	"decimal-converter/internal/logger"
	"decimal-converter/internal/service"
	"decimal-converter/internal/settings"
	"decimal-converter/internal/util"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// set with -ldflags "-X main.version=..."
var version = "1.0.0"

func main() {
	config, err := util.LoadConfig(util.ConfigPathFromEnv())
	if err != nil {
		log.Fatal(err)
	}
	level, err := logger.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	appLogger := logger.New(os.Stderr, level)

	grid, err := convert.GridByName(config.NearestFraction)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("bad config")
	}
	settingsPath := config.SettingsPath
	if settingsPath == "" {
		settingsPath = settings.DefaultPath()
	}

	app.SetMetadata(fyne.AppMetadata{
		ID:      gui.AppID,
		Name:    gui.AppName,
		Version: version,
	})
	fyneApp := app.NewWithID(gui.AppID)

	window, err := gui.NewWindow(
		fyneApp,
		version,
		service.NewConversionService(grid, appLogger),
		service.NewPreferencesService(settings.NewFileStore(settingsPath), appLogger),
		appLogger,
	)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("could not build window")
	}

	appLogger.Info().
		Str("version", version).
		Str("grid", grid.Name()).
		Str("settings", settingsPath).
		Msg("starting")
	window.ShowAndRun()
}
