package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"decimal-converter/api"
	"decimal-converter/internal/convert"
	"decimal-converter/internal/logger"
	"decimal-converter/internal/resolver"
	"decimal-converter/internal/service"
	"decimal-converter/internal/settings"
	"decimal-converter/internal/util"

	"github.com/gin-gonic/gin"
)

func main() {
	config, err := util.LoadConfig(util.ConfigPathFromEnv())
	if err != nil {
		log.Fatal(err)
	}
	level, err := logger.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	appLogger := logger.New(os.Stdout, level)

	grid, err := convert.GridByName(config.NearestFraction)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("bad config")
	}
	settingsPath := config.SettingsPath
	if settingsPath == "" {
		settingsPath = settings.DefaultPath()
	}

	conversionService := service.NewConversionService(grid, appLogger)
	preferencesService := service.NewPreferencesService(
		settings.NewFileStore(settingsPath),
		appLogger,
	)

	r := resolver.NewResolver(
		conversionService,
		preferencesService,
	)

	gin.SetMode(gin.ReleaseMode)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = api.StartApi(ctx, config.Port, r, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("api stopped")
	}
}
