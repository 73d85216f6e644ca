package service

import (
	"errors"
	"os"

	"decimal-converter/internal/settings"

	"github.com/rs/zerolog"
)

// PreferencesService owns the two user toggles. a missing or broken
// settings file is never fatal, the app just starts on defaults
type PreferencesService interface {
	Get() settings.Settings
	Update(settings.Settings) (settings.Settings, error)
	SetMinimizeToTray(bool) (settings.Settings, error)
	SetMinimalUI(bool) (settings.Settings, error)
}

type preferencesServiceHandler struct {
	store  settings.Store
	logger zerolog.Logger
}

func NewPreferencesService(store settings.Store, logger zerolog.Logger) PreferencesService {
	return preferencesServiceHandler{
		store:  store,
		logger: logger,
	}
}

func (h preferencesServiceHandler) Get() settings.Settings {
	s, err := h.store.Load()
	if errors.Is(err, os.ErrNotExist) {
		return settings.Defaults()
	}
	if err != nil {
		h.logger.Warn().Err(err).Msg("could not load settings, using defaults")
		return settings.Defaults()
	}
	return s
}

func (h preferencesServiceHandler) Update(s settings.Settings) (settings.Settings, error) {
	err := h.store.Save(s)
	if err != nil {
		h.logger.Error().Err(err).Msg("could not save settings")
		return s, err
	}
	h.logger.Info().
		Bool("minimizeToTray", s.MinimizeToTray).
		Bool("minimalUI", s.MinimalUI).
		Msg("saved settings")
	return s, nil
}

func (h preferencesServiceHandler) SetMinimizeToTray(enabled bool) (settings.Settings, error) {
	s := h.Get()
	s.MinimizeToTray = enabled
	return h.Update(s)
}

func (h preferencesServiceHandler) SetMinimalUI(enabled bool) (settings.Settings, error) {
	s := h.Get()
	s.MinimalUI = enabled
	return h.Update(s)
}
