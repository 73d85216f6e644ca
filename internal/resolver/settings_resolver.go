package resolver

import (
	api_types "decimal-converter/api-types"
	"decimal-converter/internal/settings"
)

func (r resolverHandler) GetSettings() api_types.Settings {
	return toApiSettings(r.PreferencesService.Get())
}

func (r resolverHandler) UpdateSettings(req api_types.UpdateSettingsRequest) (*api_types.Settings, error) {
	s := r.PreferencesService.Get()
	if req.MinimizeToTray != nil {
		s.MinimizeToTray = *req.MinimizeToTray
	}
	if req.MinimalUI != nil {
		s.MinimalUI = *req.MinimalUI
	}

	saved, err := r.PreferencesService.Update(s)
	if err != nil {
		return nil, err
	}
	out := toApiSettings(saved)
	return &out, nil
}

func toApiSettings(s settings.Settings) api_types.Settings {
	return api_types.Settings{
		MinimizeToTray: s.MinimizeToTray,
		MinimalUI:      s.MinimalUI,
	}
}
