package resolver

import (
	api_types "decimal-converter/api-types"
	"decimal-converter/internal/service"
)

type Resolver interface {
	// conversion endpoints
	FractionToDecimal(req api_types.ConvertRequest) (*api_types.FractionToDecimalResponse, error)
	InchesToMillimeters(req api_types.ConvertRequest) (*api_types.InchesToMillimetersResponse, error)
	MillimetersToInches(req api_types.ConvertRequest) (*api_types.MillimetersToInchesResponse, error)
	Reference(context string) (*api_types.ReferenceResponse, error)

	// settings endpoints
	GetSettings() api_types.Settings
	UpdateSettings(req api_types.UpdateSettingsRequest) (*api_types.Settings, error)
}

type resolverHandler struct {
	ConversionService  service.ConversionService
	PreferencesService service.PreferencesService
}

func NewResolver(
	conversionService service.ConversionService,
	preferencesService service.PreferencesService,
) Resolver {
	return resolverHandler{
		ConversionService:  conversionService,
		PreferencesService: preferencesService,
	}
}
