package resolver

import (
	api_types "decimal-converter/api-types"
)

func (r resolverHandler) FractionToDecimal(req api_types.ConvertRequest) (*api_types.FractionToDecimalResponse, error) {
	out, err := r.ConversionService.FractionToDecimal(req.Input)
	if err != nil {
		return nil, err
	}
	return &api_types.FractionToDecimalResponse{
		Input:         out.Input,
		Fraction:      out.Value,
		DecimalInches: out.DecimalInches,
	}, nil
}

func (r resolverHandler) InchesToMillimeters(req api_types.ConvertRequest) (*api_types.InchesToMillimetersResponse, error) {
	out, err := r.ConversionService.InchesToMillimeters(req.Input)
	if err != nil {
		return nil, err
	}
	return &api_types.InchesToMillimetersResponse{
		Input:       out.Input,
		Inches:      out.Value,
		Millimeters: out.Millimeters,
	}, nil
}

func (r resolverHandler) MillimetersToInches(req api_types.ConvertRequest) (*api_types.MillimetersToInchesResponse, error) {
	out, err := r.ConversionService.MillimetersToInches(req.Input)
	if err != nil {
		return nil, err
	}
	return &api_types.MillimetersToInchesResponse{
		Input:           out.Input,
		Millimeters:     out.Millimeters,
		DecimalInches:   out.DecimalInches,
		NearestFraction: out.NearestFraction,
		Grid:            r.ConversionService.Grid().Name(),
	}, nil
}

func (r resolverHandler) Reference(context string) (*api_types.ReferenceResponse, error) {
	view, err := r.ConversionService.ReferenceView(context)
	if err != nil {
		return nil, err
	}

	rows := make([]api_types.ReferenceRow, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, api_types.ReferenceRow{
			Fraction:    row.Fraction,
			Inches:      row.Inches,
			Millimeters: row.Millimeters,
			Cells:       row.Cells,
			Selection:   row.Selection,
		})
	}

	return &api_types.ReferenceResponse{
		Context: string(view.Context),
		Headers: view.Headers,
		Rows:    rows,
	}, nil
}
