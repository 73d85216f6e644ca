package types

type ConvertRequest struct {
	// raw text as the user typed it, e.g. "1 3/8"
	Input string `json:"input"`
}

type FractionToDecimalResponse struct {
	Input         string `json:"input"`
	Fraction      string `json:"fraction"`
	DecimalInches string `json:"decimalInches"`
}

type InchesToMillimetersResponse struct {
	Input       string `json:"input"`
	Inches      string `json:"inches"`
	Millimeters string `json:"millimeters"`
}

type MillimetersToInchesResponse struct {
	Input           string `json:"input"`
	Millimeters     string `json:"millimeters"`
	DecimalInches   string `json:"decimalInches"`
	NearestFraction string `json:"nearestFraction"`
	Grid            string `json:"grid"`
}

type ReferenceRow struct {
	Fraction    string   `json:"fraction"`
	Inches      string   `json:"inches"`
	Millimeters string   `json:"millimeters"`
	Cells       []string `json:"cells"`
	Selection   string   `json:"selection"`
}

type ReferenceResponse struct {
	Context string         `json:"context"`
	Headers []string       `json:"headers"`
	Rows    []ReferenceRow `json:"rows"`
}

type Settings struct {
	MinimizeToTray bool `json:"minimizeToTray"`
	MinimalUI      bool `json:"minimalUi"`
}

// pointers so a PUT can change one toggle without knowing the other
type UpdateSettingsRequest struct {
	MinimizeToTray *bool `json:"minimizeToTray"`
	MinimalUI      *bool `json:"minimalUi"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
