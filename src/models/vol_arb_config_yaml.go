package models

type VolArbConfigYAML struct {
	FTXBaseURL      string   `yaml:"ftx_base_url"`
	DeribitBaseURL  string   `yaml:"deribit_base_url"`
	ProductPrefix   string   `yaml:"product_prefix"`
	StrikeRounding  float64  `yaml:"strike_rounding"`
	IndexFallback   *bool    `yaml:"index_fallback"`
	StrikeTolerance *float64 `yaml:"strike_tolerance"`
	DaysTolerance   *float64 `yaml:"days_tolerance"`
}
