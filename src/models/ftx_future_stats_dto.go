package models

// FTXFutureStatsDTO is the /futures/{name}/stats result payload. StrikePrice
// is only present once the MOVE contract's strike has been fixed, hence the
// pointer.
type FTXFutureStatsDTO struct {
	Volume      float64  `json:"volume"`
	StrikePrice *float64 `json:"strikePrice"`
}

type FTXFutureStatsResponseDTO struct {
	Success bool              `json:"success"`
	Result  FTXFutureStatsDTO `json:"result"`
}
