package models

import (
	"fmt"
	"time"
)

// FTXFutureDTO is one row of the FTX /futures result payload. Bid and ask are
// pointers because FTX reports null on an empty book, which must surface as a
// data-shape failure rather than a zero price.
type FTXFutureDTO struct {
	Name   string   `json:"name"`
	Expiry string   `json:"expiry"`
	Bid    *float64 `json:"bid"`
	Ask    *float64 `json:"ask"`
	Index  float64  `json:"index"`
}

func (d *FTXFutureDTO) ExpiryTime() (time.Time, error) {
	expiry, err := time.Parse(time.RFC3339, d.Expiry)
	if err != nil {
		return time.Time{}, fmt.Errorf("FTXFutureDTO: failed to parse expiry %q: %w", d.Expiry, err)
	}

	return expiry, nil
}

type FTXFuturesResponseDTO struct {
	Success bool           `json:"success"`
	Result  []FTXFutureDTO `json:"result"`
}

type FTXFutureResponseDTO struct {
	Success bool         `json:"success"`
	Result  FTXFutureDTO `json:"result"`
}
