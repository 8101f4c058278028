package models

import "time"

const secondsPerDay = 60 * 60 * 24

// DeribitInstrumentDTO is one row of the public/get_instruments result payload.
type DeribitInstrumentDTO struct {
	InstrumentName      string  `json:"instrument_name"`
	OptionType          string  `json:"option_type"`
	Strike              float64 `json:"strike"`
	ExpirationTimestamp int64   `json:"expiration_timestamp"`
}

type DeribitInstrumentsResponseDTO struct {
	Result []DeribitInstrumentDTO `json:"result"`
}

// ToModel derives the instrument's days to expiry from its millisecond
// expiration timestamp relative to now. Price is filled in later by the
// matching pass.
func (d *DeribitInstrumentDTO) ToModel(now time.Time) OptionInstrument {
	expiration := time.UnixMilli(d.ExpirationTimestamp).UTC()

	return OptionInstrument{
		InstrumentName: d.InstrumentName,
		OptionType:     OptionType(d.OptionType),
		Strike:         d.Strike,
		Expiration:     expiration,
		DaysToExpiry:   float64(d.ExpirationTimestamp/1000-now.Unix()) / secondsPerDay,
	}
}
