package models

import "time"

type OptionInstrument struct {
	InstrumentName string
	OptionType     OptionType
	Strike         float64
	Expiration     time.Time
	DaysToExpiry   float64
	Price          float64
}
