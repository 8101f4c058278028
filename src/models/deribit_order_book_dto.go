package models

// DeribitOrderBookDTO is the public/get_order_book result payload. The mark
// price is quoted in the base currency; multiplying by the underlying price
// converts it to quote-currency terms.
type DeribitOrderBookDTO struct {
	InstrumentName  string  `json:"instrument_name"`
	MarkPrice       float64 `json:"mark_price"`
	UnderlyingPrice float64 `json:"underlying_price"`
}

type DeribitOrderBookResponseDTO struct {
	Result DeribitOrderBookDTO `json:"result"`
}
