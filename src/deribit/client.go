package deribit

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/schepal/crypto-vol-arb/src/models"
	"github.com/schepal/crypto-vol-arb/src/utils"
)

const DefaultBaseURL = "https://www.deribit.com/api/v2/public"

// Client is a read-only accessor over the Deribit public REST surface.
type Client struct {
	BaseURL string
}

func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
	}
}

// FetchInstruments returns the full instrument catalog for a currency and
// kind, e.g. ("btc", "option").
func (c *Client) FetchInstruments(currency, kind string) ([]models.DeribitInstrumentDTO, error) {
	q := url.Values{}
	q.Add("currency", currency)
	q.Add("kind", kind)

	body, err := utils.Get(fmt.Sprintf("%s/get_instruments?%s", c.BaseURL, q.Encode()))
	if err != nil {
		return nil, fmt.Errorf("FetchInstruments: failed to fetch instruments: %w", err)
	}

	var dto models.DeribitInstrumentsResponseDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("FetchInstruments: failed to decode json: %w", err)
	}

	return dto.Result, nil
}

func (c *Client) FetchOrderBook(instrumentName string) (*models.DeribitOrderBookDTO, error) {
	q := url.Values{}
	q.Add("instrument_name", instrumentName)

	body, err := utils.Get(fmt.Sprintf("%s/get_order_book?%s", c.BaseURL, q.Encode()))
	if err != nil {
		return nil, fmt.Errorf("FetchOrderBook: failed to fetch order book for %s: %w", instrumentName, err)
	}

	var dto models.DeribitOrderBookResponseDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("FetchOrderBook: failed to decode json: %w", err)
	}

	if dto.Result.InstrumentName == "" {
		return nil, fmt.Errorf("FetchOrderBook: instrument %s not found", instrumentName)
	}

	return &dto.Result, nil
}

// GetOptionPrice returns the option's mark price converted to quote-currency
// terms, mark_price * underlying_price.
func (c *Client) GetOptionPrice(instrumentName string) (float64, error) {
	book, err := c.FetchOrderBook(instrumentName)
	if err != nil {
		return 0, fmt.Errorf("GetOptionPrice: %w", err)
	}

	if book.UnderlyingPrice == 0 {
		return 0, fmt.Errorf("GetOptionPrice: %s has no underlying price", instrumentName)
	}

	return book.MarkPrice * book.UnderlyingPrice, nil
}
