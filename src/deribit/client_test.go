package deribit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient()
	client.BaseURL = server.URL

	return client
}

func TestFetchInstruments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/get_instruments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "btc", r.URL.Query().Get("currency"))
		assert.Equal(t, "option", r.URL.Query().Get("kind"))

		w.Write([]byte(`{"result": [
			{"instrument_name": "BTC-28AUG20-20000-C", "option_type": "call", "strike": 20000, "expiration_timestamp": 1598601600000},
			{"instrument_name": "BTC-28AUG20-20000-P", "option_type": "put", "strike": 20000, "expiration_timestamp": 1598601600000}
		]}`))
	})

	client := newTestClient(t, mux)

	instruments, err := client.FetchInstruments("btc", "option")
	require.NoError(t, err)
	require.Len(t, instruments, 2)
	assert.Equal(t, "BTC-28AUG20-20000-C", instruments[0].InstrumentName)
	assert.Equal(t, "put", instruments[1].OptionType)
	assert.Equal(t, 20000.0, instruments[0].Strike)
}

func TestGetOptionPrice(t *testing.T) {
	t.Run("price is the mark converted to quote currency", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/get_order_book", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "BTC-28AUG20-20000-C", r.URL.Query().Get("instrument_name"))

			w.Write([]byte(`{"result": {"instrument_name": "BTC-28AUG20-20000-C", "mark_price": 0.0215, "underlying_price": 11800}}`))
		})

		client := newTestClient(t, mux)

		price, err := client.GetOptionPrice("BTC-28AUG20-20000-C")
		require.NoError(t, err)
		assert.InDelta(t, 253.7, price, 1e-9)
	})

	t.Run("a zero underlying price is an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/get_order_book", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result": {"instrument_name": "BTC-28AUG20-20000-C", "mark_price": 0.0215, "underlying_price": 0}}`))
		})

		client := newTestClient(t, mux)

		_, err := client.GetOptionPrice("BTC-28AUG20-20000-C")
		assert.ErrorContains(t, err, "no underlying price")
	})

	t.Run("an empty result is a lookup failure", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/get_order_book", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result": {}}`))
		})

		client := newTestClient(t, mux)

		_, err := client.GetOptionPrice("BTC-28AUG20-20000-C")
		assert.ErrorContains(t, err, "not found")
	})
}
