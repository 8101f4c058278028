package ftx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient()
	client.BaseURL = server.URL + "/futures"
	client.Now = func() time.Time {
		return time.Date(2020, time.August, 23, 12, 0, 0, 0, time.UTC)
	}

	return client
}

func TestListMoveContracts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/futures", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "result": [
			{"name": "BTC-PERP"},
			{"name": "BTC-MOVE-WK-0828"},
			{"name": "ETH-PERP"},
			{"name": "BTC-MOVE-0824"}
		]}`))
	})

	client := newTestClient(t, mux)

	names, err := client.ListMoveContracts()
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC-MOVE-WK-0828", "BTC-MOVE-0824"}, names)
}

func TestGetMidPrice(t *testing.T) {
	t.Run("mid price is the mean of bid and ask", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/futures/BTC-MOVE-WK-0828", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "result": {"name": "BTC-MOVE-WK-0828", "expiry": "2020-08-28T15:00:00+00:00", "bid": 480, "ask": 520, "index": 11980}}`))
		})

		client := newTestClient(t, mux)

		mid, err := client.GetMidPrice("BTC-MOVE-WK-0828")
		require.NoError(t, err)
		assert.Equal(t, 500.0, mid)
	})

	t.Run("an empty book is an error, not a zero price", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/futures/BTC-MOVE-WK-0828", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "result": {"name": "BTC-MOVE-WK-0828", "expiry": "2020-08-28T15:00:00+00:00", "bid": 480, "ask": null, "index": 11980}}`))
		})

		client := newTestClient(t, mux)

		_, err := client.GetMidPrice("BTC-MOVE-WK-0828")
		assert.ErrorContains(t, err, "no bid/ask quote")
	})
}

func TestGetMaturityDays(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/futures/BTC-MOVE-WK-0828", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "result": {"name": "BTC-MOVE-WK-0828", "expiry": "2020-08-28T15:00:00+00:00", "bid": 480, "ask": 520, "index": 11980}}`))
	})

	client := newTestClient(t, mux)

	// Expiry truncates to UTC midnight of Aug 28; now is noon Aug 23
	days, err := client.GetMaturityDays("BTC-MOVE-WK-0828")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, days, 1e-9)
}

func TestGetStrike(t *testing.T) {
	t.Run("listed strike is rounded to the nearest 100", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/futures/BTC-MOVE-WK-0828/stats", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "result": {"volume": 101.5, "strikePrice": 12345}}`))
		})

		client := newTestClient(t, mux)

		strike, err := client.GetStrike("BTC-MOVE-WK-0828")
		require.NoError(t, err)
		assert.Equal(t, 12300.0, strike)
	})

	t.Run("a midpoint strike rounds away from zero", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/futures/BTC-MOVE-WK-0828/stats", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "result": {"volume": 101.5, "strikePrice": 12350}}`))
		})

		client := newTestClient(t, mux)

		strike, err := client.GetStrike("BTC-MOVE-WK-0828")
		require.NoError(t, err)
		assert.Equal(t, 12400.0, strike)
	})

	t.Run("falls back to the rounded index when no strike is listed", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/futures/BTC-MOVE-WK-0828/stats", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "result": {"volume": 101.5}}`))
		})
		mux.HandleFunc("/futures/BTC-MOVE-WK-0828", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "result": {"name": "BTC-MOVE-WK-0828", "expiry": "2020-08-28T15:00:00+00:00", "bid": 480, "ask": 520, "index": 11980}}`))
		})

		client := newTestClient(t, mux)

		strike, err := client.GetStrike("BTC-MOVE-WK-0828")
		require.NoError(t, err)
		assert.Equal(t, 12000.0, strike)
	})

	t.Run("no strike and fallback disabled is an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/futures/BTC-MOVE-WK-0828/stats", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "result": {"volume": 101.5}}`))
		})

		client := newTestClient(t, mux)
		client.IndexFallback = false

		_, err := client.GetStrike("BTC-MOVE-WK-0828")
		assert.ErrorContains(t, err, "index fallback is disabled")
	})
}

func TestTransportFailures(t *testing.T) {
	t.Run("unknown contract surfaces the http status", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/futures/BTC-MOVE-WK-0999", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success": false, "error": "No such future"}`))
		})

		client := newTestClient(t, mux)

		_, err := client.GetMidPrice("BTC-MOVE-WK-0999")
		assert.ErrorContains(t, err, "404")
	})

	t.Run("malformed payload is a decode error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/futures", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})

		client := newTestClient(t, mux)

		_, err := client.ListMoveContracts()
		assert.ErrorContains(t, err, "failed to decode json")
	})
}
