package ftx

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/schepal/crypto-vol-arb/src/models"
	"github.com/schepal/crypto-vol-arb/src/utils"
)

const DefaultBaseURL = "https://ftx.com/api/futures"
const DefaultProductPrefix = "BTC-MOVE"
const DefaultStrikeRounding = 100.0

// Client is a read-only accessor over the FTX futures REST surface, scoped to
// one MOVE product family. Every method re-fetches; nothing is cached.
type Client struct {
	BaseURL        string
	ProductPrefix  string
	StrikeRounding float64
	IndexFallback  bool
	Now            func() time.Time
}

func NewClient() *Client {
	return &Client{
		BaseURL:        DefaultBaseURL,
		ProductPrefix:  DefaultProductPrefix,
		StrikeRounding: DefaultStrikeRounding,
		IndexFallback:  true,
		Now:            time.Now,
	}
}

// ListMoveContracts returns the names of all listed futures whose name
// contains the MOVE product prefix. A single response page is assumed.
func (c *Client) ListMoveContracts() ([]string, error) {
	body, err := utils.Get(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("ListMoveContracts: failed to fetch futures list: %w", err)
	}

	var dto models.FTXFuturesResponseDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("ListMoveContracts: failed to decode json: %w", err)
	}

	var names []string
	for _, future := range dto.Result {
		if strings.Contains(future.Name, c.ProductPrefix) {
			names = append(names, future.Name)
		}
	}

	return names, nil
}

// GetMaturityDays returns the days left until the contract's expiry, measured
// from now to UTC midnight of the expiry date.
func (c *Client) GetMaturityDays(name string) (float64, error) {
	future, err := c.fetchFuture(name)
	if err != nil {
		return 0, fmt.Errorf("GetMaturityDays: %w", err)
	}

	expiry, err := future.ExpiryTime()
	if err != nil {
		return 0, fmt.Errorf("GetMaturityDays: %w", err)
	}

	midnight := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	return float64(midnight.Unix()-c.Now().Unix()) / (60 * 60 * 24), nil
}

// GetMidPrice returns the average of the contract's best bid and best ask. An
// empty book on either side is a data-shape failure, never a zero price.
func (c *Client) GetMidPrice(name string) (float64, error) {
	future, err := c.fetchFuture(name)
	if err != nil {
		return 0, fmt.Errorf("GetMidPrice: %w", err)
	}

	if future.Bid == nil || future.Ask == nil {
		return 0, fmt.Errorf("GetMidPrice: %s has no bid/ask quote", name)
	}

	mid, err := stats.Mean([]float64{*future.Bid, *future.Ask})
	if err != nil {
		return 0, fmt.Errorf("GetMidPrice: %w", err)
	}

	return mid, nil
}

// GetStrike returns the contract's strike rounded to the nearest rounding
// unit. A MOVE contract only carries a fixed strike once it has been set by
// the exchange; before that, the current index level stands in for an
// at-the-money strike when the fallback is enabled.
func (c *Client) GetStrike(name string) (float64, error) {
	statsDTO, err := c.fetchFutureStats(name)
	if err != nil {
		return 0, fmt.Errorf("GetStrike: %w", err)
	}

	if statsDTO.StrikePrice != nil {
		return utils.RoundToNearest(*statsDTO.StrikePrice, c.StrikeRounding), nil
	}

	if !c.IndexFallback {
		return 0, fmt.Errorf("GetStrike: %s has no listed strike and the index fallback is disabled", name)
	}

	future, err := c.fetchFuture(name)
	if err != nil {
		return 0, fmt.Errorf("GetStrike: %w", err)
	}

	return utils.RoundToNearest(future.Index, c.StrikeRounding), nil
}

func (c *Client) fetchFuture(name string) (*models.FTXFutureDTO, error) {
	body, err := utils.Get(fmt.Sprintf("%s/%s", c.BaseURL, name))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch future %s: %w", name, err)
	}

	var dto models.FTXFutureResponseDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to decode future %s: %w", name, err)
	}

	if dto.Result.Name == "" {
		return nil, fmt.Errorf("future %s not found", name)
	}

	return &dto.Result, nil
}

func (c *Client) fetchFutureStats(name string) (*models.FTXFutureStatsDTO, error) {
	body, err := utils.Get(fmt.Sprintf("%s/%s/stats", c.BaseURL, name))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats for %s: %w", name, err)
	}

	var dto models.FTXFutureStatsResponseDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to decode stats for %s: %w", name, err)
	}

	return &dto.Result, nil
}
