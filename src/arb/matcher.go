package arb

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/schepal/crypto-vol-arb/src/models"
)

const DefaultStrikeTolerance = 100.0
const DefaultDaysTolerance = 1.0

// FuturesReader is the slice of the FTX client the matcher consumes.
type FuturesReader interface {
	ListMoveContracts() ([]string, error)
	GetMaturityDays(name string) (float64, error)
	GetMidPrice(name string) (float64, error)
	GetStrike(name string) (float64, error)
}

// OptionsReader is the slice of the Deribit client the matcher consumes.
type OptionsReader interface {
	FetchInstruments(currency, kind string) ([]models.DeribitInstrumentDTO, error)
	GetOptionPrice(instrumentName string) (float64, error)
}

// Matcher pairs one MOVE contract against the Deribit options that fall
// strictly inside its strike and maturity tolerance windows. It is a linear
// two-phase pipeline: FindComparableOptions builds the candidate table, and
// Compare consumes a one-call one-put subset of it.
type Matcher struct {
	futures         FuturesReader
	options         OptionsReader
	contract        string
	currency        string
	strikeTolerance float64
	daysTolerance   float64
	now             func() time.Time
}

// NewMatcher validates the reference contract against the live contract list
// before anything else, so a typo never gets as far as a price comparison.
func NewMatcher(futures FuturesReader, options OptionsReader, contract string, strikeTolerance, daysTolerance float64) (*Matcher, error) {
	if strikeTolerance <= 0 {
		return nil, fmt.Errorf("NewMatcher: strike tolerance must be positive, got %v", strikeTolerance)
	}

	if daysTolerance <= 0 {
		return nil, fmt.Errorf("NewMatcher: days tolerance must be positive, got %v", daysTolerance)
	}

	contracts, err := futures.ListMoveContracts()
	if err != nil {
		return nil, fmt.Errorf("NewMatcher: failed to list MOVE contracts: %w", err)
	}

	found := false
	for _, name := range contracts {
		if name == contract {
			found = true
			break
		}
	}

	if !found {
		return nil, fmt.Errorf("NewMatcher: %s: %w", contract, models.InvalidReferenceContractErr)
	}

	return &Matcher{
		futures:         futures,
		options:         options,
		contract:        contract,
		currency:        "btc",
		strikeTolerance: strikeTolerance,
		daysTolerance:   daysTolerance,
		now:             time.Now,
	}, nil
}

// FindComparableOptions fetches the reference contract's strike and maturity,
// filters the Deribit option catalog down to the instruments strictly inside
// both tolerance windows, fetches each survivor's mark price, and returns the
// table sorted ascending by strike. An empty table is a valid outcome: the
// thresholds were too narrow, and the caller decides whether to widen them.
func (m *Matcher) FindComparableOptions() (*models.CandidateSet, error) {
	requestID := uuid.New()

	strike, err := m.futures.GetStrike(m.contract)
	if err != nil {
		return nil, fmt.Errorf("FindComparableOptions: failed to fetch reference strike: %w", err)
	}

	days, err := m.futures.GetMaturityDays(m.contract)
	if err != nil {
		return nil, fmt.Errorf("FindComparableOptions: failed to fetch reference maturity: %w", err)
	}

	log.Infof("requestID %s: %s strike %.0f, %.2f days to expiry", requestID, m.contract, strike, days)

	instruments, err := m.options.FetchInstruments(m.currency, "option")
	if err != nil {
		return nil, fmt.Errorf("FindComparableOptions: failed to fetch option catalog: %w", err)
	}

	log.Infof("requestID %s: fetched %d option instruments", requestID, len(instruments))

	set := &models.CandidateSet{
		Reference: models.MoveContract{
			Name:         m.contract,
			Strike:       strike,
			DaysToExpiry: days,
		},
	}

	now := m.now()
	for _, dto := range instruments {
		instrument := dto.ToModel(now)

		if math.Abs(instrument.DaysToExpiry-days) >= m.daysTolerance {
			continue
		}

		if math.Abs(instrument.Strike-strike) >= m.strikeTolerance {
			continue
		}

		price, err := m.options.GetOptionPrice(instrument.InstrumentName)
		if err != nil {
			return nil, fmt.Errorf("FindComparableOptions: failed to fetch price for %s: %w", instrument.InstrumentName, err)
		}

		instrument.Price = price
		set.Candidates = append(set.Candidates, instrument)
	}

	set.SortByStrike()

	if set.Len() == 0 {
		log.Warnf("requestID %s: no options within %.0f strike and %.1f days of %s", requestID, m.strikeTolerance, m.daysTolerance, m.contract)
	}

	return set, nil
}

// SelectStraddle narrows a candidate set to its straddle legs. It only acts
// when the choice is unambiguous, exactly one call and one put; anything else
// is left for the operator to subset by hand.
func (m *Matcher) SelectStraddle(candidates *models.CandidateSet) (*models.CandidateSet, error) {
	var calls, puts []string
	for _, candidate := range candidates.Candidates {
		switch candidate.OptionType {
		case models.Call:
			calls = append(calls, candidate.InstrumentName)
		case models.Put:
			puts = append(puts, candidate.InstrumentName)
		}
	}

	if len(calls) != 1 || len(puts) != 1 {
		return nil, fmt.Errorf("SelectStraddle: found %d calls and %d puts: %w", len(calls), len(puts), models.CandidateCountMismatchErr)
	}

	return candidates.Subset([]string{calls[0], puts[0]}), nil
}

// Compare builds the 3x3 report for a two-leg candidate set. The reference mid
// price is fetched fresh here rather than reused from the matching pass, so
// the two sides are read as close together in time as possible.
func (m *Matcher) Compare(candidates *models.CandidateSet) (*models.ComparisonReport, error) {
	if candidates.Len() == 0 {
		return nil, fmt.Errorf("Compare: %w", models.NoComparableOptionsErr)
	}

	if candidates.Len() != 2 {
		return nil, fmt.Errorf("Compare: %d options are being analyzed, subset the table to ONE call and ONE put: %w", candidates.Len(), models.CandidateCountMismatchErr)
	}

	var straddlePrice float64
	var straddlePosition []string
	for _, leg := range candidates.Candidates {
		straddlePrice += leg.Price
		straddlePosition = append(straddlePosition, leg.InstrumentName)
	}

	movePrice, err := m.futures.GetMidPrice(m.contract)
	if err != nil {
		return nil, fmt.Errorf("Compare: failed to fetch reference mid price: %w", err)
	}

	report := &models.ComparisonReport{
		StraddlePosition: straddlePosition,
		StraddlePrice:    straddlePrice,
		StraddleDays:     candidates.Candidates[0].DaysToExpiry,
		MovePosition:     m.contract,
		MovePrice:        movePrice,
		MoveDays:         candidates.Reference.DaysToExpiry,
	}

	log.Infof("%.3f%% price differential between %s and the %s straddle", report.Differential(), m.contract, strings.Join(straddlePosition, " / "))

	return report, nil
}
