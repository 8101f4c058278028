package models

import (
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CandidateSet is the output of the matching pass: every candidate lies
// strictly inside both the strike and the maturity tolerance windows of the
// reference contract.
type CandidateSet struct {
	Reference  MoveContract
	Candidates []OptionInstrument
}

func (s *CandidateSet) Len() int {
	return len(s.Candidates)
}

func (s *CandidateSet) SortByStrike() {
	sort.SliceStable(s.Candidates, func(i, j int) bool {
		return s.Candidates[i].Strike < s.Candidates[j].Strike
	})
}

// Subset returns a new set restricted to the named instruments, preserving the
// strike ordering of the receiver.
func (s *CandidateSet) Subset(instrumentNames []string) *CandidateSet {
	selected := make(map[string]struct{}, len(instrumentNames))
	for _, name := range instrumentNames {
		selected[strings.ToUpper(name)] = struct{}{}
	}

	out := &CandidateSet{Reference: s.Reference}
	for _, candidate := range s.Candidates {
		if _, ok := selected[strings.ToUpper(candidate.InstrumentName)]; ok {
			out.Candidates = append(out.Candidates, candidate)
		}
	}

	return out
}

func (s *CandidateSet) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	table.SetHeader([]string{"TYPE", "STRIKE", "INSTRUMENT", "MOVE DAYS", "OPTION DAYS", "PRICE"})

	for _, c := range s.Candidates {
		table.Append([]string{
			string(c.OptionType),
			p.Sprintf("%.0f", c.Strike),
			c.InstrumentName,
			p.Sprintf("%.2f", s.Reference.DaysToExpiry),
			p.Sprintf("%.2f", c.DaysToExpiry),
			p.Sprintf("$%.2f", c.Price),
		})
	}

	table.Render()
	return display.String()
}
