package models

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ComparisonReport is the side-by-side view of a MOVE contract against its
// nearest Deribit straddle: rows {Position, Price, Days Left} by columns
// {deribit_straddle, ftx_move, difference}.
type ComparisonReport struct {
	StraddlePosition []string
	StraddlePrice    float64
	StraddleDays     float64
	MovePosition     string
	MovePrice        float64
	MoveDays         float64
}

// Differential is the percentage premium of the MOVE contract over the
// straddle, (movePrice/straddlePrice - 1) * 100.
func (r *ComparisonReport) Differential() float64 {
	return (r.MovePrice/r.StraddlePrice - 1) * 100
}

func (r *ComparisonReport) PriceDifference() float64 {
	return r.StraddlePrice - r.MovePrice
}

func (r *ComparisonReport) DaysDifference() float64 {
	return r.StraddleDays - r.MoveDays
}

func (r *ComparisonReport) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	table.SetHeader([]string{"", "DERIBIT STRADDLE", "FTX MOVE", "DIFFERENCE"})

	table.Append([]string{"Position", strings.Join(r.StraddlePosition, " / "), r.MovePosition, "NA"})
	table.Append([]string{"Price", p.Sprintf("$%.2f", r.StraddlePrice), p.Sprintf("$%.2f", r.MovePrice), p.Sprintf("$%.2f", r.PriceDifference())})
	table.Append([]string{"Days Left", p.Sprintf("%.2f", r.StraddleDays), p.Sprintf("%.2f", r.MoveDays), p.Sprintf("%.2f", r.DaysDifference())})

	table.Render()
	display.WriteString(fmt.Sprintf("%.3f%% price differential between the FTX MOVE contract and the Deribit straddle\n", r.Differential()))
	return display.String()
}
