package simulation

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Row is one class or race line of a report.
type Row struct {
	Name   string
	Wins   int
	Losses int
	Draws  int
}

// Total returns Wins + Losses + Draws.
func (r Row) Total() int { return r.Wins + r.Losses + r.Draws }

// WinRate returns Wins / Total, or 0 when the row has no results.
func (r Row) WinRate() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(total)
}

// sortRows orders by win rate descending, then name ascending.
func sortRows(rows []Row) {
	slices.SortFunc(rows, func(a, b Row) int {
		if c := cmp.Compare(b.WinRate(), a.WinRate()); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

// Report is the aggregate of a random-pairing run.
type Report struct {
	RunID   uuid.UUID
	Trials  int
	Seed    uint64
	Elapsed time.Duration
	Classes []Row
	Races   []Row
}

// Matchup is the aggregate of a fixed-pairing run.
type Matchup struct {
	RunID     uuid.UUID
	Trials    int
	Seed      uint64
	Elapsed   time.Duration
	Char1     Spec
	Char2     Spec
	Char1Wins int
	Char2Wins int
	Draws     int
}

// rate returns n / Trials, or 0 for an empty matchup.
func (m *Matchup) rate(n int) float64 {
	if m.Trials == 0 {
		return 0
	}
	return float64(n) / float64(m.Trials)
}

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// Render writes r as two aligned tables, classes then races.
//
// Precondition: r must be non-nil.
func Render(w io.Writer, r *Report) error {
	p := printer()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	p.Fprintf(tw, "run %s\ttrials %d\tseed %s\t\n\n", r.RunID, r.Trials, fmt.Sprint(r.Seed))
	renderRows(p, tw, "CLASS", r.Classes)
	p.Fprintf(tw, "\n")
	renderRows(p, tw, "RACE", r.Races)
	return tw.Flush()
}

func renderRows(p *message.Printer, tw io.Writer, title string, rows []Row) {
	p.Fprintf(tw, "%s\tWINS\tLOSSES\tDRAWS\tWIN RATE\t\n", title)
	for _, row := range rows {
		p.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f%%\t\n", row.Name, row.Wins, row.Losses, row.Draws, row.WinRate()*100)
	}
}

// RenderMatchup writes m as a three-line outcome table.
//
// Precondition: m must be non-nil.
func RenderMatchup(w io.Writer, m *Matchup) error {
	p := printer()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	p.Fprintf(tw, "%s vs %s\ttrials %d\tseed %s\t\n\n", m.Char1, m.Char2, m.Trials, fmt.Sprint(m.Seed))
	p.Fprintf(tw, "OUTCOME\tCOUNT\tRATE\t\n")
	for _, l := range []struct {
		name string
		n    int
	}{
		{m.Char1.String() + " wins", m.Char1Wins},
		{m.Char2.String() + " wins", m.Char2Wins},
		{"draws", m.Draws},
	} {
		p.Fprintf(tw, "%s\t%d\t%.1f%%\t\n", l.name, l.n, m.rate(l.n)*100)
	}
	return tw.Flush()
}
