package services

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"housing-advantage/models"
)

// Reporter renders results for the terminal.
type Reporter struct {
	out   io.Writer
	color bool
	p     *message.Printer
}

func NewReporter(out io.Writer, color bool) *Reporter {
	return &Reporter{out: out, color: color, p: message.NewPrinter(language.English)}
}

func (r *Reporter) style(code, s string) string {
	if !r.color {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func (r *Reporter) heading(title string) {
	thin := strings.Repeat("─", 54)
	fmt.Fprintf(r.out, "%s\n", r.style("1;33", "  "+title))
	fmt.Fprintf(r.out, "  %s\n", thin)
}

// PrintTitles lists titles numbered from 1, the numbers a selection uses.
func (r *Reporter) PrintTitles(titles []string) {
	for i, t := range titles {
		fmt.Fprintf(r.out, "%d.%s\n", i+1, t)
	}
}

// PrintRanking prints the ranked states for title.
func (r *Reporter) PrintRanking(title string, ranking []models.StateAggregate) {
	sep := strings.Repeat("═", 54)

	fmt.Fprintf(r.out, "\n%s\n", r.style("1;35", sep))
	fmt.Fprintf(r.out, "%s\n", r.style("1;35", "  BEST STATES FOR "+strings.ToUpper(title)))
	fmt.Fprintf(r.out, "%s\n\n", r.style("1;35", sep))

	r.heading(fmt.Sprintf("Top %d states by advantage score", len(ranking)))
	if len(ranking) == 0 {
		fmt.Fprintf(r.out, "  No states to rank\n\n")
		return
	}
	fmt.Fprintf(r.out, "  %-4s %-6s %14s %16s %14s\n", "#", "State", "Mean salary", "Mean home value", "Score")
	for i, a := range ranking {
		r.p.Fprintf(r.out, "  %-4d %-6s %14.0f %16.0f %14.0f\n",
			i+1, a.State, a.MeanSalary, a.MeanHomeValue, a.Score)
	}
	fmt.Fprintln(r.out)
}

// PrintBenchmark prints the elapsed time of every algorithm in result.
func (r *Reporter) PrintBenchmark(result BenchmarkResult) {
	r.heading(fmt.Sprintf("Sort timings: %s (%d records)", result.Dataset, result.Records))
	for _, t := range result.Timings {
		fmt.Fprintf(r.out, "  %-6s sort time in milliseconds: %.3f\n",
			t.Algorithm, float64(t.Elapsed.Microseconds())/1000.0)
	}
	if !result.Agree {
		fmt.Fprintf(r.out, "  %s\n", r.style("1;31", "algorithms produced different orderings"))
	}
	fmt.Fprintln(r.out)
}

// PrintCheapest prints the lowest valued regions of state.
func (r *Reporter) PrintCheapest(state string, regions []models.Valuation) {
	r.heading("Lowest priced areas in " + state)
	if len(regions) == 0 {
		fmt.Fprintf(r.out, "  No housing data for %s\n\n", state)
		return
	}
	for i, v := range regions {
		r.p.Fprintf(r.out, "  %2d. %-28s %-24s $%.0f\n",
			i+1, truncate(v.City, 28), truncate(v.County, 24), v.MeanValue)
	}
	fmt.Fprintln(r.out)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
