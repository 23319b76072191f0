package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"housing-advantage/services"
	"housing-advantage/sorting"
)

type rankFlags struct {
	keyword string
	choice  int
	state   string
}

// addRankFlow makes the root command run the interactive flow: search
// titles, pick one, rank states, time both sorts, then list the cheapest
// areas of a picked state.
func addRankFlow(root *cobra.Command, a *app) {
	var flags rankFlags

	root.Flags().StringVar(&flags.keyword, "keyword", "", "title prefix to search for instead of prompting")
	root.Flags().IntVar(&flags.choice, "select", 0, "number of the title to rank instead of prompting")
	root.Flags().StringVar(&flags.state, "state", "", "state code whose cheapest areas to list instead of prompting")

	root.RunE = func(cmd *cobra.Command, _ []string) error {
		fs := cmd.Flags()
		return a.rank(flags, fs.Changed("keyword"), fs.Changed("select"), fs.Changed("state"))
	}
}

func (a *app) rank(flags rankFlags, haveKeyword, haveChoice, haveState bool) error {
	housing, salaries, err := a.load()
	if err != nil {
		return err
	}

	keyword := flags.keyword
	if !haveKeyword {
		if keyword, err = a.prompter.Line("Please enter a keyword to search for: "); err != nil {
			a.logger.Warn("No keyword entered: %v", err)
			return nil
		}
	}

	titles := services.FindTitles(salaries, keyword)
	if len(titles) == 0 {
		a.logger.Warn("No occupation titles start with %q", keyword)
		return nil
	}
	a.reporter.PrintTitles(titles)

	choice := flags.choice
	if haveChoice {
		choice, err = checkChoice(strconv.Itoa(choice), len(titles))
	} else {
		choice, err = a.prompter.Choose("Select a number corresponding to the OCC_TITLE: ", len(titles))
	}
	if err != nil {
		if abortable(err) {
			a.logger.Warn("Ranking aborted: %v", err)
			return nil
		}
		return err
	}
	title := titles[choice-1]
	a.logger.Info("Selected occupation: %s", title)

	ranking, err := services.NewRanker(a.logger, a.metrics).RankStates(title, a.cfg.TopN, housing, salaries)
	if err != nil {
		return err
	}
	a.reporter.PrintRanking(title, ranking)
	if err := a.writeReport(title, ranking); err != nil {
		return err
	}

	sorted, result := services.Benchmark(services.NewBenchmarker(a.logger, a.metrics), "housing", housing, sorting.Algorithms)
	a.reporter.PrintBenchmark(result)

	if len(ranking) == 0 {
		return nil
	}

	state := strings.ToUpper(strings.TrimSpace(flags.state))
	if !haveState {
		states := make([]string, len(ranking))
		for i, s := range ranking {
			states[i] = s.State
		}
		a.reporter.PrintTitles(states)
		n, err := a.prompter.Choose("Select a state number to list its lowest priced areas: ", len(ranking))
		if err != nil {
			if abortable(err) {
				a.logger.Warn("State listing skipped: %v", err)
				return nil
			}
			return err
		}
		state = ranking[n-1].State
	}

	a.reporter.PrintCheapest(state, services.CheapestRegions(sorted, state, a.cfg.CheapestN))
	return nil
}
