package cli

import (
	"github.com/spf13/cobra"

	"housing-advantage/services"
	"housing-advantage/sorting"
)

func newTitlesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "titles [KEYWORD]",
		Short: "List occupation titles starting with KEYWORD",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, salaries, err := a.load()
			if err != nil {
				return err
			}
			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}
			titles := services.FindTitles(salaries, keyword)
			if len(titles) == 0 {
				a.logger.Warn("No occupation titles start with %q", keyword)
				return nil
			}
			a.reporter.PrintTitles(titles)
			return nil
		},
	}
}

func newSortCommand(a *app) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Time the sort algorithms on both datasets",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			algos := sorting.Algorithms
			if algorithm != "" {
				algo, err := sorting.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				algos = []sorting.Algorithm{algo}
			}

			housing, salaries, err := a.load()
			if err != nil {
				return err
			}

			b := services.NewBenchmarker(a.logger, a.metrics)
			_, hr := services.Benchmark(b, "housing", housing, algos)
			a.reporter.PrintBenchmark(hr)
			_, sr := services.Benchmark(b, "salaries", salaries, algos)
			a.reporter.PrintBenchmark(sr)
			return nil
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "run only shell or quick")
	return cmd
}
