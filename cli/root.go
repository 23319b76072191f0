// Package cli wires configuration, storage and services into the
// housing-advantage commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"housing-advantage/config"
	"housing-advantage/metrics"
	"housing-advantage/models"
	"housing-advantage/services"
	"housing-advantage/storage"
	"housing-advantage/utils"
)

// app is the state shared by every command of one invocation.
type app struct {
	cfg      *config.Config
	logger   *utils.Logger
	metrics  *metrics.Metrics
	reporter *services.Reporter
	prompter *Prompter
}

type rootFlags struct {
	housing         string
	salaries        string
	source          string
	topN            int
	logLevel        string
	reportPath      string
	reportFormat    string
	metricsTextfile string
}

// NewRootCommand builds the command tree. Running the root command starts
// the interactive ranking flow.
func NewRootCommand() *cobra.Command {
	var (
		flags rootFlags
		a     = &app{}
	)

	root := &cobra.Command{
		Use:           "housing-advantage",
		Short:         "Rank US states by salary against home values for an occupation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, flags)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.finish()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.housing, "housing", "", "housing values CSV (env HOUSING_CSV_PATH)")
	pf.StringVar(&flags.salaries, "salaries", "", "occupation salaries CSV (env SALARY_CSV_PATH)")
	pf.StringVar(&flags.source, "source", "", "data source: csv or postgres (env DATA_SOURCE)")
	pf.IntVar(&flags.topN, "top", 0, "number of states to rank (env TOP_N)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	pf.StringVar(&flags.reportPath, "report", "", "write the ranking to this file (env REPORT_PATH)")
	pf.StringVar(&flags.reportFormat, "report-format", "", "csv or yaml (env REPORT_FORMAT)")
	pf.StringVar(&flags.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics here on exit (env METRICS_TEXTFILE)")

	addRankFlow(root, a)
	root.AddCommand(newTitlesCommand(a), newSortCommand(a))
	return root
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:])
}

func run(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) init(cmd *cobra.Command, flags rootFlags) error {
	cfg := config.Load()
	fs := cmd.Flags()
	if fs.Changed("housing") {
		cfg.HousingCSVPath = flags.housing
	}
	if fs.Changed("salaries") {
		cfg.SalaryCSVPath = flags.salaries
	}
	if fs.Changed("source") {
		cfg.DataSource = flags.source
	}
	if fs.Changed("top") {
		cfg.TopN = flags.topN
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if fs.Changed("report") {
		cfg.ReportPath = flags.reportPath
	}
	if fs.Changed("report-format") {
		cfg.ReportFormat = flags.reportFormat
	}
	if fs.Changed("metrics-textfile") {
		cfg.MetricsTextfile = flags.metricsTextfile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := isTerminal(out)
	a.cfg = cfg
	a.logger = utils.NewLogger(out, cmd.ErrOrStderr(), utils.ParseLevel(cfg.LogLevel), color)
	a.metrics = metrics.New()
	a.reporter = services.NewReporter(out, color)
	a.prompter = NewPrompter(cmd.InOrStdin(), out, cfg.MaxPromptAttempts)
	return nil
}

func (a *app) finish() error {
	if a.cfg == nil || a.cfg.MetricsTextfile == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
		return err
	}
	a.logger.Info("Metrics written to %s", a.cfg.MetricsTextfile)
	return nil
}

func (a *app) openLoader() (storage.DatasetLoader, error) {
	switch a.cfg.DataSource {
	case config.SourceCSV:
		return storage.NewCSVLoader(a.cfg.HousingCSVPath, a.cfg.SalaryCSVPath, a.logger)
	case config.SourcePostgres:
		return storage.NewPostgresLoader(a.cfg.DSN(), a.cfg.ConnectRetries, a.logger)
	}
	return nil, fmt.Errorf("%w: %q", models.ErrUnknownSource, a.cfg.DataSource)
}

// load reads both datasets once. Any failure here ends the run before
// ranking or sorting starts.
func (a *app) load() (*models.GroupedTable[models.Valuation], *models.GroupedTable[models.Salary], error) {
	loader, err := a.openLoader()
	if err != nil {
		return nil, nil, err
	}
	defer loader.Close()

	housing, err := loader.LoadHousing()
	if err != nil {
		return nil, nil, err
	}
	salaries, err := loader.LoadSalaries()
	if err != nil {
		return nil, nil, err
	}

	a.metrics.SetRecordsLoaded("housing", housing.Size())
	a.metrics.SetRecordsLoaded("salaries", salaries.Size())
	return housing, salaries, nil
}

func (a *app) writeReport(title string, ranking []models.StateAggregate) error {
	if a.cfg.ReportPath == "" {
		return nil
	}
	w, err := storage.NewReportWriter(a.cfg.ReportPath, a.cfg.ReportFormat)
	if err != nil {
		return err
	}
	if err := w.WriteRanking(title, ranking); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	a.logger.Info("Ranking saved to %s", a.cfg.ReportPath)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// abortable reports whether err ends only the current interactive flow.
func abortable(err error) bool {
	return errors.Is(err, models.ErrInvalidSelection)
}
