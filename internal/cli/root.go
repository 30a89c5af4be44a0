package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfredodrv/mwrgen/internal/config"
	"github.com/alfredodrv/mwrgen/internal/logger"
	"github.com/alfredodrv/mwrgen/internal/planfile"
	"github.com/alfredodrv/mwrgen/internal/version"
	"github.com/alfredodrv/mwrgen/internal/workrule"
)

// nowFunc supplies the past-due cutoff.
var nowFunc = time.Now

const longHelp = `Generate Maintenance Work Rules from a JSON export of Maintenance Plans.

Minimum Maintenance Plan fields required to generate the Maintenance Work Rules:
  - Id
  - NextSuggestedMaintenanceDate
  - MaintenancePlanNumber
  - MaintenancePlanTitle
  - StartDate
  - EndDate
  - Frequency
  - FrequencyType (Seconds, Minutes, Hours, Days, Weeks, Months or Years)

Plans whose EndDate is already in the past are left out unless --include-past-due is set.

Settings can also come from a YAML file (--config) or MWR_* environment variables
(a .env file in the working directory is read if present). Flags take precedence.`

// rootOptions holds the raw flag values for one invocation.
type rootOptions struct {
	configPath     string
	inputFilePath  string
	outputFilePath string
	includePastDue bool
	onError        string
	logLevel       string
	logFormat      string
}

// NewRootCmd builds the mwrgen command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "mwrgen --input-file-path=<path> --output-file-path=<path> [--include-past-due]",
		Short:         "Generate Maintenance Work Rules from Maintenance Plans",
		Long:          longHelp,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.inputFilePath, "input-file-path", "", "Path to the JSON file containing the maintenance plans (required)")
	flags.StringVar(&opts.outputFilePath, "output-file-path", "", "Path to the file where the maintenance work rules will be saved (required)")
	flags.BoolVar(&opts.includePastDue, "include-past-due", false, "Include maintenance plans whose end date has passed")
	flags.StringVar(&opts.onError, "on-error", "", "What to do with a plan whose rule cannot be derived: abort|skip (default abort)")
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML settings file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (default info)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: console|json (default console)")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// resolveConfig layers explicitly set flags over the file and environment settings.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input-file-path") {
		cfg.InputFilePath = opts.inputFilePath
	}
	if flags.Changed("output-file-path") {
		cfg.OutputFilePath = opts.outputFilePath
	}
	if flags.Changed("include-past-due") {
		cfg.IncludePastDue = opts.includePastDue
	}
	if flags.Changed("on-error") {
		cfg.OnError = opts.onError
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("input", cfg.InputFilePath).
		Str("output", cfg.OutputFilePath).
		Bool("include_past_due", cfg.IncludePastDue).
		Str("on_error", cfg.OnError).
		Msg("Generating Maintenance Work Rules...")

	plans, err := planfile.Load(cfg.InputFilePath)
	if err != nil {
		return err
	}

	res, err := workrule.Generate(plans, workrule.Options{
		Cutoff:         nowFunc(),
		IncludePastDue: cfg.IncludePastDue,
		OnError:        cfg.ErrorPolicy(),
		Logger:         log,
	})
	if err != nil {
		return fmt.Errorf("failed to generate work rules: %w", err)
	}

	path, err := planfile.Save(cfg.OutputFilePath, res.Rules)
	if err != nil {
		return err
	}

	log.Info().Int("plans", len(plans)).Int("rules", len(res.Rules)).Str("path", path).Msg("Wrote work rules")
	printSummary(cmd.OutOrStdout(), res, path)
	return nil
}

// printSummary displays the outcome of a successful run.
func printSummary(w io.Writer, res *workrule.Result, path string) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("Maintenance Work Rules generated successfully! %d", len(res.Rules))))
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("  Output: %s", path)))

	if res.PastDue > 0 {
		fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("  Past-due plans left out: %d (use --include-past-due to keep them)", res.PastDue)))
	}
	if len(res.Failed) > 0 {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("  Plans skipped after errors: %d", len(res.Failed))))
		for _, f := range res.Failed {
			fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("    #%d %s: %v", f.Index, f.Plan.Label(), f.Err)))
		}
	}
}
