// Package main provides the CLI entry point for costsheet.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/costsheet-go/internal/config"
	"github.com/ukaji3/costsheet-go/internal/logger"
	"github.com/ukaji3/costsheet-go/pkg/costsheet"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/admin"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/models"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/output"
	"github.com/ukaji3/costsheet-go/pkg/costsheet/parser"
)

var (
	envFile    string
	apiURL     string
	logLevel   string
	logJSON    bool
	pretty     bool
	outputPath string
	dryRun     bool
	sheetName  string
	cellRange  string
	rowLimit   int
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "costsheet",
		Short: "Publish the cost comparison workbook to the calculator",
		Long: `costsheet reads energies, cost components and tariff parameters from the
"Comparativa combustibles" workbook and publishes them to the calculator's
administrative API.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", ".env", "Dotenv file with COSTSHEET_* settings")
	flags.StringVar(&apiURL, "api-url", "", "Base URL of the administrative API")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")

	rootCmd.AddCommand(
		newImportCmd("energies [input.xlsx]", "Create every energy with its cost components", costsheet.ModeEnergies),
		newImportCmd("parameters [input.xlsx]", "Update the global tariff parameters", costsheet.ModeParameters),
		newImportCmd("import [input.xlsx]", "Create energies, then update parameters", costsheet.ModeAll),
		newInspectCmd(),
	)
	return rootCmd
}

func newImportCmd(use, short string, mode costsheet.Mode) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args, mode)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the requests instead of sending them")
	return cmd
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print the typed cells of a worksheet window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().StringVar(&sheetName, "sheet", "DUOTRAILER GASOIL", "Worksheet to read")
	cmd.Flags().StringVar(&cellRange, "range", "A1:H10", "Window to read in A1 notation")
	cmd.Flags().IntVar(&rowLimit, "rows", 0, "Maximum rows to print (0: all)")
	return cmd
}

// setup loads configuration, letting explicitly set flags win.
func setup(cmd *cobra.Command) (*config.Config, logger.Logger, error) {
	overrides := make(map[string]any)
	if cmd.Flags().Changed("api-url") {
		overrides["api.base_url"] = apiURL
	}
	if cmd.Flags().Changed("log-level") {
		overrides["log.level"] = logLevel
	}
	if cmd.Flags().Changed("log-json") {
		overrides["log.json"] = logJSON
	}

	cfg, err := config.Load(config.Options{
		EnvFile:        envFile,
		RequireEnvFile: cmd.Flags().Changed("env-file"),
		Overrides:      overrides,
	})
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Config{
		Level:  logger.Level(cfg.Log.Level),
		JSON:   cfg.Log.JSON,
		Output: os.Stderr,
	})
	return cfg, log, nil
}

func openWorkbook(args []string, cfg *config.Config) (*costsheet.Workbook, error) {
	path := cfg.Workbook.Path
	if len(args) == 1 {
		path = args[0]
	}
	return costsheet.Open(path)
}

// preview is what --dry-run prints.
type preview struct {
	Energies   []admin.EnergyPayload `json:"energies,omitempty"`
	Parameters []models.Parameter    `json:"parameters,omitempty"`
}

func runImport(cmd *cobra.Command, args []string, mode costsheet.Mode) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	wb, err := openWorkbook(args, cfg)
	if err != nil {
		return err
	}
	defer wb.Close()

	opts := costsheet.DefaultOptions()
	opts.Mode = mode
	opts.SummarySheet = cfg.Workbook.SummarySheet

	ext, err := costsheet.Extract(wb, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	log.Debug("workbook read", "book", ext.BookName, "energies", len(ext.Summaries), "parameters", len(ext.Parameters))

	client := admin.New(admin.Config{
		BaseURL:     cfg.API.BaseURL,
		PingTimeout: cfg.API.PingTimeout,
		Debug:       cfg.API.Debug,
	})
	im, err := costsheet.NewImporter(client, opts.Plan, log)
	if err != nil {
		return err
	}

	if dryRun {
		p := preview{Parameters: ext.Parameters}
		if opts.ShouldExtractEnergies() {
			if p.Energies, err = im.Payloads(ext); err != nil {
				return err
			}
		}
		return writeJSON(p)
	}

	result, err := im.Import(cmd.Context(), ext, opts)
	if err != nil {
		return err
	}
	return writeJSON(result)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	win, err := parser.ParseWindow(cellRange)
	if err != nil {
		return err
	}

	wb, err := openWorkbook(args, cfg)
	if err != nil {
		return err
	}
	defer wb.Close()

	sheet, err := costsheet.Inspect(wb, sheetName, win, rowLimit)
	if err != nil {
		return err
	}

	return writeJSON(sheet)
}

// writeJSON prints v to stdout, or to --output when set.
func writeJSON(v any) error {
	if outputPath == "" {
		return output.Write(os.Stdout, v, pretty)
	}

	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
