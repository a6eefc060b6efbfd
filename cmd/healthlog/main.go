package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"healthlog/internal/bootstrap"
	recorddto "healthlog/internal/modules/record/dto"
	"healthlog/internal/platform/config"
	"healthlog/internal/platform/schedule"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	envFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "healthlog",
		Short:         "Daily health log with a spreadsheet-backed history",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default "+config.DefaultFile+" when present)")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "dotenv file (default "+config.DefaultEnv+" when present)")

	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newSheetCmd(flags))
	root.AddCommand(newLogCmd(flags))
	root.AddCommand(newHistoryCmd(flags))
	root.AddCommand(newChartCmd(flags))
	root.AddCommand(newExportCmd(flags))
	root.AddCommand(newTUICmd(flags))
	return root
}

func loadApp(flags *rootFlags) (*bootstrap.App, error) {
	cfg, err := config.Load(config.LoadOptions{ConfigPath: flags.configPath, EnvFile: flags.envFile})
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr, snapshotCron, snapshotDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the proxy endpoint in front of the spreadsheet script",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Log.Sync() }()
			if addr == "" {
				addr = app.Config.Addr
			}
			if snapshotCron == "" {
				snapshotCron = app.Config.Snapshot.Cron
			}
			if snapshotDir == "" {
				snapshotDir = app.Config.Snapshot.Dir
			}
			if config.ScriptURL() == "" {
				app.Log.Warn("script url is not set; every request will fail", zap.String("env", config.ScriptURLEnv))
			}

			ctx, stop := signalContext()
			defer stop()

			if strings.TrimSpace(snapshotCron) != "" {
				sched := schedule.New(ctx, app.Log)
				if err := sched.Add("snapshot", snapshotCron, app.SnapshotJob(snapshotDir)); err != nil {
					return err
				}
				sched.Start()
				defer sched.Stop()
			}
			app.Log.Info("proxy ready", zap.String("path", app.Config.ProxyPath))
			return bootstrap.Serve(ctx, app, addr, app.ProxyEngine())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to config addr)")
	cmd.Flags().StringVar(&snapshotCron, "snapshot-cron", "", "cron spec for periodic xlsx snapshots, e.g. \"0 3 * * *\"")
	cmd.Flags().StringVar(&snapshotDir, "snapshot-dir", "", "directory for snapshot workbooks")
	return cmd
}

func newSheetCmd(flags *rootFlags) *cobra.Command {
	var addr, backend, path string
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Serve a local spreadsheet stand-in with the script's GET/POST contract",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Log.Sync() }()
			if addr == "" {
				addr = app.Config.Sheet.Addr
			}
			if backend == "" {
				backend = app.Config.Sheet.Backend
			}
			if path == "" {
				path = app.Config.Sheet.Path
			}
			engine, store, err := app.SheetEngine(backend, path)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx, stop := signalContext()
			defer stop()
			app.Log.Info("sheet ready", zap.String("backend", backend), zap.String("path", path))
			return bootstrap.Serve(ctx, app, addr, engine)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to config sheet.addr)")
	cmd.Flags().StringVar(&backend, "backend", "", "storage backend: xlsx|sqlite")
	cmd.Flags().StringVar(&path, "path", "", "workbook or database path")
	return cmd
}

func newLogCmd(flags *rootFlags) *cobra.Command {
	var input recorddto.SaveInput
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Save today's entry through the proxy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			out, err := app.RecordCLI.Save(context.Background(), input)
			if err != nil {
				if out.Saved.Date != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s, but the history could not be reloaded\n", out.Saved.Date)
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s pain=%d pills=%d exercise=%s healthy=%s (%d records)\n",
				out.Saved.Date, out.Saved.PainLevel, out.Saved.PillCount, out.Saved.ExerciseDone, out.Saved.FeelsHealthy, len(out.Records))
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Date, "date", "", "day YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&input.PainLevel, "pain", "", "pain level 1-5")
	cmd.Flags().StringVar(&input.PillCount, "pills", "", "pills taken 0-2")
	cmd.Flags().StringVar(&input.ExerciseDone, "exercise", "no", "exercise done: yes|no")
	cmd.Flags().StringVar(&input.FeelsHealthy, "healthy", "no", "feels healthy: yes|no")
	cmd.Flags().StringVar(&input.Weather, "weather", "", "weather")
	cmd.Flags().StringVar(&input.ActivityNote, "activity", "", "what was done")
	cmd.Flags().StringVar(&input.Notes, "notes", "", "free notes")
	return cmd
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	var window string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored entries, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			out, err := app.RecordCLI.History(context.Background(), window)
			if err != nil {
				return err
			}
			if len(out.Records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no records")
				return nil
			}
			w := cmd.OutOrStdout()
			for _, r := range out.Records {
				_, _ = fmt.Fprintf(w, "%s\tpain=%d\tpills=%d\texercise=%s\thealthy=%s\n", r.Date, r.PainLevel, r.PillCount, r.ExerciseDone, r.FeelsHealthy)
				for _, line := range details(r) {
					_, _ = fmt.Fprintf(w, "\t%s\n", line)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&window, "window", "all", "range: 7d|30d|90d|all")
	return cmd
}

func details(r recorddto.RecordOutput) []string {
	var lines []string
	if r.Weather != "" {
		lines = append(lines, "weather: "+r.Weather)
	}
	if r.ActivityNote != "" {
		lines = append(lines, "activity: "+r.ActivityNote)
	}
	if r.Notes != "" {
		lines = append(lines, "notes: "+r.Notes)
	}
	return lines
}

func newChartCmd(flags *rootFlags) *cobra.Command {
	var variant, window, format string
	var inspect int
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Draw the history as a chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			if variant == "" {
				variant = app.Config.Chart.Variant
			}
			if window == "" {
				window = app.Config.Chart.Window
			}
			handler := app.ChartCLI
			switch format {
			case "terminal":
			case "chartjs":
				handler = app.ChartJSCLI
			default:
				return fmt.Errorf("unsupported format %q", format)
			}
			ctx := context.Background()
			history, err := app.RecordCLI.History(ctx, window)
			if err != nil {
				return err
			}
			out, err := handler.Render(ctx, history.Records, variant, inspect)
			if err != nil {
				return err
			}
			defer handler.Teardown()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Output)
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "chart variant: line|combo")
	cmd.Flags().StringVar(&window, "window", "", "range: 7d|30d|90d|all")
	cmd.Flags().StringVar(&format, "format", "terminal", "output: terminal|chartjs")
	cmd.Flags().IntVar(&inspect, "inspect", -1, "index of the point whose details are shown (negative = newest)")
	return cmd
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	var path, window string
	cmd := &cobra.Command{
		Use:   "export --out <file.xlsx>",
		Short: "Export the history to an xlsx workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(path) == "" {
				return fmt.Errorf("--out is required")
			}
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			out, err := app.RecordCLI.Export(context.Background(), path, window)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", out.Count, out.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "out", "", "output workbook path")
	cmd.Flags().StringVar(&window, "window", "all", "range: 7d|30d|90d|all")
	return cmd
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive form and chart",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}
