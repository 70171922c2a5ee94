// Package cli provides the ggchart command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	chart "github.com/gogpu/gg-chart"
	"github.com/gogpu/gg-chart/recording"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	verbose bool
	outDir  string
	surface string
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "ggchart",
		Short: "Render charts to PNG or SVG",
		Long: `ggchart computes a chart from a YAML config and flags, then writes it
as an image. The output format follows the file extension: ".svg" writes
SVG, anything else writes PNG.

Flags override values read from --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.installLogger()
		},
	}

	pf := app.root.PersistentFlags()
	pf.BoolVarP(&app.verbose, "verbose", "v", false, "Log chart computation details")
	pf.StringVar(&app.outDir, "out-dir", "", "Directory for synthesized output paths (default: system temp dir)")
	pf.StringVar(&app.surface, "surface", "", "Force an output surface instead of choosing by extension")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newSurfacesCmd(),
		app.newFunctionCmd(),
		app.newPolarCmd(),
		app.newLineCmd(),
		app.newPieCmd(),
		app.newBarCmd(),
		app.newScatterCmd(),
		app.newNormalCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) installLogger() {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	chart.SetLogger(slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level})))
}

func (a *App) renderer() *chart.Renderer {
	var opts []chart.Option
	if a.outDir != "" {
		opts = append(opts, chart.WithBaseDir(a.outDir))
	}
	if a.surface != "" {
		opts = append(opts, chart.WithSurface(a.surface))
	}
	return chart.NewRenderer(opts...)
}

// report prints the written path.
func (a *App) report(path string, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, path)
	return nil
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "ggchart version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
		},
	}
}

func (a *App) newSurfacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "surfaces",
		Short: "List output surfaces and the extensions they encode",
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range recording.Formats() {
				fmt.Fprintf(a.stdout, "%-8s %s\n", f.Name, f.Extension)
			}
		},
	}
}
