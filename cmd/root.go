package cmd

import "encoding/json"
import "fmt"
import "log/slog"
import "os"

import "github.com/fatih/color"
import "github.com/k1LoW/errors"
import "github.com/mattn/go-colorable"
import slogmulti "github.com/samber/slog-multi"
import "github.com/spf13/cobra"

import "github.com/tinne26/asciipng"
import "github.com/tinne26/asciipng/internal/config"

// Set at build time with -ldflags.
var version = "dev"

var (
	debug bool
	sharp bool
)

// The latest records of the current run, as JSON lines, regardless of
// the stderr level. Dumped along the stack traces when a run fails with
// --debug.
var tb = newLatestLogs(maxLatestLogs)

var cyan = color.New(color.FgCyan).SprintFunc()

var rootCmd = &cobra.Command{
	Use:   "asciipng [OUTPUT_PATH]",
	Short: "asciipng renders the jellywatch ASCII header as a transparent PNG",
	Long: `asciipng renders the jellywatch ASCII header as a transparent PNG.

The image is written to OUTPUT_PATH, or to ` + config.DefaultOutputPath + `
when no path is given. Existing files are replaced; missing directories
are not created.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	Version:      version,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultOutputPath
		if len(args) > 0 {
			path = args[0]
		}
		opts := []asciipng.Option{asciipng.WithLogger(newLogger(debug))}
		if sharp {
			opts = append(opts, asciipng.WithSharpEdges())
		}
		width, height, err := asciipng.Render(asciipng.Header(), path, opts...)
		if err != nil {
			return err
		}
		cmd.Printf("Created %s\n", cyan(path))
		cmd.Printf("Dimensions: %dx%d\n", width, height)
		return nil
	},
}

type errorData struct {
	LatestLogs  []any  `json:"latest_logs"`
	StackTraces any    `json:"stack_traces"`
	Version     string `json:"version"`
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	tb.Reset()
	return slog.New(slogmulti.Fanout(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
		slog.NewJSONHandler(tb, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))
}

func newErrorData(err error) *errorData {
	var latestLogs []any
	for _, line := range tb.Lines() {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			latestLogs = append(latestLogs, line)
		} else {
			latestLogs = append(latestLogs, m)
		}
	}
	return &errorData{
		LatestLogs:  latestLogs,
		StackTraces: errors.StackTraces(err),
		Version:     version,
	}
}

func Execute() {
	rootCmd.SetOut(colorable.NewColorableStdout())
	rootCmd.SetErr(colorable.NewColorableStderr())
	if err := rootCmd.Execute(); err != nil {
		if debug {
			b, err := json.MarshalIndent(newErrorData(err), "", "  ")
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
			} else {
				_, _ = fmt.Fprintf(os.Stderr, "%s\n", b)
			}
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&debug, "debug", "", false, "log font resolution to stderr, and dump logs and stack traces on failure")
	rootCmd.Flags().BoolVarP(&sharp, "sharp", "", false, "disable antialiasing")
}
