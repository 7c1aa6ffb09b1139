// Package main is the entry point for the subword motion tool.
//
// It reads text from a file, stdin, or the command line, applies a
// sub-word motion at a byte offset, and prints the resulting offset.
// It doubles as a test bench for keymap scripts via -script.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/subword/internal/config"
	"github.com/dshills/subword/internal/config/loader"
	"github.com/dshills/subword/internal/config/watcher"
	"github.com/dshills/subword/internal/engine/buffer"
	"github.com/dshills/subword/internal/engine/subword"
	"github.com/dshills/subword/internal/input/vim"
	"github.com/dshills/subword/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// options holds the parsed command line.
type options struct {
	motion     string
	expr       string
	offset     int64
	count      int
	configPath string
	format     string
	watch      bool
	scriptPath string
	args       []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loader.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if opts.scriptPath != "" {
		return runScript(opts.scriptPath)
	}

	if opts.watch {
		if opts.configPath == "" {
			fmt.Fprintln(os.Stderr, "Error: -watch requires -config")
			return 1
		}
		return runWatch(opts, cfg)
	}

	return runMotion(opts, cfg, os.Stdout)
}

// runMotion executes one motion against the input text and prints the
// result.
func runMotion(opts options, cfg config.Config, out io.Writer) int {
	text, err := readInput(opts.args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	action, count, err := resolveMotion(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	count = vim.CapCount(count, cfg.Motion.CountCap)

	res, err := scanAction(action, text, opts.offset, count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := writeResult(out, cfg.Output.Format, res); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// resolveMotion determines the action name and count from either -expr
// or -motion/-count.
func resolveMotion(opts options) (action string, count int, err error) {
	if opts.expr != "" {
		c, m, err := vim.ParseExpr(opts.expr)
		if err != nil {
			return "", 0, err
		}
		return m.Action, c, nil
	}

	m := vim.GetMotionByName(opts.motion)
	if m == nil {
		return "", 0, fmt.Errorf("unknown motion %q (want subwordForward, subwordBackward, or subwordEnd)", opts.motion)
	}
	return m.Action, opts.count, nil
}

// scanAction dispatches the action name to the scanner.
func scanAction(action, text string, offset int64, count int) (subword.Result, error) {
	switch action {
	case "cursor.subwordForward":
		return subword.NextStart(text, buffer.ByteOffset(offset), count)
	case "cursor.subwordBackward":
		return subword.PrevStart(text, buffer.ByteOffset(offset), count)
	case "cursor.subwordEndForward":
		return subword.NextEnd(text, buffer.ByteOffset(offset), count)
	default:
		return subword.Result{}, fmt.Errorf("unknown action %q", action)
	}
}

// writeResult prints the scan result in the configured format.
func writeResult(out io.Writer, format string, res subword.Result) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(out)
		return enc.Encode(struct {
			Offset  int64 `json:"offset"`
			Clamped bool  `json:"clamped"`
		}{Offset: res.Offset, Clamped: res.Clamped})
	}

	if res.Clamped {
		_, err := fmt.Fprintf(out, "%d (clamped)\n", res.Offset)
		return err
	}
	_, err := fmt.Fprintf(out, "%d\n", res.Offset)
	return err
}

// readInput returns the text to scan: the first positional argument is
// a file path, "-" or no argument means stdin.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// runScript executes a Lua file with the subword module available.
func runScript(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", path, err)
		return 1
	}

	eng := script.New()
	defer eng.Close()

	if err := eng.Run(string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runWatch re-runs the motion whenever the config file changes, until
// interrupted.
func runWatch(opts options, cfg config.Config) int {
	w, err := watcher.New(opts.configPath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	w.OnChange(func(next config.Config, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "reload failed: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "config reloaded from %s\n", w.Path())
		runMotion(opts, next, os.Stdout)
	})

	if code := runMotion(opts, cfg, os.Stdout); code != 0 {
		return code
	}

	w.Start()
	defer w.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.motion, "motion", "subwordForward", "Motion name (subwordForward, subwordBackward, subwordEnd)")
	flag.StringVar(&opts.motion, "m", "subwordForward", "Motion name (shorthand)")
	flag.StringVar(&opts.expr, "expr", "", "Vim-style expression, e.g. \"3,w\" (overrides -motion and -count)")
	flag.Int64Var(&opts.offset, "offset", 0, "Byte offset to start from")
	flag.IntVar(&opts.count, "count", 1, "Repeat count")
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (TOML or YAML)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.format, "format", "", "Output format: text or json (overrides config)")
	flag.BoolVar(&opts.watch, "watch", false, "Re-run when the config file changes")
	flag.StringVar(&opts.scriptPath, "script", "", "Run a Lua script with the subword module loaded")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "subword - identifier-aware cursor motion\n\n")
		fmt.Fprintf(os.Stderr, "Usage: subword [options] [file|-]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  echo getUserName | subword -offset 0          Next sub-word start\n")
		fmt.Fprintf(os.Stderr, "  subword -expr 3,w -offset 0 file.txt          Three starts forward\n")
		fmt.Fprintf(os.Stderr, "  subword -m subwordEnd -format json file.txt   End motion as JSON\n")
		fmt.Fprintf(os.Stderr, "  subword -script keymap.lua                    Run a Lua script\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("subword %s (%s)\n", version, commit)
		os.Exit(0)
	}

	opts.args = flag.Args()
	return opts
}
