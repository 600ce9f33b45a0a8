// Momo is a rule-rewriting sokoban puzzle played in the terminal.
// Usage: momo [--levels <dir>] [--plain] [--script <file>] [--trace] [--debug] [--list] [level]
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	momocli "github.com/rschwa6308/Momo-Is-You/cli"
	"github.com/rschwa6308/Momo-Is-You/config"
	"github.com/rschwa6308/Momo-Is-You/engine"
	"github.com/rschwa6308/Momo-Is-You/loader"
	"github.com/rschwa6308/Momo-Is-You/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// A missing .env file is fine; anything else is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newCommand(cfg).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newCommand builds the root command. Environment settings become flag
// defaults so flags win over them.
func newCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:      "momo",
		Usage:     "push words around to change the rules",
		Version:   fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		ArgsUsage: "[level name or .lvl/.lua file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "levels",
				Aliases: []string{"d"},
				Usage:   "directory of .lvl and .lua levels",
				Value:   cfg.LevelsDir,
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "use the line-oriented interface instead of the TUI",
				Value: cfg.Plain,
			},
			&cli.StringFlag{
				Name:  "script",
				Usage: "play commands from `FILE` and echo them (implies --plain)",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print the events of every turn",
				Value: cfg.Trace,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: cfg.LogLevel,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "shorthand for --log-level debug",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "list the levels found and exit",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logLevel, err := config.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return err
	}
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if cmd.Bool("list") {
		levels, err := loader.Load(cmd.String("levels"))
		if err != nil {
			return err
		}
		for _, name := range loader.Names(levels) {
			fmt.Fprintln(cmd.Writer, name)
		}
		return nil
	}

	lvl, err := pickLevel(cmd.String("levels"), cmd.Args().First())
	if err != nil {
		return err
	}
	logger.Debug("level loaded", "name", lvl.Name, "path", lvl.Path)
	warnings, _ := loader.Validate(lvl.Board)
	for _, w := range warnings {
		logger.Warn("level check", "name", lvl.Name, "warning", w)
	}

	level, err := engine.New(lvl.Board, engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("%s: %w", lvl.Path, err)
	}

	// Script mode: open file, force plain, echo commands.
	if script := cmd.String("script"); script != "" {
		f, err := os.Open(script)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := momocli.New(level, lvl.Name)
		c.In = f
		c.Out = cmd.Writer
		c.EchoInput = true
		c.Trace = cmd.Bool("trace")
		c.Run()
		return nil
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if cmd.Bool("plain") || !isTerminal() {
		c := momocli.New(level, lvl.Name)
		c.Out = cmd.Writer
		c.Trace = cmd.Bool("trace")
		c.Run()
		return nil
	}

	return tui.Run(level, lvl.Name)
}

// pickLevel resolves the level argument. A path ending in .lvl or .lua is
// read directly; otherwise the name is looked up in dir, and an empty name
// picks the first level there.
func pickLevel(dir, arg string) (loader.Level, error) {
	if ext := filepath.Ext(arg); ext == loader.Ext || ext == loader.ScriptExt {
		b, err := loader.LoadFile(arg)
		if err != nil {
			return loader.Level{}, err
		}
		name := strings.TrimSuffix(filepath.Base(arg), ext)
		return loader.Level{Name: name, Path: arg, Board: b}, nil
	}

	levels, err := loader.Load(dir)
	if err != nil {
		return loader.Level{}, err
	}
	if arg == "" {
		return levels[0], nil
	}
	lvl, ok := loader.Find(levels, arg)
	if !ok {
		return loader.Level{}, fmt.Errorf("no level named %q in %s (have: %s)",
			arg, dir, strings.Join(loader.Names(levels), ", "))
	}
	return lvl, nil
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
