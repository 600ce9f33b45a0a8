// Package cli provides a plain line-oriented front end: it reads typed
// commands, feeds them to a level and prints the board as text.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rschwa6308/Momo-Is-You/engine"
	"github.com/rschwa6308/Momo-Is-You/engine/events"
	"github.com/rschwa6308/Momo-Is-You/engine/parser"
	"github.com/rschwa6308/Momo-Is-You/loader"
	"github.com/rschwa6308/Momo-Is-You/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Level     *engine.Level
	Name      string // level name shown in the banner
	In        io.Reader
	Out       io.Writer
	ExportDir string // where /export writes relative paths
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)
	lastKeys  []types.Key
}

// New creates a CLI wired to the given level.
func New(level *engine.Level, name string) *CLI {
	return &CLI{
		Level:     level,
		Name:      name,
		In:        os.Stdin,
		Out:       os.Stdout,
		ExportDir: ".",
	}
}

// Run shows the board, then loops: prompt, input, dispatch, output. It
// returns when input runs out, on /quit, or once the level is won.
func (c *CLI) Run() {
	if c.Name != "" {
		c.printSystem("Level: " + c.Name)
	}
	c.printBoard()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			c.printLine("")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		var keys []types.Key
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if len(c.lastKeys) == 0 {
				c.printLine("Nothing to repeat.")
				continue
			}
			keys = c.lastKeys
		} else {
			var err error
			keys, err = parser.Parse(input)
			if err != nil {
				c.printSystem(fmt.Sprintf("%v. Type /help for available commands.", err))
				continue
			}
			c.lastKeys = keys
		}

		if c.play(keys) {
			c.printLine("You win!")
			return
		}
	}
}

// play feeds keys to the level and prints the board once afterwards.
// Returns true once the level is won; remaining keys are dropped.
func (c *CLI) play(keys []types.Key) bool {
	changed := false
	for _, k := range keys {
		res := c.Level.ProcessInput(k)
		if c.Trace {
			c.printTrace(k, res)
		}
		changed = changed || res.Changed
		if res.Won {
			c.printBoard()
			return true
		}
	}
	if changed {
		c.printBoard()
	} else {
		c.printLine("Nothing happens.")
	}
	return false
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/rules":
		c.cmdRules()

	case "/board":
		c.printBoard()

	case "/export":
		c.cmdExport(arg)

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /rules          Show the rules in force",
		"  /board          Show the board again",
		"  /export <file>  Save the current board as a .lvl file",
		"  /trace          Toggle per-turn event output",
		"  /quit           Exit",
		"  /help           Show this help",
		"",
		"Moves (several per line, a number repeats the one before it):",
		"  up (w, k)   down (s, j)   left (a, h)   right (d, l)",
		"  wait (.)    undo (u, z)   restart (r)",
		"  again (g)   Repeat your last line",
		"",
		"Level file keystrings:",
	}
	help = append(help, keystringLines()...)
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdRules() {
	rules := c.Level.Rules()
	c.printSystem(fmt.Sprintf("%d rule(s):", len(rules)))
	for _, r := range rules {
		c.printLine("  " + r.String())
	}
}

func (c *CLI) cmdExport(name string) {
	if name == "" {
		c.printSystem("Usage: /export <file>")
		return
	}
	if filepath.Ext(name) == "" {
		name += loader.Ext
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.ExportDir, name)
	}
	if err := loader.WriteLevelFile(path, c.Level.Board()); err != nil {
		c.printSystem(fmt.Sprintf("Export failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Board exported to %s.", path))
}

func (c *CLI) printTrace(k types.Key, res types.Result) {
	c.printSystem(fmt.Sprintf("[trace] %s: changed=%v won=%v events=%d",
		k, res.Changed, res.Won, len(res.Events)))
	for _, e := range res.Events {
		c.printSystem("[trace]   " + events.Describe(e))
	}
}

func (c *CLI) printBoard() {
	c.print(FormatBoard(c.Level.Board()))
	c.printSystem(fmt.Sprintf("Turn %d, %d undo step(s)", c.Level.Turn(), c.Level.HistoryLen()))
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
