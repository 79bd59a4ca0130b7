// Copyright © 2026 The clang-complete authors

// Package repl implements an interactive explorer over a loaded candidate
// set. Every input line is treated as a prefix and answered with the lines
// an editor client would receive for it.
package repl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ergochat/readline"
	"github.com/luthersystems/clang-complete/completion"
	"github.com/luthersystems/clang-complete/display"
)

const commandPrefix = ":"

const help = `Enter a prefix to list matching completions.
Commands:
  :all      list every candidate (empty prefix)
  :count    show the number of loaded candidates
  :pretty   toggle highlighted display
  :help     show this message
  :quit     exit
`

type config struct {
	stdin       io.ReadCloser
	stdout      io.Writer
	printer     *completion.Printer
	display     *display.Renderer
	pretty      bool
	historyFile string
}

func newConfig(opts ...Option) *config {
	config := &config{
		historyFile: historyPath(),
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.stdout == nil {
		config.stdout = os.Stderr
	}
	if config.printer == nil {
		config.printer = completion.NewPrinter()
	}
	if config.display == nil {
		config.display = &display.Renderer{}
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStdout allows overriding the output of the REPL.
func WithStdout(stdout io.Writer) Option {
	return func(c *config) {
		c.stdout = stdout
	}
}

// WithPrinter sets the printer used for protocol output.
func WithPrinter(p *completion.Printer) Option {
	return func(c *config) {
		c.printer = p
	}
}

// WithDisplay sets the renderer used for pretty output and enables it when
// pretty is true.
func WithDisplay(r *display.Renderer, pretty bool) Option {
	return func(c *config) {
		c.display = r
		c.pretty = pretty
	}
}

// WithHistoryFile overrides the history location. An empty path disables
// history.
func WithHistoryFile(path string) Option {
	return func(c *config) {
		c.historyFile = path
	}
}

// explorer answers prefix queries against a fixed candidate set.
type explorer struct {
	cfg        *config
	candidates []completion.Candidate
}

// Run reads prefixes until EOF or :quit.
func Run(ctx context.Context, candidates []completion.Candidate, prompt string, opts ...Option) error {
	cfg := newConfig(opts...)
	ensureHistoryFilePermissions(cfg.historyFile)

	rlCfg := &readline.Config{
		Stdout:            cfg.stdout,
		Stderr:            cfg.stdout,
		Prompt:            prompt,
		HistoryFile:       cfg.historyFile,
		HistorySearchFold: true,
		AutoComplete:      newHeadCompleter(candidates),
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return errors.Wrap(err, "starting readline")
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	e := &explorer{cfg: cfg, candidates: candidates}
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return nil
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		quit, err := e.eval(ctx, string(line))
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (e *explorer) eval(ctx context.Context, line string) (bool, error) {
	if !strings.HasPrefix(line, commandPrefix) {
		return false, e.query(ctx, line)
	}
	out := e.cfg.stdout
	switch strings.TrimPrefix(line, commandPrefix) {
	case "q", "quit", "exit":
		return true, nil
	case "all":
		return false, e.query(ctx, "")
	case "count":
		_, err := fmt.Fprintf(out, "%d candidates loaded\n", len(e.candidates))
		return false, err
	case "pretty":
		e.cfg.pretty = !e.cfg.pretty
		state := "off"
		if e.cfg.pretty {
			state = "on"
		}
		_, err := fmt.Fprintf(out, "pretty display %s\n", state)
		return false, err
	case "help", "h", "?":
		_, err := io.WriteString(out, help)
		return false, err
	default:
		_, err := fmt.Fprintf(out, "unknown command %q (try :help)\n", line)
		return false, err
	}
}

func (e *explorer) query(ctx context.Context, prefix string) error {
	if e.cfg.pretty {
		_, err := e.cfg.display.Render(e.cfg.stdout, e.candidates, prefix, e.cfg.printer.MaxCompletions())
		return err
	}
	_, err := e.cfg.printer.Print(ctx, e.cfg.stdout, e.candidates, prefix)
	return err
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clang_complete_history")
}

// ensureHistoryFilePermissions creates the history file if needed and
// restricts it to the owner. Queries can reveal source identifiers.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0600) //nolint:gosec // path is the user's history file
	if err != nil {
		return
	}
	_ = f.Close()
	_ = os.Chmod(path, 0600)
}
