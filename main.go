package main

import (
	"flag"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/replbox/repline/repl"
	"github.com/replbox/repline/terminal"
)

const name = "repline"

const version = "0.1.0"

type flags struct {
	prompt      string
	quiet       bool
	evalFlag    string
	showVersion bool
}

func parseFlags() *flags {
	var f flags
	flag.StringVar(&f.prompt, "prompt", "", "Prompt string (overrides config)")
	flag.BoolVar(&f.quiet, "quiet", false, "Suppress evaluation results")
	flag.StringVar(&f.evalFlag, "eval", "", "Evaluate the given line and exit")
	flag.BoolVar(&f.showVersion, "v", false, "Show version")
	flag.Parse()
	return &f
}

// configDir resolves the per-user config directory, falling back to
// ~/.config when the platform default is unavailable.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		u, uerr := user.Current()
		if uerr != nil {
			return ""
		}
		dir = filepath.Join(u.HomeDir, ".config")
	}
	return filepath.Join(dir, name)
}

func run() error {
	f := parseFlags()
	if f.showVersion {
		fmt.Println(name + " " + version)
		return nil
	}

	cfg := defaultConfig()
	if dir := configDir(); dir != "" {
		loaded, err := loadConfig(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		} else {
			cfg = loaded
		}
	}
	if f.prompt != "" {
		cfg.Prompt = f.prompt
	}
	if f.quiet {
		cfg.Quiet = true
	}

	ev := newEvaluator()

	if f.evalFlag != "" {
		result, err := ev.Eval(f.evalFlag)
		if err != nil {
			return err
		}
		if result != "" && !cfg.Quiet {
			fmt.Println(result)
		}
		return nil
	}

	session, err := terminal.Open(os.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", repl.ErrInit, err)
	}
	defer session.Restore()

	ed := repl.New(repl.Config{
		Prompt:     cfg.Prompt,
		Input:      os.Stdin,
		Output:     os.Stdout,
		ErrOutput:  os.Stderr,
		Process:    ev.Eval,
		IsComplete: isComplete,
		Quiet:      cfg.Quiet,
	})
	return ed.Run()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
