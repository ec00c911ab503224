package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/korowa-calc/korowa"
	"github.com/korowa-calc/korowa/internal/shell"
)

const historyFile = ".korowa_history"

func main() {
	var (
		inname, confname, sessname string
		with                       [][2]string
		prec                       int
		echo, nocolor, verbose     bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file with one expression per line, - for stdin")
	flag.StringVar(&confname, "config", "korowa_config.json", "config file, created if missing")
	flag.StringVar(&sessname, "session", "korowa_session.json", "session file holding variables")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.IntVar(&prec, "p", -1, "digits after the point (default from config)")
	flag.BoolVar(&echo, "echo", false, "print the postfix form of expressions")
	flag.BoolVar(&nocolor, "no-color", false, "disable colored output")
	flag.BoolVar(&verbose, "v", false, "log debugging information")
	flag.Parse()

	diag := logrus.New()
	diag.SetOutput(colorable.NewColorableStderr())
	diag.SetLevel(logrus.WarnLevel)
	if verbose {
		diag.SetLevel(logrus.DebugLevel)
	}

	opts, err := shell.LoadOptions(confname)
	if err != nil {
		diag.WithError(err).Warn("using default options")
	}
	if prec >= 0 {
		opts.Precision = prec
	}

	sh := shell.New(opts, shell.NewSession(sessname, opts.EnableVariables), colorable.NewColorableStdout(), diag)
	sh.Echo = echo
	if nocolor || !terminal(os.Stdout) {
		sh.DisableColor()
	}
	for _, d := range with {
		nm, vl := d[0], d[1]
		r, err := korowa.EvalStateless(vl)
		if err == nil {
			err = sh.Set(nm, r)
		}
		if err != nil {
			sh.Close()
			diag.Fatalf("setting %s: %v", nm, err)
		}
	}

	switch {
	case inname != "" || flag.NArg() > 0:
		err = batch(sh, inname, flag.Args())
	case !terminal(os.Stdin):
		err = batch(sh, "-", nil)
	default:
		err = repl(sh)
	}
	sh.Close()
	if err != nil {
		diag.Fatal(err)
	}
}

// batch executes the lines of the input file, then each argument.
func batch(sh *shell.Shell, inname string, args []string) error {
	if inname != "" {
		f := os.Stdin
		if inname != "-" {
			in, err := os.Open(inname)
			if err != nil {
				return err
			}
			defer in.Close()
			f = in
		}
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if !sh.Exec(sc.Text()) {
				return nil
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading %s: %w", inname, err)
		}
	}
	for _, arg := range args {
		if !sh.Exec(arg) {
			return nil
		}
	}
	return nil
}

// repl runs the interactive shell with line editing and history.
func repl(sh *shell.Shell) error {
	sh.Welcome()

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(sh.Complete)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		sh.Close()
		os.Exit(130)
	}()

	err := sh.Run(ln)
	sh.Goodbye()
	return err
}

func terminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
