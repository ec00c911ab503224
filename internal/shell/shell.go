// Package shell implements the interactive calculator: commands, base
// conversion, evaluation with persistent variables, and the transcript log.
package shell

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/korowa-calc/korowa"
)

// LineReader reads lines of input after showing a prompt. *liner.State
// satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// historian is implemented by line readers that keep a history.
type historian interface {
	AppendHistory(item string)
}

// Shell executes lines of calculator input and writes the results to an
// output. A Shell is not safe for concurrent use.
type Shell struct {
	opts    Options
	vars    korowa.Vars
	session *Session
	out     io.Writer
	color   *color.Color
	log     *logrus.Logger
	trans   *transcript
	words   []string

	// Echo prints the postfix form of each expression before its result.
	Echo bool
}

// New creates a shell and loads the variables stored in session. Problems
// with files are logged to log and do not prevent the shell from working.
// If log is nil, they are discarded.
func New(opts Options, session *Session, out io.Writer, log *logrus.Logger) *Shell {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	s := &Shell{
		opts:    opts,
		session: session,
		out:     out,
		color:   color.New(),
		log:     log,
		trans:   newTranscript(opts.LogFilePath, opts.LogTimeFormat),
		words:   vocabulary(),
	}
	if opts.EnableVariables {
		vars, err := session.Load()
		if err != nil {
			log.WithError(err).Warn("session variables not loaded")
		}
		if vars == nil {
			vars = korowa.Vars{}
		}
		s.vars = vars
	}
	if opts.LogEnabled {
		if err := s.trans.open(); err != nil {
			log.WithError(err).Warn("log disabled")
		}
	}
	return s
}

// vocabulary returns every word the shell understands, sorted.
func vocabulary() []string {
	w := korowa.Vocabulary()
	w = append(w, bases...)
	w = append(w, commands...)
	sort.Strings(w)
	return w
}

// DisableColor turns off colored output.
func (s *Shell) DisableColor() {
	s.color.Disable()
}

// Set defines a variable for the rest of the run. It fails if variables are
// disabled.
func (s *Shell) Set(name string, v float64) error {
	if s.vars == nil {
		return errors.New("variables disabled in config file")
	}
	s.vars[name] = v
	return nil
}

// Vars returns the variable table, or nil if variables are disabled.
func (s *Shell) Vars() korowa.Vars {
	return s.vars
}

// Welcome prints the banner and help, as configured.
func (s *Shell) Welcome() {
	if s.opts.ShowWelcomeScreen {
		fmt.Fprint(s.out, s.color.Yellow(welcomeBanner))
	}
	if s.opts.AlwaysShowHelp {
		s.help()
	}
}

// Goodbye prints the exit banner.
func (s *Shell) Goodbye() {
	fmt.Fprint(s.out, s.color.Yellow(exitBanner))
}

// Run executes lines from in until the exit command or the end of input.
// An interrupted prompt discards the line being edited.
func (s *Shell) Run(in LineReader) error {
	h, _ := in.(historian)
	for {
		line, err := in.Prompt(s.opts.InputSign)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}
		if h != nil && strings.TrimSpace(line) != "" {
			h.AppendHistory(line)
		}
		if !s.Exec(line) {
			return nil
		}
	}
}

// Exec executes one line of input. It returns false if the line is the exit
// command.
func (s *Shell) Exec(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
	case line == "exit":
		return false
	case line == "help":
		s.help()
	case line == "cls", line == "clear":
		fmt.Fprint(s.out, clearScreen)
		if s.opts.AlwaysShowHelp {
			s.help()
		}
	case line == "vars", line == "variables":
		s.listVars()
	case line == "cl vars", line == "clear variables":
		s.clearVars()
	case strings.HasPrefix(line, "rm "):
		s.removeVar(strings.TrimSpace(line[len("rm "):]))
	case line == "enable log":
		s.enableLog()
	case line == "disable log":
		s.disableLog()
	default:
		s.calculate(line)
	}
	return true
}

// Complete returns the completions of line for tab completion. The last
// word of line is completed against the shell's vocabulary.
func (s *Shell) Complete(line string) []string {
	i := strings.LastIndexFunc(line, func(r rune) bool {
		return !(r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	})
	if i >= 0 {
		_, n := utf8.DecodeRuneInString(line[i:])
		i += n
	} else {
		i = 0
	}
	head, word := line[:i], line[i:]
	if word == "" {
		return nil
	}
	var c []string
	for _, w := range s.words {
		if strings.HasPrefix(w, word) && w != word {
			c = append(c, head+w)
		}
	}
	return c
}

// Close closes the transcript log.
func (s *Shell) Close() error {
	return s.trans.close()
}

// calculate converts or evaluates an input line and prints the outcome.
func (s *Shell) calculate(line string) {
	if s.opts.EnableConverters {
		r, err := korowa.Convert(line)
		if korowa.KindOf(err) != korowa.Parsing {
			if err != nil {
				s.fail(line, err)
				return
			}
			s.result(line, r, s.color.Yellow)
			return
		}
	}

	if s.Echo || s.log.IsLevelEnabled(logrus.DebugLevel) {
		rpn, err := korowa.RPN(line)
		if err == nil {
			s.log.WithFields(logrus.Fields{"input": line, "postfix": rpn}).Debug("parsed")
			if s.Echo {
				fmt.Fprintln(s.out, s.color.Cyan(rpn))
			}
		}
	}

	var v float64
	var err error
	if s.vars != nil {
		v, err = korowa.Eval(line, s.vars)
	} else {
		v, err = korowa.EvalStateless(line)
	}
	if err != nil {
		s.fail(line, err)
		s.suggest(err)
		return
	}
	s.result(line, FormatNumber(v, s.opts.Precision, s.opts.SeparateThousands), s.color.Green)
	if s.vars != nil && strings.Contains(line, "=") {
		if err := s.session.Save(s.vars); err != nil {
			s.log.WithError(err).Warn("session not saved")
		}
	}
}

func (s *Shell) result(line, r string, paint func(interface{}, ...string) string) {
	fmt.Fprintf(s.out, "%s\n\n", paint(":: "+r))
	s.trans.record(line, ":: "+r)
}

func (s *Shell) fail(line string, err error) {
	msg := `Error occurred: "` + err.Error() + `"`
	fmt.Fprintf(s.out, "%s\n\n", s.color.Red(msg))
	s.trans.record(line, msg)
	s.log.WithError(err).WithField("kind", korowa.KindOf(err)).Debug("input rejected")
}

// suggest prints the closest known word to an unknown token.
func (s *Shell) suggest(err error) {
	var e *korowa.SyntaxError
	if !s.opts.EnableDidYouMean || !errors.As(err, &e) || e.Kind != korowa.UnknownToken || len(e.Params) == 0 {
		return
	}
	if w := Suggest(e.Params[0], s.words); w != "" {
		fmt.Fprintf(s.out, "Did you mean: %s?\n\n", s.color.Yellow(w))
	}
}

func (s *Shell) notice(format string, args ...interface{}) {
	fmt.Fprintf(s.out, "%s\n\n", s.color.Yellow(fmt.Sprintf(format, args...)))
}

// varsDisabled prints a notice and reports true if variables are disabled.
func (s *Shell) varsDisabled() bool {
	if s.vars == nil {
		s.notice("Variables disabled in config file")
		return true
	}
	return false
}

func (s *Shell) listVars() {
	if s.varsDisabled() {
		return
	}
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	tw := tabwriter.NewWriter(s.out, 0, 4, 4, ' ', 0)
	fmt.Fprint(tw, "(name)\t(value)\n")
	for _, k := range names {
		fmt.Fprintf(tw, "%s\t%s\n", k, FormatNumber(s.vars[k], s.opts.Precision, s.opts.SeparateThousands))
	}
	tw.Flush()
	fmt.Fprintln(s.out)
}

func (s *Shell) clearVars() {
	if s.varsDisabled() {
		return
	}
	for k := range s.vars {
		delete(s.vars, k)
	}
	if err := s.session.Clear(); err != nil {
		s.log.WithError(err).Warn("session not cleared")
	}
	s.notice("Variables: cleared")
}

func (s *Shell) removeVar(name string) {
	if s.varsDisabled() {
		return
	}
	v, ok := s.vars[name]
	if !ok {
		s.notice("Variable with name %s not found", name)
		return
	}
	delete(s.vars, name)
	if err := s.session.Remove(name); err != nil {
		s.log.WithError(err).Warn("variable not removed from session")
	}
	s.notice("Variable [%s = %s] removed", name, FormatNumber(v, s.opts.Precision, s.opts.SeparateThousands))
}

func (s *Shell) enableLog() {
	if err := s.trans.open(); err != nil {
		s.log.WithError(err).Warn("log not enabled")
		fmt.Fprintf(s.out, "%s\n\n", s.color.Red("Log: "+err.Error()))
		return
	}
	s.notice("Log: enabled (%s)", s.trans.name())
}

func (s *Shell) disableLog() {
	if err := s.trans.close(); err != nil {
		s.log.WithError(err).Warn("closing log")
	}
	s.notice("Log: disabled")
}
