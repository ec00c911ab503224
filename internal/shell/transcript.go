package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// transcript writes each input line and its outcome to a log file. It is
// closed until open succeeds.
type transcript struct {
	dir    string
	layout string
	now    func() time.Time

	log  *logrus.Logger
	file *os.File
}

func newTranscript(dir, layout string) *transcript {
	if dir == "" {
		dir = "."
	}
	return &transcript{dir: dir, layout: layout, now: time.Now}
}

// open creates a new log file named after the current time in the
// transcript's directory. It does nothing if the transcript is already open.
func (t *transcript) open() error {
	if t.file != nil {
		return nil
	}
	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	name := filepath.Join(t.dir, t.now().Format("korowa (02.01.2006 - 15.04.05).log"))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	l := logrus.New()
	l.SetOutput(f)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: t.layout,
	})
	t.log, t.file = l, f
	return nil
}

func (t *transcript) name() string {
	if t.file == nil {
		return ""
	}
	return t.file.Name()
}

// record logs an input line and the text shown for it.
func (t *transcript) record(input, result string) {
	if t.log == nil {
		return
	}
	t.log.WithField("input", input).Info(result)
}

func (t *transcript) close() error {
	if t.file == nil {
		return nil
	}
	err := t.file.Close()
	t.log, t.file = nil, nil
	return err
}
