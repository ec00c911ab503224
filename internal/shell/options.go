package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// fileVersion is written to new config and session files.
const fileVersion = "0.2.0"

// Options are the shell settings kept in the config file.
type Options struct {
	Version           string `json:"version"`
	AlwaysShowHelp    bool   `json:"alwaysShowHelp"`
	ShowWelcomeScreen bool   `json:"showWelcomeScreen"`
	EnableVariables   bool   `json:"enableVariables"`
	EnableConverters  bool   `json:"enableConverters"`
	EnableDidYouMean  bool   `json:"enableDidYouMean"`
	SeparateThousands bool   `json:"separateThousands"`
	// Precision is the number of digits printed after the point.
	Precision int    `json:"precision"`
	InputSign string `json:"inputSign"`
	// LogEnabled starts the shell with the transcript log open.
	LogEnabled  bool   `json:"logEnabled"`
	LogFilePath string `json:"logFilePath"`
	// LogTimeFormat is the time layout of transcript entries, in the
	// notation of package time.
	LogTimeFormat string `json:"logTimeFormat"`
}

// DefaultOptions returns the settings used when the config file is missing.
func DefaultOptions() Options {
	return Options{
		Version:           fileVersion,
		AlwaysShowHelp:    true,
		ShowWelcomeScreen: true,
		EnableVariables:   true,
		EnableConverters:  true,
		EnableDidYouMean:  true,
		SeparateThousands: true,
		Precision:         10,
		InputSign:         "> ",
		LogEnabled:        false,
		LogFilePath:       "logs/",
		LogTimeFormat:     "15:04:05",
	}
}

// LoadOptions reads the config file at path. Keys absent from the file keep
// their default values. If the file does not exist, it is created holding
// the defaults. On error the defaults are returned along with it.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := writeJSON(path, opts); err != nil {
			return opts, fmt.Errorf("creating config: %w", err)
		}
		return opts, nil
	case err != nil:
		return opts, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(b, &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if opts.Precision < 0 {
		opts.Precision = 0
	}
	return opts, nil
}

// writeJSON replaces the file at path with the indented encoding of v.
func writeJSON(path string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
