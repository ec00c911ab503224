package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/korowa-calc/korowa"
)

// Session keeps variables in a JSON file between runs. A disabled session
// holds nothing and never touches its file.
type Session struct {
	path    string
	enabled bool
}

type sessionFile struct {
	Version   string             `json:"version"`
	Variables map[string]float64 `json:"variables"`
}

// NewSession returns a session stored at path.
func NewSession(path string, enabled bool) *Session {
	return &Session{path: path, enabled: enabled}
}

// Enabled reports whether the session stores variables.
func (s *Session) Enabled() bool {
	return s.enabled
}

// Load returns the stored variables, creating an empty session file if there
// is none. It returns nil if the session is disabled.
func (s *Session) Load() (korowa.Vars, error) {
	if !s.enabled {
		return nil, nil
	}
	f, err := s.read()
	if err != nil {
		return korowa.Vars{}, err
	}
	return korowa.Vars(f.Variables), nil
}

// Save merges vars into the stored variables. Values that JSON cannot hold,
// i.e. NaN and infinities, are removed from the file instead.
func (s *Session) Save(vars korowa.Vars) error {
	return s.update(func(m map[string]float64) {
		for k, v := range vars {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				delete(m, k)
				continue
			}
			m[k] = v
		}
	})
}

// Remove deletes one stored variable.
func (s *Session) Remove(name string) error {
	return s.update(func(m map[string]float64) {
		delete(m, name)
	})
}

// Clear deletes all stored variables.
func (s *Session) Clear() error {
	return s.update(func(m map[string]float64) {
		for k := range m {
			delete(m, k)
		}
	})
}

func (s *Session) update(f func(map[string]float64)) error {
	if !s.enabled {
		return nil
	}
	sf, err := s.read()
	if err != nil {
		return err
	}
	f(sf.Variables)
	if err := writeJSON(s.path, sf); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// read loads the session file, creating it if it does not exist.
func (s *Session) read() (sessionFile, error) {
	sf := sessionFile{Version: fileVersion, Variables: make(map[string]float64)}
	b, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := writeJSON(s.path, sf); err != nil {
			return sf, fmt.Errorf("creating session: %w", err)
		}
		return sf, nil
	case err != nil:
		return sf, fmt.Errorf("reading session: %w", err)
	}
	if err := json.Unmarshal(b, &sf); err != nil {
		return sessionFile{Version: fileVersion, Variables: make(map[string]float64)}, fmt.Errorf("parsing session %s: %w", s.path, err)
	}
	if sf.Variables == nil {
		sf.Variables = make(map[string]float64)
	}
	return sf, nil
}
