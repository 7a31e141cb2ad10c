// Package manual defines the normalized model of the GameMaker built-in
// surface: functions, variables and constants as documented in the manual.
package manual

import (
	"fmt"
	"net/url"
)

// Program is the root of the extracted model.
type Program struct {
	Functions []Function `json:"functions" yaml:"functions"`
	Variables []Variable `json:"variables" yaml:"variables"`
	Constants []Constant `json:"constants" yaml:"constants"`
}

// NewProgram returns a Program with empty, non-nil sequences so that it
// encodes as [] rather than null.
func NewProgram() *Program {
	return &Program{
		Functions: []Function{},
		Variables: []Variable{},
		Constants: []Constant{},
	}
}

// Function is a built-in function.
type Function struct {
	Name        string      `json:"name" yaml:"name"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters"`
	Description string      `json:"description" yaml:"description"`
	Returns     string      `json:"returns" yaml:"returns"`
	Deprecated  bool        `json:"deprecated" yaml:"deprecated"`
	Pure        bool        `json:"pure" yaml:"pure"`
	Link        *URL        `json:"link" yaml:"link"`
}

// Variable is a built-in variable, either global or scoped to an instance.
type Variable struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Deprecated  bool   `json:"deprecated" yaml:"deprecated"`
	Get         bool   `json:"get" yaml:"get"`
	Set         bool   `json:"set" yaml:"set"`
	Instance    bool   `json:"instance" yaml:"instance"`
	Returns     string `json:"returns" yaml:"returns"`
	Link        *URL   `json:"link" yaml:"link"`
}

// Parameter is one declared parameter of a Function.
type Parameter struct {
	Name        string `json:"parameter_name" yaml:"parameter_name"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"gm_type" yaml:"gm_type"`
	Optional    bool   `json:"optional" yaml:"optional"`
}

// Constant is a built-in constant. Class is the namespace it belongs to,
// if any.
type Constant struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Returns     string  `json:"returns" yaml:"returns"`
	Class       *string `json:"class" yaml:"class"`
	Deprecated  bool    `json:"deprecated" yaml:"deprecated"`
	Link        *URL    `json:"link" yaml:"link"`
}

// URL is an absolute documentation link. It encodes as its string form.
type URL struct {
	url.URL
}

// ParseURL parses raw and requires it to be absolute with a host.
func ParseURL(raw string) (*URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("not an absolute url: %q", raw)
	}
	return &URL{URL: *u}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := ParseURL(string(text))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
