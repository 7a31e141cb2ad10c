// Package validator checks a generated gmdoc document for structural
// problems without trusting the code that produced it.
package validator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// document mirrors manual.Program with links kept as plain strings so a
// malformed link is reported instead of failing the decode.
type document struct {
	Functions *[]function `yaml:"functions" validate:"required,dive"`
	Variables *[]variable `yaml:"variables" validate:"required,dive"`
	Constants *[]constant `yaml:"constants" validate:"required,dive"`
}

type function struct {
	Name       string      `yaml:"name" validate:"required"`
	Parameters []parameter `yaml:"parameters" validate:"dive"`
	Returns    string      `yaml:"returns" validate:"required"`
	Link       *string     `yaml:"link" validate:"omitempty,url"`
}

type parameter struct {
	Name string `yaml:"parameter_name" validate:"required"`
	Type string `yaml:"gm_type" validate:"required"`
}

type variable struct {
	Name    string  `yaml:"name" validate:"required"`
	Returns string  `yaml:"returns" validate:"required"`
	Link    *string `yaml:"link" validate:"omitempty,url"`
}

type constant struct {
	Name    string  `yaml:"name" validate:"required"`
	Returns string  `yaml:"returns" validate:"required"`
	Link    *string `yaml:"link" validate:"omitempty,url"`
}

// Summary counts the records of a valid document.
type Summary struct {
	Functions  int
	Parameters int
	Variables  int
	Constants  int
	Linked     int
}

var validate = validator.New()

// ValidateFile reads a JSON or YAML document from filename and checks it.
func ValidateFile(filename string) (*Summary, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Validate(data)
}

// Validate checks an encoded document. JSON is accepted as YAML.
func Validate(data []byte) (*Summary, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document as YAML or JSON: %w", err)
	}

	if err := validate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, describe(verrs)
		}
		return nil, err
	}

	summary := &Summary{
		Functions: len(*doc.Functions),
		Variables: len(*doc.Variables),
		Constants: len(*doc.Constants),
	}
	for _, fn := range *doc.Functions {
		summary.Parameters += len(fn.Parameters)
		if fn.Link != nil {
			summary.Linked++
		}
	}
	for _, v := range *doc.Variables {
		if v.Link != nil {
			summary.Linked++
		}
	}
	for _, c := range *doc.Constants {
		if c.Link != nil {
			summary.Linked++
		}
	}
	return summary, nil
}

func describe(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "document.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s is not a valid url: %v", field, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("document validation failed: %s", strings.Join(msgs, "; "))
}
