// Package planfile reads maintenance plan exports and writes work rule files.
package planfile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/alfredodrv/mwrgen/internal/maintenance"
)

const schemaURL = "https://mwrgen.schemas.local/plans.schema.json"

//go:embed plans.schema.json
var planSchema string

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ReadError reports an input file that is missing, unreadable or not JSON.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read input file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ValidationError reports input JSON that does not describe maintenance plans.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid maintenance plans in %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// WriteError reports an output file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write output file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(schemaURL, strings.NewReader(planSchema)); err != nil {
			compileErr = fmt.Errorf("failed to add plan schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("failed to compile plan schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// Load reads the plan list at path and checks it carries the fields rule
// generation needs.
func Load(path string) ([]maintenance.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return Decode(path, data)
}

// Decode parses a plan list. path is only used in error messages.
func Decode(path string, data []byte) ([]maintenance.Plan, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	sch, err := schema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, &ValidationError{Path: path, Err: err}
	}

	var plans []maintenance.Plan
	if err := json.Unmarshal(data, &plans); err != nil {
		return nil, &ValidationError{Path: path, Err: err}
	}
	return plans, nil
}

// Encode renders rules as a JSON array indented by two spaces.
func Encode(rules []maintenance.WorkRule) ([]byte, error) {
	if rules == nil {
		rules = []maintenance.WorkRule{}
	}
	return json.MarshalIndent(rules, "", "  ")
}

// Save writes rules to path, which is resolved against the working directory.
// The file is written to a temp file in the same directory and renamed into place.
func Save(path string, rules []maintenance.WorkRule) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	data, err := Encode(rules)
	if err != nil {
		return "", &WriteError{Path: absPath, Err: fmt.Errorf("failed to marshal rules: %w", err)}
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", absPath, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", &WriteError{Path: absPath, Err: err}
	}

	if err := os.Rename(tmpPath, absPath); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: absPath, Err: err}
	}

	return absPath, nil
}
