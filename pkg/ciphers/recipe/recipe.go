// Package recipe stores named cipher pipelines as JSON or YAML files.
package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/registry"
)

// Recipe is a named, reusable pipeline.
type Recipe struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	Pipeline    registry.Pipeline `json:"pipeline" yaml:"pipeline"`
	CreatedAt   string            `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   string            `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Validate checks the recipe's structure and its pipeline against reg.
func (rc *Recipe) Validate(reg *registry.Registry) error {
	if rc == nil {
		return errors.New("nil recipe")
	}
	var errs []error
	if strings.TrimSpace(rc.Name) == "" {
		errs = append(errs, errors.New("recipe name cannot be empty"))
	}
	if err := rc.Pipeline.Validate(reg); err != nil {
		errs = append(errs, fmt.Errorf("pipeline: %w", err))
	}
	return errors.Join(errs...)
}

// Encrypt runs the recipe's pipeline forward.
func (rc *Recipe) Encrypt(ctx context.Context, reg *registry.Registry, input string) (string, error) {
	return rc.Pipeline.Execute(ctx, reg, input)
}

// Decrypt runs the reversed pipeline.
func (rc *Recipe) Decrypt(ctx context.Context, reg *registry.Registry, input string) (string, error) {
	rev, err := rc.Pipeline.Reverse(reg)
	if err != nil {
		return "", fmt.Errorf("reverse pipeline: %w", err)
	}
	return rev.Execute(ctx, reg, input)
}

// Format is the on-disk encoding of a recipe.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported recipe extension %q", filepath.Ext(path))
	}
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Recipe, error) {
	var rc Recipe
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &rc); err != nil {
			return nil, fmt.Errorf("unmarshal JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rc); err != nil {
			return nil, fmt.Errorf("unmarshal YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return &rc, nil
}

// Encode serializes rc in the given format.
func Encode(rc *Recipe, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(rc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal JSON: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(rc)
		if err != nil {
			return nil, fmt.Errorf("marshal YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// LoadFile reads a recipe from path. The path must stay inside the working
// directory.
func LoadFile(path string) (*Recipe, error) {
	absPath, err := SecurePath(path)
	if err != nil {
		return nil, fmt.Errorf("secure path: %w", err)
	}
	format, err := FormatOf(absPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by SecurePath
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(data, format)
}

// SecurePath returns path made absolute, or an error when it resolves to a
// location outside the current working directory. Recipe files named on the
// command line go through it before being read.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
