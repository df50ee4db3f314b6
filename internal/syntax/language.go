package syntax

import (
	"path/filepath"
	"slices"
	"strings"
)

// LangConfig describes a language: how files are recognised and which text
// objects it supports.
type LangConfig struct {
	Name          string   `toml:"name" yaml:"name"`
	Extensions    []string `toml:"extensions" yaml:"extensions"`
	CommentTokens []string `toml:"comment_tokens" yaml:"comment_tokens"`
	// TextObjects restricts the object names served for this language.
	// Empty means every object the parser provides.
	TextObjects []string `toml:"text_objects" yaml:"text_objects"`
}

// Supports reports whether the language serves the named text object.
func (c *LangConfig) Supports(name string) bool {
	if c == nil {
		return false
	}
	if len(c.TextObjects) == 0 {
		return true
	}
	return slices.Contains(c.TextObjects, name)
}

// Matches reports whether path has one of the language's extensions.
func (c *LangConfig) Matches(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	for _, e := range c.Extensions {
		if strings.EqualFold(strings.TrimPrefix(e, "."), ext) {
			return true
		}
	}
	return false
}

// GoLanguage returns the built-in configuration for Go.
func GoLanguage() LangConfig {
	return LangConfig{
		Name:          "go",
		Extensions:    []string{"go"},
		CommentTokens: []string{"//"},
		TextObjects:   slices.Clone(ObjectNames),
	}
}
