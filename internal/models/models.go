// Package models resolves model-name completion and selection for an
// interactive shell. Every function takes the active and pinned model
// names explicitly; nothing here reads process-wide state, so the shell
// layer stays testable without a running agent.
package models

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type (
	// ModelConfig describes one entry in the model catalog.
	ModelConfig struct {
		Provider      string `yaml:"provider"`
		ContextLength int    `yaml:"contextLength,omitempty"`
	}

	// Catalog maps model names to their configuration.
	Catalog map[string]ModelConfig
)

// LoadCatalog reads a YAML model catalog from disk.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model catalog: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse model catalog: %w", err)
	}

	return catalog, nil
}

// Names returns the catalog's model names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Status describes how a model name relates to the caller's active
// selection and per-agent pin. Used as completion metadata.
func Status(name, active, pinned string) string {
	switch {
	case name == active && name == pinned:
		return "Model (selected + pinned)"
	case name == active:
		return "Model (selected)"
	case name == pinned:
		return "Model (pinned to agent)"
	default:
		return "Model"
	}
}

// Complete returns the names starting with prefix, preserving input order.
// An empty prefix matches everything.
func Complete(prefix string, names []string) []string {
	var completions []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, name)
		}
	}
	return completions
}

// ParseModelCommand recognizes a leading "/model <name>" or "/m <name>"
// in the input and splits it into the selected model and the remaining
// prompt text. Known names are tried longest first so a name that is a
// prefix of another never wins by accident. Unrecognized input returns
// ok=false; nothing is swallowed silently.
func ParseModelCommand(input string, names []string) (model, rest string, ok bool) {
	content := strings.TrimSpace(input)

	var after string
	switch {
	case strings.HasPrefix(content, "/model "):
		after = strings.TrimSpace(content[len("/model "):])
	case strings.HasPrefix(content, "/m "):
		after = strings.TrimSpace(content[len("/m "):])
	default:
		return "", "", false
	}

	sorted := append([]string{}, names...)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	for _, name := range sorted {
		if after == name {
			return name, "", true
		}
		if strings.HasPrefix(after, name+" ") {
			return name, strings.TrimSpace(after[len(name):]), true
		}
	}

	return "", "", false
}
