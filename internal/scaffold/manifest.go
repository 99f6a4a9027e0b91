package scaffold

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Project describes one project to generate inside the monorepo
type Project struct {
	Name     string `yaml:"name"`
	Language string `yaml:"language"`
}

// Manifest describes the monorepo layout to scaffold
type Manifest struct {
	Name        string    `yaml:"name"`
	Author      string    `yaml:"author"`
	License     string    `yaml:"license"`
	Projects    []Project `yaml:"projects"`
	DocSections []string  `yaml:"doc_sections"`
}

// DefaultManifest returns the standard three-language monorepo layout
func DefaultManifest() *Manifest {
	return &Manifest{
		Name:    "monorepo",
		License: "MIT",
		Projects: []Project{
			{Name: "go_project", Language: "go"},
			{Name: "python_project", Language: "python"},
			{Name: "rust_project", Language: "rust"},
		},
		DocSections: []string{"manual", "auto", "assets"},
	}
}

// LoadManifest reads a YAML manifest, filling in defaults for fields the
// file leaves unset
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	defaults := DefaultManifest()
	if m.Name == "" {
		m.Name = defaults.Name
	}
	if m.License == "" {
		m.License = defaults.License
	}
	if len(m.Projects) == 0 {
		m.Projects = defaults.Projects
	}
	if len(m.DocSections) == 0 {
		m.DocSections = defaults.DocSections
	}

	for _, p := range m.Projects {
		if _, ok := stubs[p.Language]; !ok {
			return nil, fmt.Errorf("unsupported project language %q", p.Language)
		}
	}

	return m, nil
}
