// Package scaffold generates multi-language monorepo skeletons: per-project
// source trees with placeholder programs, documentation sections, and
// top-level metadata.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Report lists what Init created and what already existed
type Report struct {
	Created []string
	Skipped []string
}

// Init scaffolds the monorepo described by the manifest under root.
// Existing files and directories are never overwritten; they are recorded
// in the report instead.
func Init(root string, m *Manifest) (*Report, error) {
	if m == nil {
		m = DefaultManifest()
	}

	rep := &Report{}

	if err := rep.createDir(root); err != nil {
		return nil, err
	}

	if err := rep.createFile(filepath.Join(root, "README.md"), readmeContent(m)); err != nil {
		return nil, err
	}

	for _, p := range m.Projects {
		if err := rep.createProject(root, p); err != nil {
			return nil, err
		}
	}

	for _, section := range m.DocSections {
		if err := rep.createDir(filepath.Join(root, "docs", section)); err != nil {
			return nil, err
		}
	}
	if err := rep.createFile(filepath.Join(root, "docs", "index.md"), markdownPlaceholder("index")); err != nil {
		return nil, err
	}

	for _, dir := range []string{
		filepath.Join(root, "scripts", "utils"),
		filepath.Join(root, "tests", "unit"),
		filepath.Join(root, "tests", "integration"),
	} {
		if err := rep.createDir(dir); err != nil {
			return nil, err
		}
	}

	return rep, nil
}

func readmeContent(m *Manifest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\nGenerated by forge.\n\n## Projects\n\n", markdownTitle(m.Name))
	for _, p := range m.Projects {
		fmt.Fprintf(&b, "- `projects/%s` (%s)\n", p.Name, p.Language)
	}
	if m.Author != "" {
		fmt.Fprintf(&b, "\nMaintained by %s.\n", m.Author)
	}
	if m.License != "" {
		fmt.Fprintf(&b, "\n## License\n\n%s\n", m.License)
	}
	return b.String()
}

func (r *Report) createProject(root string, p Project) error {
	stub, ok := stubs[p.Language]
	if !ok {
		return fmt.Errorf("unsupported project language %q", p.Language)
	}

	projectRoot := filepath.Join(root, "projects", p.Name)
	for rel, content := range stub.Files {
		rel = strings.ReplaceAll(rel, "{project}", p.Name)
		content = strings.ReplaceAll(content, "{project}", p.Name)
		if err := r.createFile(filepath.Join(projectRoot, rel), content); err != nil {
			return err
		}
	}

	return r.createDir(filepath.Join(projectRoot, "tests"))
}

func (r *Report) createDir(path string) error {
	if _, err := os.Stat(path); err == nil {
		r.Skipped = append(r.Skipped, path)
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	r.Created = append(r.Created, path)
	return nil
}

func (r *Report) createFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		r.Skipped = append(r.Skipped, path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	r.Created = append(r.Created, path)
	return nil
}
