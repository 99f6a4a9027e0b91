// Package stats walks a repository tree and summarizes file and line
// counts per extension.
package stats

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ExtStat holds per-extension counters
type ExtStat struct {
	Count int `json:"count"`
	Lines int `json:"lines"`
}

// Snapshot is the result of analyzing a repository
type Snapshot struct {
	ByExtension map[string]ExtStat `json:"by_extension"`
	TotalFiles  int                `json:"total_files"`
	TotalLines  int                `json:"total_lines"`
	GeneratedAt string             `json:"generated_at"`
}

// DefaultIgnoreDirs are directory names skipped during collection
var DefaultIgnoreDirs = []string{"node_modules", "target", "__pycache__", ".git"}

// Collect walks root and builds a snapshot. Hidden files and directories
// are skipped, as are the given ignore directories. Files that cannot be
// read count as zero lines.
func Collect(root string, ignoreDirs []string) (*Snapshot, error) {
	if ignoreDirs == nil {
		ignoreDirs = DefaultIgnoreDirs
	}
	ignored := make(map[string]struct{}, len(ignoreDirs))
	for _, d := range ignoreDirs {
		ignored[d] = struct{}{}
	}

	snap := &Snapshot{
		ByExtension: make(map[string]ExtStat),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped
		}
		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if _, skip := ignored[name]; skip {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		if ext == "" {
			ext = "no_extension"
		}

		lines := countLines(path)

		s := snap.ByExtension[ext]
		s.Count++
		s.Lines += lines
		snap.ByExtension[ext] = s
		snap.TotalFiles++
		snap.TotalLines += lines
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return snap, nil
}

func countLines(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	r := bufio.NewReader(f)
	lines := 0
	sawData := false
	for {
		chunk, err := r.ReadBytes('\n')
		if len(chunk) > 0 {
			sawData = true
			if chunk[len(chunk)-1] == '\n' {
				lines++
				sawData = false
			}
		}
		if err != nil {
			break
		}
	}
	// A trailing line without a newline still counts
	if sawData {
		lines++
	}
	return lines
}

// WriteJSON saves the snapshot to path as indented JSON
func (s *Snapshot) WriteJSON(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Extensions returns extension names ordered by line count descending,
// ties broken alphabetically
func (s *Snapshot) Extensions() []string {
	names := make([]string, 0, len(s.ByExtension))
	for name := range s.ByExtension {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := s.ByExtension[names[i]], s.ByExtension[names[j]]
		if a.Lines != b.Lines {
			return a.Lines > b.Lines
		}
		return names[i] < names[j]
	})
	return names
}

// Report writes a human-readable summary to w
func (s *Snapshot) Report(w io.Writer) {
	fmt.Fprintln(w, "Repository Summary:")
	fmt.Fprintln(w, "-------------------")
	fmt.Fprintf(w, "Total files: %d\n", s.TotalFiles)
	fmt.Fprintf(w, "Total lines: %s\n", humanize.Comma(int64(s.TotalLines)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Files by extension:")
	for _, ext := range s.Extensions() {
		data := s.ByExtension[ext]
		fmt.Fprintf(w, "  .%-10s %5d files, %9s lines\n", ext, data.Count, humanize.Comma(int64(data.Lines)))
	}
}
