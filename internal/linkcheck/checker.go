// Package linkcheck validates links in markdown documentation: relative
// links must resolve to existing files and external links must answer
// with a non-error status.
package linkcheck

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Issue is a single broken link
type Issue struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Link   string `json:"link"`
	Reason string `json:"reason"`
}

// Options controls a check run
type Options struct {
	Timeout      time.Duration
	Concurrency  int
	SkipExternal bool
}

// Result summarizes a check run
type Result struct {
	FilesScanned int     `json:"files_scanned"`
	LinksChecked int     `json:"links_checked"`
	Issues       []Issue `json:"issues"`
}

// OK reports whether the run found no broken links
func (r *Result) OK() bool {
	return len(r.Issues) == 0
}

var linkRe = regexp.MustCompile(`\[[^\]]*\]\(([^)]+)\)`)

type foundLink struct {
	file string
	line int
	link string
}

// Check scans markdown files under root and validates every link found
func Check(ctx context.Context, root string, opts Options) (*Result, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}

	res := &Result{}
	var external []foundLink

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(name), ".md") {
			return nil
		}

		res.FilesScanned++
		links, err := scanFile(path)
		if err != nil {
			return err
		}

		for _, l := range links {
			target := l.link
			switch {
			case strings.HasPrefix(target, "http://"), strings.HasPrefix(target, "https://"):
				res.LinksChecked++
				if !opts.SkipExternal {
					external = append(external, l)
				}
			case strings.HasPrefix(target, "mailto:"), strings.HasPrefix(target, "#"):
				// Anchors into the same document and mail addresses are
				// not verifiable here
			default:
				res.LinksChecked++
				if issue := checkLocal(l); issue != nil {
					res.Issues = append(res.Issues, *issue)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	if len(external) > 0 {
		issues, err := checkExternal(ctx, external, opts)
		if err != nil {
			return nil, err
		}
		res.Issues = append(res.Issues, issues...)
	}

	return res, nil
}

func scanFile(path string) ([]foundLink, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var links []foundLink
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		for _, match := range linkRe.FindAllStringSubmatch(scanner.Text(), -1) {
			target := strings.TrimSpace(match[1])
			// Drop an optional link title: [x](url "title")
			if idx := strings.IndexAny(target, " \t"); idx != -1 {
				target = target[:idx]
			}
			if target == "" {
				continue
			}
			links = append(links, foundLink{file: path, line: lineNo, link: target})
		}
	}
	return links, scanner.Err()
}

func checkLocal(l foundLink) *Issue {
	target := l.link
	if idx := strings.Index(target, "#"); idx != -1 {
		target = target[:idx]
	}
	if target == "" {
		return nil
	}

	resolved := target
	if !filepath.IsAbs(target) {
		resolved = filepath.Join(filepath.Dir(l.file), target)
	}
	if _, err := os.Stat(resolved); err != nil {
		return &Issue{File: l.file, Line: l.line, Link: l.link, Reason: "file not found"}
	}
	return nil
}

func checkExternal(ctx context.Context, links []foundLink, opts Options) ([]Issue, error) {
	client := &http.Client{Timeout: opts.Timeout}

	results := make([]*Issue, len(links))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, l := range links {
		g.Go(func() error {
			results[i] = checkURL(ctx, client, l)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var issues []Issue
	for _, r := range results {
		if r != nil {
			issues = append(issues, *r)
		}
	}
	return issues, nil
}

func checkURL(ctx context.Context, client *http.Client, l foundLink) *Issue {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, l.link, nil)
	if err != nil {
		return &Issue{File: l.file, Line: l.line, Link: l.link, Reason: err.Error()}
	}

	resp, err := client.Do(req)
	if err == nil && resp.StatusCode == http.StatusMethodNotAllowed {
		// Some servers reject HEAD; retry with GET before flagging
		resp.Body.Close()
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, l.link, nil)
		if err == nil {
			resp, err = client.Do(req)
		}
	}
	if err != nil {
		return &Issue{File: l.file, Line: l.line, Link: l.link, Reason: err.Error()}
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return &Issue{File: l.file, Line: l.line, Link: l.link, Reason: fmt.Sprintf("status %d", resp.StatusCode)}
	}
	return nil
}
