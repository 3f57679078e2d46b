// Package collator discovers markdown documents directly under a directory
// and merges them into one combined text in a deterministic order.
package collator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Config holds collator configuration.
type Config struct {
	// Extensions lists the file extensions recognized as markdown,
	// compared case-insensitively. Defaults to ".md" and ".markdown".
	Extensions []string

	// StripFrontMatter removes a leading YAML/TOML front matter block
	// from each document before it is merged.
	StripFrontMatter bool
}

func (c Config) applyDefaults() Config {
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".md", ".markdown"}
	}
	return c
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}

// SourceDocument is one discovered markdown file. Path is set at discovery
// time. Content is normally read from Path during collation; callers
// supplying in-memory documents may pre-populate it instead.
type SourceDocument struct {
	Path    string
	Content string
}

// Collator merges the markdown documents under a directory into one
// combined text.
type Collator struct {
	config Config
}

// New creates a new Collator with the given config.
func New(config Config) (*Collator, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Collator{config: cfg}, nil
}

// Discover scans root (single level, non-recursive) for markdown files and
// returns them in lexical ascending filename order with contents unread.
// Lexical order is a documented contract callers may rely on for
// reproducibility, not an accident of directory iteration.
func (c *Collator) Discover(root string) ([]SourceDocument, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: root}
		}
		return nil, &AccessError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &AccessError{Path: root, Err: errNotDirectory}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &AccessError{Path: root, Err: err}
	}

	var docs []SourceDocument
	for _, entry := range entries {
		if entry.IsDir() || !c.isMarkdown(entry.Name()) {
			continue
		}
		docs = append(docs, SourceDocument{Path: filepath.Join(root, entry.Name())})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })

	return docs, nil
}

func (c *Collator) isMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range c.config.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// Collate reads every document in order and joins their contents with a
// blank-line boundary, so the last line of one document can never merge
// into the first line of the next regardless of trailing newlines. When
// sink is non-nil the exact combined text is written to it in full before
// returning. Any unreadable document aborts the whole collation; a partial
// merge is never returned.
func (c *Collator) Collate(docs []SourceDocument, sink io.Writer) (Result, error) {
	parts := make([]string, 0, len(docs))
	files := make([]FileInfo, 0, len(docs))
	var warnings []Warning

	for _, doc := range docs {
		content := doc.Content
		if content == "" {
			data, err := os.ReadFile(doc.Path)
			if err != nil {
				return Result{}, &ReadError{Path: doc.Path, Err: err}
			}
			content = string(data)
		}

		if c.config.StripFrontMatter {
			stripped, err := stripFrontMatter(content)
			if err != nil {
				warnings = append(warnings, Warning{
					Type:    WarningFrontMatter,
					Path:    doc.Path,
					Message: err.Error(),
				})
			} else {
				content = stripped
			}
		}

		files = append(files, FileInfo{
			Path:       doc.Path,
			Characters: utf8.RuneCountInString(content),
			Lines:      countLines(content),
		})

		parts = append(parts, strings.TrimRight(content, "\r\n"))
	}

	combined := strings.Join(parts, "\n\n")

	if sink != nil {
		if _, err := io.WriteString(sink, combined); err != nil {
			return Result{}, &WriteError{Err: err}
		}
	}

	return Result{
		Combined: combined,
		Files:    files,
		Warnings: warnings,
	}, nil
}

// countLines counts content lines the way a text editor would: a trailing
// newline does not start an extra empty line.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
