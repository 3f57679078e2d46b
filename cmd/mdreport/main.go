package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/rgonek/mdreport/collator"
	"github.com/rgonek/mdreport/internal/logging"
	"github.com/rgonek/mdreport/renderer"
)

type options struct {
	sourceDir    string
	combinedPath string // empty when no intermediate artifact is requested
	outputPath   string
}

// splitArgs resolves the positional arguments. The combined-text path in
// the middle is optional; with two arguments no intermediate artifact is
// written.
func splitArgs(args []string) (options, error) {
	switch len(args) {
	case 2:
		return options{sourceDir: args[0], outputPath: args[1]}, nil
	case 3:
		return options{sourceDir: args[0], combinedPath: args[1], outputPath: args[2]}, nil
	default:
		return options{}, errors.New("expected <source-dir> [combined-txt] <output-html>")
	}
}

func main() {
	title := pflag.String("title", "", "Document title for the HTML head")
	stripFrontMatter := pflag.Bool("strip-front-matter", false, "Remove YAML/TOML front matter from each document")
	extensions := pflag.StringSlice("ext", nil, "Markdown file extensions to collect (default .md,.markdown)")
	verbose := pflag.BoolP("verbose", "v", false, "Enable debug logging")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mdreport [options] <source-dir> [combined-txt] <output-html>\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	opts, err := splitArgs(pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		pflag.Usage()
		os.Exit(1)
	}

	log := logging.New(*verbose)

	coll, err := collator.New(collator.Config{
		Extensions:       *extensions,
		StripFrontMatter: *stripFrontMatter,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	docs, err := coll.Discover(opts.sourceDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Discovery failed: %v\n", err)
		os.Exit(1)
	}
	log.Info("discovered markdown documents", "dir", opts.sourceDir, "count", len(docs))
	for _, doc := range docs {
		log.Debug("discovered", "path", doc.Path)
	}

	var sink io.Writer
	var sinkFile *os.File
	if opts.combinedPath != "" {
		sinkFile, err = os.Create(opts.combinedPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Collation failed: %v\n", &collator.WriteError{Path: opts.combinedPath, Err: err})
			os.Exit(1)
		}
		sink = sinkFile
	}

	result, err := coll.Collate(docs, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Collation failed: %v\n", err)
		os.Exit(1)
	}
	if sinkFile != nil {
		if err := sinkFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Collation failed: %v\n", &collator.WriteError{Path: opts.combinedPath, Err: err})
			os.Exit(1)
		}
		log.Info("wrote combined text", "path", opts.combinedPath)
	}

	var totalChars, totalLines int
	for _, f := range result.Files {
		log.Debug("collated", "path", f.Path, "characters", f.Characters, "lines", f.Lines)
		totalChars += f.Characters
		totalLines += f.Lines
	}
	log.Info("collated documents", "files", len(result.Files), "characters", totalChars, "lines", totalLines)
	for _, w := range result.Warnings {
		log.Warn(w.Message, "type", string(w.Type), "path", w.Path)
	}

	rend := renderer.New(renderer.Config{Title: *title})
	rendered, err := rend.Render(result.Combined)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}
	for _, w := range rendered.Warnings {
		log.Warn(w.Message, "type", string(w.Type), "line", w.Line)
	}

	if err := os.WriteFile(opts.outputPath, []byte(rendered.HTML), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Write failed: %v\n", &collator.WriteError{Path: opts.outputPath, Err: err})
		os.Exit(1)
	}
	log.Info("wrote html document", "path", opts.outputPath)
}
