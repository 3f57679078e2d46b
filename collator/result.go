package collator

// Result holds the output of a collation.
type Result struct {
	Combined string     `json:"combined"`
	Files    []FileInfo `json:"files"`
	Warnings []Warning  `json:"warnings,omitempty"`
}

// FileInfo reports per-document stats gathered while reading.
type FileInfo struct {
	Path       string `json:"path"`
	Characters int    `json:"characters"`
	Lines      int    `json:"lines"`
}

// WarningType categorizes collation warnings.
type WarningType string

const (
	// WarningFrontMatter is recorded when front matter stripping was
	// requested but the block could not be parsed and was left in place.
	WarningFrontMatter WarningType = "front_matter"
)

// Warning represents a non-fatal issue encountered during collation.
type Warning struct {
	Type    WarningType `json:"type"`
	Path    string      `json:"path,omitempty"`
	Message string      `json:"message"`
}
