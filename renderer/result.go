package renderer

// Result holds the output of a render.
type Result struct {
	HTML     string    `json:"html"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes rendering warnings.
type WarningType string

const (
	// WarningUnterminatedFence is recorded when a code fence is still open
	// at end of input and closes implicitly.
	WarningUnterminatedFence WarningType = "unterminated_fence"
)

// Warning represents a non-fatal issue encountered during rendering.
type Warning struct {
	Type    WarningType `json:"type"`
	Line    int         `json:"line,omitempty"`
	Message string      `json:"message"`
}
