package relayout

import "strings"

// WarningCode identifies the category of a warning.
type WarningCode int

const (
	// WarnReconstructionFailed indicates that layout reconstruction
	// failed and the output degraded to input-order concatenation.
	WarnReconstructionFailed WarningCode = iota + 1
)

// Warning describes a non-fatal issue encountered during processing.
// The operation succeeded but the result may be imperfect.
type Warning struct {
	// Code is the warning category.
	Code WarningCode

	// Message is a human-readable description.
	Message string
}

// FormatWarnings joins warning messages into a single string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	messages := make([]string, len(warnings))
	for i, w := range warnings {
		messages[i] = w.Message
	}
	return strings.Join(messages, "; ")
}
