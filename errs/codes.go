package errs

import "fmt"

// Code is a stable numeric identifier carried by errors that cross the
// boundary to the archival tooling built on top of the codec. Codes are
// part of that tooling's public contract and must not be renumbered.
type Code int

const (
	// CodeRestorePathNotEmpty reports that a restore target directory
	// already contains files.
	CodeRestorePathNotEmpty Code = 100
)

// CodedError pairs a Code with a human-readable message.
type CodedError struct {
	Code    Code
	Message string
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("%s [%d]", e.Message, e.Code)
}

// NewCodedError creates a CodedError with the given code and message.
func NewCodedError(code Code, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// ErrRestorePathNotEmpty is the canonical instance of CodeRestorePathNotEmpty.
var ErrRestorePathNotEmpty = NewCodedError(CodeRestorePathNotEmpty, "restore path is not empty")
