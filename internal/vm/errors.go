package vm

import "fmt"

// ExitError signals that the program popped stack 1 or 2, the language's
// process-exit convention. Code is 0 for stack 1, 1 for stack 2.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return fmt.Sprintf("exit %d", e.Code) }

// EncodingError reports that a value written to stdout/stderr floored to
// something outside the Unicode scalar range.
type EncodingError struct{ Value int64 }

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%d is not a valid unicode scalar value", e.Value)
}
