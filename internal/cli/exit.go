// internal/cli/exit.go
package balbis

import "fmt"

// ExitError is a custom error type that includes a specific exit code.
// Commands that have already reported their failure to the operator
// return one with an empty message so nothing is printed twice.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("exit code %d", e.Code)
}
