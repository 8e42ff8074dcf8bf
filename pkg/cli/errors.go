package cli

import "fmt"

// SpecError represents a problem loading or reading a spec file, as opposed
// to defects found inside a well-formed spec.
type SpecError struct {
	Path    string
	Message string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("spec error in %s: %s", e.Path, e.Message)
}

// NewSpecError creates a new SpecError.
func NewSpecError(path, message string) *SpecError {
	return &SpecError{Path: path, Message: message}
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{Command: command, Err: err}
}
