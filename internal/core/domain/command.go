// Package domain contains the core models of the module build: commands, configurations,
// module units, build plans and the cross-module dependency graph.
package domain

import "strings"

// Command describes a single external process invocation.
type Command struct {
	// Executable is the path to the program.
	Executable string
	// Arguments are passed to the program in order.
	Arguments []string
	// WorkingDirectory overrides the directory the process starts in. Empty means the caller's directory.
	WorkingDirectory string
}

// Render returns the command as a single line of text.
// The executable is always quoted and arguments are quoted only when they contain a space.
// Embedded quote characters are not escaped.
func (c Command) Render() string {
	var sb strings.Builder
	sb.WriteByte('"')
	sb.WriteString(c.Executable)
	sb.WriteByte('"')

	for _, arg := range c.Arguments {
		sb.WriteByte(' ')
		if strings.Contains(arg, " ") {
			sb.WriteByte('"')
			sb.WriteString(arg)
			sb.WriteByte('"')
			continue
		}
		sb.WriteString(arg)
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (c Command) String() string {
	return c.Render()
}

// ExecutionResult is the outcome of running a Command to completion.
type ExecutionResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the process exited with status zero.
func (r ExecutionResult) Success() bool {
	return r.ExitCode == 0
}
