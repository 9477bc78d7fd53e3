package logging

import "strings"

// Output targets.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatText    = "text"
)

// DefaultLevel is used when Level is empty or unparsable.
const DefaultLevel = "info"

// Config describes how a logger is built.
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // json, console, text
	Output string // stderr, stdout, file
	File   string // path when Output is "file"
	Caller bool   // include file:line
}

// DefaultConfig returns a console logger at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  DefaultLevel,
		Format: FormatConsole,
		Output: OutputStderr,
	}
}

// IsHumanReadable reports whether the format renders through zerolog.ConsoleWriter.
func (c Config) IsHumanReadable() bool {
	f := strings.ToLower(c.Format)
	return f == FormatConsole || f == FormatText || f == ""
}
