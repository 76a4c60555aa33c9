package protocol

import (
	"strconv"
	"strings"
)

// Command is a request sent from the controller to the generator.
type Command string

const (
	// CommandHi is the health probe; the generator answers ResponseHi.
	CommandHi Command = "Hi"
	// CommandGetRandom requests one random integer.
	CommandGetRandom Command = "GetRandom"
	// CommandShutdown stops the generator loop. It has no response.
	CommandShutdown Command = "Shutdown"
	// CommandUnknown stands for any line that is not one of the above.
	CommandUnknown Command = ""
)

const (
	// ResponseHi acknowledges CommandHi.
	ResponseHi = "Hi"
	// ResponseUnknown answers any unrecognised command.
	ResponseUnknown = "Unknown command"
)

// ParseCommand maps a received line to a Command.
// Matching is exact and case-sensitive; the line must not carry its newline.
func ParseCommand(line string) Command {
	switch Command(line) {
	case CommandHi, CommandGetRandom, CommandShutdown:
		return Command(line)
	default:
		return CommandUnknown
	}
}

// String returns the wire form of the command.
func (c Command) String() string {
	if c == CommandUnknown {
		return "Unknown"
	}

	return string(c)
}

// HasResponse reports whether the generator replies to c.
func (c Command) HasResponse() bool {
	return c != CommandShutdown
}

// FormatInt renders a generated value the way it travels on the wire.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// ParseInt parses a GetRandom response as a base-10 signed integer.
// Surrounding whitespace is ignored.
func ParseInt(line string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// TrimLine strips the line terminator and any surrounding whitespace from a
// received response.
func TrimLine(line string) string {
	return strings.TrimSpace(line)
}
