package command

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words after the command.
	Args []string
}

// Parse splits a text line into a command and arguments.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ParseResult{}
	}
	return ParseResult{
		Command: strings.ToLower(fields[0]),
		Args:    fields[1:],
	}
}

// IntArgs converts every argument to an int. Used by keep (dice indices)
// and score (face values).
//
// Postcondition: Returns an error naming the first non-numeric argument.
func IntArgs(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not a number", a)
		}
		out = append(out, n)
	}
	return out, nil
}
