package config

import (
	"fmt"

	"github.com/cheerioskun/minigrep/internal/models"
)

// CaseInsensitiveFlag is the leading token that switches a search to case-insensitive mode
const CaseInsensitiveFlag = "case-insensitive"

// ParseErrorKind identifies why the arguments were rejected
type ParseErrorKind int

const (
	WrongArgumentCount ParseErrorKind = iota
	UnrecognizedFlag
)

// ParseError is returned when the positional arguments do not form a valid configuration
type ParseError struct {
	Kind  ParseErrorKind
	Token string // Offending token, set for UnrecognizedFlag
	Hint  string // Optional advice appended to the message
}

// DashPatternHint explains how to pass a pattern that looks like a flag
const DashPatternHint = "A pattern starting with '-' must come after '--'."

// Error implements the error interface
func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case UnrecognizedFlag:
		msg = fmt.Sprintf("Wrong usage of %s flag. Expected '%s', got: %s", CaseInsensitiveFlag, CaseInsensitiveFlag, e.Token)
	default:
		msg = "Expected two arguments."
	}
	if e.Hint != "" {
		msg += " " + e.Hint
	}
	return msg
}

// ParseArgs builds a Config from the full argument list, program name included.
//
// Accepted forms:
//
//	<program> <query> <filename>
//	<program> case-insensitive <query> <filename>
func ParseArgs(args []string) (*models.Config, error) {
	if len(args) == 0 {
		return nil, &ParseError{Kind: WrongArgumentCount}
	}

	switch len(args) - 1 {
	case 2:
		return &models.Config{
			Query:    models.NewCaseSensitiveQuery(args[1]),
			Filename: args[2],
		}, nil

	case 3:
		if args[1] != CaseInsensitiveFlag {
			return nil, &ParseError{Kind: UnrecognizedFlag, Token: args[1]}
		}
		return &models.Config{
			Query:    models.NewCaseInsensitiveQuery(args[2]),
			Filename: args[3],
		}, nil

	default:
		return nil, &ParseError{Kind: WrongArgumentCount}
	}
}
