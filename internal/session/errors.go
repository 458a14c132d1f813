package session

import "errors"

var (
	// ErrUnknownCommand indicates the first token of a line names no command.
	ErrUnknownCommand = errors.New("session: unknown command")

	// ErrUsage indicates a command was given the wrong number of arguments,
	// or a bare run was issued before any games/sets were known.
	ErrUsage = errors.New("session: usage error")
)
