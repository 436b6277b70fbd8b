package commands

import (
	"fmt"
	"strings"

	"github.com/questdo/questdo/internal/model"
)

type Type string

const (
	TypeAdd   Type = "add"
	TypeSort  Type = "sort"
	TypeShow  Type = "show"
	TypeReset Type = "reset"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title string
}

type SortArgs struct {
	Mode model.SortMode
}

type ShowArgs struct {
	Screen string
}

type Command struct {
	Type Type
	Raw  string
	Add  *AddArgs
	Sort *SortArgs
	Show *ShowArgs
}

// Screens accepted by /show.
var knownScreens = map[string]bool{
	"quests":   true,
	"matrix":   true,
	"done":     true,
	"settings": true,
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeSort:
		return parseSort(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeReset:
		if len(args) != 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "reset takes no arguments"}
		}
		return Command{Type: TypeReset, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sort requires one of created, due, name"}
	}
	var mode model.SortMode
	switch strings.ToLower(args[0]) {
	case "created":
		mode = model.SortCreatedTime
	case "due":
		mode = model.SortDueDate
	case "name":
		mode = model.SortTaskName
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown sort key: %s", args[0])}
	}
	return Command{Type: TypeSort, Raw: raw, Sort: &SortArgs{Mode: mode}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a screen name"}
	}
	screen := strings.ToLower(args[0])
	if !knownScreens[screen] {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown screen: %s", screen)}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Screen: screen}}, nil
}
