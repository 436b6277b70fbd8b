package commands

import (
	"errors"
	"testing"

	"github.com/questdo/questdo/internal/model"
)

func TestParseAdd(t *testing.T) {
	cmd, err := Parse("/add Pay server bill")
	if err != nil {
		t.Fatalf("parse add: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add == nil || cmd.Add.Title != "Pay server bill" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestParseSortModes(t *testing.T) {
	cases := map[string]model.SortMode{
		"/sort created": model.SortCreatedTime,
		"/sort due":     model.SortDueDate,
		"/sort name":    model.SortTaskName,
		"sort NAME":     model.SortTaskName,
	}
	for input, want := range cases {
		cmd, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if cmd.Type != TypeSort || cmd.Sort == nil || cmd.Sort.Mode != want {
			t.Fatalf("parse %q: expected mode %s, got %+v", input, want, cmd)
		}
	}
}

func TestParseShowAndReset(t *testing.T) {
	cmd, err := Parse("/show matrix")
	if err != nil {
		t.Fatalf("parse show: %v", err)
	}
	if cmd.Type != TypeShow || cmd.Show == nil || cmd.Show.Screen != "matrix" {
		t.Fatalf("unexpected show command: %+v", cmd)
	}

	cmd, err = Parse("/reset")
	if err != nil {
		t.Fatalf("parse reset: %v", err)
	}
	if cmd.Type != TypeReset {
		t.Fatalf("unexpected reset command: %+v", cmd)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]ErrorCode{
		"":                ErrCodeEmptyInput,
		"/":               ErrCodeEmptyInput,
		"/frobnicate":     ErrCodeUnknownCommand,
		"/add":            ErrCodeInvalidArgument,
		"/sort":           ErrCodeInvalidArgument,
		"/sort sideways":  ErrCodeInvalidArgument,
		"/show":           ErrCodeInvalidArgument,
		"/show dashboard": ErrCodeInvalidArgument,
		"/reset now":      ErrCodeInvalidArgument,
	}
	for input, wantCode := range cases {
		_, err := Parse(input)
		if err == nil {
			t.Fatalf("parse %q: expected error", input)
		}
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) {
			t.Fatalf("parse %q: expected CommandError, got %T", input, err)
		}
		if cmdErr.Code != wantCode {
			t.Fatalf("parse %q: expected code %s, got %s", input, wantCode, cmdErr.Code)
		}
	}
}
