package commands

import (
	"errors"
	"testing"
	"time"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/select-all", TypeSelectAll},
		{"all", TypeSelectAll},
		{"clear", TypeDeselectAll},
		{"select-month march", TypeSelectMonth},
		{"deselect-month 2", TypeDeselectMonth},
		{"/select 2025-03-01 2025-03-09", TypeSelect},
		{"deselect 2025-03-04", TypeDeselect},
		{"theme light", TypeTheme},
		{"goto 2025-07-04", TypeGoto},
		{"export /tmp/days.ics", TypeExport},
		{"IMPORT trips.ics", TypeImport},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("select 2025-03-01")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Range.From != "2025-03-01" || cmd.Range.To != "2025-03-01" {
		t.Fatalf("single day range should have equal ends: %+v", cmd.Range)
	}

	cmd, err = Parse("select-month Sep")
	if err != nil || cmd.Month.Month != time.September {
		t.Fatalf("unexpected month parse: %+v %v", cmd.Month, err)
	}

	cmd, err = Parse("theme")
	if err != nil || cmd.Theme.Mode != ThemeToggle {
		t.Fatalf("theme without args should toggle: %+v %v", cmd.Theme, err)
	}

	cmd, err = Parse("export my days.ics")
	if err != nil || cmd.File.Path != "my days.ics" {
		t.Fatalf("unexpected file path: %+v %v", cmd.File, err)
	}
}

func TestParseMonth(t *testing.T) {
	cases := map[string]time.Month{
		"1":        time.January,
		"12":       time.December,
		"feb":      time.February,
		"February": time.February,
	}
	for in, want := range cases {
		got, ok := ParseMonth(in)
		if !ok || got != want {
			t.Fatalf("ParseMonth(%q) = %v,%v want %v", in, got, ok, want)
		}
	}
	for _, in := range []string{"0", "13", "ja", "febr", ""} {
		if _, ok := ParseMonth(in); ok {
			t.Fatalf("ParseMonth(%q) should fail", in)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]ErrorCode{
		"":                    ErrCodeEmptyInput,
		"/":                   ErrCodeEmptyInput,
		"/unknown do x":       ErrCodeUnknownCommand,
		"select-month":        ErrCodeInvalidArgument,
		"select-month smarch": ErrCodeInvalidArgument,
		"select 2025-3-1":     ErrCodeInvalidArgument,
		"select a b c":        ErrCodeInvalidArgument,
		"theme purple":        ErrCodeInvalidArgument,
		"goto":                ErrCodeInvalidArgument,
		"export":              ErrCodeInvalidArgument,
		"deselect 2025-02-30": ErrCodeInvalidArgument,
	}
	for in, code := range cases {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != code {
			t.Fatalf("parse %q: expected %s, got %v", in, code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("select 2025-03-01 2025-03-05")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Select: func(a RangeArgs) (Result, error) {
			called = true
			if a.From != "2025-03-01" || a.To != "2025-03-05" {
				t.Fatalf("unexpected range: %+v", a)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	for _, in := range []string{"select-all", "deselect-month 1", "theme", "import x.ics"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		_, err = Execute(cmd, Handlers{})
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
			t.Fatalf("%q: expected missing handler error, got %v", in, err)
		}
	}
}
