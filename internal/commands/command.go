package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/daytally/internal/model"
)

type Type string

const (
	TypeSelectAll     Type = "select-all"
	TypeDeselectAll   Type = "deselect-all"
	TypeSelectMonth   Type = "select-month"
	TypeDeselectMonth Type = "deselect-month"
	TypeSelect        Type = "select"
	TypeDeselect      Type = "deselect"
	TypeTheme         Type = "theme"
	TypeGoto          Type = "goto"
	TypeExport        Type = "export"
	TypeImport        Type = "import"
)

var aliases = map[string]Type{
	"all":   TypeSelectAll,
	"none":  TypeDeselectAll,
	"clear": TypeDeselectAll,
	"sel":   TypeSelect,
	"desel": TypeDeselect,
	"jump":  TypeGoto,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type MonthArgs struct {
	Month time.Month
}

// RangeArgs is an inclusive span; From and To are equal for a single day.
type RangeArgs struct {
	From string
	To   string
}

type ThemeMode string

const (
	ThemeToggle ThemeMode = "toggle"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

type ThemeArgs struct {
	Mode ThemeMode
}

type GotoArgs struct {
	Key string
}

type FileArgs struct {
	Path string
}

type Command struct {
	Type  Type
	Raw   string
	Month *MonthArgs
	Range *RangeArgs
	Theme *ThemeArgs
	Goto  *GotoArgs
	File  *FileArgs
}

// Usage lists the palette commands in display order.
var Usage = []struct {
	Syntax      string
	Description string
}{
	{"select-all", "select every day of the year"},
	{"deselect-all", "clear the selection"},
	{"select-month <month>", "select a whole month (3, mar, march)"},
	{"deselect-month <month>", "clear a whole month"},
	{"select <from> [to]", "select a day or an inclusive range"},
	{"deselect <from> [to]", "clear a day or an inclusive range"},
	{"theme [light|dark|toggle]", "switch the color theme"},
	{"goto <date>", "move the cursor to a day"},
	{"export <file.ics>", "write the selection as an iCalendar file"},
	{"import <file.ics>", "select every day covered by a calendar's events"},
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
	head := Type(strings.ToLower(parts[0]))
	if alias, ok := aliases[string(head)]; ok {
		head = alias
	}
	args := parts[1:]

	switch head {
	case TypeSelectAll, TypeDeselectAll:
		return Command{Type: head, Raw: input}, nil
	case TypeSelectMonth, TypeDeselectMonth:
		return parseMonth(input, head, args)
	case TypeSelect, TypeDeselect:
		return parseRange(input, head, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeGoto:
		return parseGoto(input, args)
	case TypeExport, TypeImport:
		return parseFile(input, head, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseMonth(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a month", typ)}
	}
	month, ok := ParseMonth(args[0])
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown month: %s", args[0])}
	}
	return Command{Type: typ, Raw: raw, Month: &MonthArgs{Month: month}}, nil
}

// ParseMonth accepts 1-12, a three letter abbreviation or a full month name.
func ParseMonth(s string) (time.Month, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, false
		}
		return time.Month(n), true
	}
	if len(s) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if s == name || s == name[:3] {
			return m, true
		}
	}
	return 0, false
}

func parseRange(raw string, typ Type, args []string) (Command, error) {
	if len(args) == 0 || len(args) > 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a date and an optional end date", typ)}
	}
	from := args[0]
	to := from
	if len(args) == 2 {
		to = args[1]
	}
	for _, d := range []string{from, to} {
		if _, err := model.ParseKey(d); err != nil {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("dates must look like YYYY-MM-DD: %s", d)}
		}
	}
	return Command{Type: typ, Raw: raw, Range: &RangeArgs{From: from, To: to}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	mode := ThemeToggle
	if len(args) > 0 {
		mode = ThemeMode(strings.ToLower(args[0]))
	}
	switch mode {
	case ThemeToggle, ThemeLight, ThemeDark:
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("theme must be light, dark or toggle: %s", args[0])}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Mode: mode}}, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a date"}
	}
	if _, err := model.ParseKey(args[0]); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("dates must look like YYYY-MM-DD: %s", args[0])}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Key: args[0]}}, nil
}

func parseFile(raw string, typ Type, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a file path", typ)}
	}
	return Command{Type: typ, Raw: raw, File: &FileArgs{Path: strings.Join(args, " ")}}, nil
}
