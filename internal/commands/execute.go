package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	SelectAll     func() (Result, error)
	DeselectAll   func() (Result, error)
	SelectMonth   func(MonthArgs) (Result, error)
	DeselectMonth func(MonthArgs) (Result, error)
	Select        func(RangeArgs) (Result, error)
	Deselect      func(RangeArgs) (Result, error)
	Theme         func(ThemeArgs) (Result, error)
	Goto          func(GotoArgs) (Result, error)
	Export        func(FileArgs) (Result, error)
	Import        func(FileArgs) (Result, error)
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeSelectAll:
		if handlers.SelectAll == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.SelectAll()
	case TypeDeselectAll:
		if handlers.DeselectAll == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.DeselectAll()
	case TypeSelectMonth:
		if handlers.SelectMonth == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.SelectMonth(*cmd.Month)
	case TypeDeselectMonth:
		if handlers.DeselectMonth == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.DeselectMonth(*cmd.Month)
	case TypeSelect:
		if handlers.Select == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Select(*cmd.Range)
	case TypeDeselect:
		if handlers.Deselect == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Deselect(*cmd.Range)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Theme(*cmd.Theme)
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Goto(*cmd.Goto)
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Export(*cmd.File)
	case TypeImport:
		if handlers.Import == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Import(*cmd.File)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
