package logic

import "errors"

// A FormatError reports a malformed formula or rule string. It is the only
// recoverable error kind: the toolkit state is never touched before the
// input has been fully validated.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return "invalid format: " + e.Reason }

// ErrCycleSuspected is returned by Query when resolution exceeds the rule
// base's recursion ceiling, which only happens when the rules contain a
// circular dependency with no base case.
var ErrCycleSuspected = errors.New("recursion ceiling reached, rule cycle suspected")
