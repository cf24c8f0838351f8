package diag

import "fmt"

// Code is the numeric identifier of a diagnostic
type Code int

const (
	UnknownCode Code = 0

	// ExpectedToken reports a missing token
	ExpectedToken Code = 1005
	// DeclarationExpected reports text the parser could not recover
	DeclarationExpected Code = 1128
	// DecoratorsNotValid reports a decorator written where the language does not allow one
	DecoratorsNotValid Code = 1206
	// CannotFindModule reports an unresolved import
	CannotFindModule Code = 2307
	// NotAssignable reports a type mismatch in an assignment
	NotAssignable Code = 2322
	// DeclaredButNeverRead reports an unused local or import
	DeclaredButNeverRead Code = 6133
)

func (c Code) String() string {
	return fmt.Sprintf("TS%d", int(c))
}
