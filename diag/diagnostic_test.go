package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/fndecor/diag"
)

func TestMessage_Flatten(t *testing.T) {
	tests := []struct {
		description string
		message     diag.Message
		head        string
		flat        string
	}{
		{
			description: "single",
			message:     diag.NewMessage("Cannot find name 'x'."),
			head:        "Cannot find name 'x'.",
			flat:        "Cannot find name 'x'.",
		},
		{
			description: "chained",
			message: diag.NewMessage("Type 'A' is not assignable to type 'B'.",
				diag.NewMessage("Types of property 'x' are incompatible.",
					diag.NewMessage("Type 'string' is not assignable to type 'number'."))),
			head: "Type 'A' is not assignable to type 'B'.",
			flat: "Type 'A' is not assignable to type 'B'.\n  Types of property 'x' are incompatible.\n    Type 'string' is not assignable to type 'number'.",
		},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.head, tc.message.String(), tc.description)
		assert.Equal(t, tc.flat, tc.message.Flatten(), tc.description)
	}
}

func TestDiagnostic(t *testing.T) {
	located := diag.New("a.ts", 4, 3, diag.NotAssignable, diag.SevError, "Type 'string' is not assignable to type 'number'.")
	assert.True(t, located.HasLocation())
	assert.Equal(t, 7, located.End())
	assert.Equal(t, "a.ts:4 error TS2322: Type 'string' is not assignable to type 'number'.", located.String())

	global := diag.Diagnostic{Start: -1, Code: diag.UnknownCode, Severity: diag.SevWarning, Message: diag.NewMessage("x")}
	assert.False(t, global.HasLocation())
	assert.True(t, diag.HasErrors([]diag.Diagnostic{global, located}))
	assert.False(t, diag.HasErrors([]diag.Diagnostic{global}))
}
