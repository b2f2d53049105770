package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsSentinel(t *testing.T) {
	tests := []struct {
		code     Code
		sentinel error
	}{
		{CodeLexical, ErrLexical},
		{CodeFieldShape, ErrFieldShape},
		{CodeDanglingReference, ErrDanglingReference},
		{CodeAmbiguousComposite, ErrAmbiguousComposite},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := Errorf(tt.code, 3, "Gains", "Gains_x", "bad")
			wrapped := fmt.Errorf("converting: %w", err)

			assert.ErrorIs(t, wrapped, tt.sentinel)

			for _, other := range sentinels {
				if other != tt.sentinel {
					assert.NotErrorIs(t, wrapped, other)
				}
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := Errorf(CodeDanglingReference, 12, "Controller", "Gains_9", "no %s with index %d", "Gains", 9)
	assert.Equal(t, "line 12 [Controller] Gains_9: [dangling_reference] no Gains with index 9", err.Error())

	lex := Errorf(CodeLexical, 1, "", "Controlr_1", "unrecognized line").WithSuggestions("Controller_")
	assert.Equal(t, "line 1 Controlr_1: [lexical] unrecognized line (did you mean Controller_?)", lex.Error())
}

func TestAsError(t *testing.T) {
	a := Errorf(CodeAmbiguousComposite, 4, "Two Vector", "AttitudeCmd_PV1_SV2", "primary missing")
	b := Errorf(CodeAmbiguousComposite, 4, "Two Vector", "AttitudeCmd_PV1_SV2", "secondary missing")

	got := AsError(errors.Join(a, b))
	require.Len(t, got, 2)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])

	assert.Len(t, AsError(fmt.Errorf("wrap: %w", a)), 1)
	assert.Nil(t, AsError(errors.New("plain")))
	assert.Nil(t, AsError(nil))
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Err())

	d.AddWarning(CodeUnreferenced, "never used", "Mirror", "MirrorCmd_0", 7)
	assert.False(t, d.HasErrors())
	require.Len(t, d.Warnings, 1)
	assert.Equal(t, SeverityWarning, d.Warnings[0].Severity)

	var other Diagnostics
	other.AddError(Errorf(CodeFieldShape, 2, "Limits", "x", "expected number"))
	other.AddInfo(CodeUnreferenced, "fyi", "", "", 0)
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Len(t, d.Infos, 1)
	require.Error(t, d.Err())
	assert.Contains(t, d.Err().Error(), "expected number")

	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestAsErrorWrappedJoin(t *testing.T) {
	a := Errorf(CodeFieldShape, 1, "Limits", "Limits_0", "expected 6 values")
	b := Errorf(CodeLexical, 2, "", "Bogus", "unrecognized line tag")

	got := AsError(fmt.Errorf("parsing x: %w", errors.Join(a, errors.New("io"), b)))
	require.Len(t, got, 2)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
}
