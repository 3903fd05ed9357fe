package errors_test

import (
	"testing"

	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/value"
)

func TestExitCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, errors.ExitOK},
		{errors.ErrEOF, errors.ExitOK},
		{errors.NewParseError("unexpected )"), errors.ExitDataError},
		{errors.NewTypeError("not a number"), errors.ExitDataError},
		{errors.NewUndefinedSymbolError("foo"), errors.ExitDataError},
		{errors.NewUserError(value.NewString("boom")), errors.ExitDataError},
		{errors.NewResourceError("read failed", nil), errors.ExitOSError},
	}

	for _, tc := range cases {
		if got := errors.ExitCode(tc.err); got != tc.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestUserErrorMessage(t *testing.T) {
	err := errors.NewUserError(value.NewString("odd number of forms to cond"))
	if got, want := err.Error(), "odd number of forms to cond"; got != want {
		t.Fatalf("UserError.Error() = %q, want %q", got, want)
	}
}

func TestUndefinedSymbolMessage(t *testing.T) {
	err := errors.NewUndefinedSymbolError("undefined-name")
	if got, want := err.Error(), "'undefined-name' not found"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
