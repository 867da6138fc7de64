package app

import (
	"errors"
	"testing"
)

func TestOperationErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "op only",
			err:  NewOperationError("search", "", nil),
			want: "search",
		},
		{
			name: "op and target",
			err:  NewOperationError("search", "[A-Z]", nil),
			want: "search [A-Z]",
		},
		{
			name: "full",
			err:  NewOperationError("load-samples", "extra.lua", errors.New("no such file")),
			want: "load-samples extra.lua: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewOperationError("search", "x", inner)

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	var nilErr *OperationError
	if nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Error("nil receiver should be safe")
	}
}
