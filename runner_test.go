package oas2pdf

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExecRunner_MissingExecutable(t *testing.T) {
	t.Parallel()

	r := &ExecRunner{}
	err := r.Run(context.Background(), "oas2pdf-this-binary-does-not-exist")
	if err == nil {
		t.Fatal("expected error for missing executable")
	}

	cmdErr, ok := asCommandError(err)
	if !ok {
		t.Fatalf("expected *CommandError, got %T: %v", err, err)
	}
	if !cmdErr.NotFound() {
		t.Errorf("NotFound() = false, want true")
	}
	if cmdErr.ExitCode != 127 {
		t.Errorf("ExitCode = %d, want 127", cmdErr.ExitCode)
	}
	if !errors.Is(err, ErrExecNotFound) {
		t.Error("error chain should include ErrExecNotFound")
	}
}

func TestCommandError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *CommandError
		want string
	}{
		{
			name: "not found names the binary",
			err:  &CommandError{Argv: []string{"redoc-cli", "bundle"}, ExitCode: 127, Err: ErrExecNotFound},
			want: "executable not found: redoc-cli",
		},
		{
			name: "non-zero exit includes the full command",
			err:  &CommandError{Argv: []string{"wkhtmltopdf", "in.html", "out.pdf"}, ExitCode: 1, Err: errors.New("exit status 1")},
			want: "command failed: wkhtmltopdf in.html out.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); !strings.Contains(got, tt.want) {
				t.Errorf("Error() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestAsCommandError(t *testing.T) {
	t.Parallel()

	inner := &CommandError{Argv: []string{"chrome"}, ExitCode: 21, Err: errors.New("exit status 21")}
	wrapped := wrapTwice(inner)

	cmdErr, ok := asCommandError(wrapped)
	if !ok {
		t.Fatal("asCommandError should unwrap nested chains")
	}
	if cmdErr.ExitCode != 21 {
		t.Errorf("ExitCode = %d, want 21", cmdErr.ExitCode)
	}

	if _, ok := asCommandError(errors.New("plain")); ok {
		t.Error("plain errors must not match")
	}
}

func wrapTwice(err error) error {
	return errors.Join(errors.New("outer"), err)
}
