package main

import (
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "Usage: oas2pdf <command>"},
		{"convert", []string{"convert"}, "Usage: oas2pdf convert --src <dir>"},
		{"doctor", []string{"doctor"}, "Usage: oas2pdf doctor [--json]"},
		{"version", []string{"version"}, "Usage: oas2pdf version"},
		{"help", []string{"help"}, "Usage: oas2pdf help [command]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env, stdout, _ := testEnv()
			runHelp(tt.args, env)
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestRunHelp_UnknownCommand(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	runHelp([]string{"bogus"}, env)
	if !strings.Contains(stderr.String(), "Unknown command: bogus") {
		t.Errorf("stderr = %q, want unknown command message", stderr.String())
	}
}
