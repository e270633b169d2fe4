package oas2pdf

import (
	"errors"
	"testing"
)

func TestInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:  "minimal valid input",
			input: Input{SourceDir: "./specs"},
		},
		{
			name:    "empty source directory",
			input:   Input{},
			wantErr: ErrEmptySource,
		},
		{
			name:  "millimeter margin",
			input: Input{SourceDir: "s", Margin: "12mm"},
		},
		{
			name:  "fractional inch margin",
			input: Input{SourceDir: "s", Margin: "0.5in"},
		},
		{
			name:  "bare number margin",
			input: Input{SourceDir: "s", Margin: "10"},
		},
		{
			name:    "unknown unit",
			input:   Input{SourceDir: "s", Margin: "12pt"},
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "not a measurement",
			input:   Input{SourceDir: "s", Margin: "wide"},
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "negative margin",
			input:   Input{SourceDir: "s", Margin: "-5mm"},
			wantErr: ErrInvalidMargin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInput_EffectiveMargin(t *testing.T) {
	t.Parallel()

	if got := (Input{}).margin(); got != DefaultMargin {
		t.Errorf("default margin = %q, want %q", got, DefaultMargin)
	}
	if got := (Input{Margin: "20mm"}).margin(); got != "20mm" {
		t.Errorf("explicit margin = %q, want 20mm", got)
	}
}
