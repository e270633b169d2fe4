package yamlutil_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/alnah/go-oas2pdf/internal/yamlutil"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, s *sample)
	}{
		{
			name: "valid document",
			data: []byte("name: orders\ncount: 2\n"),
			dest: &sample{},
			check: func(t *testing.T, s *sample) {
				if s.Name != "orders" || s.Count != 2 {
					t.Errorf("got %+v", s)
				}
			},
		},
		{
			name:    "empty data",
			data:    nil,
			dest:    &sample{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalStrict: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest.(*sample))
			}
		})
	}
}

func TestUnmarshalStrict_UnknownField(t *testing.T) {
	var s sample
	err := yamlutil.UnmarshalStrict([]byte("name: x\ntypo: y\n"), &s)
	if err == nil {
		t.Fatal("strict mode should reject unknown fields")
	}
}

func TestUnmarshalStrict_InputTooLarge(t *testing.T) {
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 16
	t.Cleanup(func() { yamlutil.MaxInputSize = orig })

	var s sample
	err := yamlutil.UnmarshalStrict(bytes.Repeat([]byte("a"), 17), &s)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("error = %v, want ErrInputTooLarge", err)
	}
}
