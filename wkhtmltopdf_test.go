package oas2pdf

import (
	"context"
	"reflect"
	"testing"
)

func TestWkhtmltopdfRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		landscape bool
		margin    string
		wantArgv  []string
	}{
		{
			name:   "portrait with default margin",
			margin: "12mm",
			wantArgv: []string{
				"/usr/bin/wkhtmltopdf",
				"--print-media-type", "--enable-local-file-access",
				"--margin-top", "12mm", "--margin-right", "12mm",
				"--margin-bottom", "12mm", "--margin-left", "12mm",
				"/tmp/api.html", "/out/api.pdf",
			},
		},
		{
			name:      "landscape orientation injected before margins",
			landscape: true,
			margin:    "0.5in",
			wantArgv: []string{
				"/usr/bin/wkhtmltopdf",
				"--print-media-type", "--enable-local-file-access",
				"--orientation", "Landscape",
				"--margin-top", "0.5in", "--margin-right", "0.5in",
				"--margin-bottom", "0.5in", "--margin-left", "0.5in",
				"/tmp/api.html", "/out/api.pdf",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			runner := &MockRunner{}
			r := &wkhtmltopdfRenderer{
				bin:       "/usr/bin/wkhtmltopdf",
				landscape: tt.landscape,
				margin:    tt.margin,
				runner:    runner,
			}

			if err := r.Render(context.Background(), "/tmp/api.html", "/out/api.pdf"); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !reflect.DeepEqual(runner.Calls[0], tt.wantArgv) {
				t.Errorf("argv = %v, want %v", runner.Calls[0], tt.wantArgv)
			}
		})
	}
}
