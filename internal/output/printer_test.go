package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	data := map[string]any{
		"status": "exported",
		"cards":  float64(4),
	}

	err := printer.Success(data)
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["status"] != "exported" {
		t.Errorf("status = %v, want %q", result["status"], "exported")
	}
	if result["cards"] != float64(4) {
		t.Errorf("cards = %v, want 4", result["cards"])
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	exitErr := NewUserError("no title recorded for guides/setup")
	printer.Error(exitErr)

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["error"] != "no title recorded for guides/setup" {
		t.Errorf("error = %v, want title error", result["error"])
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

func TestPrinter_Human_Success_Message(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	err := printer.Success(map[string]any{"message": "Export complete"})
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Export complete") {
		t.Errorf("output = %q, want it to contain the message", buf.String())
	}
}

func TestPrinter_Human_Error_ToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(NewSystemError("creating output directory failed"))

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if !strings.Contains(errOut.String(), "Error: creating output directory failed") {
		t.Errorf("stderr = %q, want error message", errOut.String())
	}
}

func TestPrinter_Warn(t *testing.T) {
	tests := []struct {
		name     string
		jsonMode bool
		want     string
	}{
		{
			name:     "human mode",
			jsonMode: false,
			want:     "Warning: error writing file cards/a.yaml: disk full",
		},
		{
			name:     "json mode",
			jsonMode: true,
			want:     `"warning": "error writing file cards/a.yaml: disk full"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printer := NewPrinter(&buf, tt.jsonMode, false)

			printer.Warn("error writing file %s: %v", "cards/a.yaml", "disk full")

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrinter_Table_NoTTY(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table(
		[]string{"DOCNAME", "TITLE"},
		[][]string{
			{"guides/setup", "Setup"},
			{"guides/advanced/tuning", "Tuning"},
		},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "guides/setup  ") {
		t.Errorf("row = %q, want padded docname column", lines[1])
	}
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.KeyValue("Pages", "12")

	if got := buf.String(); got != "Pages: 12\n" {
		t.Errorf("KeyValue output = %q, want %q", got, "Pages: 12\n")
	}
}
