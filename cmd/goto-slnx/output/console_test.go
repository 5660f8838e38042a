package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsole_Println(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out, VerbosityNormal)
	c.Println("hello")
	if got := out.String(); got != "hello\n" {
		t.Errorf("Println() = %q, want %q", got, "hello\n")
	}
}

func TestConsole_Printf(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out, VerbosityNormal)
	c.Printf("hello %s", "world")
	if got := out.String(); got != "hello world" {
		t.Errorf("Printf() = %q, want %q", got, "hello world")
	}
}

func TestConsole_Success(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out, VerbosityNormal)
	c.SetColors(false) // Disable colors for testing
	c.Success("conversion succeeded")
	if !strings.Contains(out.String(), "conversion succeeded") {
		t.Errorf("Success() output doesn't contain expected message")
	}
}

func TestConsole_Error(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	c := NewConsole(&outBuf, &errBuf, VerbosityNormal)
	c.SetColors(false) // Disable colors for testing
	c.Error("conversion failed")
	got := errBuf.String()
	if !strings.Contains(got, "Error:") || !strings.Contains(got, "conversion failed") {
		t.Errorf("Error() output doesn't contain expected message, got: %q", got)
	}
	if outBuf.Len() != 0 {
		t.Errorf("Error() should write to the error stream only, stdout got: %q", outBuf.String())
	}
}

func TestConsole_Warning(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out, VerbosityNormal)
	c.SetColors(false) // Disable colors for testing
	c.Warning("solution has no projects")
	got := out.String()
	if !strings.Contains(got, "Warning:") || !strings.Contains(got, "solution has no projects") {
		t.Errorf("Warning() output doesn't contain expected message, got: %q", got)
	}
}

func TestConsole_Info(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out, VerbosityNormal)
	c.SetColors(false) // Disable colors for testing
	c.Info("information message")
	if !strings.Contains(out.String(), "information message") {
		t.Errorf("Info() output doesn't contain expected message")
	}
}

func TestConsole_Detail(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out, VerbosityDetailed)
	c.Detail("parsed 12 projects")
	if !strings.Contains(out.String(), "parsed 12 projects") {
		t.Errorf("Detail() output doesn't contain expected message")
	}
}

func TestConsole_VerbosityQuiet(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out, VerbosityQuiet)
	c.SetColors(false)

	// Normal messages should not appear in quiet mode
	c.Success("success message")
	c.Warning("warning message")
	c.Info("info message")
	c.Detail("detail message")

	if out.Len() != 0 {
		t.Errorf("Quiet mode should not output normal messages, got: %q", out.String())
	}

	// Errors should still appear in quiet mode
	var errBuf bytes.Buffer
	c = NewConsole(&out, &errBuf, VerbosityQuiet)
	c.SetColors(false)
	c.Error("error message")
	if !strings.Contains(errBuf.String(), "error message") {
		t.Errorf("Quiet mode should output error messages")
	}
}

func TestConsole_VerbosityNormal(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out, VerbosityNormal)
	c.SetColors(false)

	c.Success("success")
	c.Warning("warning")
	c.Info("info")

	got := out.String()
	if !strings.Contains(got, "success") {
		t.Errorf("Normal mode should show success messages")
	}
	if !strings.Contains(got, "warning") {
		t.Errorf("Normal mode should show warning messages")
	}
	if !strings.Contains(got, "info") {
		t.Errorf("Normal mode should show info messages")
	}

	// Detail should not appear
	out.Reset()
	c.Detail("detail")
	if out.Len() != 0 {
		t.Errorf("Normal mode should not show detail messages, got: %q", out.String())
	}
}

func TestConsole_VerbosityDetailed(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out, VerbosityDetailed)
	c.SetColors(false)

	c.Detail("detail message")
	if !strings.Contains(out.String(), "detail message") {
		t.Errorf("Detailed mode should show detail messages")
	}
}

func TestConsole_SetGetVerbosity(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out, VerbosityNormal)

	if c.GetVerbosity() != VerbosityNormal {
		t.Errorf("GetVerbosity() = %v, want %v", c.GetVerbosity(), VerbosityNormal)
	}

	c.SetVerbosity(VerbosityDetailed)
	if c.GetVerbosity() != VerbosityDetailed {
		t.Errorf("After SetVerbosity(Detailed), GetVerbosity() = %v, want %v", c.GetVerbosity(), VerbosityDetailed)
	}
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		value string
		want  Verbosity
	}{
		{"q", VerbosityQuiet},
		{"quiet", VerbosityQuiet},
		{"n", VerbosityNormal},
		{"normal", VerbosityNormal},
		{"d", VerbosityDetailed},
		{"detailed", VerbosityDetailed},
		{"diag", VerbosityDiagnostic},
		{"diagnostic", VerbosityDiagnostic},
		{"bogus", VerbosityNormal},
		{"", VerbosityNormal},
	}

	for _, tt := range tests {
		if got := ParseVerbosity(tt.value); got != tt.want {
			t.Errorf("ParseVerbosity(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestDefaultConsole(t *testing.T) {
	c := DefaultConsole()
	if c == nil {
		t.Error("DefaultConsole() returned nil")
	}
	if c.GetVerbosity() != VerbosityNormal {
		t.Errorf("DefaultConsole() verbosity = %v, want %v", c.GetVerbosity(), VerbosityNormal)
	}
}

func TestIsColorEnabled(t *testing.T) {
	// Actual behavior depends on terminal state.
	_ = IsColorEnabled()
}
