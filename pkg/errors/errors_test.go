package errors

import (
	stderrors "errors"
	"math"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidSize, "width is negative: %v", -1.5)
	want := "INVALID_SIZE: width is negative: -1.5"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := stderrors.New("boom")
	wrapped := Wrap(ErrCodeInternal, cause, "render svg")
	if !strings.Contains(wrapped.Error(), "boom") {
		t.Errorf("wrapped error should contain cause: %q", wrapped.Error())
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeInvalidSpacing, "spacing is negative")
	if !Is(err, ErrCodeInvalidSpacing) {
		t.Error("Is should match the error code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if got := GetCode(err); got != ErrCodeInvalidSpacing {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInvalidSpacing)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeNoteNotFound, "note abc not found")
	if got := UserMessage(err); got != "note abc not found" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		ok    bool
	}{
		{"Zero", 0, true},
		{"Positive", 12.5, true},
		{"Negative", -0.1, false},
		{"NaN", math.NaN(), false},
		{"PosInf", math.Inf(1), false},
		{"NegInf", math.Inf(-1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("width", tt.value)
			if tt.ok && err != nil {
				t.Errorf("ValidateDimension(%v) = %v, want nil", tt.value, err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("ValidateDimension(%v) = nil, want error", tt.value)
				}
				if !Is(err, ErrCodeInvalidSize) {
					t.Errorf("wrong code: %v", GetCode(err))
				}
			}
		})
	}
}

func TestValidateDocumentPath(t *testing.T) {
	if err := ValidateDocumentPath("drafts/chapter-1.txt"); err != nil {
		t.Errorf("valid path rejected: %v", err)
	}
	if err := ValidateDocumentPath(""); err == nil {
		t.Error("empty path should be rejected")
	}
	if err := ValidateDocumentPath("../etc/passwd"); err == nil {
		t.Error("traversal path should be rejected")
	}
	if err := ValidateDocumentPath("bad\x00path"); err == nil {
		t.Error("null byte should be rejected")
	}
	if err := ValidateDocumentPath(strings.Repeat("a", 501)); err == nil {
		t.Error("overlong path should be rejected")
	}
}

func TestValidateFormat(t *testing.T) {
	supported := []string{"svg", "png", "json"}
	if err := ValidateFormat("svg", supported); err != nil {
		t.Errorf("svg should be supported: %v", err)
	}
	if err := ValidateFormat("SVG", supported); err != nil {
		t.Errorf("format matching should be case-insensitive: %v", err)
	}
	if err := ValidateFormat("bmp", supported); err == nil {
		t.Error("bmp should be rejected")
	}
	if err := ValidateFormat("", supported); err == nil {
		t.Error("empty format should be rejected")
	}
}

func TestValidateThemeName(t *testing.T) {
	for _, ok := range []string{"parchment", "midnight", "high-contrast"} {
		if err := ValidateThemeName(ok); err != nil {
			t.Errorf("ValidateThemeName(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "Parchment", "with space", "under_score"} {
		if err := ValidateThemeName(bad); err == nil {
			t.Errorf("ValidateThemeName(%q) = nil, want error", bad)
		}
	}
}
