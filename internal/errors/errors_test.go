package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewRegisteredCode(t *testing.T) {
	err := New("E001")

	if err.Code != "E001" {
		t.Errorf("Code = %q, want E001", err.Code)
	}
	if err.Category != CategoryUsage {
		t.Errorf("Category = %q, want usage", err.Category)
	}
	if !strings.Contains(err.Error(), "E001") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q, want Unknown error", err.Message)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New("E021").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestFromErrorPassesThrough(t *testing.T) {
	orig := New("E060")
	if got := FromError(orig, "E061"); got != orig {
		t.Error("FromError should pass through ReflowError unchanged")
	}
	if FromError(nil, "E060") != nil {
		t.Error("FromError(nil) should be nil")
	}
}

func TestFormatIncludesSections(t *testing.T) {
	out := New("E003").WithSuggestion("emit an event instead").Format()

	for _, want := range []string{"ERROR E003", "Props flow from the parent", "Suggestion", "reflow-ui.dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryRuntime, "bad thing %d", 7)
	if err.Error() != "bad thing 7" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Category != CategoryRuntime {
		t.Errorf("Category = %q", err.Category)
	}
}
