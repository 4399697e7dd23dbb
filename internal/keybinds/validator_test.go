package keybinds

import (
	"strings"
	"testing"
)

func newResult() *ValidationResult {
	return &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}
}

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	if v == nil {
		t.Fatal("NewValidator returned nil")
	}

	if !v.reservedKeys["ctrl+c"] {
		t.Error("Expected ctrl+c to be a reserved key")
	}

	if len(v.required[ContextNewRequest]) == 0 {
		t.Error("Expected required form actions to be initialized")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name: "conflict error",
			err: ValidationError{
				Type:    "conflict",
				Context: ContextMain,
				Key:     "",
				Message: "action 'quit' has no key",
			},
			expected: "[conflict]  in context 'main': action 'quit' has no key",
		},
		{
			name: "warning",
			err: ValidationError{
				Type:    "warning",
				Context: ContextNewRequest,
				Key:     "x",
				Message: "printable key can no longer be typed into the form",
			},
			expected: "[warning] x in context 'new_request': printable key can no longer be typed into the form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidationResult_String(t *testing.T) {
	tests := []struct {
		name     string
		result   *ValidationResult
		contains []string
	}{
		{
			name:     "no issues",
			result:   &ValidationResult{},
			contains: []string{"No issues found"},
		},
		{
			name: "only errors",
			result: &ValidationResult{
				Errors: []ValidationError{
					{Type: "invalid", Context: ContextMain, Key: "x", Message: "unknown action"},
				},
			},
			contains: []string{"Errors (1)", "invalid", "main", "x"},
		},
		{
			name: "both errors and warnings",
			result: &ValidationResult{
				Errors: []ValidationError{
					{Type: "invalid", Context: ContextMain, Key: "x", Message: "unknown action"},
				},
				Warnings: []ValidationError{
					{Type: "warning", Context: ContextNewRequest, Key: "y", Message: "captured"},
				},
			},
			contains: []string{"Errors (1)", "Warnings (1)", "invalid", "warning", "new_request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.String()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("String() output missing %q, got:\n%s", want, got)
				}
			}
		})
	}
}

func TestValidateRegistry_DefaultsAreClean(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())

	if result.HasErrors() || result.HasWarnings() {
		t.Errorf("Expected default bindings to validate cleanly, got:\n%s", result.String())
	}
}

func TestCheckUnknownActions(t *testing.T) {
	v := NewValidator()

	r := NewRegistry()
	r.Register(ContextMain, "x", Action("teleport"))
	r.Register(Context("sidebar"), "y", ActionQuit)
	r.Register(ContextMain, "q", ActionQuit)

	result := newResult()
	v.checkUnknownActions(r, result)

	if len(result.Errors) != 2 {
		t.Fatalf("Expected 2 errors, got %d: %s", len(result.Errors), result.String())
	}
	for _, err := range result.Errors {
		if err.Type != "invalid" {
			t.Errorf("Expected error type 'invalid', got %q", err.Type)
		}
	}
}

func TestCheckRequiredActions(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name         string
		unbind       map[Context][]string
		expectErrors int
	}{
		{"defaults", nil, 0},
		{"one quit key left", map[Context][]string{ContextMain: {"q"}}, 0},
		{"no quit key", map[Context][]string{ContextMain: {"q", "esc"}}, 1},
		{"no submit or cancel", map[Context][]string{ContextNewRequest: {"enter", "esc"}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDefaultRegistry()
			for context, keys := range tt.unbind {
				for _, key := range keys {
					r.Unbind(context, key)
				}
			}

			result := newResult()
			v.checkRequiredActions(r, result)

			if len(result.Errors) != tt.expectErrors {
				t.Errorf("Expected %d errors, got %d", tt.expectErrors, len(result.Errors))
			}
		})
	}
}

func TestCheckReservedKeys(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name           string
		setupRegistry  func() *Registry
		expectWarnings int
	}{
		{
			name: "reserved key with correct action",
			setupRegistry: func() *Registry {
				r := NewRegistry()
				r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
				return r
			},
			expectWarnings: 0,
		},
		{
			name: "reserved key rebound globally",
			setupRegistry: func() *Registry {
				r := NewRegistry()
				r.Register(ContextGlobal, "ctrl+c", ActionQuit)
				return r
			},
			expectWarnings: 1,
		},
		{
			name: "reserved key rebound on a screen",
			setupRegistry: func() *Registry {
				r := NewRegistry()
				r.Register(ContextMain, "ctrl+c", ActionCopyResponse)
				return r
			},
			expectWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newResult()
			v.checkReservedKeys(tt.setupRegistry(), result)

			if len(result.Warnings) != tt.expectWarnings {
				t.Errorf("Expected %d warnings, got %d", tt.expectWarnings, len(result.Warnings))
			}
		})
	}
}

func TestCheckShadowing(t *testing.T) {
	v := NewValidator()

	r := NewRegistry()
	r.Register(ContextGlobal, "q", ActionQuit)
	r.Register(ContextMain, "q", ActionQuit)
	r.Register(ContextNewRequest, "q", ActionTextCancel)

	result := newResult()
	v.checkShadowing(r, result)

	if len(result.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(result.Warnings))
	}
	if result.Warnings[0].Context != ContextNewRequest {
		t.Errorf("Expected warning in new_request, got %s", result.Warnings[0].Context)
	}
	if !strings.Contains(result.Warnings[0].Message, "quit -> text_cancel") {
		t.Errorf("Unexpected message: %s", result.Warnings[0].Message)
	}
}

func TestCheckCapturedRunes(t *testing.T) {
	v := NewValidator()

	r := NewDefaultRegistry()
	r.Register(ContextNewRequest, "x", ActionTextCancel)
	r.Register(ContextNewRequest, " ", ActionTextSubmit)
	r.Register(ContextNewRequest, "ctrl+x", ActionTextCancel)

	result := newResult()
	v.checkCapturedRunes(r, result)

	if len(result.Warnings) != 2 {
		t.Errorf("Expected 2 warnings, got %d: %s", len(result.Warnings), result.String())
	}
}

func TestValidateConfig(t *testing.T) {
	v := NewValidator()

	t.Run("valid override", func(t *testing.T) {
		result := v.ValidateConfig(&Config{Main: map[string]string{"x": "execute"}})
		if result.HasErrors() {
			t.Errorf("Unexpected errors: %s", result.String())
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		result := v.ValidateConfig(&Config{Main: map[string]string{"x": "explode"}})
		if !result.HasErrors() {
			t.Error("Expected errors for unknown action")
		}
	})

	t.Run("removing every quit key", func(t *testing.T) {
		result := v.ValidateConfig(&Config{Main: map[string]string{"q": "noop", "esc": "noop"}})
		if !result.HasErrors() {
			t.Error("Expected error when main has no quit key")
		}
	})

	t.Run("capturing a letter on the form", func(t *testing.T) {
		result := v.ValidateConfig(&Config{NewRequest: map[string]string{"j": "text_submit"}})
		if result.HasErrors() {
			t.Errorf("Unexpected errors: %s", result.String())
		}
		if !result.HasWarnings() {
			t.Error("Expected warning for captured printable key")
		}
	})
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"q", false},
		{"ctrl+c", false},
		{"enter", false},
		{"", true},
		{"ctrl+", true},
		{"alt+", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestIsPrintable(t *testing.T) {
	for key, want := range map[string]bool{
		"a":      true,
		"?":      true,
		" ":      true,
		"é":      true,
		"enter":  false,
		"ctrl+a": false,
		"":       false,
	} {
		if got := IsPrintable(key); got != want {
			t.Errorf("IsPrintable(%q) = %v, want %v", key, got, want)
		}
	}
}
