package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnresolved, "resolved package not found for %s", "serde")

	if err.Code != ErrCodeUnresolved {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnresolved)
	}

	if err.Message != "resolved package not found for serde" {
		t.Errorf("Message = %v, want %v", err.Message, "resolved package not found for serde")
	}

	expected := "UNRESOLVED_DEPENDENCY: resolved package not found for serde"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 101")
	err := Wrap(ErrCodeCargoFailed, cause, "cargo metadata failed")

	if err.Code != ErrCodeCargoFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeCargoFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeMissingRoot, "test"),
			code:     ErrCodeMissingRoot,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeMissingRoot, "test"),
			code:     ErrCodeUnresolved,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeUnresolved, New(ErrCodeInvalidRequirement, "inner"), "outer"),
			code:     ErrCodeUnresolved,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeMissingRoot,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeMissingRoot,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidMetadata, "test"),
			expected: ErrCodeInvalidMetadata,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeMissingRoot, "no root package found"),
			expected: "no root package found",
		},
		{
			name:     "wrapped plain cause",
			err:      Wrap(ErrCodeCargoFailed, errors.New("exit status 101"), "cargo metadata failed"),
			expected: "cargo metadata failed: exit status 101",
		},
		{
			name:     "wrapped coded cause",
			err:      Wrap(ErrCodeUnresolved, New(ErrCodeInvalidRequirement, "bad requirement"), "serde"),
			expected: "serde: bad requirement",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
