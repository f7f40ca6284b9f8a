package errors

import (
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "wrap with message",
			err:      ErrFileNotFound,
			msg:      "opening config file",
			expected: "opening config file: file not found",
		},
		{
			name:     "wrap nil error",
			err:      nil,
			msg:      "should return nil",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.msg)
			if tt.err == nil && result != nil {
				t.Errorf("expected nil, got %v", result)
			}
			if tt.err != nil && result.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result.Error())
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrInvalidDescriptor, "descriptor %d", -1)
	expected := "descriptor -1: invalid descriptor"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestIs(t *testing.T) {
	wrapped := Wrap(ErrReadFailed, "reading descriptor 3")

	if !Is(wrapped, ErrReadFailed) {
		t.Error("expected Is to return true for wrapped error")
	}

	if Is(wrapped, ErrFileNotFound) {
		t.Error("expected Is to return false for different error")
	}
}

func TestUnwrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidConfig, "parsing chunk size")
	if Unwrap(wrapped) != ErrInvalidConfig {
		t.Error("expected Unwrap to return the original error")
	}
}
