package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	err := New(ErrCodeKeyNotFound, "key 'API_KEY' not found")
	if !strings.Contains(err.Error(), "KEY_NOT_FOUND") {
		t.Errorf("expected code in message, got %q", err.Error())
	}
}

func TestAppErrorErrorWithCause(t *testing.T) {
	cause := stderrors.New("file missing")
	err := Internal("load failed", cause)
	if !strings.Contains(err.Error(), "file missing") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := ProviderInitFailed("keyring", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestKeyNotFoundListsProviders(t *testing.T) {
	err := KeyNotFound("API_KEY", []string{"environment", "json_file"})
	if !strings.Contains(err.Message, "environment, json_file") {
		t.Errorf("expected providers listed, got %q", err.Message)
	}
	if err.Details["key"] != "API_KEY" {
		t.Errorf("expected key detail, got %v", err.Details["key"])
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"app error", ProviderNotFound("vault"), ErrCodeProviderNotFound},
		{"wrapped", Internal("x", nil).WithCause(stderrors.New("y")), ErrCodeInternal},
		{"plain error", stderrors.New("plain"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := WriteFailed("API_KEY")
	if !IsCode(err, ErrCodeWriteFailed) {
		t.Error("expected IsCode to match WRITE_FAILED")
	}
	if IsCode(err, ErrCodeKeyNotFound) {
		t.Error("did not expect IsCode to match KEY_NOT_FOUND")
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad").WithDetail("field", "key_name")
	if err.Details["field"] != "key_name" {
		t.Errorf("expected detail set, got %v", err.Details)
	}
}
