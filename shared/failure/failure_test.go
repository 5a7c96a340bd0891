package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"organise/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}

			if !errors.Is(result, tt.input) {
				t.Errorf("expected failure to unwrap to the input error")
			}
		})
	}
}

func TestValidation(t *testing.T) {
	result := failure.Validation("title is required", map[string]string{"title": "title is required"})

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}

	if f.Kind != failure.KindValidation {
		t.Errorf("expected kind to be %s, got %s", failure.KindValidation, f.Kind)
	}

	if f.Fields["title"] != "title is required" {
		t.Errorf("expected title field message, got %v", f.Fields)
	}
}

func TestInvalidIdentifier(t *testing.T) {
	result := failure.InvalidIdentifier("todo", "not-an-id")

	if code := failure.GetCode(result); code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, code)
	}

	if !failure.Is(result, failure.KindInvalidIdentifier) {
		t.Errorf("expected kind %s, got %s", failure.KindInvalidIdentifier, failure.GetKind(result))
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("note")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
	}

	if f.Message != "note not found" {
		t.Errorf("expected message to be 'note not found', got %s", f.Message)
	}

	if f.Resource != "note" {
		t.Errorf("expected resource to be 'note', got %s", f.Resource)
	}
}

func TestStore(t *testing.T) {
	cause := errors.New("connection refused")
	result := failure.Store("calendar event", cause)

	if code := failure.GetCode(result); code != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, code)
	}

	if result.Error() != "internal server error" {
		t.Errorf("expected generic message, got %s", result.Error())
	}

	if !errors.Is(result, cause) {
		t.Errorf("expected store failure to keep its cause")
	}

	if failure.Store("todo", nil) != nil {
		t.Errorf("expected nil for nil cause")
	}
}

func TestExternalAPI(t *testing.T) {
	result := failure.ExternalAPI("google calendar", errors.New("503 service unavailable"))

	if code := failure.GetCode(result); code != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, code)
	}

	if result.Error() != "google calendar api error: 503 service unavailable" {
		t.Errorf("unexpected message: %s", result.Error())
	}
}

func TestUnauthorized(t *testing.T) {
	result := failure.Unauthorized("token expired")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusUnauthorized {
		t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, f.Code)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("update todo: %w", failure.NotFound("todo")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
