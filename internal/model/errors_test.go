package model

import "testing"

func TestNewAuthenticationError(t *testing.T) {
	err := NewAuthenticationError("not authorized")

	if err.Error() != "not authorized" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if err.Extensions()["code"] != CodeUnauthenticated {
		t.Errorf("expected code %s, got %v", CodeUnauthenticated, err.Extensions()["code"])
	}
}

func TestNewValidationError_CarriesInvalidArgs(t *testing.T) {
	args := map[string]interface{}{"title": "X", "published": 2000}
	err := NewValidationError("title too short", args)

	if err.Extensions()["code"] != CodeBadUserInput {
		t.Errorf("expected code %s, got %v", CodeBadUserInput, err.Extensions()["code"])
	}

	got, ok := err.Extensions()["invalidArgs"].(map[string]interface{})
	if !ok {
		t.Fatal("expected invalidArgs map in extensions")
	}
	if got["title"] != "X" {
		t.Errorf("expected invalidArgs to carry the input, got %v", got)
	}
}

func TestNewInvalidCredentialsError_SharedMessage(t *testing.T) {
	err := NewInvalidCredentialsError()

	// One message for both unknown user and wrong password, so callers
	// cannot tell which was wrong
	if err.Error() != "wrong username or password" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if err.Extensions()["code"] != CodeBadUserInput {
		t.Errorf("expected code %s, got %v", CodeBadUserInput, err.Extensions()["code"])
	}
}
