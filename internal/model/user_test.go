package model

import (
	"errors"
	"testing"
)

func TestUser_Validate_Valid(t *testing.T) {
	u := &User{Username: "mluukkai", FavoriteGenre: "refactoring"}

	if err := u.Validate(); err != nil {
		t.Errorf("expected valid user, got error: %v", err)
	}
}

func TestUser_Validate_ShortUsername(t *testing.T) {
	u := &User{Username: "bob", FavoriteGenre: "crime"}

	err := u.Validate()
	if err == nil {
		t.Fatal("expected error for 3-character username")
	}

	var gqlErr *GraphQLError
	if !errors.As(err, &gqlErr) {
		t.Fatalf("expected *GraphQLError, got %T", err)
	}
	if gqlErr.Ext["code"] != CodeBadUserInput {
		t.Errorf("expected code %s, got %v", CodeBadUserInput, gqlErr.Ext["code"])
	}

	invalidArgs, ok := gqlErr.Ext["invalidArgs"].(map[string]interface{})
	if !ok {
		t.Fatal("expected invalidArgs in extensions")
	}
	if invalidArgs["username"] != "bob" {
		t.Errorf("expected offending username in invalidArgs, got %v", invalidArgs["username"])
	}
}

func TestUser_Validate_UsernameBoundary(t *testing.T) {
	// Exactly 5 characters is valid
	u := &User{Username: "abcde", FavoriteGenre: "scifi"}
	if err := u.Validate(); err != nil {
		t.Errorf("expected 5-character username to be valid, got: %v", err)
	}

	u.Username = "abcd"
	if err := u.Validate(); err == nil {
		t.Error("expected 4-character username to be invalid")
	}
}

func TestUser_Validate_ShortFavoriteGenre(t *testing.T) {
	u := &User{Username: "mluukkai", FavoriteGenre: "db"}

	if err := u.Validate(); err == nil {
		t.Error("expected error for 2-character favoriteGenre")
	}

	u.FavoriteGenre = "pop"
	if err := u.Validate(); err != nil {
		t.Errorf("expected 3-character favoriteGenre to be valid, got: %v", err)
	}
}
