package repository

import (
	"errors"
	"reflect"
	"testing"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestRecordID_String(t *testing.T) {
	if got := recordID("author:abc"); got != "author:abc" {
		t.Errorf("expected author:abc, got %s", got)
	}
}

func TestRecordID_RecordID(t *testing.T) {
	rid := models.RecordID{Table: "book", ID: "xyz"}

	if got := recordID(rid); got != "book:xyz" {
		t.Errorf("expected book:xyz, got %s", got)
	}
	if got := recordID(&rid); got != "book:xyz" {
		t.Errorf("expected book:xyz from pointer, got %s", got)
	}
}

func TestRecordID_MapFormat(t *testing.T) {
	id := map[string]interface{}{"tb": "user", "id": "demo"}

	if got := recordID(id); got != "user:demo" {
		t.Errorf("expected user:demo, got %s", got)
	}
}

func TestResultRows_UnwrapsStatementWrapper(t *testing.T) {
	results := []interface{}{
		map[string]interface{}{
			"status": "OK",
			"result": []interface{}{
				map[string]interface{}{"name": "Sandi Metz"},
				map[string]interface{}{"name": "Kent Beck"},
			},
		},
	}

	rows := resultRows(results)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["name"] != "Sandi Metz" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
}

func TestResultRows_EmptyResult(t *testing.T) {
	results := []interface{}{
		map[string]interface{}{"status": "OK", "result": []interface{}{}},
	}

	if rows := resultRows(results); len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
	if rows := resultRows(nil); len(rows) != 0 {
		t.Errorf("expected no rows from nil input, got %d", len(rows))
	}
}

func TestGetIntPtr(t *testing.T) {
	row := map[string]interface{}{"born": float64(1952)}

	got := getIntPtr(row, "born")
	if got == nil || *got != 1952 {
		t.Errorf("expected 1952, got %v", got)
	}

	if got := getIntPtr(row, "missing"); got != nil {
		t.Errorf("expected nil for missing key, got %v", got)
	}

	row["born"] = nil
	if got := getIntPtr(row, "born"); got != nil {
		t.Errorf("expected nil for null value, got %v", got)
	}
}

func TestGetInt_NumericTypes(t *testing.T) {
	for _, v := range []interface{}{int(7), int64(7), uint64(7), float64(7), float32(7)} {
		row := map[string]interface{}{"count": v}
		if got := getInt(row, "count"); got != 7 {
			t.Errorf("expected 7 for %T, got %d", v, got)
		}
	}
}

func TestGetStringSlice(t *testing.T) {
	row := map[string]interface{}{
		"genres": []interface{}{"refactoring", "design"},
	}

	got := getStringSlice(row, "genres")
	if !reflect.DeepEqual(got, []string{"refactoring", "design"}) {
		t.Errorf("unexpected genres: %v", got)
	}

	if got := getStringSlice(row, "missing"); got != nil {
		t.Errorf("expected nil for missing key, got %v", got)
	}
}

func TestIsDuplicateError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("connection refused"), false},
		{errors.New("Database index `user_username` already contains 'bob'"), true},
		{errors.New("unique constraint violated"), true},
		{errors.New("duplicate record"), true},
	}

	for _, tc := range cases {
		if got := isDuplicateError(tc.err); got != tc.want {
			t.Errorf("isDuplicateError(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestDecodeBook(t *testing.T) {
	row := map[string]interface{}{
		"id":        models.RecordID{Table: "book", ID: "b1"},
		"title":     "Refactoring",
		"published": float64(1999),
		"author":    models.RecordID{Table: "author", ID: "a1"},
		"genres":    []interface{}{"refactoring"},
	}

	book := decodeBook(row)
	if book.ID != "book:b1" {
		t.Errorf("unexpected id: %s", book.ID)
	}
	if book.AuthorID != "author:a1" {
		t.Errorf("expected flattened author reference, got %s", book.AuthorID)
	}
	if book.Published != 1999 {
		t.Errorf("unexpected published year: %d", book.Published)
	}
	if !reflect.DeepEqual(book.Genres, []string{"refactoring"}) {
		t.Errorf("unexpected genres: %v", book.Genres)
	}
}

func TestDecodeAuthor_OptionalBorn(t *testing.T) {
	row := map[string]interface{}{
		"id":   models.RecordID{Table: "author", ID: "a1"},
		"name": "Sandi Metz",
	}

	author := decodeAuthor(row)
	if author.Name != "Sandi Metz" {
		t.Errorf("unexpected name: %s", author.Name)
	}
	if author.Born != nil {
		t.Errorf("expected nil born, got %v", author.Born)
	}

	row["born"] = float64(1960)
	author = decodeAuthor(row)
	if author.Born == nil || *author.Born != 1960 {
		t.Errorf("expected born 1960, got %v", author.Born)
	}
}
