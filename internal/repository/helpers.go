// Package repository implements the typed persistence gateway for the
// three record kinds (author, book, user). Repositories translate between
// SurrealDB result shapes and the model types; they contain no business
// logic.
package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isDuplicateError checks if an error is a unique constraint violation
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists") ||
		strings.Contains(errStr, "already contains")
}

// recordID converts a SurrealDB record id (which may be a complex object)
// to its string form "table:id"
func recordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
		return ""
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if inner, ok := v["id"].(string); ok {
				return tb + ":" + inner
			}
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var rid models.RecordID
		if err := json.Unmarshal(data, &rid); err == nil {
			return rid.String()
		}
	}

	return fmt.Sprintf("%v", id)
}

// resultRows flattens a Query response into its row maps. Each statement
// result arrives wrapped as {status: "OK", result: [...]}.
func resultRows(results []interface{}) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		resp, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		data, ok := resp["result"].([]interface{})
		if !ok {
			continue
		}
		for _, item := range data {
			if m, ok := item.(map[string]interface{}); ok {
				rows = append(rows, m)
			}
		}
	}
	return rows
}

// asRow converts a QueryOne result to a row map
func asRow(result interface{}) (map[string]interface{}, bool) {
	m, ok := result.(map[string]interface{})
	return m, ok
}

// getString extracts a string value from a row
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt extracts an int value from a row
func getInt(m map[string]interface{}, key string) int {
	return toInt(m[key])
}

// getIntPtr extracts an optional int value from a row
func getIntPtr(m map[string]interface{}, key string) *int {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	n := toInt(v)
	return &n
}

// getStringSlice extracts a string slice from a row
func getStringSlice(m map[string]interface{}, key string) []string {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	result := make([]string, 0, len(v))
	for _, item := range v {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// toInt converts the numeric types SurrealDB responses use to int
func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	}
	return 0
}
