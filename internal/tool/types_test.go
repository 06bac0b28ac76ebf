package tool

import (
	"encoding/json"
	"testing"
)

func decodeSchema(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	return schema
}

func TestBuildSchemaProperties(t *testing.T) {
	raw := BuildSchema(
		SchemaParam{Name: "query", Type: "string", Description: "the query", Required: true},
		SchemaParam{Name: "k", Type: "integer", Description: "result count"},
	)
	schema := decodeSchema(t, raw)

	if schema["type"] != "object" {
		t.Fatalf("type = %v", schema["type"])
	}
	props, _ := schema["properties"].(map[string]any)
	query, _ := props["query"].(map[string]any)
	if query["type"] != "string" || query["description"] != "the query" {
		t.Fatalf("query property = %v", query)
	}

	required, _ := schema["required"].([]any)
	if len(required) != 1 || required[0] != "query" {
		t.Fatalf("required = %v", required)
	}
}

func TestBuildSchemaEnumAndArray(t *testing.T) {
	raw := BuildSchema(
		SchemaParam{Name: "sort_by", Type: "string", Enum: []string{"views", "date"}},
		SchemaParam{Name: "urls", Type: "array", Items: "string", Required: true},
	)
	schema := decodeSchema(t, raw)
	props, _ := schema["properties"].(map[string]any)

	sortBy, _ := props["sort_by"].(map[string]any)
	enum, _ := sortBy["enum"].([]any)
	if len(enum) != 2 || enum[0] != "views" {
		t.Fatalf("enum = %v", enum)
	}

	urls, _ := props["urls"].(map[string]any)
	items, _ := urls["items"].(map[string]any)
	if items["type"] != "string" {
		t.Fatalf("items = %v", items)
	}
}

func TestBuildSchemaNoParams(t *testing.T) {
	schema := decodeSchema(t, BuildSchema())
	if _, hasRequired := schema["required"]; hasRequired {
		t.Fatal("empty schema should omit required")
	}
	props, _ := schema["properties"].(map[string]any)
	if len(props) != 0 {
		t.Fatalf("properties = %v", props)
	}
}
