// Package llm - schema.go declares the JSON shape a prompt asks the model to return.
package llm

import (
	"fmt"
	"strings"
)

// FieldKind is the declared value kind of an output field.
type FieldKind string

// Field kinds understood by the prompt renderer and the JSON Schema generator.
const (
	KindString  FieldKind = "string"
	KindNumber  FieldKind = "number"
	KindBoolean FieldKind = "boolean"
	KindEnum    FieldKind = "enum"
	KindArray   FieldKind = "array"
	KindObject  FieldKind = "object"
	KindMap     FieldKind = "map"
)

// Field defines a single field in the expected output.
type Field struct {
	Name        string
	Kind        FieldKind
	Enum        []string // KindEnum values
	Items       *Field   // KindArray element, KindMap value (nil means any value)
	Fields      []Field  // KindObject members
	Optional    bool
	Description string
}

// OutputSchema is the named top-level object a prompt asks for.
type OutputSchema struct {
	Name   string
	Fields []Field
}

// String declares a string field.
func String(name string) Field { return Field{Name: name, Kind: KindString} }

// Number declares a numeric field.
func Number(name string) Field { return Field{Name: name, Kind: KindNumber} }

// Boolean declares a boolean field.
func Boolean(name string) Field { return Field{Name: name, Kind: KindBoolean} }

// Enum declares a string field restricted to values.
func Enum(name string, values ...string) Field {
	return Field{Name: name, Kind: KindEnum, Enum: values}
}

// ArrayOf declares an ordered sequence of item.
func ArrayOf(name string, item Field) Field {
	item.Name = ""
	return Field{Name: name, Kind: KindArray, Items: &item}
}

// Object declares a nested mapping with named members.
func Object(name string, fields ...Field) Field {
	return Field{Name: name, Kind: KindObject, Fields: fields}
}

// MapOf declares a mapping with free-form keys. A nil value allows any value kind.
func MapOf(name string, value *Field) Field {
	return Field{Name: name, Kind: KindMap, Items: value}
}

// Opt returns a copy of the field marked optional.
func (f Field) Opt() Field {
	f.Optional = true
	return f
}

// Describe returns a copy of the field with a hint for the model.
func (f Field) Describe(description string) Field {
	f.Description = description
	return f
}

// PromptText renders the schema as the JSON-like template embedded in prompts.
func (s OutputSchema) PromptText() string {
	var sb strings.Builder
	writeObject(&sb, s.Fields, 0)
	return sb.String()
}

const indentUnit = "    "

func writeObject(sb *strings.Builder, fields []Field, depth int) {
	sb.WriteString("{\n")
	inner := strings.Repeat(indentUnit, depth+1)
	for i, field := range fields {
		sb.WriteString(inner)
		fmt.Fprintf(sb, "%q: ", field.Name)
		writeValue(sb, field, depth+1)
		if field.Optional {
			sb.WriteString(" (optional)")
		}
		if i < len(fields)-1 {
			sb.WriteString(",")
		}
		if field.Description != "" {
			fmt.Fprintf(sb, " // %s", field.Description)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString("}")
}

func writeValue(sb *strings.Builder, field Field, depth int) {
	switch field.Kind {
	case KindNumber:
		sb.WriteString("number")
	case KindBoolean:
		sb.WriteString("boolean")
	case KindEnum:
		fmt.Fprintf(sb, "%q", strings.Join(field.Enum, "|"))
	case KindObject:
		writeObject(sb, field.Fields, depth)
	case KindMap:
		sb.WriteString(`{"key": `)
		if field.Items == nil {
			sb.WriteString(`"value"`)
		} else {
			writeValue(sb, *field.Items, depth)
		}
		sb.WriteString("}")
	case KindArray:
		if field.Items == nil {
			sb.WriteString("[]")
			return
		}
		if field.Items.Kind != KindObject {
			sb.WriteString("[")
			writeValue(sb, *field.Items, depth)
			sb.WriteString("]")
			return
		}
		sb.WriteString("[\n")
		sb.WriteString(strings.Repeat(indentUnit, depth+1))
		writeObject(sb, field.Items.Fields, depth+1)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(indentUnit, depth))
		sb.WriteString("]")
	default:
		sb.WriteString(`"string"`)
	}
}

// JSONSchema converts the declaration to a JSON Schema document.
// Only non-optional top-level fields are required; nested members and enum
// values are advisory and only their kinds are enforced. Numbers may also
// arrive as numeric strings, which the record accessors already read.
func (s OutputSchema) JSONSchema() map[string]any {
	doc := objectSchema(s.Fields, true)
	doc["$schema"] = "http://json-schema.org/draft-07/schema#"
	if s.Name != "" {
		doc["title"] = s.Name
	}
	return doc
}

func objectSchema(fields []Field, enforceRequired bool) map[string]any {
	properties := make(map[string]any, len(fields))
	required := []string{}
	for _, field := range fields {
		properties[field.Name] = fieldSchema(field)
		if enforceRequired && !field.Optional {
			required = append(required, field.Name)
		}
	}
	doc := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

// numberTypes is the JSON Schema type of a number-kind field.
var numberTypes = []string{"number", "string"}

func fieldSchema(field Field) map[string]any {
	switch field.Kind {
	case KindNumber:
		return map[string]any{"type": numberTypes}
	case KindBoolean:
		return map[string]any{"type": "boolean"}
	case KindObject:
		return objectSchema(field.Fields, false)
	case KindMap:
		doc := map[string]any{"type": "object"}
		if field.Items != nil {
			doc["additionalProperties"] = fieldSchema(*field.Items)
		}
		return doc
	case KindArray:
		doc := map[string]any{"type": "array"}
		if field.Items != nil {
			doc["items"] = fieldSchema(*field.Items)
		}
		return doc
	default:
		// strings and enums
		return map[string]any{"type": "string"}
	}
}

// ReturnOnlyJSON is the closing instruction of every structured prompt.
const ReturnOnlyJSON = "Return only valid JSON with no additional text or formatting."

// BuildStructuredPrompt appends the rendered schema and the JSON-only instruction to a task prompt.
func BuildStructuredPrompt(task string, schema OutputSchema) RequestEnvelope {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(task, "\n"))
	sb.WriteString("\n\nFormat the output as a JSON object with the following structure:\n")
	sb.WriteString(schema.PromptText())
	sb.WriteString("\n\n")
	sb.WriteString(ReturnOnlyJSON)
	sb.WriteString("\n")
	return RequestEnvelope{Prompt: sb.String(), Schema: &schema}
}
