// internal/genai/schema.go
package genai

import (
	"fmt"
	"strings"
)

// SchemaType values follow the Gemini structured-output type names.
type SchemaType string

const (
	TypeObject  SchemaType = "OBJECT"
	TypeArray   SchemaType = "ARRAY"
	TypeString  SchemaType = "STRING"
	TypeNumber  SchemaType = "NUMBER"
	TypeInteger SchemaType = "INTEGER"
	TypeBoolean SchemaType = "BOOLEAN"
)

// Schema is a declared response shape, sent with a request as the
// responseSchema and reused locally to verify the payload the model actually
// returned. The model is asked to conform; it is not trusted to.
type Schema struct {
	Type       SchemaType         `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
}

func Object(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: properties, Required: required}
}

func Array(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

func String() *Schema  { return &Schema{Type: TypeString} }
func Number() *Schema  { return &Schema{Type: TypeNumber} }
func Integer() *Schema { return &Schema{Type: TypeInteger} }
func Boolean() *Schema { return &Schema{Type: TypeBoolean} }

func StringEnum(values ...string) *Schema {
	return &Schema{Type: TypeString, Enum: values}
}

// SchemaError reports where a payload diverged from its declared schema.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "schema mismatch: " + e.Message
	}
	return fmt.Sprintf("schema mismatch at %s: %s", e.Path, e.Message)
}

// Validate checks a decoded JSON value (the interface{} tree produced by
// encoding/json) against the schema. Unknown object keys are tolerated, the
// model routinely volunteers extras; missing required keys, wrong types, and
// out-of-enum strings are not. A null value is accepted for any optional
// field.
func (s *Schema) Validate(v interface{}) error {
	return s.validate(v, "$")
}

func (s *Schema) validate(v interface{}, path string) error {
	if v == nil {
		return nil
	}

	switch s.Type {
	case TypeObject:
		obj, ok := v.(map[string]interface{})
		if !ok {
			return &SchemaError{Path: path, Message: fmt.Sprintf("expected object, got %T", v)}
		}
		for _, key := range s.Required {
			val, present := obj[key]
			if !present || val == nil {
				return &SchemaError{Path: path, Message: "missing required property " + key}
			}
		}
		for key, prop := range s.Properties {
			val, present := obj[key]
			if !present {
				continue
			}
			if err := prop.validate(val, path+"."+key); err != nil {
				return err
			}
		}
	case TypeArray:
		arr, ok := v.([]interface{})
		if !ok {
			return &SchemaError{Path: path, Message: fmt.Sprintf("expected array, got %T", v)}
		}
		if s.Items != nil {
			for i, item := range arr {
				if err := s.Items.validate(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
					return err
				}
			}
		}
	case TypeString:
		str, ok := v.(string)
		if !ok {
			return &SchemaError{Path: path, Message: fmt.Sprintf("expected string, got %T", v)}
		}
		if len(s.Enum) > 0 && !containsFold(s.Enum, str) {
			return &SchemaError{Path: path, Message: fmt.Sprintf("value %q not in enum", str)}
		}
	case TypeNumber, TypeInteger:
		if _, ok := v.(float64); !ok {
			return &SchemaError{Path: path, Message: fmt.Sprintf("expected number, got %T", v)}
		}
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return &SchemaError{Path: path, Message: fmt.Sprintf("expected boolean, got %T", v)}
		}
	}

	return nil
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
