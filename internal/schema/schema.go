// Package schema validates tool arguments against the minimal JSON-Schema
// subset used by the tool catalog: required fields, primitive types, string
// enums and integer minimum/maximum bounds. Extra fields are allowed.
package schema

import (
	"fmt"
	"math"
)

// ValidationError reports an argument that failed schema validation.
type ValidationError struct {
	Field   string `json:"field"`   // Field that failed validation
	Value   any    `json:"value"`   // Value that was provided
	Message string `json:"message"` // Human-readable error message
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// Validate checks args against a JSON schema map ({"type":"object",
// "properties":{...},"required":[...]}). It returns the first violation found.
func Validate(args map[string]any, schema map[string]any) error {
	for _, name := range requiredFields(schema) {
		if _, exists := args[name]; !exists {
			return &ValidationError{
				Field:   name,
				Message: "required field is missing",
			}
		}
	}

	properties, _ := schema["properties"].(map[string]any)
	for fieldName, value := range args {
		propMap, ok := properties[fieldName].(map[string]any)
		if !ok {
			continue // Allow extra fields
		}
		if err := validateField(fieldName, value, propMap); err != nil {
			return err
		}
	}

	return nil
}

func validateField(name string, value any, prop map[string]any) error {
	expectedType, _ := prop["type"].(string)
	if !isValidType(value, expectedType) {
		return &ValidationError{
			Field:   name,
			Value:   value,
			Message: fmt.Sprintf("expected type %s, got %T", expectedType, value),
		}
	}

	if enum, ok := prop["enum"]; ok {
		if err := validateEnum(name, value, enum); err != nil {
			return err
		}
	}

	if expectedType == "integer" || expectedType == "number" {
		if err := validateBounds(name, value, prop); err != nil {
			return err
		}
	}

	return nil
}

func validateEnum(name string, value any, enum any) error {
	allowed := toAnySlice(enum)
	if allowed == nil {
		return nil
	}
	for _, candidate := range allowed {
		if fmt.Sprintf("%v", candidate) == fmt.Sprintf("%v", value) {
			return nil
		}
	}
	return &ValidationError{
		Field:   name,
		Value:   value,
		Message: fmt.Sprintf("value %v is not one of the allowed values %v", value, allowed),
	}
}

func validateBounds(name string, value any, prop map[string]any) error {
	num, ok := toFloat(value)
	if !ok {
		return nil
	}
	if min, ok := toFloat(prop["minimum"]); ok && num < min {
		return &ValidationError{
			Field:   name,
			Value:   value,
			Message: fmt.Sprintf("value %v is below minimum %v", value, min),
		}
	}
	if max, ok := toFloat(prop["maximum"]); ok && num > max {
		return &ValidationError{
			Field:   name,
			Value:   value,
			Message: fmt.Sprintf("value %v is above maximum %v", value, max),
		}
	}
	return nil
}

func requiredFields(schema map[string]any) []string {
	var out []string
	switch req := schema["required"].(type) {
	case []string:
		out = req
	case []any:
		for _, r := range req {
			if s, ok := r.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func toAnySlice(v any) []any {
	switch vv := v.(type) {
	case []any:
		return vv
	case []string:
		out := make([]any, len(vv))
		for i, s := range vv {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// isValidType checks a value against the expected JSON schema type. JSON
// decoding produces float64 for every number, so integer checks accept whole
// floats.
func isValidType(value any, expectedType string) bool {
	if value == nil {
		return true // nil is valid for any type
	}

	switch expectedType {
	case "string":
		_, ok := value.(string)
		return ok
	case "integer":
		switch v := value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		case float64:
			return v == math.Trunc(v)
		}
		return false
	case "number":
		switch value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return true
		}
		return false
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "array":
		_, ok := value.([]any)
		return ok
	case "object":
		_, ok := value.(map[string]any)
		return ok
	default:
		return true // Unknown types are assumed valid
	}
}
