package seal

import (
	"strings"
)

// FieldComplete reports whether a submitted value satisfies a field definition.
// It is the single completion authority: both the interactive progress endpoint
// and the server-side submission gate go through it, so the two can never
// disagree about what "complete" means.
func FieldComplete(field FieldDef, value interface{}) bool {
	if !field.Required {
		return true
	}

	if len(field.InputModes) > 0 {
		return compositeComplete(field, value)
	}

	switch field.Type {
	case FieldBoolean:
		return value != nil
	case FieldArray, FieldMultiSelect:
		return nonEmptySequence(value)
	case FieldFile:
		return filePresent(value)
	case FieldNumber:
		n, ok := asNumber(value)
		return ok && n > 0
	default:
		s, ok := value.(string)
		return ok && strings.TrimSpace(s) != ""
	}
}

// compositeComplete evaluates a field that declares input modes. Each declared
// mode is checked against the corresponding member of the ModeAnswer; the
// field's completion mode decides whether one or all must be satisfied.
func compositeComplete(field FieldDef, value interface{}) bool {
	answer, ok := decodeModeAnswer(value)
	if !ok {
		return false
	}

	requireAll := field.CompletionMode == CompleteAll

	satisfiedCount := 0
	for _, mode := range field.InputModes {
		if modeSatisfied(mode, answer) {
			satisfiedCount++
		} else if requireAll {
			return false
		}
	}

	if requireAll {
		return true
	}
	return satisfiedCount > 0
}

func modeSatisfied(mode InputMode, answer ModeAnswer) bool {
	switch mode {
	case ModeText:
		return strings.TrimSpace(answer.Text) != ""
	case ModeURL:
		return strings.TrimSpace(answer.URL) != ""
	case ModeFile:
		if answer.File != nil && (answer.File.ID != "" || answer.File.FileURL != "") {
			return true
		}
		return answer.Agreement != nil && answer.Agreement.Accepted
	default:
		return false
	}
}

func nonEmptySequence(value interface{}) bool {
	switch v := value.(type) {
	case []interface{}:
		return len(v) > 0
	case []string:
		return len(v) > 0
	default:
		return false
	}
}

func filePresent(value interface{}) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	if answer, ok := decodeModeAnswer(value); ok {
		return (answer.File != nil && (answer.File.ID != "" || answer.File.FileURL != "")) ||
			(answer.Agreement != nil && answer.Agreement.Accepted)
	}
	return false
}

func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	default:
		return 0, false
	}
}
