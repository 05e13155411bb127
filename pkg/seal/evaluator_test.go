package seal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldComplete_NotRequired(t *testing.T) {
	field := FieldDef{Key: "optional_notes", Type: FieldTextarea, Required: false}

	assert.True(t, FieldComplete(field, nil))
	assert.True(t, FieldComplete(field, ""))
}

func TestFieldComplete_TextFields(t *testing.T) {
	tests := []struct {
		name     string
		ftype    FieldType
		value    interface{}
		complete bool
	}{
		{"text with content", FieldText, "Acme Corp", true},
		{"text empty", FieldText, "", false},
		{"text whitespace only", FieldText, "   ", false},
		{"text nil", FieldText, nil, false},
		{"url with content", FieldURL, "https://example.com", true},
		{"email with content", FieldEmail, "ceo@example.com", true},
		{"textarea empty", FieldTextarea, "", false},
		{"select chosen", FieldSelect, "manufacturing", true},
		{"non-string value", FieldText, 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := FieldDef{Key: "f", Type: tt.ftype, Required: true}
			assert.Equal(t, tt.complete, FieldComplete(field, tt.value))
		})
	}
}

func TestFieldComplete_Number(t *testing.T) {
	field := FieldDef{Key: "employee_count", Type: FieldNumber, Required: true}

	assert.True(t, FieldComplete(field, float64(15))) // JSON numbers decode as float64
	assert.True(t, FieldComplete(field, 3))
	assert.False(t, FieldComplete(field, float64(0)))
	assert.False(t, FieldComplete(field, float64(-2)))
	assert.False(t, FieldComplete(field, "15"))
	assert.False(t, FieldComplete(field, nil))
}

func TestFieldComplete_Boolean(t *testing.T) {
	field := FieldDef{Key: "ethics_officer", Type: FieldBoolean, Required: true}

	// An explicit false is still an answer; only absence is incomplete.
	assert.True(t, FieldComplete(field, true))
	assert.True(t, FieldComplete(field, false))
	assert.False(t, FieldComplete(field, nil))
}

func TestFieldComplete_Array(t *testing.T) {
	field := FieldDef{Key: "certs", Type: FieldArray, Required: true}

	assert.True(t, FieldComplete(field, []interface{}{"iso9001"}))
	assert.True(t, FieldComplete(field, []string{"iso9001", "bcorp"}))
	assert.False(t, FieldComplete(field, []interface{}{}))
	assert.False(t, FieldComplete(field, nil))
}

func TestFieldComplete_File(t *testing.T) {
	field := FieldDef{Key: "doc", Type: FieldFile, Required: true}

	assert.True(t, FieldComplete(field, map[string]interface{}{
		"file": map[string]interface{}{"id": "x", "file_url": "https://cdn.example.com/doc.pdf"},
	}))
	assert.True(t, FieldComplete(field, "https://cdn.example.com/doc.pdf"))
	assert.False(t, FieldComplete(field, nil))
	assert.False(t, FieldComplete(field, map[string]interface{}{}))
}

func TestFieldComplete_CompositeAny(t *testing.T) {
	field := FieldDef{
		Key:            "anti_corruption_policy",
		Type:           FieldFile,
		Required:       true,
		InputModes:     []InputMode{ModeText, ModeFile},
		CompletionMode: CompleteAny,
	}

	// Neither mode satisfied
	assert.False(t, FieldComplete(field, map[string]interface{}{
		"text": "",
		"file": nil,
	}))

	// File satisfies
	assert.True(t, FieldComplete(field, map[string]interface{}{
		"text": "",
		"file": map[string]interface{}{"id": "x", "file_url": "https://cdn.example.com/p.pdf"},
	}))

	// Text satisfies
	assert.True(t, FieldComplete(field, map[string]interface{}{
		"text": "We prohibit all forms of bribery.",
	}))

	// Agreement acceptance counts as the file mode
	assert.True(t, FieldComplete(field, map[string]interface{}{
		"agreement": map[string]interface{}{"accepted": true, "template_id": "anti-corruption-v2"},
	}))

	// Declined agreement does not
	assert.False(t, FieldComplete(field, map[string]interface{}{
		"agreement": map[string]interface{}{"accepted": false},
	}))
}

func TestFieldComplete_CompositeAll(t *testing.T) {
	field := FieldDef{
		Key:            "peace_commitment_statement",
		Type:           FieldFile,
		Required:       true,
		InputModes:     []InputMode{ModeText, ModeFile},
		CompletionMode: CompleteAll,
	}

	// Only one of two modes satisfied
	assert.False(t, FieldComplete(field, map[string]interface{}{
		"text": "We commit to peaceful operations.",
	}))

	// Both satisfied
	assert.True(t, FieldComplete(field, map[string]interface{}{
		"text": "We commit to peaceful operations.",
		"file": map[string]interface{}{"id": "s1", "file_url": "https://cdn.example.com/statement.pdf"},
	}))
}

func TestFieldComplete_CompositeNonObjectValue(t *testing.T) {
	field := FieldDef{
		Key:        "grievance_mechanism",
		Type:       FieldFile,
		Required:   true,
		InputModes: []InputMode{ModeText, ModeURL},
	}

	assert.False(t, FieldComplete(field, "plain string"))
	assert.False(t, FieldComplete(field, nil))
}
