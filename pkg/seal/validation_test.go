package seal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSubmission_ReportsAllMissingFields(t *testing.T) {
	schema := testSchema()

	err := ValidateSubmission(schema, Responses{}, "")

	require.NotNil(t, err)
	require.Len(t, err.Sections, 2)
	assert.Equal(t, []string{"a1", "a2"}, err.Sections[0].Fields)
	assert.Equal(t, []string{"b1"}, err.Sections[1].Fields)
}

func TestValidateSubmission_ActiveSectionFirst(t *testing.T) {
	schema := testSchema()

	err := ValidateSubmission(schema, Responses{}, "b")

	require.NotNil(t, err)
	assert.Equal(t, "b", err.Sections[0].SectionKey)
	assert.Equal(t, "a", err.Sections[1].SectionKey)
}

func TestValidateSubmission_OptionalSectionIgnored(t *testing.T) {
	schema := testSchema()
	responses := Responses{
		"a": {"a1": "ok", "a2": float64(3)},
		"b": {"b1": true},
		// "extra" untouched
	}

	err := ValidateSubmission(schema, responses, "a")
	assert.Nil(t, err)
}

func TestValidateSubmission_ErrorMessage(t *testing.T) {
	schema := []SectionDef{{
		Key: "s", Title: "S", Weight: 100,
		Fields: []FieldDef{{Key: "f", Type: FieldText, Required: true}},
	}}

	err := ValidateSubmission(schema, Responses{}, "")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "s: f")
}
