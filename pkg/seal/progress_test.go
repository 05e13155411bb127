package seal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() []SectionDef {
	return []SectionDef{
		{
			Key: "a", Title: "A", Weight: 60,
			Fields: []FieldDef{
				{Key: "a1", Type: FieldText, Required: true},
				{Key: "a2", Type: FieldNumber, Required: true},
			},
		},
		{
			Key: "b", Title: "B", Weight: 40,
			Fields: []FieldDef{
				{Key: "b1", Type: FieldBoolean, Required: true},
			},
		},
		{
			Key: "extra", Title: "Extra", Weight: 0, Optional: true,
			Fields: []FieldDef{
				{Key: "x1", Type: FieldTextarea, Required: false},
			},
		},
	}
}

func TestComputeProgress_Empty(t *testing.T) {
	p := ComputeProgress(testSchema(), Responses{})

	assert.Equal(t, 0, p.OverallPercentage)
	// The optional section has no required fields, so it sits at 100%.
	assert.Equal(t, 1, p.CompletedSections)
	require.Len(t, p.Sections, 3)
	assert.Equal(t, 0, p.Sections[0].Percentage)
	assert.Equal(t, 100, p.Sections[2].Percentage)
}

func TestComputeProgress_Partial(t *testing.T) {
	responses := Responses{
		"a": {"a1": "done"},
	}

	p := ComputeProgress(testSchema(), responses)

	// Section a: 1/2 = 50%; b: 0%. Overall = (50*60 + 0*40) / 100 = 30.
	assert.Equal(t, 50, p.Sections[0].Percentage)
	assert.Equal(t, 0, p.Sections[1].Percentage)
	assert.Equal(t, 30, p.OverallPercentage)
}

func TestComputeProgress_Complete(t *testing.T) {
	responses := Responses{
		"a": {"a1": "done", "a2": float64(7)},
		"b": {"b1": false},
	}

	p := ComputeProgress(testSchema(), responses)

	assert.Equal(t, 100, p.OverallPercentage)
	assert.Equal(t, 3, p.CompletedSections)
}

func TestComputeProgress_OptionalDoesNotBlock(t *testing.T) {
	// The optional section stays untouched; overall still reaches 100.
	responses := Responses{
		"a": {"a1": "done", "a2": float64(7)},
		"b": {"b1": true},
	}

	p := ComputeProgress(testSchema(), responses)
	assert.Equal(t, 100, p.OverallPercentage)
}

func TestComputeProgress_Idempotent(t *testing.T) {
	responses := Responses{
		"a": {"a1": "done"},
		"b": {"b1": true},
	}

	first := ComputeProgress(testSchema(), responses)
	second := ComputeProgress(testSchema(), responses)

	assert.Equal(t, first, second)
}

func TestComputeProgress_EmptySectionIsComplete(t *testing.T) {
	schema := []SectionDef{{Key: "empty", Title: "Empty", Weight: 100}}

	p := ComputeProgress(schema, Responses{})

	assert.Equal(t, 100, p.Sections[0].Percentage)
	assert.Equal(t, 100, p.OverallPercentage)
}

func TestComputeProgress_RealSchemaWeightsSumTo100(t *testing.T) {
	total := 0
	for _, s := range Schema() {
		if !s.Optional {
			total += s.Weight
		}
	}
	assert.Equal(t, 100, total)
}
