package seal

import (
	"math"
)

// Responses holds submitted questionnaire values keyed by section then field
type Responses map[string]map[string]interface{}

// SectionProgress is the completion state of one section
type SectionProgress struct {
	SectionKey      string `json:"section_key"`
	Title           string `json:"title"`
	CompletedFields int    `json:"completed_fields"`
	TotalFields     int    `json:"total_fields"`
	Percentage      int    `json:"percentage"`
	Optional        bool   `json:"optional"`
}

// Progress is the aggregated completion state of a questionnaire
type Progress struct {
	Sections          []SectionProgress `json:"sections"`
	OverallPercentage int               `json:"overall_percentage"`
	CompletedSections int               `json:"completed_sections"`
}

// ComputeProgress derives per-section and overall completion from the schema
// and the raw responses. Pure function: recomputing with the same input always
// yields the same output, so progress is never persisted.
func ComputeProgress(schema []SectionDef, responses Responses) Progress {
	progress := Progress{
		Sections: make([]SectionProgress, 0, len(schema)),
	}

	weightedSum := 0
	totalWeight := 0

	for _, section := range schema {
		values := responses[section.Key]

		completed := 0
		for _, field := range section.Fields {
			if FieldComplete(field, values[field.Key]) {
				completed++
			}
		}

		percentage := 100
		if len(section.Fields) > 0 {
			percentage = int(math.Round(float64(completed) / float64(len(section.Fields)) * 100))
		}

		progress.Sections = append(progress.Sections, SectionProgress{
			SectionKey:      section.Key,
			Title:           section.Title,
			CompletedFields: completed,
			TotalFields:     len(section.Fields),
			Percentage:      percentage,
			Optional:        section.Optional,
		})

		if percentage == 100 {
			progress.CompletedSections++
		}

		// Optional sections show progress but never move the overall needle.
		if !section.Optional {
			weightedSum += percentage * section.Weight
			totalWeight += section.Weight
		}
	}

	if totalWeight > 0 {
		progress.OverallPercentage = int(math.Round(float64(weightedSum) / float64(totalWeight)))
	} else {
		progress.OverallPercentage = 100
	}

	return progress
}
