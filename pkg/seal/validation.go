package seal

import (
	"fmt"
	"strings"
)

// SectionErrors lists the incomplete required fields of one section
type SectionErrors struct {
	SectionKey string   `json:"section_key"`
	Fields     []string `json:"fields"`
}

// ValidationError reports every incomplete required field across the
// questionnaire, not just the first. The submission caller needs the full set
// to show all missing fields at once.
type ValidationError struct {
	Sections []SectionErrors `json:"sections"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Sections))
	for _, s := range e.Sections {
		parts = append(parts, fmt.Sprintf("%s: %s", s.SectionKey, strings.Join(s.Fields, ", ")))
	}
	return "questionnaire incomplete: " + strings.Join(parts, "; ")
}

// ValidateSubmission checks every required field of every non-optional section.
// The active section is checked first so the interactive caller hears about its
// current screen before anything else; all failures are still collected.
// Returns nil when the questionnaire is submittable.
func ValidateSubmission(schema []SectionDef, responses Responses, activeSection string) *ValidationError {
	ordered := make([]SectionDef, 0, len(schema))
	if active, ok := SectionByKey(activeSection); ok && !active.Optional {
		ordered = append(ordered, active)
	}
	for _, section := range schema {
		if section.Key == activeSection || section.Optional {
			continue
		}
		ordered = append(ordered, section)
	}

	var failed []SectionErrors
	for _, section := range ordered {
		values := responses[section.Key]

		var missing []string
		for _, field := range section.Fields {
			if !field.Required {
				continue
			}
			if !FieldComplete(field, values[field.Key]) {
				missing = append(missing, field.Key)
			}
		}
		if len(missing) > 0 {
			failed = append(failed, SectionErrors{SectionKey: section.Key, Fields: missing})
		}
	}

	if len(failed) > 0 {
		return &ValidationError{Sections: failed}
	}
	return nil
}
