package seal

// FieldType enumerates the questionnaire field kinds
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldURL         FieldType = "url"
	FieldEmail       FieldType = "email"
	FieldNumber      FieldType = "number"
	FieldBoolean     FieldType = "boolean"
	FieldSelect      FieldType = "select"
	FieldMultiSelect FieldType = "multiselect"
	FieldTextarea    FieldType = "textarea"
	FieldFile        FieldType = "file"
	FieldArray       FieldType = "array"
)

// InputMode is one of several ways a composite field can be satisfied
type InputMode string

const (
	ModeText InputMode = "text"
	ModeURL  InputMode = "url"
	ModeFile InputMode = "file" // satisfied by a file upload or an accepted template agreement
)

// CompletionMode decides how many declared input modes must be satisfied
type CompletionMode string

const (
	CompleteAny CompletionMode = "any"
	CompleteAll CompletionMode = "all"
)

// FieldDef describes one questionnaire field
type FieldDef struct {
	Key            string         `json:"key"`
	Label          string         `json:"label"`
	Type           FieldType      `json:"type"`
	Required       bool           `json:"required"`
	Options        []string       `json:"options,omitempty"`
	InputModes     []InputMode    `json:"input_modes,omitempty"`
	CompletionMode CompletionMode `json:"completion_mode,omitempty"` // defaults to any
}

// SectionDef describes one questionnaire section. Weights of non-optional
// sections sum to 100; optional sections never block submission.
type SectionDef struct {
	Key      string     `json:"key"`
	Title    string     `json:"title"`
	Weight   int        `json:"weight"`
	Optional bool       `json:"optional"`
	Fields   []FieldDef `json:"fields"`
}

// Schema returns the Peace Seal application questionnaire definition.
// The returned slice is shared; callers must not mutate it.
func Schema() []SectionDef {
	return questionnaireSchema
}

// SectionByKey looks up a section definition
func SectionByKey(key string) (SectionDef, bool) {
	for _, s := range questionnaireSchema {
		if s.Key == key {
			return s, true
		}
	}
	return SectionDef{}, false
}

var questionnaireSchema = []SectionDef{
	{
		Key:    "company_profile",
		Title:  "Company Profile",
		Weight: 15,
		Fields: []FieldDef{
			{Key: "company_name", Label: "Legal company name", Type: FieldText, Required: true},
			{Key: "website", Label: "Company website", Type: FieldURL, Required: true},
			{Key: "contact_email", Label: "Primary contact email", Type: FieldEmail, Required: true},
			{Key: "employee_count", Label: "Number of employees", Type: FieldNumber, Required: true},
			{Key: "industry", Label: "Industry", Type: FieldSelect, Required: true,
				Options: []string{"manufacturing", "technology", "retail", "finance", "agriculture", "services", "other"}},
			{Key: "regions_of_operation", Label: "Regions of operation", Type: FieldMultiSelect, Required: true,
				Options: []string{"north_america", "south_america", "europe", "africa", "middle_east", "asia_pacific"}},
			{Key: "company_description", Label: "What does your company do?", Type: FieldTextarea, Required: true},
		},
	},
	{
		Key:    "governance_ethics",
		Title:  "Governance & Ethics",
		Weight: 20,
		Fields: []FieldDef{
			{Key: "code_of_conduct", Label: "Code of conduct", Type: FieldFile, Required: true,
				InputModes: []InputMode{ModeURL, ModeFile}, CompletionMode: CompleteAny},
			{Key: "ethics_officer", Label: "Do you have a designated ethics officer?", Type: FieldBoolean, Required: true},
			{Key: "board_oversight", Label: "Describe board oversight of ethical conduct", Type: FieldTextarea, Required: true},
			{Key: "anti_corruption_policy", Label: "Anti-corruption policy", Type: FieldFile, Required: true,
				InputModes: []InputMode{ModeText, ModeURL, ModeFile}, CompletionMode: CompleteAny},
			{Key: "whistleblower_channel", Label: "Whistleblower reporting channel", Type: FieldURL, Required: true},
			{Key: "existing_certifications", Label: "Existing certifications", Type: FieldArray, Required: false},
		},
	},
	{
		Key:    "labor_practices",
		Title:  "Labor Practices",
		Weight: 20,
		Fields: []FieldDef{
			{Key: "fair_wage_policy", Label: "Fair wage policy", Type: FieldFile, Required: true,
				InputModes: []InputMode{ModeURL, ModeFile}, CompletionMode: CompleteAny},
			{Key: "collective_bargaining", Label: "Do you recognize collective bargaining?", Type: FieldBoolean, Required: true},
			{Key: "workplace_safety_program", Label: "Workplace safety program", Type: FieldTextarea, Required: true},
			{Key: "grievance_mechanism", Label: "Employee grievance mechanism", Type: FieldFile, Required: true,
				InputModes: []InputMode{ModeText, ModeURL}, CompletionMode: CompleteAny},
			{Key: "child_labor_attestation", Label: "No child labor attestation", Type: FieldFile, Required: true,
				InputModes: []InputMode{ModeFile}, CompletionMode: CompleteAny},
		},
	},
	{
		Key:    "community_engagement",
		Title:  "Community Engagement",
		Weight: 15,
		Fields: []FieldDef{
			{Key: "community_programs", Label: "Community programs you run or support", Type: FieldTextarea, Required: true},
			{Key: "local_hiring_percentage", Label: "Percentage of local hires", Type: FieldNumber, Required: true},
			{Key: "volunteer_policy", Label: "Employee volunteering policy", Type: FieldFile, Required: true,
				InputModes: []InputMode{ModeText, ModeURL, ModeFile}, CompletionMode: CompleteAny},
			{Key: "charitable_giving", Label: "Charitable giving programs", Type: FieldArray, Required: false},
			{Key: "community_partnerships", Label: "Community partnerships", Type: FieldMultiSelect, Required: false,
				Options: []string{"schools", "local_government", "ngos", "faith_groups", "other"}},
		},
	},
	{
		Key:    "conflict_policy",
		Title:  "Conflict & Peace Policy",
		Weight: 20,
		Fields: []FieldDef{
			{Key: "conflict_zone_operations", Label: "Do you operate in conflict-affected areas?", Type: FieldBoolean, Required: true},
			{Key: "peace_commitment_statement", Label: "Public peace commitment statement", Type: FieldFile, Required: true,
				InputModes: []InputMode{ModeText, ModeFile}, CompletionMode: CompleteAll},
			{Key: "conflict_minerals_policy", Label: "Conflict minerals policy", Type: FieldFile, Required: true,
				InputModes: []InputMode{ModeURL, ModeFile}, CompletionMode: CompleteAny},
			{Key: "sanctions_compliance", Label: "Do you screen against sanctions lists?", Type: FieldBoolean, Required: true},
			{Key: "weapons_involvement", Label: "Involvement with weapons industry", Type: FieldSelect, Required: true,
				Options: []string{"none", "indirect_supplier", "direct_supplier", "manufacturer"}},
		},
	},
	{
		Key:    "supply_chain",
		Title:  "Supply Chain Responsibility",
		Weight: 10,
		Fields: []FieldDef{
			{Key: "supplier_code_of_conduct", Label: "Supplier code of conduct", Type: FieldFile, Required: true,
				InputModes: []InputMode{ModeURL, ModeFile}, CompletionMode: CompleteAny},
			{Key: "supplier_audit_frequency", Label: "How often do you audit suppliers?", Type: FieldSelect, Required: true,
				Options: []string{"never", "on_onboarding", "annually", "quarterly"}},
			{Key: "traceability_system", Label: "Supply chain traceability system", Type: FieldTextarea, Required: true},
		},
	},
	{
		Key:      "additional_information",
		Title:    "Additional Information",
		Weight:   0,
		Optional: true,
		Fields: []FieldDef{
			{Key: "supporting_documents", Label: "Supporting documents", Type: FieldArray, Required: false},
			{Key: "additional_comments", Label: "Anything else we should know?", Type: FieldTextarea, Required: false},
		},
	},
}
