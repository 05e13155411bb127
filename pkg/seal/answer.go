package seal

// FileUpload is a reference to an uploaded document. FileURL is opaque to the
// engine; the storage layer resolves it.
type FileUpload struct {
	ID      string `json:"id"`
	FileURL string `json:"file_url"`
	Name    string `json:"name,omitempty"`
}

// AgreementAcceptance records acceptance of a provided template in place of an upload
type AgreementAcceptance struct {
	Accepted   bool   `json:"accepted"`
	TemplateID string `json:"template_id,omitempty"`
	AcceptedAt string `json:"accepted_at,omitempty"`
}

// ModeAnswer is the value shape of a composite field: one requirement that can
// be satisfied several ways. Members map to the field's declared input modes.
type ModeAnswer struct {
	Text      string               `json:"text,omitempty"`
	URL       string               `json:"url,omitempty"`
	File      *FileUpload          `json:"file,omitempty"`
	Agreement *AgreementAcceptance `json:"agreement,omitempty"`
}

// decodeModeAnswer extracts a ModeAnswer from a raw JSON response value.
// Values arrive as map[string]interface{} after unmarshalling.
func decodeModeAnswer(value interface{}) (ModeAnswer, bool) {
	if v, ok := value.(ModeAnswer); ok {
		return v, true
	}
	if v, ok := value.(*ModeAnswer); ok && v != nil {
		return *v, true
	}

	m, ok := value.(map[string]interface{})
	if !ok {
		return ModeAnswer{}, false
	}

	var answer ModeAnswer
	if s, ok := m["text"].(string); ok {
		answer.Text = s
	}
	if s, ok := m["url"].(string); ok {
		answer.URL = s
	}
	if f, ok := m["file"].(map[string]interface{}); ok {
		upload := &FileUpload{}
		if id, ok := f["id"].(string); ok {
			upload.ID = id
		}
		if u, ok := f["file_url"].(string); ok {
			upload.FileURL = u
		}
		if n, ok := f["name"].(string); ok {
			upload.Name = n
		}
		if upload.ID != "" || upload.FileURL != "" {
			answer.File = upload
		}
	}
	if a, ok := m["agreement"].(map[string]interface{}); ok {
		acc := &AgreementAcceptance{}
		if accepted, ok := a["accepted"].(bool); ok {
			acc.Accepted = accepted
		}
		if tid, ok := a["template_id"].(string); ok {
			acc.TemplateID = tid
		}
		if at, ok := a["accepted_at"].(string); ok {
			acc.AcceptedAt = at
		}
		if acc.Accepted {
			answer.Agreement = acc
		}
	}
	return answer, true
}
