package entities

// PatientProfile drives the simulated patient's persona during the voice
// encounter. It is hidden from the trainee but forms part of the grading
// context.
type PatientProfile struct {
	Background     string   `json:"background"`
	SymptomDetails []string `json:"symptomDetails"`
	Concerns       []string `json:"concerns"`
	Expectations   []string `json:"expectations"`
	Personality    string   `json:"personality"`
}

// MedicalCase is one static practice scenario. Cases are loaded from the
// in-repo catalogue, selected by numeric id, and read-only at runtime.
// KeyFindings values are either a string or a list of strings, mirroring the
// clinical letter format.
type MedicalCase struct {
	ID             int                    `json:"id" validate:"required"`
	PatientName    string                 `json:"patientName"`
	Age            int                    `json:"age"`
	Gender         string                 `json:"gender"`
	ClinicType     string                 `json:"clinicType"`
	Scenario       string                 `json:"scenario"`
	Task           string                 `json:"task"`
	TriageNote     string                 `json:"triageNote"`
	AgentID        string                 `json:"agentId"`
	KeyFindings    map[string]interface{} `json:"keyFindings"`
	PatientProfile PatientProfile         `json:"patientProfile"`
}
