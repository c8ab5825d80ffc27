// Package cases holds the static practice-scenario catalogue. The catalogue
// is compiled into the binary and read-only at runtime.
package cases

import "github.com/stationprep/consult-assistant/internal/domain/entities"

var catalog = []entities.MedicalCase{
	{
		ID:          1,
		PatientName: "Aoife O'Connor",
		Age:         27,
		Gender:      "female",
		ClinicType:  "Eye Casualty",
		Scenario:    "Explain the likely diagnosis and management plan to the patient",
		Task:        "Explain the likely diagnosis and management plan to the patient",
		TriageNote:  "Right eye painful/red. Worse this morning.",
		AgentID:     "agent_9001k7a6wzgpf0psegzga9371m18",
		KeyFindings: map[string]interface{}{
			"VA":                   "R 6/18 (pinhole 6/12), L 6/6",
			"External":             "epiphora on the right",
			"Cornea (R)":           "~2 mm paracentral epithelial defect with underlying stromal infiltrate; fluorescein positive; mild surrounding oedema; Seidel negative; no dendritic branching",
			"Anterior chamber (R)": "1+ cells, no hypopyon",
			"Pupil":                "Round/reactive; no RAPD",
			"IOP":                  "R 12 mmHg, L 14 mmHg",
		},
		PatientProfile: entities.PatientProfile{
			Background: "27-year-old contact lens wearer who woke up with severe right eye pain and redness",
			SymptomDetails: []string{
				"Wears contact lenses daily",
				"Sometimes sleeps with lenses in",
				"Pain started overnight",
				"Vision is blurry in affected eye",
				"Light sensitivity",
			},
			Concerns: []string{
				"Worried about losing vision",
				"Needs to work (office job with computer)",
				"Has important presentation next week",
			},
			Expectations: []string{
				"Wants quick treatment",
				"Hopes to continue wearing contacts",
				"Concerned about time off work",
			},
			Personality: "Anxious but cooperative, asks relevant questions",
		},
	},
	{
		ID:          2,
		PatientName: "Adam Jones",
		Age:         65,
		Gender:      "male",
		ClinicType:  "Glaucoma Clinic (New Patient)",
		Scenario:    "Explain to the patient the findings and initial management plan going forward",
		Task:        "Explain to the patient the findings and initial management plan going forward",
		TriageNote:  "Routine optician referral - high eye pressures detected",
		AgentID:     "agent_0501k7fhza4afxdsc4nkmqhgz7cv",
		KeyFindings: map[string]interface{}{
			"VA":         "R 6/9, L 6/9",
			"IOP":        "R 28 mmHg, L 26 mmHg",
			"Gonioscopy": "Open angles bilaterally",
			"Optic disc": []string{
				"R: C/D ratio 0.7, inferior notching",
				"L: C/D ratio 0.6, diffuse thinning",
			},
			"Visual fields": "Early superior arcuate defect right eye",
			"OCT":           "RNFL thinning inferior quadrant right eye",
		},
		PatientProfile: entities.PatientProfile{
			Background: "Retired engineer, referred by optician after routine eye test showed elevated pressures",
			SymptomDetails: []string{
				"No symptoms noticed",
				"Regular optician visits",
				"Family history: father had glaucoma",
			},
			Concerns: []string{
				"Father went blind from glaucoma",
				"Worried about going blind",
				"Concerned about treatment side effects",
			},
			Expectations: []string{
				"Wants to preserve vision",
				"Needs clear explanation",
				"Concerned about eye drops affecting other health conditions",
			},
			Personality: "Methodical, likes detailed explanations, slightly worried",
		},
	},
	{
		ID:          3,
		PatientName: "Mary Davies",
		Age:         70,
		Gender:      "female",
		ClinicType:  "Medical Retina Clinic",
		Scenario:    "Explain the findings and outline the management plan",
		Task:        "Explain the findings and outline the management plan",
		TriageNote:  "Follow-up for wet AMD - currently on anti-VEGF injections",
		AgentID:     "agent_2301k7h3fq7vfjfa1xcscjeykx93",
		KeyFindings: map[string]interface{}{
			"VA":                 "R 6/60, L 6/12",
			"Amsler grid":        "Central distortion right eye",
			"Fundoscopy (R)":     "Subretinal fluid, intraretinal cysts, small hemorrhages",
			"OCT (R)":            "Central macular thickness 420um, subretinal and intraretinal fluid",
			"Previous treatment": "3 monthly ranibizumab injections",
		},
		PatientProfile: entities.PatientProfile{
			Background: "Widowed, lives alone, diagnosed with wet AMD 4 months ago",
			SymptomDetails: []string{
				"Central vision distorted in right eye",
				"Difficulty reading",
				"Can't see faces clearly",
				"Left eye compensating well",
			},
			Concerns: []string{
				"Will she go completely blind?",
				"How long will injections continue?",
				"Worried about being a burden to family",
				"Anxious about injections",
			},
			Expectations: []string{
				"Wants to maintain independence",
				"Hopes vision will improve",
				"Needs reassurance about prognosis",
			},
			Personality: "Stoic but anxious, appreciates empathy and clear communication",
		},
	},
}

// All returns every case in the catalogue
func All() []entities.MedicalCase {
	return catalog
}

// ByID returns the case with the given id
func ByID(id int) (*entities.MedicalCase, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}
	return nil, false
}
