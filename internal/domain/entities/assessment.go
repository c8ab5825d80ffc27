package entities

import (
	"bytes"
	"encoding/json"
)

// DimensionKey identifies one of the five fixed evaluation categories
type DimensionKey string

const (
	DimensionRapport     DimensionKey = "rapport_introduction_structure_flow"
	DimensionEmpathy     DimensionKey = "empathy_listening_patient_perspective"
	DimensionExplanation DimensionKey = "medical_explanation_and_plan"
	DimensionHonesty     DimensionKey = "honesty_and_transparency"
	DimensionPace        DimensionKey = "appropriate_pace"
)

// DimensionKeys lists the canonical keys in display order
var DimensionKeys = []DimensionKey{
	DimensionRapport,
	DimensionEmpathy,
	DimensionExplanation,
	DimensionHonesty,
	DimensionPace,
}

// DimensionNames maps each canonical key to its display name. The model is
// instructed to echo these names character-for-character.
var DimensionNames = map[DimensionKey]string{
	DimensionRapport:     "Rapport, introduction, structure and flow",
	DimensionEmpathy:     "Empathy, listening and patient perspective",
	DimensionExplanation: "Medical explanation and plan",
	DimensionHonesty:     "Honesty and transparency",
	DimensionPace:        "Appropriate pace",
}

// KeyForDimensionName resolves a display name back to its canonical key
func KeyForDimensionName(name string) (DimensionKey, bool) {
	for key, n := range DimensionNames {
		if n == name {
			return key, true
		}
	}
	return "", false
}

// MaxPointsPerDimension bounds the points array of each dimension
const MaxPointsPerDimension = 3

// MaxSummaryBulletPoints bounds summary.bullet_points
const MaxSummaryBulletPoints = 3

// PointType marks a point as a strength or an improvement
type PointType string

const (
	PointStrength    PointType = "strength"
	PointImprovement PointType = "improvement"
)

// Point is one qualitative observation, expected to embed a verbatim quote
// from the transcript
type Point struct {
	Type PointType `json:"type"`
	Text string    `json:"text"`
}

// Dimension is the grade for a single evaluation category
type Dimension struct {
	Name                 string   `json:"name"`
	Points               []Point  `json:"points"`
	InsufficientEvidence bool     `json:"insufficient_evidence"`
	RedFlags             []string `json:"red_flags"`
}

// AssessmentSummary holds the holistic reflection and up to three learning
// focuses
type AssessmentSummary struct {
	FreeText     string   `json:"free_text"`
	BulletPoints []string `json:"bullet_points"`
}

// Assessment is the structured output of grading one consultation. It is
// constructed once from validated model output and never mutated afterwards.
type Assessment struct {
	Dimensions map[DimensionKey]Dimension `json:"dimensions"`
	Summary    AssessmentSummary          `json:"summary"`
}

// Validate asserts the full Assessment invariants: exactly the five canonical
// dimension keys, canonical names echoed back, points and bullet_points within
// bounds, point types well-formed. This is the single source of truth for
// "is this a valid Assessment".
func (a *Assessment) Validate() bool {
	if a == nil {
		return false
	}
	if len(a.Dimensions) != len(DimensionKeys) {
		return false
	}
	for key, dim := range a.Dimensions {
		name, canonical := DimensionNames[key]
		if !canonical {
			return false
		}
		if dim.Name != name {
			return false
		}
		if dim.Points == nil || len(dim.Points) > MaxPointsPerDimension {
			return false
		}
		for _, p := range dim.Points {
			if p.Type != PointStrength && p.Type != PointImprovement {
				return false
			}
		}
		if dim.RedFlags == nil {
			return false
		}
	}
	if a.Summary.BulletPoints == nil || len(a.Summary.BulletPoints) > MaxSummaryBulletPoints {
		return false
	}
	return true
}

// IsAssessment reports whether an arbitrary decoded value is a valid
// Assessment. Unknown fields at any level are rejected.
func IsAssessment(value interface{}) bool {
	switch v := value.(type) {
	case *Assessment:
		return v.Validate()
	case Assessment:
		return v.Validate()
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var a Assessment
	if err := dec.Decode(&a); err != nil {
		return false
	}
	return a.Validate()
}
