package entities

import (
	"encoding/json"
	"testing"
)

func validAssessment() *Assessment {
	dims := make(map[DimensionKey]Dimension, len(DimensionKeys))
	for _, key := range DimensionKeys {
		dims[key] = Dimension{
			Name:     DimensionNames[key],
			Points:   []Point{{Type: PointStrength, Text: "good opening"}},
			RedFlags: []string{},
		}
	}
	return &Assessment{
		Dimensions: dims,
		Summary: AssessmentSummary{
			FreeText:     "solid consultation overall",
			BulletPoints: []string{"practice signposting"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	if !validAssessment().Validate() {
		t.Fatal("expected valid assessment to pass")
	}
}

func TestValidate_NilReceiver(t *testing.T) {
	var a *Assessment
	if a.Validate() {
		t.Fatal("nil assessment must not validate")
	}
}

func TestValidate_MissingDimension(t *testing.T) {
	a := validAssessment()
	delete(a.Dimensions, DimensionPace)
	if a.Validate() {
		t.Fatal("four dimensions must not validate")
	}
}

func TestValidate_ExtraDimension(t *testing.T) {
	a := validAssessment()
	a.Dimensions["bedside_manner"] = Dimension{Name: "Bedside manner", Points: []Point{}, RedFlags: []string{}}
	if a.Validate() {
		t.Fatal("six dimensions must not validate")
	}
}

func TestValidate_NonCanonicalName(t *testing.T) {
	a := validAssessment()
	dim := a.Dimensions[DimensionEmpathy]
	dim.Name = "Empathy"
	a.Dimensions[DimensionEmpathy] = dim
	if a.Validate() {
		t.Fatal("renamed dimension must not validate")
	}
}

func TestValidate_TooManyPoints(t *testing.T) {
	a := validAssessment()
	dim := a.Dimensions[DimensionRapport]
	for i := 0; i < MaxPointsPerDimension; i++ {
		dim.Points = append(dim.Points, Point{Type: PointImprovement, Text: "more"})
	}
	a.Dimensions[DimensionRapport] = dim
	if a.Validate() {
		t.Fatal("four points must not validate")
	}
}

func TestValidate_BadPointType(t *testing.T) {
	a := validAssessment()
	dim := a.Dimensions[DimensionHonesty]
	dim.Points = []Point{{Type: "observation", Text: "hmm"}}
	a.Dimensions[DimensionHonesty] = dim
	if a.Validate() {
		t.Fatal("unknown point type must not validate")
	}
}

func TestValidate_NilSlices(t *testing.T) {
	a := validAssessment()
	dim := a.Dimensions[DimensionExplanation]
	dim.RedFlags = nil
	a.Dimensions[DimensionExplanation] = dim
	if a.Validate() {
		t.Fatal("nil red_flags must not validate")
	}

	a = validAssessment()
	a.Summary.BulletPoints = nil
	if a.Validate() {
		t.Fatal("nil bullet_points must not validate")
	}
}

func TestValidate_TooManyBulletPoints(t *testing.T) {
	a := validAssessment()
	a.Summary.BulletPoints = []string{"a", "b", "c", "d"}
	if a.Validate() {
		t.Fatal("four bullet points must not validate")
	}
}

func TestIsAssessment_AcceptsStruct(t *testing.T) {
	if !IsAssessment(validAssessment()) {
		t.Fatal("pointer form rejected")
	}
	if !IsAssessment(*validAssessment()) {
		t.Fatal("value form rejected")
	}
}

func TestIsAssessment_AcceptsDecodedMap(t *testing.T) {
	raw, err := json.Marshal(validAssessment())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !IsAssessment(decoded) {
		t.Fatal("decoded valid assessment rejected")
	}
}

func TestIsAssessment_RejectsUnknownFields(t *testing.T) {
	raw, _ := json.Marshal(validAssessment())
	var decoded map[string]interface{}
	_ = json.Unmarshal(raw, &decoded)
	decoded["overall_score"] = 7
	if IsAssessment(decoded) {
		t.Fatal("unknown top-level field accepted")
	}
}

func TestIsAssessment_RejectsNonObjects(t *testing.T) {
	for _, v := range []interface{}{nil, "assessment", 42, []interface{}{}} {
		if IsAssessment(v) {
			t.Fatalf("accepted %T", v)
		}
	}
}

func TestKeyForDimensionName(t *testing.T) {
	for key, name := range DimensionNames {
		got, ok := KeyForDimensionName(name)
		if !ok || got != key {
			t.Fatalf("resolved %q to %q", name, got)
		}
	}
	if _, ok := KeyForDimensionName("Rapport"); ok {
		t.Fatal("partial display name must not resolve")
	}
}

func TestAssessmentJSONSchema_CoversAllDimensions(t *testing.T) {
	schema := AssessmentJSONSchema()

	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("schema has no properties")
	}
	dimSchema, ok := props["dimensions"].(map[string]interface{})
	if !ok {
		t.Fatal("schema has no dimensions property")
	}
	dimProps, ok := dimSchema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("dimensions schema has no properties")
	}

	for _, key := range DimensionKeys {
		if _, found := dimProps[string(key)]; !found {
			t.Fatalf("schema missing dimension %s", key)
		}
	}
	if len(dimProps) != len(DimensionKeys) {
		t.Fatalf("schema has %d dimensions, want %d", len(dimProps), len(DimensionKeys))
	}
}
