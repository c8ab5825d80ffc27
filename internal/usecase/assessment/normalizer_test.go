package assessment

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stationprep/consult-assistant/internal/domain/entities"
)

// decode mirrors how model output reaches the normalizer: generic JSON values,
// never typed structs
func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func canonicalDimJSON(key entities.DimensionKey) string {
	b, _ := json.Marshal(map[string]interface{}{
		"name":                  entities.DimensionNames[key],
		"points":                []map[string]string{{"type": "strength", "text": "clear greeting"}},
		"insufficient_evidence": false,
		"red_flags":             []string{},
	})
	return string(b)
}

func canonicalCandidate(t *testing.T) interface{} {
	dims := "{"
	for i, key := range entities.DimensionKeys {
		if i > 0 {
			dims += ","
		}
		dims += `"` + string(key) + `":` + canonicalDimJSON(key)
	}
	dims += "}"
	return decode(t, `{"dimensions":`+dims+`,"summary":{"free_text":"well done","bullet_points":["signpost more"]}}`)
}

func TestNormalize_CanonicalShape(t *testing.T) {
	got := NormalizeAssessment(canonicalCandidate(t))
	if got == nil {
		t.Fatal("canonical candidate rejected")
	}
	if !got.Validate() {
		t.Fatal("normalized output fails validation")
	}
	if got.Summary.FreeText != "well done" {
		t.Fatalf("summary lost: %q", got.Summary.FreeText)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	first := NormalizeAssessment(canonicalCandidate(t))
	if first == nil {
		t.Fatal("first pass rejected")
	}

	raw, _ := json.Marshal(first)
	var roundTripped interface{}
	_ = json.Unmarshal(raw, &roundTripped)

	second := NormalizeAssessment(roundTripped)
	if second == nil {
		t.Fatal("second pass rejected")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("normalization is not idempotent")
	}
}

func TestNormalize_DimensionsAsArray(t *testing.T) {
	arr := "["
	for i, key := range entities.DimensionKeys {
		if i > 0 {
			arr += ","
		}
		arr += canonicalDimJSON(key)
	}
	arr += "]"
	candidate := decode(t, `{"dimensions":`+arr+`,"summary":{"free_text":"","bullet_points":[]}}`)

	got := NormalizeAssessment(candidate)
	if got == nil {
		t.Fatal("array-shaped dimensions rejected")
	}
	for _, key := range entities.DimensionKeys {
		if got.Dimensions[key].Name != entities.DimensionNames[key] {
			t.Fatalf("dimension %s not recovered from array shape", key)
		}
	}
}

func TestNormalize_DimensionsKeyedByDisplayName(t *testing.T) {
	dims := "{"
	for i, key := range entities.DimensionKeys {
		if i > 0 {
			dims += ","
		}
		nameKey, _ := json.Marshal(entities.DimensionNames[key])
		dims += string(nameKey) + ":" + canonicalDimJSON(key)
	}
	dims += "}"
	candidate := decode(t, `{"dimensions":`+dims+`,"summary":{"free_text":"","bullet_points":[]}}`)

	got := NormalizeAssessment(candidate)
	if got == nil {
		t.Fatal("display-name-keyed dimensions rejected")
	}
	if len(got.Dimensions) != len(entities.DimensionKeys) {
		t.Fatalf("got %d dimensions", len(got.Dimensions))
	}
}

func TestNormalize_MissingDimensionSynthesized(t *testing.T) {
	dims := "{"
	for i, key := range entities.DimensionKeys[:3] {
		if i > 0 {
			dims += ","
		}
		dims += `"` + string(key) + `":` + canonicalDimJSON(key)
	}
	dims += "}"
	candidate := decode(t, `{"dimensions":`+dims+`,"summary":{"free_text":"","bullet_points":[]}}`)

	got := NormalizeAssessment(candidate)
	if got == nil {
		t.Fatal("partial dimensions rejected")
	}
	for _, key := range entities.DimensionKeys[3:] {
		dim := got.Dimensions[key]
		if !dim.InsufficientEvidence {
			t.Fatalf("synthesized dimension %s should carry insufficient_evidence", key)
		}
		if len(dim.Points) != 0 || dim.RedFlags == nil {
			t.Fatalf("synthesized dimension %s not empty", key)
		}
	}
}

func TestNormalize_StringifiedPoints(t *testing.T) {
	dims := "{"
	for i, key := range entities.DimensionKeys {
		if i > 0 {
			dims += ","
		}
		if i == 0 {
			dims += `"` + string(key) + `":{"name":"` + entities.DimensionNames[key] + `",` +
				`"points":["{\"type\":\"strength\",\"text\":\"asked open questions\"}","` +
				"`{\\\"type\\\":\\\"improvement\\\",\\\"text\\\":\\\"pace the closing\\\"}`" + `",13,"not json"],` +
				`"insufficient_evidence":false,"red_flags":[]}`
		} else {
			dims += `"` + string(key) + `":` + canonicalDimJSON(key)
		}
	}
	dims += "}"
	candidate := decode(t, `{"dimensions":`+dims+`,"summary":{"free_text":"","bullet_points":[]}}`)

	got := NormalizeAssessment(candidate)
	if got == nil {
		t.Fatal("stringified points rejected")
	}

	points := got.Dimensions[entities.DimensionKeys[0]].Points
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Type != entities.PointStrength || points[0].Text != "asked open questions" {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].Type != entities.PointImprovement {
		t.Fatalf("unexpected second point: %+v", points[1])
	}
}

func TestNormalize_TruncatesOverflow(t *testing.T) {
	dims := "{"
	for i, key := range entities.DimensionKeys {
		if i > 0 {
			dims += ","
		}
		dims += `"` + string(key) + `":{"name":"` + entities.DimensionNames[key] + `",` +
			`"points":[` +
			`{"type":"strength","text":"one"},{"type":"strength","text":"two"},` +
			`{"type":"strength","text":"three"},{"type":"strength","text":"four"}],` +
			`"insufficient_evidence":false,"red_flags":[]}`
	}
	dims += "}"
	candidate := decode(t, `{"dimensions":`+dims+
		`,"summary":{"free_text":"","bullet_points":["a","b","c","d","e"]}}`)

	got := NormalizeAssessment(candidate)
	if got == nil {
		t.Fatal("overflowing candidate rejected")
	}
	for _, key := range entities.DimensionKeys {
		if n := len(got.Dimensions[key].Points); n != entities.MaxPointsPerDimension {
			t.Fatalf("dimension %s kept %d points", key, n)
		}
	}
	if n := len(got.Summary.BulletPoints); n != entities.MaxSummaryBulletPoints {
		t.Fatalf("kept %d bullet points", n)
	}
}

func TestNormalize_PreservesPointOrder(t *testing.T) {
	dims := "{"
	for i, key := range entities.DimensionKeys {
		if i > 0 {
			dims += ","
		}
		dims += `"` + string(key) + `":{"name":"` + entities.DimensionNames[key] + `",` +
			`"points":[{"type":"improvement","text":"first"},{"bogus":true},{"type":"strength","text":"second"}],` +
			`"insufficient_evidence":false,"red_flags":[]}`
	}
	dims += "}"
	candidate := decode(t, `{"dimensions":`+dims+`,"summary":{"free_text":"","bullet_points":[]}}`)

	got := NormalizeAssessment(candidate)
	if got == nil {
		t.Fatal("candidate rejected")
	}
	points := got.Dimensions[entities.DimensionKeys[0]].Points
	if len(points) != 2 || points[0].Text != "first" || points[1].Text != "second" {
		t.Fatalf("order not preserved: %+v", points)
	}
}

func TestNormalize_RejectsNonObjects(t *testing.T) {
	for _, raw := range []string{`null`, `"text"`, `[]`, `7`} {
		if got := NormalizeAssessment(decode(t, raw)); got != nil {
			t.Fatalf("accepted %s", raw)
		}
	}
	if got := NormalizeAssessment(nil); got != nil {
		t.Fatal("accepted nil")
	}
}

func TestNormalize_NonObjectDimensionStaysAddressed(t *testing.T) {
	dims := "{"
	for i, key := range entities.DimensionKeys {
		if i > 0 {
			dims += ","
		}
		if i == 0 {
			dims += `"` + string(key) + `":"excellent"`
		} else {
			dims += `"` + string(key) + `":` + canonicalDimJSON(key)
		}
	}
	dims += "}"
	candidate := decode(t, `{"dimensions":`+dims+`,"summary":{"free_text":"","bullet_points":[]}}`)

	got := NormalizeAssessment(candidate)
	if got == nil {
		t.Fatal("candidate rejected")
	}
	dim := got.Dimensions[entities.DimensionKeys[0]]
	if dim.InsufficientEvidence {
		t.Fatal("addressed dimension must not be marked insufficient")
	}
	if len(dim.Points) != 0 {
		t.Fatalf("non-object dimension produced points: %+v", dim.Points)
	}
}
