package assessment

import (
	"encoding/json"
	"strings"

	"github.com/stationprep/consult-assistant/internal/domain/entities"
)

// NormalizeAssessment defensively reshapes loosely-typed model output into the
// canonical Assessment form, then gates it through the strict guard. Returns
// nil when the candidate cannot be normalized; callers treat that as a failed
// generation attempt, not a fatal error.
//
// The model has produced at least three distinct encodings of the same logical
// content over the life of this prompt: dimensions as an array of named
// objects, dimensions keyed by display name instead of canonical key, and
// points encoded as JSON-stringified objects. Each known shape is detected
// and canonicalized before validation; anything unresolvable is dropped.
func NormalizeAssessment(candidate interface{}) *entities.Assessment {
	root, ok := candidate.(map[string]interface{})
	if !ok || root == nil {
		return nil
	}

	dims := normalizeDimensions(root["dimensions"])

	summary := entities.AssessmentSummary{
		BulletPoints: []string{},
	}
	if summaryRaw, ok := root["summary"].(map[string]interface{}); ok {
		summary.FreeText = coerceString(summaryRaw["free_text"])
		summary.BulletPoints = coerceStringSlice(summaryRaw["bullet_points"], entities.MaxSummaryBulletPoints)
	}

	normalized := &entities.Assessment{
		Dimensions: dims,
		Summary:    summary,
	}

	if !normalized.Validate() {
		return nil
	}
	return normalized
}

// normalizeDimensions applies the known shape detectors in sequence and then
// emits all five canonical keys, synthesizing an empty dimension for any key
// the input did not supply.
func normalizeDimensions(raw interface{}) map[entities.DimensionKey]entities.Dimension {
	byKey := map[entities.DimensionKey]interface{}{}

	switch shaped := raw.(type) {
	case []interface{}:
		// Shape A: array of {name, ...} objects, matched by display name
		for _, item := range shaped {
			obj, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			name, ok := obj["name"].(string)
			if !ok {
				continue
			}
			if key, found := entities.KeyForDimensionName(name); found {
				byKey[key] = obj
			}
		}
	case map[string]interface{}:
		// Shape B: keyed by display names instead of canonical keys
		displayKeyed := false
		for k := range shaped {
			if _, found := entities.KeyForDimensionName(k); found {
				displayKeyed = true
				break
			}
		}
		if displayKeyed {
			for k, v := range shaped {
				if key, found := entities.KeyForDimensionName(k); found {
					byKey[key] = v
				}
			}
		} else {
			// Shape C: already keyed by canonical snake_case keys; anything
			// unresolvable is dropped
			for k, v := range shaped {
				key := entities.DimensionKey(k)
				if _, canonical := entities.DimensionNames[key]; canonical {
					byKey[key] = v
				}
			}
		}
	}

	dims := make(map[entities.DimensionKey]entities.Dimension, len(entities.DimensionKeys))
	for _, key := range entities.DimensionKeys {
		rawDim, present := byKey[key]
		dims[key] = normalizeDimension(rawDim, present, key)
	}
	return dims
}

func normalizeDimension(raw interface{}, present bool, key entities.DimensionKey) entities.Dimension {
	dim := entities.Dimension{
		Name:     entities.DimensionNames[key],
		Points:   []entities.Point{},
		RedFlags: []string{},
	}

	// A dimension the model never mentioned is evidentially equivalent to
	// "insufficient evidence"
	if !present {
		dim.InsufficientEvidence = true
		return dim
	}

	// Present but not an object: keep the empty-but-valid dimension. Unlike a
	// wholly-missing key, the model did address this dimension, so the
	// insufficient_evidence default stays false.
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return dim
	}

	dim.Points = normalizePoints(obj["points"])
	if b, ok := obj["insufficient_evidence"].(bool); ok {
		dim.InsufficientEvidence = b
	}
	dim.RedFlags = coerceStringSlice(obj["red_flags"], -1)
	return dim
}

// normalizePoints coerces a raw points value into at most three well-formed
// points, preserving input order and dropping malformed entries. A point
// encoded as a JSON-stringified object (optionally fenced in backticks) is
// parsed and validated the same way.
func normalizePoints(raw interface{}) []entities.Point {
	arr, ok := raw.([]interface{})
	if !ok {
		return []entities.Point{}
	}

	points := make([]entities.Point, 0, entities.MaxPointsPerDimension)
	for _, item := range arr {
		if len(points) == entities.MaxPointsPerDimension {
			break
		}

		var obj map[string]interface{}
		switch v := item.(type) {
		case map[string]interface{}:
			obj = v
		case string:
			obj = parsePointString(v)
		}
		if obj == nil {
			continue
		}

		pointType, _ := obj["type"].(string)
		text, hasText := obj["text"].(string)
		if !hasText {
			continue
		}
		if pointType != string(entities.PointStrength) && pointType != string(entities.PointImprovement) {
			continue
		}
		points = append(points, entities.Point{Type: entities.PointType(pointType), Text: text})
	}
	return points
}

// parsePointString accepts a point serialized as a JSON string, e.g.
// `{"type":"strength","text":"..."}`, with or without backtick fencing
func parsePointString(raw string) map[string]interface{} {
	trimmed := strings.Trim(strings.TrimSpace(raw), "`")
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return nil
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return nil
	}
	return obj
}

func coerceString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// coerceStringSlice keeps only string elements, truncating to maxLen when
// maxLen is non-negative
func coerceStringSlice(v interface{}, maxLen int) []string {
	out := []string{}
	arr, ok := v.([]interface{})
	if !ok {
		return out
	}
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
		if maxLen >= 0 && len(out) == maxLen {
			break
		}
	}
	return out
}
