package entities

// AssessmentJSONSchema builds the provider-facing JSON schema for the
// Assessment shape. It is derived from the same canonical key and name tables
// the runtime guard checks against, so the two cannot drift.
func AssessmentJSONSchema() map[string]interface{} {
	pointSchema := map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"type": map[string]interface{}{
				"type": "string",
				"enum": []string{string(PointStrength), string(PointImprovement)},
			},
			"text": map[string]interface{}{"type": "string"},
		},
		"required": []string{"type", "text"},
	}

	dimensionProps := map[string]interface{}{}
	requiredKeys := make([]string, 0, len(DimensionKeys))
	for _, key := range DimensionKeys {
		dimensionProps[string(key)] = map[string]interface{}{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]interface{}{
				"name": map[string]interface{}{
					"type": "string",
					"enum": []string{DimensionNames[key]},
				},
				"points": map[string]interface{}{
					"type":     "array",
					"minItems": 0,
					"maxItems": MaxPointsPerDimension,
					"items":    pointSchema,
				},
				"insufficient_evidence": map[string]interface{}{"type": "boolean"},
				"red_flags": map[string]interface{}{
					"type":  "array",
					"items": map[string]interface{}{"type": "string"},
				},
			},
			"required": []string{"name", "points", "insufficient_evidence", "red_flags"},
		}
		requiredKeys = append(requiredKeys, string(key))
	}

	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"dimensions": map[string]interface{}{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           dimensionProps,
				"required":             requiredKeys,
			},
			"summary": map[string]interface{}{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]interface{}{
					"free_text": map[string]interface{}{"type": "string"},
					"bullet_points": map[string]interface{}{
						"type":     "array",
						"minItems": 0,
						"maxItems": MaxSummaryBulletPoints,
						"items":    map[string]interface{}{"type": "string"},
					},
				},
				"required": []string{"free_text", "bullet_points"},
			},
		},
		"required": []string{"dimensions", "summary"},
	}
}
