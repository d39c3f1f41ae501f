package curriculum

// documentSchema is the JSON schema every curriculum document must satisfy
// before it is decoded.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"subjects": map[string]any{
			"type":  "array",
			"items": map[string]any{"$ref": "#/$defs/subject"},
		},
		"syllabus": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"topics": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/topic"},
				},
			},
			"additionalProperties": false,
		},
		"weaknesses": map[string]any{
			"type":  "array",
			"items": map[string]any{"$ref": "#/$defs/weakness"},
		},
	},
	"additionalProperties": false,
	"$defs": map[string]any{
		"subject": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":    map[string]any{"type": "string", "minLength": 1},
				"name":  map[string]any{"type": "string"},
				"score": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"prerequisites": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "minLength": 1},
				},
			},
			"required":             []any{"id", "name", "score"},
			"additionalProperties": false,
		},
		"topic": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":        map[string]any{"type": "string"},
				"title":     map[string]any{"type": "string", "minLength": 1},
				"completed": map[string]any{"type": "boolean"},
				"topics": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/topic"},
				},
			},
			"required":             []any{"title"},
			"additionalProperties": false,
		},
		"weakness": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic_id":   map[string]any{"type": "string", "minLength": 1},
				"topic_name": map[string]any{"type": "string"},
				"subject_id": map[string]any{"type": "string", "minLength": 1},
				"weakness":   map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			},
			"required":             []any{"topic_id", "subject_id"},
			"additionalProperties": false,
		},
	},
}
