package vocab

// entriesSchema describes a valid vocabulary dataset: a non-empty array of
// entries whose english and indonesia fields are non-empty strings. External
// files passed via --vocab are validated against this before use.
var entriesSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"english": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"indonesia": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"type": map[string]any{
				"type": "string",
			},
			"frequency": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"english", "indonesia"},
		"additionalProperties": false,
	},
}
