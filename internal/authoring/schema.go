package authoring

import "github.com/abhisek/hima/internal/llm"

// ExamplesSchema is the shape of an example-generation response.
var ExamplesSchema = &llm.Schema{
	Name:        "letter-examples",
	Description: "Vocabulary words for a Devanagari letter, with child-friendly meanings and sentences",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"examples": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "A common Devanagari word that starts with the letter",
						},
						"emoji": map[string]any{
							"type":        "string",
							"description": "One emoji picturing the word, or empty",
						},
						"meaning": map[string]any{
							"type":        "string",
							"description": "The English meaning in one to three words",
						},
						"sentence": map[string]any{
							"type":        "string",
							"description": "A short Hindi sentence using the word, for a five year old",
						},
						"sentence_mr": map[string]any{
							"type":        "string",
							"description": "The same sentence in Marathi",
						},
					},
					"required":             []any{"word", "emoji", "meaning", "sentence", "sentence_mr"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"examples"},
		"additionalProperties": false,
	},
}
