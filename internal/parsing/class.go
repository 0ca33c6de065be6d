package parsing

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/character-forge/internal/types"
)

// Per-game response schemas. Each game has a different skill block shape and
// the model is told which one to produce, so validation is strict about it.
const (
	morrowindClassSchema = `{
		"type": "object",
		"required": ["name", "description", "skills"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"description": {"type": "string", "minLength": 1},
			"skills": {
				"type": "object",
				"required": ["majorSkills", "minorSkills"],
				"properties": {
					"majorSkills": {"type": "array", "items": {"type": "string"}, "minItems": 1},
					"minorSkills": {"type": "array", "items": {"type": "string"}, "minItems": 1}
				}
			}
		}
	}`

	oblivionClassSchema = `{
		"type": "object",
		"required": ["name", "description", "skills"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"description": {"type": "string", "minLength": 1},
			"skills": {
				"type": "object",
				"required": ["oblivionMajorSkills"],
				"properties": {
					"oblivionMajorSkills": {"type": "array", "items": {"type": "string"}, "minItems": 1}
				}
			}
		}
	}`

	skyrimClassSchema = `{
		"type": "object",
		"required": ["name", "description", "skills"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"description": {"type": "string", "minLength": 1},
			"skills": {
				"type": "object",
				"required": ["primarySkills", "secondarySkills"],
				"properties": {
					"primarySkills": {"type": "array", "items": {"type": "string"}, "minItems": 1},
					"secondarySkills": {"type": "array", "items": {"type": "string"}, "minItems": 1}
				}
			}
		}
	}`
)

func classSchemaForGame(game types.Game) string {
	switch game {
	case types.GameMorrowind:
		return morrowindClassSchema
	case types.GameOblivion:
		return oblivionClassSchema
	default:
		return skyrimClassSchema
	}
}

// ParseClass extracts and validates a generated character class from a model
// response. The JSON span is pulled out of any surrounding prose, validated
// against the game's schema, and decoded into a CharacterClass whose skill
// set variant matches the game.
func ParseClass(responseText string, game types.Game) (types.CharacterClass, error) {
	jsonText := ExtractJSON(responseText)
	if jsonText == "" {
		return types.CharacterClass{}, &ParseError{Message: "no JSON object found in response"}
	}

	schemaLoader := gojsonschema.NewStringLoader(classSchemaForGame(game))
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return types.CharacterClass{}, &ParseError{Message: "response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return types.CharacterClass{}, &ParseError{
			Message: "class response failed schema validation: " + strings.Join(details, "; "),
		}
	}

	var raw struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Skills      json.RawMessage `json:"skills"`
	}
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return types.CharacterClass{}, &ParseError{Message: "failed to decode class response", Cause: err}
	}

	skills, err := types.UnmarshalSkillSet(raw.Skills)
	if err != nil {
		return types.CharacterClass{}, &ParseError{Message: "failed to decode class skills", Cause: err}
	}

	return types.CharacterClass{
		Name:             raw.Name,
		Description:      raw.Description,
		Skills:           skills,
		GameAvailability: []types.Game{game},
	}, nil
}
