// Package types provides type definitions for the character generation domain.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// Game identifies which Elder Scrolls ruleset a character belongs to.
// Each game has its own skill-slot schema, option vocabulary, and canonical
// faction/quest lists.
type Game string

const (
	GameMorrowind Game = "Morrowind"
	GameOblivion  Game = "Oblivion"
	GameSkyrim    Game = "Skyrim"
)

// Games lists the supported rulesets in release order.
var Games = []Game{GameMorrowind, GameOblivion, GameSkyrim}

// Valid reports whether g is one of the supported rulesets.
func (g Game) Valid() bool {
	switch g {
	case GameMorrowind, GameOblivion, GameSkyrim:
		return true
	}
	return false
}

// Race represents a playable race.
type Race struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	GameAvailability []Game `json:"gameAvailability"`
}

// CharacterClass represents a generated (or catalog) character class.
type CharacterClass struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Skills           SkillSet `json:"skills"`
	GameAvailability []Game   `json:"gameAvailability"`
}

// characterClassJSON is the wire form of CharacterClass. Skills is kept as a
// raw message so the variant envelope can be decoded separately.
type characterClassJSON struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Skills           json.RawMessage `json:"skills,omitempty"`
	GameAvailability []Game          `json:"gameAvailability,omitempty"`
}

// MarshalJSON encodes the class with its skill set wrapped in the variant
// envelope so the sum type survives a round trip through storage or the API.
func (c CharacterClass) MarshalJSON() ([]byte, error) {
	out := characterClassJSON{
		Name:             c.Name,
		Description:      c.Description,
		GameAvailability: c.GameAvailability,
	}
	if c.Skills != nil {
		data, err := MarshalSkillSet(c.Skills)
		if err != nil {
			return nil, err
		}
		out.Skills = data
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the class, restoring the concrete skill set variant
// from the envelope.
func (c *CharacterClass) UnmarshalJSON(data []byte) error {
	var in characterClassJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	c.Name = in.Name
	c.Description = in.Description
	c.GameAvailability = in.GameAvailability
	c.Skills = nil
	if len(in.Skills) > 0 {
		skills, err := UnmarshalSkillSet(in.Skills)
		if err != nil {
			return err
		}
		c.Skills = skills
	}
	return nil
}

// Character is the record handed between the UI, the orchestrator, and
// storage. It is built up incrementally: race and class first, then name,
// backstory, portrait, and adventure guide by independent generation calls.
// Replace operations return fresh copies; callers own their instances.
type Character struct {
	Name           string          `json:"name,omitempty"`
	Game           Game            `json:"game"`
	Race           Race            `json:"race"`
	Class          CharacterClass  `json:"class"`
	Sex            string          `json:"sex,omitempty"`
	Age            string          `json:"age,omitempty"`
	Deity          string          `json:"deity,omitempty"`
	Background     string          `json:"background,omitempty"`
	Prestige       string          `json:"prestige,omitempty"`
	Motivation     string          `json:"motivation,omitempty"`
	Backstory      string          `json:"backstory,omitempty"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	AdventureGuide *AdventureGuide `json:"adventureGuide,omitempty"`
}

// QuestDetails describes one recommended quest in an adventure guide.
// Every text field is a candidate for name/class-name substitution.
type QuestDetails struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	HowToStart   string `json:"howToStart"`
	Tips         string `json:"tips,omitempty"`
	Significance string `json:"significance,omitempty"`
	Reward       string `json:"reward,omitempty"`
}

// FactionDetails describes one recommended faction in an adventure guide.
type FactionDetails struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	HowToJoin    string `json:"howToJoin"`
	Tips         string `json:"tips,omitempty"`
	Benefits     string `json:"benefits,omitempty"`
	Requirements string `json:"requirements,omitempty"`
}

// AdventureGuide bundles quest and faction recommendations with roleplay
// guidance for a finished character.
type AdventureGuide struct {
	Description         string           `json:"description"`
	RecommendedQuests   []QuestDetails   `json:"recommendedQuests"`
	RecommendedFactions []FactionDetails `json:"recommendedFactions"`
	Alignment           string           `json:"alignment"`
	Playstyle           string           `json:"playstyle"`
	RoleplayTips        string           `json:"roleplayTips,omitempty"`
	DaedricQuests       []QuestDetails   `json:"daedricQuests,omitempty"`
	SpecialNotes        string           `json:"specialNotes,omitempty"`
}
