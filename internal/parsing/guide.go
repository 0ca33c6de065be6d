package parsing

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/character-forge/internal/gamedata"
	"github.com/jonathan/character-forge/internal/types"
)

// rawGuide mirrors the guide response shape but defers quest and faction
// entries, which models return either as bare strings or as full objects.
type rawGuide struct {
	Description         string            `json:"description"`
	RecommendedQuests   []json.RawMessage `json:"recommendedQuests"`
	RecommendedFactions []json.RawMessage `json:"recommendedFactions"`
	Alignment           string            `json:"alignment"`
	Playstyle           string            `json:"playstyle"`
	RoleplayTips        string            `json:"roleplayTips"`
	DaedricQuests       []json.RawMessage `json:"daedricQuests"`
	SpecialNotes        string            `json:"specialNotes"`
}

// ParseAdventureGuide decodes a guide response. It never returns an error:
// when the response cannot be parsed at all, a degraded guide is returned
// whose description carries a truncated copy of the raw text so the player
// still sees what the model wrote.
func ParseAdventureGuide(responseText string, game types.Game) types.AdventureGuide {
	jsonText := ExtractJSON(responseText)
	if jsonText == "" {
		return degradedGuide(responseText)
	}

	var raw rawGuide
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return degradedGuide(responseText)
	}

	quests := make([]types.QuestDetails, 0, len(raw.RecommendedQuests))
	for _, entry := range raw.RecommendedQuests {
		quests = append(quests, decodeQuest(entry, questStringDefaults))
	}

	factions := make([]types.FactionDetails, 0, len(raw.RecommendedFactions))
	for _, entry := range raw.RecommendedFactions {
		factions = append(factions, decodeFaction(entry))
	}
	factions = ValidateFactionsForGame(factions, game)

	var daedric []types.QuestDetails
	for _, entry := range raw.DaedricQuests {
		daedric = append(daedric, decodeQuest(entry, daedricStringDefaults))
	}

	return types.AdventureGuide{
		Description:         valueOr(raw.Description, "Adventure awaits in the world of Tamriel!"),
		RecommendedQuests:   quests,
		RecommendedFactions: factions,
		Alignment:           valueOr(raw.Alignment, "Neutral"),
		Playstyle:           valueOr(raw.Playstyle, "Versatile"),
		RoleplayTips:        valueOr(raw.RoleplayTips, "Role-play according to your character's background and personality."),
		DaedricQuests:       daedric,
		SpecialNotes:        raw.SpecialNotes,
	}
}

// questDefaults fills the fields a bare-string quest entry cannot carry.
type questDefaults struct {
	name         string
	location     string
	howToStart   string
	tips         string
	significance string
	reward       string
}

var questStringDefaults = questDefaults{
	name:         "Unknown Quest",
	location:     "Various locations",
	howToStart:   "Speak to NPCs throughout the game world",
	tips:         "No specific tips available for this quest.",
	significance: "This quest aligns with your character's journey.",
	reward:       "Experience and gold",
}

var daedricStringDefaults = questDefaults{
	name:         "Unknown Daedric Quest",
	location:     "Daedric shrine or various locations",
	howToStart:   "Find the associated Daedric shrine or NPC",
	tips:         "No specific tips available for this Daedric quest.",
	significance: "This Daedric quest aligns with your character's motivations.",
	reward:       "A powerful Daedric artifact",
}

func decodeQuest(entry json.RawMessage, defaults questDefaults) types.QuestDetails {
	var name string
	if err := json.Unmarshal(entry, &name); err == nil {
		return types.QuestDetails{
			Name:         name,
			Location:     defaults.location,
			HowToStart:   defaults.howToStart,
			Tips:         defaults.tips,
			Significance: defaults.significance,
			Reward:       defaults.reward,
		}
	}

	var quest types.QuestDetails
	if err := json.Unmarshal(entry, &quest); err != nil {
		quest = types.QuestDetails{}
	}
	quest.Name = valueOr(quest.Name, defaults.name)
	quest.Location = valueOr(quest.Location, defaults.location)
	quest.HowToStart = valueOr(quest.HowToStart, defaults.howToStart)
	return quest
}

func decodeFaction(entry json.RawMessage) types.FactionDetails {
	var name string
	if err := json.Unmarshal(entry, &name); err == nil {
		return types.FactionDetails{
			Name:         name,
			Location:     "Various locations",
			HowToJoin:    "Speak to faction representatives",
			Tips:         "No specific tips available for this faction.",
			Benefits:     "Access to faction-specific quests and resources",
			Requirements: "Skills that match the faction's focus",
		}
	}

	var faction types.FactionDetails
	if err := json.Unmarshal(entry, &faction); err != nil {
		faction = types.FactionDetails{}
	}
	faction.Name = valueOr(faction.Name, "Unknown Faction")
	faction.Location = valueOr(faction.Location, "Various locations")
	faction.HowToJoin = valueOr(faction.HowToJoin, "Speak to faction representatives")
	return faction
}

// ValidateFactionsForGame drops recommended factions that do not exist in
// the given game. Matching is lenient: names are lowercased, a leading
// "the" is stripped, and a faction passes when its normalized name contains
// or is contained by a canonical name.
func ValidateFactionsForGame(factions []types.FactionDetails, game types.Game) []types.FactionDetails {
	canonical := gamedata.CanonicalFactions(game)
	if len(canonical) == 0 {
		return factions
	}

	valid := make([]types.FactionDetails, 0, len(factions))
	for _, faction := range factions {
		name := strings.TrimSpace(strings.TrimPrefix(strings.ToLower(faction.Name), "the "))
		for _, want := range canonical {
			if strings.Contains(name, want) || strings.Contains(want, name) {
				valid = append(valid, faction)
				break
			}
		}
	}
	return valid
}

func degradedGuide(responseText string) types.AdventureGuide {
	description := responseText
	if len(description) > 200 {
		cut := 200
		for cut > 0 && !utf8.RuneStart(description[cut]) {
			cut--
		}
		description = description[:cut]
	}
	return types.AdventureGuide{
		Description: description + "...",
		RecommendedQuests: []types.QuestDetails{{
			Name:       "Error processing quests",
			Location:   "Unknown",
			HowToStart: "Please regenerate the adventure guide.",
		}},
		RecommendedFactions: []types.FactionDetails{{
			Name:      "Error processing factions",
			Location:  "Unknown",
			HowToJoin: "Please regenerate the adventure guide.",
		}},
		Alignment:    "Neutral",
		Playstyle:    "Versatile",
		RoleplayTips: "Role-play according to your character's background and personality.",
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
