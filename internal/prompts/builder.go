package prompts

import (
	"fmt"
	"strings"

	"github.com/jonathan/character-forge/internal/gamedata"
	"github.com/jonathan/character-forge/internal/types"
)

// System message accessors. These panic if the embedded prompt files are
// malformed, which is caught at init time by the loader tests.

func ClassSystem() string     { return MustGet("class.json", "system") }
func BackstorySystem() string { return MustGet("backstory.json", "system") }
func NameSystem() string      { return MustGet("name.json", "name-system") }
func ClassNameSystem() string { return MustGet("name.json", "class-name-system") }
func GuideSystem() string     { return MustGet("guide.json", "system") }

// BuildClassPrompt constructs the class-generation prompt for the given game,
// race, and player selections. The JSON shape instruction at the end differs
// per game to match that game's skill system.
func BuildClassPrompt(game types.Game, race types.Race, opts types.CharacterOptions) string {
	base := Format(MustGet("class.json", "base"), map[string]string{
		"Game":           string(game),
		"Race":           race.Name,
		"Sex":            opts.Sex,
		"Age":            opts.Age,
		"Specialization": opts.Specialization,
		"Armor":          opts.Armor,
		"Weapons":        strings.Join(opts.Weapons, ", "),
	})

	var b strings.Builder
	b.WriteString(base)
	if len(opts.MagicPreference) > 0 {
		fmt.Fprintf(&b, "\n- Magic Preferences: %s", strings.Join(opts.MagicPreference, ", "))
	}
	if opts.Deity != "" {
		fmt.Fprintf(&b, "\n- Deity: %s", opts.Deity)
	}
	fmt.Fprintf(&b, "\n- Background: %s\n- Prestige: %s\n\n", opts.Background, opts.Prestige)

	switch game {
	case types.GameMorrowind:
		b.WriteString(MustGet("class.json", "schema-morrowind"))
	case types.GameOblivion:
		b.WriteString(MustGet("class.json", "schema-oblivion"))
	case types.GameSkyrim:
		b.WriteString(MustGet("class.json", "schema-skyrim"))
	}
	return b.String()
}

// BuildBackstoryPrompt constructs the backstory prompt. When the character
// already has a name the named template is used so the model writes around
// that name instead of inventing one.
func BuildBackstoryPrompt(ch types.Character) string {
	data := map[string]string{
		"Game":       string(ch.Game),
		"Race":       ch.Race.Name,
		"Sex":        valueOr(ch.Sex, "Male"),
		"Age":        valueOr(ch.Age, "Adult"),
		"Background": valueOr(ch.Background, "Common"),
		"Prestige":   valueOr(ch.Prestige, "Unknown"),
		"Class":      ch.Class.Name,
		"Skills":     types.FormatSkills(ch.Class.Skills),
		"Deity":      valueOr(ch.Deity, "None"),
		"Motivation": valueOr(ch.Motivation, "Adventure"),
	}
	if ch.Name != "" {
		data["Name"] = ch.Name
		return Format(MustGet("backstory.json", "named"), data)
	}
	return Format(MustGet("backstory.json", "unnamed"), data)
}

// BuildNamePrompt constructs the prompt for generating a lore-appropriate
// character name from race, sex, and game.
func BuildNamePrompt(ch types.Character) string {
	return Format(MustGet("name.json", "name"), map[string]string{
		"Sex":  valueOr(ch.Sex, "Male"),
		"Race": ch.Race.Name,
		"Game": string(ch.Game),
	})
}

// BuildClassNamePrompt constructs the prompt for renaming a class while
// keeping its description and skills.
func BuildClassNamePrompt(ch types.Character) string {
	return Format(MustGet("name.json", "class-name"), map[string]string{
		"Game":        string(ch.Game),
		"Description": ch.Class.Description,
		"Skills":      types.FormatSkills(ch.Class.Skills),
		"CurrentName": ch.Class.Name,
	})
}

// BuildPortraitPrompt constructs the image-generation prompt. Race and game
// style descriptors come from the gamedata catalogs; the age line is only
// included when the character has an age selected.
func BuildPortraitPrompt(ch types.Character) string {
	appearance := gamedata.AgeAppearanceFor(ch.Age)

	base := Format(MustGet("portrait.json", "base"), map[string]string{
		"Sex":             valueOr(ch.Sex, "Male"),
		"Race":            ch.Race.Name,
		"RaceDescription": gamedata.RaceDescription(ch.Race.Name, ch.Game),
		"AgeDescriptor":   appearance.Descriptor,
		"Class":           ch.Class.Name,
		"Game":            string(ch.Game),
		"GameStyle":       gamedata.GameStyle(ch.Game),
	})

	var b strings.Builder
	b.WriteString(base)
	if ch.Age != "" {
		b.WriteString("\n")
		b.WriteString(Format(MustGet("portrait.json", "age-line"), map[string]string{
			"AgeDescriptor": appearance.Descriptor,
			"AgeDetails":    appearance.Details,
		}))
	}
	b.WriteString("\n")
	b.WriteString(Format(MustGet("portrait.json", "closing"), map[string]string{
		"Game": string(ch.Game),
		"Race": ch.Race.Name,
	}))
	return b.String()
}

// BuildAdventureGuidePrompt constructs the guide prompt: character details,
// the game's canonical faction and Daedric quest lists, the required JSON
// response shape, and the recommendation guidelines.
func BuildAdventureGuidePrompt(ch types.Character) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Please create a detailed adventure guide for my %s character with the following details:\n\n", ch.Game)
	fmt.Fprintf(&b, "Name: %s\n", valueOr(ch.Name, "Unnamed Character"))
	if ch.Race.Name != "" {
		fmt.Fprintf(&b, "Race: %s\n", ch.Race.Name)
	}
	fmt.Fprintf(&b, "Class: %s\n", valueOr(ch.Class.Name, "Custom Class"))
	if ch.Class.Skills != nil {
		fmt.Fprintf(&b, "Skills: %s\n", types.FormatSkills(ch.Class.Skills))
	}
	if ch.Sex != "" {
		fmt.Fprintf(&b, "Sex: %s\n", ch.Sex)
	}
	if ch.Age != "" {
		fmt.Fprintf(&b, "Age: %s\n", ch.Age)
	}
	if ch.Deity != "" {
		fmt.Fprintf(&b, "Deity: %s\n", ch.Deity)
	}
	if ch.Motivation != "" {
		fmt.Fprintf(&b, "\nPrimary Motivation: %s\n", ch.Motivation)
	}
	if ch.Backstory != "" {
		fmt.Fprintf(&b, "\nCharacter Backstory: %s\n", ch.Backstory)
	}

	b.WriteString("\n")
	b.WriteString(gamedata.FactionPromptBlock(ch.Game))
	b.WriteString("\n\n")
	b.WriteString(gamedata.DaedricPromptBlock(ch.Game))
	b.WriteString("\n\n")
	b.WriteString(MustGet("guide.json", "format"))
	b.WriteString("\n\n")
	b.WriteString(Format(MustGet("guide.json", "guidelines"), map[string]string{
		"Game":       string(ch.Game),
		"Motivation": ch.Motivation,
	}))
	return b.String()
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
