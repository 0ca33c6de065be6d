package gamedata

import (
	"fmt"
	"strings"

	"github.com/jonathan/character-forge/internal/types"
)

// Race-specific physical description fragments for portrait prompts, keyed
// by lowercased race name. Parenthesized alternate names map to the same
// fragment.
var raceDescriptions = map[string]string{
	"argonian": "with reptilian features, scales, horns, and a lizard-like appearance exactly as depicted in Elder Scrolls games",
	"khajiit":  "with feline features, fur, cat-like face, and distinctive Khajiit appearance from Elder Scrolls games",
	"nord":     "with rugged features, fair skin, and strong Nordic features as depicted in Elder Scrolls games",
	"imperial": "with Mediterranean features, light to tan skin, and the classic Imperial appearance from Elder Scrolls games",
	"breton":   "with European features, light skin, and the classic Breton appearance from Elder Scrolls games",
	"redguard": "with dark skin, athletic build, and the classic Redguard appearance from Elder Scrolls games",
	"altmer":   "with high cheekbones, golden/yellowish skin, elongated features, and tall stature as depicted in Elder Scrolls games",
	"high elf": "with high cheekbones, golden/yellowish skin, elongated features, and tall stature as depicted in Elder Scrolls games",
	"dunmer":   "with ashen gray/blue skin, red eyes, sharp features, and the classic Dunmer appearance from Elder Scrolls games",
	"dark elf": "with ashen gray/blue skin, red eyes, sharp features, and the classic Dunmer appearance from Elder Scrolls games",
	"bosmer":   "with tan skin, smaller stature, pointed ears, and the classic Bosmer appearance from Elder Scrolls games",
	"wood elf": "with tan skin, smaller stature, pointed ears, and the classic Bosmer appearance from Elder Scrolls games",
	"orc":      "with green skin, tusks, muscular build, and the classic Orsimer appearance from Elder Scrolls games",
}

// RaceDescription returns the physical-description fragment for a race.
// Unknown races get a generic templated fragment. The catalog's compound
// names ("Altmer (High Elf)") resolve through their leading token.
func RaceDescription(raceName string, game types.Game) string {
	key := strings.ToLower(strings.TrimSpace(raceName))
	if desc, ok := raceDescriptions[key]; ok {
		return desc
	}
	// Try the name without a parenthesized alternate.
	if idx := strings.Index(key, "("); idx > 0 {
		if desc, ok := raceDescriptions[strings.TrimSpace(key[:idx])]; ok {
			return desc
		}
	}
	return fmt.Sprintf("with the distinctive physical features of %s race as depicted in %s", raceName, game)
}

var gameStyles = map[types.Game]string{
	types.GameMorrowind: "in Morrowind's distinctive art style with appropriate textures and colors from 2002 Elder Scrolls III",
	types.GameOblivion:  "in Oblivion's distinctive art style with appropriate textures and colors from 2006 Elder Scrolls IV",
	types.GameSkyrim:    "in Skyrim's distinctive art style with appropriate textures and colors from 2011 Elder Scrolls V",
}

// GameStyle returns the art-style fragment for a game, with a generic
// templated fallback for unrecognized games.
func GameStyle(game types.Game) string {
	if style, ok := gameStyles[game]; ok {
		return style
	}
	return fmt.Sprintf("in %s's distinctive Elder Scrolls art style", game)
}

// AgeAppearance is the two-part age fragment for portrait prompts.
type AgeAppearance struct {
	Descriptor string
	Details    string
}

var ageAppearances = map[string]AgeAppearance{
	"young adult": {
		Descriptor: "young, youthful appearance",
		Details:    "with smooth skin, vibrant eyes, little to no facial lines, and a fresh, energetic appearance",
	},
	"adult": {
		Descriptor: "adult",
		Details:    "with fully developed features typical of an adult of their race",
	},
	"middle age": {
		Descriptor: "middle-aged with visible signs of aging",
		Details:    "with moderate wrinkles around the eyes and mouth, some gray/silver streaks in the hair, slightly weathered skin, and mature facial features",
	},
	"elder": {
		Descriptor: "elderly with significant aging features",
		Details:    "with deep wrinkles, pronounced age lines, gray/white hair, age spots, weathered skin texture, and distinguished elder features appropriate for their race",
	},
}

// AgeAppearanceFor returns the 4-bucket age fragment; unrecognized values
// fall back to the adult bucket.
func AgeAppearanceFor(age string) AgeAppearance {
	if a, ok := ageAppearances[strings.ToLower(strings.TrimSpace(age))]; ok {
		return a
	}
	return ageAppearances["adult"]
}
