package gamedata

import "github.com/jonathan/character-forge/internal/types"

// Option vocabularies for character creation. Armor, weapon, magic, and
// deity lists are per-game; the rest are shared.

var SexOptions = []string{"Male", "Female"}

var AgeOptions = []string{"Young Adult", "Adult", "Middle Age", "Elder"}

var SpecializationOptions = []string{"Combat", "Magic", "Stealth"}

var ArmorOptions = map[types.Game][]string{
	types.GameMorrowind: {"Light Armor", "Medium Armor", "Heavy Armor", "Unarmored"},
	types.GameOblivion:  {"Light Armor", "Heavy Armor"},
	types.GameSkyrim:    {"Light Armor", "Heavy Armor"},
}

var WeaponOptions = map[types.Game][]string{
	types.GameMorrowind: {
		"Short Blade", "Long Blade", "Axe", "Blunt Weapon", "Spear",
		"Bow", "Crossbow", "Thrown Weapon", "Hand-to-hand",
	},
	types.GameOblivion: {"Blade", "Blunt", "Hand to Hand", "Marksman"},
	types.GameSkyrim:   {"One-handed", "Two-handed", "Archery"},
}

var MagicOptions = map[types.Game][]string{
	types.GameMorrowind: {
		"Destruction", "Alteration", "Illusion", "Conjuration", "Mysticism", "Restoration", "Enchant", "Alchemy",
	},
	types.GameOblivion: {
		"Destruction", "Alteration", "Illusion", "Conjuration", "Mysticism", "Restoration", "Alchemy",
	},
	types.GameSkyrim: {
		"Destruction", "Alteration", "Illusion", "Conjuration", "Restoration", "Enchanting", "Alchemy",
	},
}

var DeityOptions = map[types.Game][]string{
	types.GameMorrowind: {
		"The Nine Divines", "Tribunal", "Daedric Princes", "Azura", "Boethiah", "Mephala",
		"Almsivi", "Ancestors", "None",
	},
	types.GameOblivion: {
		"Akatosh", "Arkay", "Dibella", "Julianos", "Kynareth", "Mara", "Stendarr", "Talos", "Zenithar",
		"Daedric Princes", "None",
	},
	types.GameSkyrim: {
		"Akatosh", "Arkay", "Dibella", "Julianos", "Kynareth", "Mara", "Stendarr", "Talos", "Zenithar",
		"Nordic Pantheon", "Daedric Princes", "None",
	},
}

var BackgroundOptions = []string{
	"Noble", "Commoner", "Criminal", "Scholar", "Merchant", "Soldier",
	"Pilgrim", "Hermit", "Outcast", "Wanderer",
}

var PrestigeOptions = []string{
	"Unknown", "Local Hero", "Regional Champion", "Famous", "Legendary",
}

var MotivationOptions = []string{
	"Power", "Knowledge", "Wealth", "Fame", "Justice", "Revenge",
	"Freedom", "Family", "Love", "Redemption", "Survival", "Adventure",
}

// OptionCatalog bundles every option list for one game, for the catalog API.
type OptionCatalog struct {
	Sexes           []string `json:"sexes"`
	Ages            []string `json:"ages"`
	Specializations []string `json:"specializations"`
	Armor           []string `json:"armor"`
	Weapons         []string `json:"weapons"`
	Magic           []string `json:"magic"`
	Deities         []string `json:"deities"`
	Backgrounds     []string `json:"backgrounds"`
	Prestige        []string `json:"prestige"`
	Motivations     []string `json:"motivations"`
}

// OptionsForGame assembles the option catalog for a game.
func OptionsForGame(game types.Game) OptionCatalog {
	return OptionCatalog{
		Sexes:           SexOptions,
		Ages:            AgeOptions,
		Specializations: SpecializationOptions,
		Armor:           ArmorOptions[game],
		Weapons:         WeaponOptions[game],
		Magic:           MagicOptions[game],
		Deities:         DeityOptions[game],
		Backgrounds:     BackgroundOptions,
		Prestige:        PrestigeOptions,
		Motivations:     MotivationOptions,
	}
}
