// Package gamedata holds the static reference tables: races, class
// templates, per-game option lists, canonical faction and daedric quest
// vocabularies, and portrait description fragments. Everything here is
// hand-authored and immutable at runtime.
package gamedata

import "github.com/jonathan/character-forge/internal/types"

var allGames = []types.Game{types.GameMorrowind, types.GameOblivion, types.GameSkyrim}

// Races is the playable race catalog.
var Races = []types.Race{
	{
		Name:             "Altmer (High Elf)",
		Description:      "The High Elves are the most magically gifted of all races.",
		GameAvailability: allGames,
	},
	{
		Name:             "Argonian",
		Description:      "The Argonians are amphibious reptilian people with natural resistance to disease and the ability to breathe underwater.",
		GameAvailability: allGames,
	},
	{
		Name:             "Bosmer (Wood Elf)",
		Description:      "The Wood Elves are nimble and quick, making them excellent archers and scouts.",
		GameAvailability: allGames,
	},
	{
		Name:             "Breton",
		Description:      "Bretons are a hybrid race with both human and elven ancestry, giving them a natural affinity for magic and spell resistance.",
		GameAvailability: allGames,
	},
	{
		Name:             "Dunmer (Dark Elf)",
		Description:      "The Dark Elves are known for their intelligence, agility, and natural affinity with fire.",
		GameAvailability: allGames,
	},
	{
		Name:             "Imperial",
		Description:      "Natives of Cyrodiil, Imperials are well-educated and skilled diplomats known for their discipline and training.",
		GameAvailability: allGames,
	},
	{
		Name:             "Khajiit",
		Description:      "The cat-like Khajiit are known for their stealth, agility, and night vision.",
		GameAvailability: allGames,
	},
	{
		Name:             "Nord",
		Description:      "The Nords are a tall and fair-haired people from Skyrim who are strong, willful, and resistant to cold.",
		GameAvailability: allGames,
	},
	{
		Name:             "Orc",
		Description:      "Orcs are known for their remarkable strength and endurance.",
		GameAvailability: allGames,
	},
	{
		Name:             "Redguard",
		Description:      "Redguards are the most naturally talented warriors in Tamriel with great athleticism and combat proficiency.",
		GameAvailability: allGames,
	},
}

// RacesForGame returns the races available in a game.
func RacesForGame(game types.Game) []types.Race {
	var out []types.Race
	for _, r := range Races {
		for _, g := range r.GameAvailability {
			if g == game {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
