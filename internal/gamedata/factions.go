package gamedata

import "github.com/jonathan/character-forge/internal/types"

// Canonical faction vocabulary per game, normalized to lowercase. Model
// output is validated against these lists by two-way substring containment;
// entries with no match are dropped.
var canonicalFactions = map[types.Game][]string{
	types.GameMorrowind: {
		"house hlaalu", "house redoran", "house telvanni",
		"fighter's guild", "fighters guild", "mages guild", "thieves guild",
		"imperial legion", "imperial cult", "east empire company", "tribunal temple",
		"morag tong", "twin lamps", "bal molagmer", "the blades", "blades", "ashlanders",
	},
	types.GameOblivion: {
		"dark brotherhood", "mages guild", "fighters guild", "thieves' guild",
		"thieves guild", "arena", "the blades", "blades",
	},
	types.GameSkyrim: {
		"the companions", "companions", "college of winterhold", "dark brotherhood",
		"thieves guild", "imperial legion", "imperials", "stormcloaks",
		"dawnguard", "volkihar", "volkihar vampire clan", "vampires",
		"bards college", "blades", "thane",
	},
}

// CanonicalFactions returns the normalized faction vocabulary for a game,
// or nil for an unknown game.
func CanonicalFactions(game types.Game) []string {
	return canonicalFactions[game]
}

// Human-readable faction blocks injected verbatim into the adventure guide
// prompt so the model cannot invent nonexistent factions.
var factionPromptBlocks = map[types.Game]string{
	types.GameMorrowind: `Available joinable factions in Morrowind:
- Great Houses (can only join one): House Hlaalu, House Redoran, House Telvanni
- Major Factions: Fighter's Guild, Mages Guild, Thieves Guild, Imperial Legion, Imperial Cult, East Empire Company, Tribunal Temple, Morag Tong
- Minor Factions: Twin Lamps, Bal Molagmer
- Main Quest Factions: The Blades, Ashlanders`,
	types.GameOblivion: `Available joinable factions in Oblivion:
- Dark Brotherhood, Mages Guild, Fighters Guild, Thieves' Guild, Arena, The Blades`,
	types.GameSkyrim: `Available joinable factions in Skyrim:
- The Companions, College of Winterhold, Dark Brotherhood, Thieves Guild
- Civil War (choose one): Imperial Legion OR Stormcloaks
- Dawnguard DLC (choose one): Dawnguard OR Volkihar Vampire Clan
- Minor associations: Bards College, Blades, becoming a Thane in various holds`,
}

// FactionPromptBlock returns the verbatim faction list for the guide prompt.
func FactionPromptBlock(game types.Game) string {
	return factionPromptBlocks[game]
}

// Canonical "special quest" (daedric quest) blocks, injected verbatim into
// the adventure guide prompt.
var daedricPromptBlocks = map[types.Game]string{
	types.GameMorrowind: `Daedric Quests in Morrowind:
- Azura's Quest
- Boethiah's Quest
- Malacath's Quest
- Mehrunes Dagon's Quest
- Mephala's Quest
- Molag Bal's Quest
- Sheogorath's Quest`,
	types.GameOblivion: `Daedric Quests in Oblivion:
- Azura's Shrine Quest
- Boethiah's Shrine Quest
- Clavicus Vile's Shrine Quest
- Hermaeus Mora's Shrine Quest
- Hircine's Shrine Quest
- Malacath's Shrine Quest
- Mephala's Shrine Quest
- Meridia's Shrine Quest
- Molag Bal's Shrine Quest
- Namira's Shrine Quest
- Nocturnal's Shrine Quest
- Peryite's Shrine Quest
- Sanguine's Shrine Quest
- Sheogorath's Shrine Quest
- Vaermina's Shrine Quest`,
	types.GameSkyrim: `Daedric Quests in Skyrim:
- A Night to Remember (Sanguine)
- Boethiah's Calling
- Discerning the Transmundane (Hermaeus Mora)
- Ill Met by Moonlight (Hircine)
- Pieces of the Past (Mehrunes Dagon)
- The Black Star (Azura)
- The Break of Dawn (Meridia)
- The Cursed Tribe (Malacath)
- The House of Horrors (Molag Bal)
- The Mind of Madness (Sheogorath)
- The Only Cure (Peryite)
- The Taste of Death (Namira)
- The Whispering Door (Mephala)
- Waking Nightmare (Vaermina)`,
}

// DaedricPromptBlock returns the verbatim daedric quest list for the guide
// prompt.
func DaedricPromptBlock(game types.Game) string {
	return daedricPromptBlocks[game]
}
