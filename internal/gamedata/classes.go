package gamedata

import "github.com/jonathan/character-forge/internal/types"

// ClassTemplate is a catalog class with a skill set variant for every game
// it is available in.
type ClassTemplate struct {
	Name             string
	Description      string
	Skills           map[types.Game]types.SkillSet
	GameAvailability []types.Game
}

// Classes is the pre-made class catalog.
var Classes = []ClassTemplate{
	{
		Name:        "Warrior",
		Description: "A master of melee combat skilled in armor and weapons.",
		Skills: map[types.Game]types.SkillSet{
			types.GameMorrowind: types.MajorMinorSkills{
				Major: []string{"Long Blade", "Axe", "Heavy Armor", "Medium Armor", "Block"},
				Minor: []string{"Armorer", "Blunt Weapon", "Athletics", "Acrobatics", "Speechcraft"},
			},
			types.GameOblivion: types.OblivionMajorSkills{
				Major: []string{"Blade", "Blunt", "Heavy Armor", "Block", "Armorer", "Athletics", "Hand to Hand"},
			},
			types.GameSkyrim: types.PrimarySecondarySkills{
				Primary:   []string{"One-handed", "Two-handed", "Heavy Armor", "Block"},
				Secondary: []string{"Smithing", "Speech", "Enchanting"},
			},
		},
		GameAvailability: allGames,
	},
	{
		Name:        "Mage",
		Description: "A practitioner of the arcane arts focusing on spell casting.",
		Skills: map[types.Game]types.SkillSet{
			types.GameMorrowind: types.MajorMinorSkills{
				Major: []string{"Destruction", "Alteration", "Illusion", "Mysticism", "Restoration"},
				Minor: []string{"Conjuration", "Enchant", "Alchemy", "Unarmored", "Short Blade"},
			},
			types.GameOblivion: types.OblivionMajorSkills{
				Major: []string{"Destruction", "Alteration", "Illusion", "Mysticism", "Restoration", "Conjuration", "Alchemy"},
			},
			types.GameSkyrim: types.PrimarySecondarySkills{
				Primary:   []string{"Destruction", "Alteration", "Illusion", "Restoration"},
				Secondary: []string{"Conjuration", "Enchanting", "Speechcraft"},
			},
		},
		GameAvailability: allGames,
	},
	{
		Name:        "Thief",
		Description: "A master of stealth, lockpicking, and pickpocketing.",
		Skills: map[types.Game]types.SkillSet{
			types.GameMorrowind: types.MajorMinorSkills{
				Major: []string{"Sneak", "Security", "Light Armor", "Short Blade", "Marksman"},
				Minor: []string{"Acrobatics", "Athletics", "Speechcraft", "Mercantile", "Hand-to-hand"},
			},
			types.GameOblivion: types.OblivionMajorSkills{
				Major: []string{"Sneak", "Security", "Light Armor", "Acrobatics", "Blade", "Marksman", "Speechcraft"},
			},
			types.GameSkyrim: types.PrimarySecondarySkills{
				Primary:   []string{"Sneak", "Lockpicking", "Pickpocket", "Light Armor"},
				Secondary: []string{"Speech", "One-handed", "Archery"},
			},
		},
		GameAvailability: allGames,
	},
	{
		Name:        "Assassin",
		Description: "Specializes in stealth, poison, and taking targets down quietly.",
		Skills: map[types.Game]types.SkillSet{
			types.GameMorrowind: types.MajorMinorSkills{
				Major: []string{"Sneak", "Short Blade", "Light Armor", "Marksman", "Acrobatics"},
				Minor: []string{"Alchemy", "Security", "Illusion", "Athletics", "Unarmored"},
			},
			types.GameOblivion: types.OblivionMajorSkills{
				Major: []string{"Blade", "Sneak", "Light Armor", "Marksman", "Acrobatics", "Security", "Alchemy"},
			},
			types.GameSkyrim: types.PrimarySecondarySkills{
				Primary:   []string{"Sneak", "One-handed", "Alchemy", "Light Armor"},
				Secondary: []string{"Archery", "Pickpocket", "Illusion"},
			},
		},
		GameAvailability: allGames,
	},
	{
		Name:        "Battlemage",
		Description: "Combines magic with combat prowess for a deadly combination.",
		Skills: map[types.Game]types.SkillSet{
			types.GameMorrowind: types.MajorMinorSkills{
				Major: []string{"Destruction", "Conjuration", "Alteration", "Heavy Armor", "Long Blade"},
				Minor: []string{"Mysticism", "Enchant", "Restoration", "Alchemy", "Block"},
			},
			types.GameOblivion: types.OblivionMajorSkills{
				Major: []string{"Destruction", "Conjuration", "Alteration", "Heavy Armor", "Blade", "Mysticism", "Restoration"},
			},
			types.GameSkyrim: types.PrimarySecondarySkills{
				Primary:   []string{"Destruction", "Conjuration", "Heavy Armor", "One-handed"},
				Secondary: []string{"Enchanting", "Restoration", "Block"},
			},
		},
		GameAvailability: allGames,
	},
	{
		Name:        "Scout",
		Description: "A wilderness expert skilled in archery and survival.",
		Skills: map[types.Game]types.SkillSet{
			types.GameMorrowind: types.MajorMinorSkills{
				Major: []string{"Marksman", "Light Armor", "Sneak", "Athletics", "Medium Armor"},
				Minor: []string{"Alchemy", "Acrobatics", "Spear", "Short Blade", "Block"},
			},
			types.GameOblivion: types.OblivionMajorSkills{
				Major: []string{"Marksman", "Light Armor", "Sneak", "Athletics", "Acrobatics", "Blade", "Alchemy"},
			},
			types.GameSkyrim: types.PrimarySecondarySkills{
				Primary:   []string{"Archery", "Light Armor", "Sneak", "Alchemy"},
				Secondary: []string{"One-handed", "Lockpicking", "Speech"},
			},
		},
		GameAvailability: allGames,
	},
	{
		Name:        "Spellsword",
		Description: "Balances swordplay with magical abilities.",
		Skills: map[types.Game]types.SkillSet{
			types.GameMorrowind: types.MajorMinorSkills{
				Major: []string{"Long Blade", "Destruction", "Restoration", "Alteration", "Block"},
				Minor: []string{"Medium Armor", "Enchant", "Mysticism", "Illusion", "Athletics"},
			},
			types.GameOblivion: types.OblivionMajorSkills{
				Major: []string{"Blade", "Block", "Destruction", "Restoration", "Alteration", "Light Armor", "Illusion"},
			},
			types.GameSkyrim: types.PrimarySecondarySkills{
				Primary:   []string{"One-handed", "Destruction", "Restoration", "Alteration"},
				Secondary: []string{"Enchanting", "Block", "Light Armor"},
			},
		},
		GameAvailability: allGames,
	},
	{
		Name:        "Nightblade",
		Description: "Combines stealth with magic for deadly surprise attacks.",
		Skills: map[types.Game]types.SkillSet{
			types.GameMorrowind: types.MajorMinorSkills{
				Major: []string{"Short Blade", "Illusion", "Sneak", "Light Armor", "Destruction"},
				Minor: []string{"Mysticism", "Alteration", "Security", "Acrobatics", "Athletics"},
			},
			types.GameOblivion: types.OblivionMajorSkills{
				Major: []string{"Blade", "Sneak", "Illusion", "Destruction", "Light Armor", "Alteration", "Security"},
			},
			types.GameSkyrim: types.PrimarySecondarySkills{
				Primary:   []string{"Sneak", "Illusion", "One-handed", "Destruction"},
				Secondary: []string{"Light Armor", "Pickpocket", "Alteration"},
			},
		},
		GameAvailability: allGames,
	},
}

// ClassesForGame returns the catalog classes available in a game, resolved
// to that game's skill set variant.
func ClassesForGame(game types.Game) []types.CharacterClass {
	var out []types.CharacterClass
	for _, tmpl := range Classes {
		skills, ok := tmpl.Skills[game]
		if !ok {
			continue
		}
		out = append(out, types.CharacterClass{
			Name:             tmpl.Name,
			Description:      tmpl.Description,
			Skills:           skills,
			GameAvailability: tmpl.GameAvailability,
		})
	}
	return out
}

// FallbackClass is the canned offline class returned when no credential is
// configured. Skill tables are fixed per game.
func FallbackClass(game types.Game) types.CharacterClass {
	var skills types.SkillSet
	switch game {
	case types.GameMorrowind:
		skills = types.MajorMinorSkills{
			Major: []string{"Long Blade", "Medium Armor", "Restoration", "Athletics", "Speechcraft"},
			Minor: []string{"Alchemy", "Light Armor", "Short Blade", "Marksman", "Alteration"},
		}
	case types.GameOblivion:
		skills = types.OblivionMajorSkills{
			Major: []string{"Blade", "Block", "Restoration", "Light Armor", "Athletics", "Marksman", "Speechcraft"},
		}
	case types.GameSkyrim:
		skills = types.PrimarySecondarySkills{
			Primary:   []string{"One-handed", "Light Armor", "Restoration", "Speech"},
			Secondary: []string{"Block", "Archery", "Sneak", "Alchemy"},
		}
	default:
		skills = types.FlatSkills{Skills: []string{"Survival", "Combat", "Adaptability"}}
	}

	return types.CharacterClass{
		Name:             "Adventurer",
		Description:      "A versatile character skilled in various abilities.",
		Skills:           skills,
		GameAvailability: []types.Game{game},
	}
}
