package gamedata

import (
	"testing"

	"github.com/jonathan/character-forge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRacesForGame(t *testing.T) {
	for _, game := range types.Games {
		races := RacesForGame(game)
		assert.Len(t, races, 10, "all ten races are available in %s", game)
	}
}

func TestClassesForGameResolveVariant(t *testing.T) {
	tests := []struct {
		game    types.Game
		variant types.SkillSet
	}{
		{types.GameMorrowind, types.MajorMinorSkills{}},
		{types.GameOblivion, types.OblivionMajorSkills{}},
		{types.GameSkyrim, types.PrimarySecondarySkills{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.game), func(t *testing.T) {
			classes := ClassesForGame(tt.game)
			require.Len(t, classes, 8)
			for _, c := range classes {
				assert.IsType(t, tt.variant, c.Skills, "class %s", c.Name)
			}
		})
	}
}

func TestFallbackClass(t *testing.T) {
	morrowind := FallbackClass(types.GameMorrowind)
	assert.Equal(t, "Adventurer", morrowind.Name)
	mm, ok := morrowind.Skills.(types.MajorMinorSkills)
	require.True(t, ok)
	assert.Len(t, mm.Major, 5)
	assert.Len(t, mm.Minor, 5)

	oblivion := FallbackClass(types.GameOblivion)
	om, ok := oblivion.Skills.(types.OblivionMajorSkills)
	require.True(t, ok)
	assert.Len(t, om.Major, 7)

	skyrim := FallbackClass(types.GameSkyrim)
	ps, ok := skyrim.Skills.(types.PrimarySecondarySkills)
	require.True(t, ok)
	assert.Len(t, ps.Primary, 4)
	assert.Len(t, ps.Secondary, 4)

	// Unknown game falls back to a flat list.
	unknown := FallbackClass(types.Game("Daggerfall"))
	_, ok = unknown.Skills.(types.FlatSkills)
	assert.True(t, ok)
}

func TestCanonicalFactions(t *testing.T) {
	assert.Contains(t, CanonicalFactions(types.GameSkyrim), "dark brotherhood")
	assert.Contains(t, CanonicalFactions(types.GameMorrowind), "morag tong")
	assert.NotContains(t, CanonicalFactions(types.GameMorrowind), "dark brotherhood")
	assert.Nil(t, CanonicalFactions(types.Game("Daggerfall")))
}

func TestRaceDescription(t *testing.T) {
	assert.Contains(t, RaceDescription("Khajiit", types.GameSkyrim), "feline")
	assert.Contains(t, RaceDescription("Altmer (High Elf)", types.GameOblivion), "golden")
	assert.Contains(t, RaceDescription("Dwemer", types.GameMorrowind), "distinctive physical features of Dwemer race")
}

func TestAgeAppearanceFor(t *testing.T) {
	assert.Contains(t, AgeAppearanceFor("Elder").Details, "deep wrinkles")
	assert.Equal(t, "adult", AgeAppearanceFor("something else").Descriptor)
}

func TestOptionsForGame(t *testing.T) {
	opts := OptionsForGame(types.GameMorrowind)
	assert.Contains(t, opts.Armor, "Medium Armor")
	assert.Contains(t, opts.Weapons, "Spear")
	assert.Len(t, opts.Motivations, 12)

	oblivion := OptionsForGame(types.GameOblivion)
	assert.NotContains(t, oblivion.Armor, "Medium Armor")
}
