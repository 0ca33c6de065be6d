package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/character-forge/internal/types"
)

func TestReplaceNameInBackstory(t *testing.T) {
	tests := []struct {
		name      string
		backstory string
		oldName   string
		newName   string
		expected  string
	}{
		{
			name:      "full name replaced",
			backstory: "You are Jorin Stonefist the Nord.",
			oldName:   "Jorin Stonefist",
			newName:   "Elara Swift",
			expected:  "You are Elara Swift the Nord.",
		},
		{
			name:      "bare first name becomes new first name",
			backstory: "Jorin Stonefist grew up in Windhelm. Jorin never knew his father.",
			oldName:   "Jorin Stonefist",
			newName:   "Elara Swift",
			expected:  "Elara Swift grew up in Windhelm. Elara never knew his father.",
		},
		{
			name:      "first name followed by surname is not double replaced",
			backstory: "They called Jorin Stonefist a hero, though Jorin disagreed.",
			oldName:   "Jorin Stonefist",
			newName:   "Elara Swift",
			expected:  "They called Elara Swift a hero, though Elara disagreed.",
		},
		{
			name:      "single token name",
			backstory: "Adventurer wandered the roads. Everyone knew Adventurer.",
			oldName:   "Adventurer",
			newName:   "Teldryn",
			expected:  "Teldryn wandered the roads. Everyone knew Teldryn.",
		},
		{
			name:      "case insensitive match gets canonical casing",
			backstory: "you are jorin stonefist the Nord.",
			oldName:   "Jorin Stonefist",
			newName:   "Elara Swift",
			expected:  "you are Elara Swift the Nord.",
		},
		{
			name:      "shouted name with extra spacing keeps its surname pairing",
			backstory: "The guards cried JORIN  STONEFIST at the gates.",
			oldName:   "Jorin Stonefist",
			newName:   "Elara Swift",
			expected:  "The guards cried JORIN  STONEFIST at the gates.",
		},
		{
			name:      "no partial word replacement",
			backstory: "The Jorinite cult revered Jorin.",
			oldName:   "Jorin",
			newName:   "Elara",
			expected:  "The Jorinite cult revered Elara.",
		},
		{
			name:      "absent old name is a no-op",
			backstory: "You are Elara Swift the Nord.",
			oldName:   "Jorin Stonefist",
			newName:   "Elara Swift",
			expected:  "You are Elara Swift the Nord.",
		},
		{
			name:      "empty backstory",
			backstory: "",
			oldName:   "Jorin",
			newName:   "Elara",
			expected:  "",
		},
		{
			name:      "empty old name",
			backstory: "You are Jorin the Nord.",
			oldName:   "",
			newName:   "Elara",
			expected:  "You are Jorin the Nord.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplaceNameInBackstory(tt.backstory, tt.oldName, tt.newName))
		})
	}
}

func TestReplaceNameInBackstory_Idempotent(t *testing.T) {
	backstory := "You are Jorin Stonefist the Nord. Jorin fled south."

	once := ReplaceNameInBackstory(backstory, "Jorin Stonefist", "Elara Swift")
	twice := ReplaceNameInBackstory(once, "Jorin Stonefist", "Elara Swift")

	assert.Equal(t, once, twice)
}

func TestReplaceNameInBackstory_ApostropheName(t *testing.T) {
	backstory := "Hunters feared J'zargo."

	result := ReplaceNameInBackstory(backstory, "J'zargo", "Ma'iq")

	assert.Equal(t, "Hunters feared Ma'iq.", result)
}

func TestReplaceClassNameInBackstory(t *testing.T) {
	backstory := "As a Nightblade, she struck unseen. The Nightblade's path is lonely."

	result := ReplaceClassNameInBackstory(backstory, "Nightblade", "Shadowmage")

	assert.Equal(t, "As a Shadowmage, she struck unseen. The Shadowmage's path is lonely.", result)
}

func testGuide() types.AdventureGuide {
	return types.AdventureGuide{
		Description:  "Jorin Stonefist thrives in the wilds.",
		Alignment:    "Jorin should stay lawful.",
		Playstyle:    "Two-handed weapons suit Jorin.",
		RoleplayTips: "Play Jorin as stoic.",
		SpecialNotes: "Jorin's destiny lies north.",
		RecommendedQuests: []types.QuestDetails{{
			Name:         "A quest for Jorin",
			Location:     "Windhelm",
			HowToStart:   "Jorin must speak to the jarl.",
			Tips:         "Jorin should bring potions.",
			Significance: "It echoes Jorin's past.",
			Reward:       "Gold for Jorin",
		}},
		RecommendedFactions: []types.FactionDetails{{
			Name:         "The Companions",
			Location:     "Whiterun",
			HowToJoin:    "Jorin should visit Jorrvaskr.",
			Tips:         "Jorin must prove himself.",
			Benefits:     "Training for Jorin",
			Requirements: "Jorin needs combat skill.",
		}},
		DaedricQuests: []types.QuestDetails{{
			Name:       "The Cursed Tribe",
			Location:   "Largashbur",
			HowToStart: "Jorin must aid the Orcs.",
		}},
	}
}

func TestReplaceNameInAdventureGuide(t *testing.T) {
	guide := testGuide()

	result := ReplaceNameInAdventureGuide(guide, "Jorin Stonefist", "Elara Swift")

	assert.Equal(t, "Elara Swift thrives in the wilds.", result.Description)
	// Only the full name is substituted here; a bare first name in a field
	// that never carries the full name stays as-is.
	assert.Equal(t, "Play Jorin as stoic.", result.RoleplayTips)

	// Input guide is untouched.
	assert.Equal(t, "Jorin Stonefist thrives in the wilds.", guide.Description)
}

func TestReplaceNameInAdventureGuide_MetacharactersInName(t *testing.T) {
	guide := types.AdventureGuide{
		Description: "J'zargo (the Clever) arrives at dawn.",
	}

	result := ReplaceNameInAdventureGuide(guide, "J'zargo (the Clever)", "Ma'iq")

	// The strict pass cannot place a word boundary after ")", so the
	// flexible pass handles it.
	assert.Equal(t, "Ma'iq arrives at dawn.", result.Description)
}

func TestReplaceNameInAdventureGuide_PossessiveForm(t *testing.T) {
	guide := types.AdventureGuide{
		Description: "Teldryns blade never dulls.",
	}

	result := ReplaceNameInAdventureGuide(guide, "Teldryn", "Jenassa")

	// "Teldryns" has no word boundary after "Teldryn"... it does ("n" to "s"
	// is not a boundary), so the strict pass fails and the flexible pass
	// rewrites the embedded occurrence.
	assert.Equal(t, "Jenassas blade never dulls.", result.Description)
}

func TestReplaceNameInAdventureGuide_AllFieldsTouched(t *testing.T) {
	guide := testGuide()

	result := ReplaceNameInAdventureGuide(guide, "Jorin", "Elara")

	for _, text := range []string{
		result.Description, result.Alignment, result.Playstyle,
		result.RoleplayTips, result.SpecialNotes,
		result.RecommendedQuests[0].Name, result.RecommendedQuests[0].HowToStart,
		result.RecommendedQuests[0].Tips, result.RecommendedQuests[0].Significance,
		result.RecommendedQuests[0].Reward,
		result.RecommendedFactions[0].HowToJoin, result.RecommendedFactions[0].Tips,
		result.RecommendedFactions[0].Benefits, result.RecommendedFactions[0].Requirements,
		result.DaedricQuests[0].HowToStart,
	} {
		assert.NotContains(t, text, "Jorin")
	}
}

func TestReplaceClassNameInAdventureGuide(t *testing.T) {
	guide := types.AdventureGuide{
		Description: "A Warrior charges in; the Warrior's hammer decides.",
		Playstyle:   "Warriors favour heavy armor.",
	}

	result := ReplaceClassNameInAdventureGuide(guide, "Warrior", "Berserker")

	assert.Equal(t, "A Berserker charges in; the Berserker's hammer decides.", result.Description)
	// Whole-word only: "Warriors" keeps its plural form untouched.
	assert.Equal(t, "Warriors favour heavy armor.", result.Playstyle)
}

func TestExtractNameFromBackstory(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"two token name", "You are Jorin Stonefist the Nord. He fled.", "Jorin Stonefist", true},
		{"single token name", "You are Teldryn the Dunmer.", "Teldryn", true},
		{"four token name", "You are Am Shaegar Al Kharim the Redguard.", "Am Shaegar Al Kharim", true},
		{"apostrophe name", "You are J'zargo the Khajiit.", "J'zargo", true},
		{"pattern mid text not matched", "Long ago. You are Jorin the Nord.", "", false},
		{"lowercase name not matched", "You are jorin the Nord.", "", false},
		{"no pattern", "A mysterious wanderer.", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := ExtractNameFromBackstory(tt.text)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestReplaceNameRoundTrip(t *testing.T) {
	backstory := "You are Jorin Stonefist the Nord. Jorin grew up poor."

	renamed := ReplaceNameInBackstory(backstory, "Jorin Stonefist", "Elara Swift")
	extracted, ok := ExtractNameFromBackstory(renamed)

	require.True(t, ok)
	assert.Equal(t, "Elara Swift", extracted)
}
