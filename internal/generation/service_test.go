package generation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/character-forge/internal/classify"
	"github.com/jonathan/character-forge/internal/llm"
	"github.com/jonathan/character-forge/internal/parsing"
	"github.com/jonathan/character-forge/internal/types"
)

// fakeClient scripts provider responses per call.
type fakeClient struct {
	content     string
	contentErr  error
	imageURL    string
	imageErr    error
	probeErr    error
	lastRequest llm.ContentRequest
}

func (f *fakeClient) GenerateContent(_ context.Context, req llm.ContentRequest) (string, error) {
	f.lastRequest = req
	if f.contentErr != nil {
		return "", f.contentErr
	}
	return f.content, nil
}

func (f *fakeClient) GenerateImage(_ context.Context, _ string) (string, error) {
	if f.imageErr != nil {
		return "", f.imageErr
	}
	return f.imageURL, nil
}

func (f *fakeClient) Probe(_ context.Context) error { return f.probeErr }
func (f *fakeClient) Close() error                  { return nil }

func validOptions() types.CharacterOptions {
	return types.CharacterOptions{
		Sex:            "Male",
		Age:            "Adult",
		Specialization: "Combat",
		Armor:          "Heavy Armor",
		Weapons:        []string{"Two-handed Sword"},
		Background:     "Farmer",
		Prestige:       "Unknown commoner",
		Motivation:     "Honor and glory",
	}
}

func namedCharacter() types.Character {
	return types.Character{
		Name:      "Jorin Stonefist",
		Game:      types.GameSkyrim,
		Race:      types.Race{Name: "Nord"},
		Class:     types.CharacterClass{Name: "Warrior", Skills: types.FlatSkills{Skills: []string{"One-handed"}}},
		Backstory: "You are Jorin Stonefist the Nord. Jorin grew up on a farm.",
		AdventureGuide: &types.AdventureGuide{
			Description: "Jorin Stonefist seeks glory.",
		},
	}
}

func TestGenerateClass_Offline(t *testing.T) {
	svc := NewService(nil)

	class, err := svc.GenerateClass(context.Background(), types.GameSkyrim, types.Race{Name: "Nord"}, validOptions())

	require.NoError(t, err)
	assert.Equal(t, "Adventurer", class.Name)
	_, ok := class.Skills.(types.PrimarySecondarySkills)
	assert.True(t, ok)
}

func TestGenerateClass_InvalidOptions(t *testing.T) {
	svc := NewService(nil)
	opts := validOptions()
	opts.Weapons = nil

	_, err := svc.GenerateClass(context.Background(), types.GameSkyrim, types.Race{Name: "Nord"}, opts)

	assert.Error(t, err)
}

func TestGenerateClass_Online(t *testing.T) {
	client := &fakeClient{content: `{
		"name": "Stormwatcher",
		"description": "A warden of the passes.",
		"skills": {"primarySkills": ["One-handed"], "secondarySkills": ["Block"]}
	}`}
	svc := NewService(client)

	class, err := svc.GenerateClass(context.Background(), types.GameSkyrim, types.Race{Name: "Nord"}, validOptions())

	require.NoError(t, err)
	assert.Equal(t, "Stormwatcher", class.Name)
	assert.Equal(t, llm.TierStandard, client.lastRequest.Tier)
	assert.InDelta(t, 0.7, client.lastRequest.Temperature, 0.001)
}

func TestGenerateClass_ProviderErrorIsCategorized(t *testing.T) {
	client := &fakeClient{contentErr: &llm.APIError{StatusCode: 429, Message: "Too many requests"}}
	svc := NewService(client)

	_, err := svc.GenerateClass(context.Background(), types.GameSkyrim, types.Race{Name: "Nord"}, validOptions())

	var categorized *classify.CategorizedError
	require.ErrorAs(t, err, &categorized)
	assert.Equal(t, classify.CategoryRateLimit, categorized.Category)
	assert.True(t, categorized.Retryable)
}

func TestGenerateClass_ParseErrorSurfaces(t *testing.T) {
	client := &fakeClient{content: "no json here"}
	svc := NewService(client)

	_, err := svc.GenerateClass(context.Background(), types.GameSkyrim, types.Race{Name: "Nord"}, validOptions())

	var parseErr *parsing.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestGenerateBackstory_Offline(t *testing.T) {
	svc := NewService(nil)

	backstory, err := svc.GenerateBackstory(context.Background(), namedCharacter())

	require.NoError(t, err)
	assert.Equal(t, "Nord Warrior from Skyrim has a mysterious past...", backstory)
}

func TestGenerateBackstory_Online(t *testing.T) {
	client := &fakeClient{content: "You are Jorin Stonefist the Nord. A long tale follows."}
	svc := NewService(client)

	backstory, err := svc.GenerateBackstory(context.Background(), namedCharacter())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(backstory, "You are Jorin Stonefist"))
	assert.InDelta(t, 0.8, client.lastRequest.Temperature, 0.001)
}

func TestGenerateName_Offline(t *testing.T) {
	svc := NewService(nil)
	ch := namedCharacter()

	out, err := svc.GenerateName(context.Background(), ch)

	require.NoError(t, err)
	assert.Equal(t, "Adventurer", out.Name)
	// The offline placeholder still propagates into the artifacts.
	assert.Contains(t, out.Backstory, "You are Adventurer the Nord.")
	// Input is untouched.
	assert.Equal(t, "Jorin Stonefist", ch.Name)
}

func TestGenerateName_PropagatesIntoArtifacts(t *testing.T) {
	client := &fakeClient{content: `"Elara Swift."`}
	svc := NewService(client)

	out, err := svc.GenerateName(context.Background(), namedCharacter())

	require.NoError(t, err)
	assert.Equal(t, "Elara Swift", out.Name)
	assert.Equal(t, "You are Elara Swift the Nord. Elara grew up on a farm.", out.Backstory)
	require.NotNil(t, out.AdventureGuide)
	assert.Equal(t, "Elara Swift seeks glory.", out.AdventureGuide.Description)
	assert.Equal(t, llm.TierLite, client.lastRequest.Tier)
}

func TestGenerateName_UsesBackstoryNameWhenRecordNameMissing(t *testing.T) {
	client := &fakeClient{content: "Elara Swift"}
	svc := NewService(client)
	ch := namedCharacter()
	ch.Name = ""

	out, err := svc.GenerateName(context.Background(), ch)

	require.NoError(t, err)
	assert.Equal(t, "You are Elara Swift the Nord. Elara grew up on a farm.", out.Backstory)
}

func TestGenerateName_EmptyResponse(t *testing.T) {
	client := &fakeClient{content: `""`}
	svc := NewService(client)

	_, err := svc.GenerateName(context.Background(), namedCharacter())

	var parseErr *parsing.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestGenerateClassName_Offline(t *testing.T) {
	svc := NewService(nil)
	ch := namedCharacter()

	out, err := svc.GenerateClassName(context.Background(), ch)

	require.NoError(t, err)
	assert.Equal(t, "Warrior", out.Class.Name)
}

func TestGenerateClassName_PropagatesIntoArtifacts(t *testing.T) {
	client := &fakeClient{content: "Berserker"}
	svc := NewService(client)
	ch := namedCharacter()
	ch.Backstory = "You are Jorin Stonefist the Nord, a feared Warrior."
	ch.AdventureGuide = &types.AdventureGuide{Playstyle: "Fight as a Warrior would."}

	out, err := svc.GenerateClassName(context.Background(), ch)

	require.NoError(t, err)
	assert.Equal(t, "Berserker", out.Class.Name)
	assert.Equal(t, "You are Jorin Stonefist the Nord, a feared Berserker.", out.Backstory)
	assert.Equal(t, "Fight as a Berserker would.", out.AdventureGuide.Playstyle)
	// Description and skills are untouched.
	assert.Equal(t, ch.Class.Skills, out.Class.Skills)
}

func TestGeneratePortrait_Offline(t *testing.T) {
	svc := NewService(nil)

	url, err := svc.GeneratePortrait(context.Background(), namedCharacter())

	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestGeneratePortrait_Online(t *testing.T) {
	client := &fakeClient{imageURL: "https://img.example/p.png"}
	svc := NewService(client)

	url, err := svc.GeneratePortrait(context.Background(), namedCharacter())

	require.NoError(t, err)
	assert.Equal(t, "https://img.example/p.png", url)
}

func TestGeneratePortrait_ErrorIsCategorized(t *testing.T) {
	client := &fakeClient{imageErr: &llm.APIError{StatusCode: 401, Message: "bad key"}}
	svc := NewService(client)

	_, err := svc.GeneratePortrait(context.Background(), namedCharacter())

	var categorized *classify.CategorizedError
	require.ErrorAs(t, err, &categorized)
	assert.Equal(t, classify.CategoryAuthentication, categorized.Category)
}

func TestGenerateAdventureGuide_Offline(t *testing.T) {
	svc := NewService(nil)

	guide := svc.GenerateAdventureGuide(context.Background(), namedCharacter())

	assert.Contains(t, guide.Description, "configure your API key")
	assert.Equal(t, "Unknown", guide.Alignment)
}

func TestGenerateAdventureGuide_ProviderFailureDegrades(t *testing.T) {
	client := &fakeClient{contentErr: &llm.APIError{StatusCode: 500, Message: "server error"}}
	svc := NewService(client)

	guide := svc.GenerateAdventureGuide(context.Background(), namedCharacter())

	assert.Contains(t, guide.Description, "try again later")
	assert.Equal(t, "Flexible", guide.Playstyle)
}

func TestGenerateAdventureGuide_ParsesResponse(t *testing.T) {
	client := &fakeClient{content: `{
		"description": "Glory awaits.",
		"recommendedQuests": [],
		"recommendedFactions": [{"name": "The Companions", "location": "Whiterun", "howToJoin": "Visit Jorrvaskr."}],
		"alignment": "Lawful",
		"playstyle": "Front-line fighter",
		"roleplayTips": "Be bold."
	}`}
	svc := NewService(client)

	guide := svc.GenerateAdventureGuide(context.Background(), namedCharacter())

	assert.Equal(t, "Glory awaits.", guide.Description)
	require.Len(t, guide.RecommendedFactions, 1)
}

func TestTestConnection_Offline(t *testing.T) {
	svc := NewService(nil)

	status := svc.TestConnection(context.Background())

	assert.False(t, status.Success)
	assert.Contains(t, status.Message, "API key is required")
}

func TestTestConnection_Success(t *testing.T) {
	svc := NewService(&fakeClient{})

	status := svc.TestConnection(context.Background())

	assert.True(t, status.Success)
	require.NotNil(t, status.HasBilling)
	assert.True(t, *status.HasBilling)
}

func TestTestConnection_BillingFailure(t *testing.T) {
	svc := NewService(&fakeClient{probeErr: &llm.APIError{
		StatusCode: 429,
		Message:    "You exceeded your current quota",
	}})

	status := svc.TestConnection(context.Background())

	assert.False(t, status.Success)
	require.NotNil(t, status.HasBilling)
	assert.False(t, *status.HasBilling)
	assert.Contains(t, status.Message, "billing status")
}

func TestTestConnection_AuthFailure(t *testing.T) {
	svc := NewService(&fakeClient{probeErr: &llm.APIError{StatusCode: 401, Message: "Incorrect API key"}})

	status := svc.TestConnection(context.Background())

	assert.False(t, status.Success)
	assert.Nil(t, status.HasBilling)
	assert.Equal(t, "Incorrect API key", status.Message)
}
