// Package generation orchestrates every generation task: it builds the
// prompt, issues the provider call, parses the response, and classifies
// failures. Name and class-name regeneration also propagate the new value
// into the character's other text artifacts so they never disagree.
//
// Without a configured credential every task returns a deterministic offline
// fallback and performs no network I/O.
package generation

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/character-forge/internal/classify"
	"github.com/jonathan/character-forge/internal/gamedata"
	"github.com/jonathan/character-forge/internal/llm"
	"github.com/jonathan/character-forge/internal/naming"
	"github.com/jonathan/character-forge/internal/parsing"
	"github.com/jonathan/character-forge/internal/prompts"
	"github.com/jonathan/character-forge/internal/types"
)

// Fallback values for the offline path.
const (
	fallbackName             = "Adventurer"
	offlineGuideDescription  = "To generate an adventure guide, please configure your API key."
	offlineGuideRoleplayTips = "Configure your API key to get personalized roleplay tips."
)

// Service runs generation tasks against an LLM client. A nil client means no
// credential is configured and every task takes its offline path.
type Service struct {
	client llm.Client
}

// NewService creates a Service. Pass nil as the client to run offline.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Online reports whether a provider client is configured.
func (s *Service) Online() bool {
	return s.client != nil
}

// GenerateClass creates a custom character class from the player's
// selections. Responses that fail schema validation surface as a ParseError;
// provider failures are categorized.
func (s *Service) GenerateClass(ctx context.Context, game types.Game, race types.Race, opts types.CharacterOptions) (types.CharacterClass, error) {
	if err := opts.Validate(); err != nil {
		return types.CharacterClass{}, err
	}
	if s.client == nil {
		return gamedata.FallbackClass(game), nil
	}

	response, err := s.client.GenerateContent(ctx, llm.ContentRequest{
		System:      prompts.ClassSystem(),
		Prompt:      prompts.BuildClassPrompt(game, race, opts),
		Tier:        llm.TierStandard,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("[GEN] class generation failed: %v", err)
		return types.CharacterClass{}, classify.Categorize(err)
	}

	class, err := parsing.ParseClass(response, game)
	if err != nil {
		log.Printf("[GEN] class response rejected: %v", err)
		return types.CharacterClass{}, err
	}
	return class, nil
}

// GenerateBackstory writes a backstory for the character. When the
// character already has a name the prompt pins it; otherwise the model
// invents a lore-appropriate one inside the text.
func (s *Service) GenerateBackstory(ctx context.Context, ch types.Character) (string, error) {
	if s.client == nil {
		return fmt.Sprintf("%s %s from %s has a mysterious past...", ch.Race.Name, ch.Class.Name, ch.Game), nil
	}

	response, err := s.client.GenerateContent(ctx, llm.ContentRequest{
		System:      prompts.BackstorySystem(),
		Prompt:      prompts.BuildBackstoryPrompt(ch),
		Tier:        llm.TierStandard,
		Temperature: 0.8,
	})
	if err != nil {
		log.Printf("[GEN] backstory generation failed: %v", err)
		return "", classify.Categorize(err)
	}
	return response, nil
}

// GenerateName generates a lore-appropriate name and propagates it into the
// character's backstory and adventure guide. The returned character carries
// the new name; the input is not mutated.
func (s *Service) GenerateName(ctx context.Context, ch types.Character) (types.Character, error) {
	if s.client == nil {
		return s.applyName(ch, fallbackName), nil
	}

	response, err := s.client.GenerateContent(ctx, llm.ContentRequest{
		System:      prompts.NameSystem(),
		Prompt:      prompts.BuildNamePrompt(ch),
		Tier:        llm.TierLite,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("[GEN] name generation failed: %v", err)
		return ch, classify.Categorize(err)
	}

	name := parsing.CleanResponseText(response)
	if name == "" {
		return ch, &parsing.ParseError{Message: "name response was empty"}
	}
	return s.applyName(ch, name), nil
}

// applyName returns a copy of ch renamed to newName, with the old name
// rewritten in the backstory and adventure guide. When the record's own name
// is missing, the backstory's opening sentence supplies the old name.
func (s *Service) applyName(ch types.Character, newName string) types.Character {
	oldName := ch.Name
	if oldName == "" {
		if extracted, ok := naming.ExtractNameFromBackstory(ch.Backstory); ok {
			oldName = extracted
		}
	}

	out := ch
	out.Name = newName
	if oldName != "" && oldName != newName {
		out.Backstory = naming.ReplaceNameInBackstory(ch.Backstory, oldName, newName)
		if ch.AdventureGuide != nil {
			guide := naming.ReplaceNameInAdventureGuide(*ch.AdventureGuide, oldName, newName)
			out.AdventureGuide = &guide
		}
	}
	return out
}

// GenerateClassName renames the character's class while keeping its
// description and skills, and propagates the rename into the backstory and
// adventure guide. Offline, the existing class name is kept unchanged.
func (s *Service) GenerateClassName(ctx context.Context, ch types.Character) (types.Character, error) {
	if s.client == nil {
		return ch, nil
	}

	response, err := s.client.GenerateContent(ctx, llm.ContentRequest{
		System:      prompts.ClassNameSystem(),
		Prompt:      prompts.BuildClassNamePrompt(ch),
		Tier:        llm.TierLite,
		Temperature: 0.8,
	})
	if err != nil {
		log.Printf("[GEN] class name generation failed: %v", err)
		return ch, classify.Categorize(err)
	}

	newName := parsing.CleanResponseText(response)
	if newName == "" {
		return ch, &parsing.ParseError{Message: "class name response was empty"}
	}

	oldName := ch.Class.Name
	out := ch
	out.Class.Name = newName
	if oldName != "" && oldName != newName {
		out.Backstory = naming.ReplaceClassNameInBackstory(ch.Backstory, oldName, newName)
		if ch.AdventureGuide != nil {
			guide := naming.ReplaceClassNameInAdventureGuide(*ch.AdventureGuide, oldName, newName)
			out.AdventureGuide = &guide
		}
	}
	return out, nil
}

// GeneratePortrait generates a portrait image and returns its URL. Offline,
// the portrait reference stays empty.
func (s *Service) GeneratePortrait(ctx context.Context, ch types.Character) (string, error) {
	if s.client == nil {
		return "", nil
	}

	url, err := s.client.GenerateImage(ctx, prompts.BuildPortraitPrompt(ch))
	if err != nil {
		log.Printf("[GEN] portrait generation failed: %v", err)
		return "", classify.Categorize(err)
	}
	return url, nil
}

// GenerateAdventureGuide creates quest and faction recommendations for a
// finished character. This task never fails: provider errors collapse into a
// retry-later guide and malformed responses degrade inside the parser.
func (s *Service) GenerateAdventureGuide(ctx context.Context, ch types.Character) types.AdventureGuide {
	if s.client == nil {
		return types.AdventureGuide{
			Description:         offlineGuideDescription,
			RecommendedQuests:   []types.QuestDetails{},
			RecommendedFactions: []types.FactionDetails{},
			Alignment:           "Unknown",
			Playstyle:           "Unknown",
			RoleplayTips:        offlineGuideRoleplayTips,
		}
	}

	response, err := s.client.GenerateContent(ctx, llm.ContentRequest{
		System:      prompts.GuideSystem(),
		Prompt:      prompts.BuildAdventureGuidePrompt(ch),
		Tier:        llm.TierLite,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("[GEN] adventure guide generation failed: %v", err)
		return types.AdventureGuide{
			Description:         "Unable to generate adventure guide. Please try again later.",
			RecommendedQuests:   []types.QuestDetails{},
			RecommendedFactions: []types.FactionDetails{},
			Alignment:           "Unknown",
			Playstyle:           "Flexible",
			RoleplayTips:        "Try again later for personalized roleplay tips.",
		}
	}

	return parsing.ParseAdventureGuide(response, ch.Game)
}

// ConnectionStatus is the result of a credential probe.
type ConnectionStatus struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	HasBilling *bool  `json:"hasBilling,omitempty"`
}

// TestConnection probes the provider with a minimal request. A success means
// the credential is valid and billing is active; a billing-classified
// failure reports HasBilling=false so the UI can point at the right fix.
func (s *Service) TestConnection(ctx context.Context) ConnectionStatus {
	if s.client == nil {
		return ConnectionStatus{
			Success: false,
			Message: "An API key is required for generating character details.",
		}
	}

	if err := s.client.Probe(ctx); err != nil {
		categorized := classify.Categorize(err)
		status := ConnectionStatus{Success: false, Message: categorized.Message}
		if categorized.BillingIssue {
			hasBilling := false
			status.HasBilling = &hasBilling
			status.Message += " - Please check your billing status with your provider."
		}
		return status
	}

	hasBilling := true
	return ConnectionStatus{
		Success:    true,
		Message:    "Connection successful with valid billing",
		HasBilling: &hasBilling,
	}
}
