// Package naming keeps a character's name and class name consistent across
// the generated text artifacts. When either value is regenerated, the stale
// value still appears throughout the backstory and adventure guide; the
// functions here rewrite those occurrences in place of a full regeneration.
//
// All operations are pure: inputs are never mutated and no operation fails.
// When the old value is absent the input comes back unchanged.
package naming

import (
	"regexp"
	"strings"

	"github.com/jonathan/character-forge/internal/types"
)

// wordPattern compiles a case-insensitive whole-word pattern for name. The
// name is escaped first; generated names are not guaranteed to be
// regex-safe.
func wordPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
}

// replaceWord replaces whole-word, case-insensitive occurrences of oldName
// with newName.
func replaceWord(text, oldName, newName string) string {
	return wordPattern(oldName).ReplaceAllLiteralString(text, newName)
}

// replaceFirstToken replaces whole-word occurrences of the old name's first
// token with the new first token, skipping occurrences immediately followed
// by the remaining old-name tokens (those were already handled by the
// full-name pass). RE2 has no lookahead, so each match's tail is tested
// separately.
func replaceFirstToken(text, firstToken string, restTokens []string, newFirst string) string {
	escaped := make([]string, len(restTokens))
	for i, token := range restTokens {
		escaped[i] = regexp.QuoteMeta(token)
	}
	followedBy := regexp.MustCompile(`(?i)^\s+` + strings.Join(escaped, `\s+`) + `\b`)
	pattern := wordPattern(firstToken)

	var b strings.Builder
	last := 0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		if followedBy.MatchString(text[loc[1]:]) {
			continue
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(newFirst)
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// ReplaceNameInBackstory rewrites occurrences of oldName in a backstory with
// newName. Multi-token names get two passes: the full name first, then bare
// first-name references, replaced with the new name's first token.
func ReplaceNameInBackstory(backstory, oldName, newName string) string {
	if backstory == "" || oldName == "" || newName == "" {
		return backstory
	}

	oldParts := strings.Split(oldName, " ")
	if len(oldParts) > 1 {
		updated := replaceWord(backstory, oldName, newName)
		newFirst := strings.Split(newName, " ")[0]
		return replaceFirstToken(updated, oldParts[0], oldParts[1:], newFirst)
	}
	return replaceWord(backstory, oldName, newName)
}

// ReplaceClassNameInBackstory rewrites whole-word occurrences of a class
// name. Class names are single conceptual tokens, so no first/last-name
// splitting applies.
func ReplaceClassNameInBackstory(backstory, oldClassName, newClassName string) string {
	if backstory == "" || oldClassName == "" || newClassName == "" {
		return backstory
	}
	return replaceWord(backstory, oldClassName, newClassName)
}

// ReplaceNameInAdventureGuide returns a copy of the guide with oldName
// rewritten to newName in every text field. A strict word-boundary pass runs
// first; when it changes nothing but the name is present case-insensitively
// (possessives, compound tokens), a boundary-free pass runs instead.
func ReplaceNameInAdventureGuide(guide types.AdventureGuide, oldName, newName string) types.AdventureGuide {
	if oldName == "" || newName == "" {
		return guide
	}

	strict := wordPattern(oldName)
	flexible := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(oldName))
	lowerOld := strings.ToLower(oldName)

	apply := func(text string) string {
		if text == "" {
			return text
		}
		result := strict.ReplaceAllLiteralString(text, newName)
		if result == text && strings.Contains(strings.ToLower(text), lowerOld) {
			result = flexible.ReplaceAllLiteralString(text, newName)
		}
		return result
	}

	return rewriteGuide(guide, apply)
}

// ReplaceClassNameInAdventureGuide returns a copy of the guide with the old
// class name rewritten to the new one in every text field, whole-word only.
func ReplaceClassNameInAdventureGuide(guide types.AdventureGuide, oldClassName, newClassName string) types.AdventureGuide {
	if oldClassName == "" || newClassName == "" {
		return guide
	}

	pattern := wordPattern(oldClassName)
	apply := func(text string) string {
		if text == "" {
			return text
		}
		return pattern.ReplaceAllLiteralString(text, newClassName)
	}

	return rewriteGuide(guide, apply)
}

// rewriteGuide applies a text transformation to every text field of a guide,
// returning a fresh value.
func rewriteGuide(guide types.AdventureGuide, apply func(string) string) types.AdventureGuide {
	rewriteQuest := func(quest types.QuestDetails) types.QuestDetails {
		return types.QuestDetails{
			Name:         apply(quest.Name),
			Location:     apply(quest.Location),
			HowToStart:   apply(quest.HowToStart),
			Tips:         apply(quest.Tips),
			Significance: apply(quest.Significance),
			Reward:       apply(quest.Reward),
		}
	}
	rewriteFaction := func(faction types.FactionDetails) types.FactionDetails {
		return types.FactionDetails{
			Name:         apply(faction.Name),
			Location:     apply(faction.Location),
			HowToJoin:    apply(faction.HowToJoin),
			Tips:         apply(faction.Tips),
			Benefits:     apply(faction.Benefits),
			Requirements: apply(faction.Requirements),
		}
	}

	out := types.AdventureGuide{
		Description:  apply(guide.Description),
		Alignment:    apply(guide.Alignment),
		Playstyle:    apply(guide.Playstyle),
		RoleplayTips: apply(guide.RoleplayTips),
		SpecialNotes: apply(guide.SpecialNotes),
	}
	if guide.RecommendedQuests != nil {
		out.RecommendedQuests = make([]types.QuestDetails, len(guide.RecommendedQuests))
		for i, quest := range guide.RecommendedQuests {
			out.RecommendedQuests[i] = rewriteQuest(quest)
		}
	}
	if guide.RecommendedFactions != nil {
		out.RecommendedFactions = make([]types.FactionDetails, len(guide.RecommendedFactions))
		for i, faction := range guide.RecommendedFactions {
			out.RecommendedFactions[i] = rewriteFaction(faction)
		}
	}
	if guide.DaedricQuests != nil {
		out.DaedricQuests = make([]types.QuestDetails, len(guide.DaedricQuests))
		for i, quest := range guide.DaedricQuests {
			out.DaedricQuests[i] = rewriteQuest(quest)
		}
	}
	return out
}

// backstoryOpening matches the fixed "You are <Name> the <race>" opening the
// backstory prompt demands, capturing one to four capitalized name tokens.
var backstoryOpening = regexp.MustCompile(`^You are ([A-Z][^\s]*(?:[ ][A-Z][^\s]*){0,3}) the\b`)

// ExtractNameFromBackstory pulls the character name out of a backstory's
// opening sentence. It reports false when the backstory does not start with
// the expected pattern. This is the source of truth for which name is
// embedded in a backstory when the character record's own name is stale or
// missing.
func ExtractNameFromBackstory(text string) (string, bool) {
	match := backstoryOpening.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}
