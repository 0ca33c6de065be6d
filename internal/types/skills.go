package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SkillSet is the per-game shape of a class's abilities, modeled as a sealed
// sum type: exactly one variant per game plus a flat fallback. Consumers
// branch through FormatSkills rather than presence-checking field groups.
type SkillSet interface {
	skillSet()
}

// MajorMinorSkills is the Morrowind schema: 5 major and 5 minor skills.
type MajorMinorSkills struct {
	Major []string `json:"majorSkills"`
	Minor []string `json:"minorSkills"`
}

// OblivionMajorSkills is the Oblivion schema: 7 major skills.
type OblivionMajorSkills struct {
	Major []string `json:"oblivionMajorSkills"`
}

// PrimarySecondarySkills is the Skyrim schema: 3-4 primary and 3-4 secondary
// skill recommendations.
type PrimarySecondarySkills struct {
	Primary   []string `json:"primarySkills"`
	Secondary []string `json:"secondarySkills"`
}

// FlatSkills is the fallback schema: an undifferentiated skill list.
type FlatSkills struct {
	Skills []string `json:"skills"`
}

func (MajorMinorSkills) skillSet()       {}
func (OblivionMajorSkills) skillSet()    {}
func (PrimarySecondarySkills) skillSet() {}
func (FlatSkills) skillSet()             {}

// Skill set variant tags used in the JSON envelope.
const (
	variantMajorMinor       = "major-minor"
	variantOblivionMajor    = "oblivion-major"
	variantPrimarySecondary = "primary-secondary"
	variantFlat             = "flat"
)

// skillSetEnvelope is the wire form of a SkillSet: a variant tag plus the
// union of all field groups, only one group populated.
type skillSetEnvelope struct {
	Variant             string   `json:"variant"`
	MajorSkills         []string `json:"majorSkills,omitempty"`
	MinorSkills         []string `json:"minorSkills,omitempty"`
	OblivionMajorSkills []string `json:"oblivionMajorSkills,omitempty"`
	PrimarySkills       []string `json:"primarySkills,omitempty"`
	SecondarySkills     []string `json:"secondarySkills,omitempty"`
	Skills              []string `json:"skills,omitempty"`
}

// MarshalSkillSet encodes a skill set with its variant tag.
func MarshalSkillSet(s SkillSet) ([]byte, error) {
	var env skillSetEnvelope
	switch v := s.(type) {
	case MajorMinorSkills:
		env = skillSetEnvelope{Variant: variantMajorMinor, MajorSkills: v.Major, MinorSkills: v.Minor}
	case OblivionMajorSkills:
		env = skillSetEnvelope{Variant: variantOblivionMajor, OblivionMajorSkills: v.Major}
	case PrimarySecondarySkills:
		env = skillSetEnvelope{Variant: variantPrimarySecondary, PrimarySkills: v.Primary, SecondarySkills: v.Secondary}
	case FlatSkills:
		env = skillSetEnvelope{Variant: variantFlat, Skills: v.Skills}
	default:
		return nil, fmt.Errorf("unknown skill set variant %T", s)
	}
	return json.Marshal(env)
}

// UnmarshalSkillSet restores the concrete variant from the envelope. For
// compatibility with untagged payloads (raw model output, older snapshots)
// it falls back to detecting the populated field group.
func UnmarshalSkillSet(data []byte) (SkillSet, error) {
	var env skillSetEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode skill set: %w", err)
	}

	switch env.Variant {
	case variantMajorMinor:
		return MajorMinorSkills{Major: env.MajorSkills, Minor: env.MinorSkills}, nil
	case variantOblivionMajor:
		return OblivionMajorSkills{Major: env.OblivionMajorSkills}, nil
	case variantPrimarySecondary:
		return PrimarySecondarySkills{Primary: env.PrimarySkills, Secondary: env.SecondarySkills}, nil
	case variantFlat:
		return FlatSkills{Skills: env.Skills}, nil
	case "":
		// Untagged payload: detect by populated field group.
		switch {
		case len(env.MajorSkills) > 0 || len(env.MinorSkills) > 0:
			return MajorMinorSkills{Major: env.MajorSkills, Minor: env.MinorSkills}, nil
		case len(env.OblivionMajorSkills) > 0:
			return OblivionMajorSkills{Major: env.OblivionMajorSkills}, nil
		case len(env.PrimarySkills) > 0 || len(env.SecondarySkills) > 0:
			return PrimarySecondarySkills{Primary: env.PrimarySkills, Secondary: env.SecondarySkills}, nil
		case len(env.Skills) > 0:
			return FlatSkills{Skills: env.Skills}, nil
		}
		return nil, fmt.Errorf("skill set has no recognizable field group")
	default:
		return nil, fmt.Errorf("unknown skill set variant %q", env.Variant)
	}
}

// FormatSkills renders a skill set as a single display/prompt line. This is
// the one place that branches over the sum type; a nil or unrecognized set
// formats as a generic placeholder.
func FormatSkills(s SkillSet) string {
	switch v := s.(type) {
	case MajorMinorSkills:
		return fmt.Sprintf("Major: %s; Minor: %s", strings.Join(v.Major, ", "), strings.Join(v.Minor, ", "))
	case OblivionMajorSkills:
		return strings.Join(v.Major, ", ")
	case PrimarySecondarySkills:
		return fmt.Sprintf("Primary: %s; Secondary: %s", strings.Join(v.Primary, ", "), strings.Join(v.Secondary, ", "))
	case FlatSkills:
		return strings.Join(v.Skills, ", ")
	default:
		return "Various skills appropriate to class"
	}
}
