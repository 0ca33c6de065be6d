package types

import "github.com/go-playground/validator/v10"

// CharacterOptions carries the user's selections for custom class
// generation. All fields except magic preference and deity are required
// before generation is permitted; weapons must have at least one entry.
type CharacterOptions struct {
	Sex             string   `json:"sex" validate:"required"`
	Age             string   `json:"age" validate:"required"`
	Specialization  string   `json:"specialization" validate:"required"`
	Armor           string   `json:"armor" validate:"required"`
	Weapons         []string `json:"weapons" validate:"required,min=1"`
	MagicPreference []string `json:"magicPreference,omitempty"`
	Deity           string   `json:"deity,omitempty"`
	Background      string   `json:"background" validate:"required"`
	Prestige        string   `json:"prestige" validate:"required"`
	Motivation      string   `json:"motivation" validate:"required"`
}

// Validate checks the completeness invariant using the validator.
func (o *CharacterOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}
