package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/character-forge/internal/types"
)

// ---------------------------------------------------------------------
// Generation Handlers
// ---------------------------------------------------------------------

type GenerateClassRequest struct {
	Game    types.Game             `json:"game"`
	Race    types.Race             `json:"race"`
	Options types.CharacterOptions `json:"options"`
}

func (s *Server) handleGenerateClass(w http.ResponseWriter, r *http.Request) {
	var req GenerateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.Game.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown game")
		return
	}
	if req.Race.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Race is required")
		return
	}
	if err := req.Options.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	class, err := s.generator().GenerateClass(r.Context(), req.Game, req.Race, req.Options)
	if err != nil {
		s.generationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, class)
}

func (s *Server) handleGenerateBackstory(w http.ResponseWriter, r *http.Request) {
	ch, ok := s.decodeCharacter(w, r)
	if !ok {
		return
	}

	backstory, err := s.generator().GenerateBackstory(r.Context(), ch)
	if err != nil {
		s.generationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"backstory": backstory})
}

func (s *Server) handleGenerateName(w http.ResponseWriter, r *http.Request) {
	ch, ok := s.decodeCharacter(w, r)
	if !ok {
		return
	}

	updated, err := s.generator().GenerateName(r.Context(), ch)
	if err != nil {
		s.generationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleGenerateClassName(w http.ResponseWriter, r *http.Request) {
	ch, ok := s.decodeCharacter(w, r)
	if !ok {
		return
	}

	if ch.Class.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Character has no class")
		return
	}

	updated, err := s.generator().GenerateClassName(r.Context(), ch)
	if err != nil {
		s.generationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleGeneratePortrait(w http.ResponseWriter, r *http.Request) {
	ch, ok := s.decodeCharacter(w, r)
	if !ok {
		return
	}

	url, err := s.generator().GeneratePortrait(r.Context(), ch)
	if err != nil {
		s.generationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"imageUrl": url})
}

// handleGenerateGuide never reports an upstream failure: the guide task
// degrades to a fallback guide instead.
func (s *Server) handleGenerateGuide(w http.ResponseWriter, r *http.Request) {
	ch, ok := s.decodeCharacter(w, r)
	if !ok {
		return
	}

	guide := s.generator().GenerateAdventureGuide(r.Context(), ch)
	s.jsonResponse(w, http.StatusOK, guide)
}

func (s *Server) handleTestConnection(w http.ResponseWriter, r *http.Request) {
	status := s.generator().TestConnection(r.Context())
	s.jsonResponse(w, http.StatusOK, status)
}

// decodeCharacter decodes a character request body and checks its game.
func (s *Server) decodeCharacter(w http.ResponseWriter, r *http.Request) (types.Character, bool) {
	var ch types.Character
	if err := json.NewDecoder(r.Body).Decode(&ch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return types.Character{}, false
	}
	if !ch.Game.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown game")
		return types.Character{}, false
	}
	return ch, true
}
