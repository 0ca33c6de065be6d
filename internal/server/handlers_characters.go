package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/character-forge/internal/generation"
	"github.com/jonathan/character-forge/internal/storage"
	"github.com/jonathan/character-forge/internal/types"
)

// ---------------------------------------------------------------------
// Character Handlers
// ---------------------------------------------------------------------

func (s *Server) handleSaveCharacter(w http.ResponseWriter, r *http.Request) {
	var ch types.Character
	if err := json.NewDecoder(r.Body).Decode(&ch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !ch.Game.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown game")
		return
	}

	id, err := s.repo.SaveCharacter(r.Context(), ch)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleListCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := s.repo.ListCharacters(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, characters)
}

func (s *Server) handleGetCharacter(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	ch, err := s.repo.GetCharacter(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Character not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ch)
}

func (s *Server) handleDeleteCharacter(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.repo.DeleteCharacter(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleClearCharacters(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.ClearCharacters(r.Context()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// ---------------------------------------------------------------------
// Credential Handlers
// ---------------------------------------------------------------------

type SetCredentialRequest struct {
	APIKey string `json:"apiKey"`
}

// handleGetCredential reports whether a credential is stored. The key
// itself is never returned.
func (s *Server) handleGetCredential(w http.ResponseWriter, r *http.Request) {
	credential, err := s.repo.GetCredential(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]bool{"configured": credential != ""})
}

func (s *Server) handleSetCredential(w http.ResponseWriter, r *http.Request) {
	var req SetCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.APIKey == "" {
		s.errorResponse(w, http.StatusBadRequest, "apiKey is required")
		return
	}

	if err := s.repo.SetCredential(r.Context(), req.APIKey); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	if err := s.rebuildGenerator(r, req.APIKey); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to apply credential: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleClearCredential(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.ClearCredential(r.Context()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	// Without a credential the service runs offline.
	if s.newGen != nil {
		s.swapGenerator(generation.NewService(nil))
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// rebuildGenerator swaps in a generation service for the new key.
func (s *Server) rebuildGenerator(r *http.Request, apiKey string) error {
	if s.newGen == nil {
		return nil
	}
	gen, err := s.newGen(r.Context(), apiKey)
	if err != nil {
		return err
	}
	s.swapGenerator(gen)
	return nil
}
