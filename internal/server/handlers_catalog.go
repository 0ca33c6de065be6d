package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/character-forge/internal/gamedata"
	"github.com/jonathan/character-forge/internal/types"
)

// ---------------------------------------------------------------------
// Catalog Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListRaces(w http.ResponseWriter, r *http.Request) {
	game, ok := s.gameFromPath(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, gamedata.RacesForGame(game))
}

func (s *Server) handleListClasses(w http.ResponseWriter, r *http.Request) {
	game, ok := s.gameFromPath(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, gamedata.ClassesForGame(game))
}

func (s *Server) handleListOptions(w http.ResponseWriter, r *http.Request) {
	game, ok := s.gameFromPath(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, gamedata.OptionsForGame(game))
}

// gameFromPath resolves the {game} path segment, case-insensitively.
func (s *Server) gameFromPath(w http.ResponseWriter, r *http.Request) (types.Game, bool) {
	segment := r.PathValue("game")
	for _, game := range types.Games {
		if strings.EqualFold(segment, string(game)) {
			return game, true
		}
	}

	s.errorResponse(w, http.StatusNotFound, "Unknown game")
	return "", false
}
