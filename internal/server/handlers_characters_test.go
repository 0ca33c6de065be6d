package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/character-forge/internal/generation"
	"github.com/jonathan/character-forge/internal/types"
)

func TestCharacterCRUD(t *testing.T) {
	s, _ := newTestServer(t, generation.NewService(nil))
	ch := testCharacterPayload()

	// Create
	rec := do(s, http.MethodPost, "/characters", ch)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]string
	decodeBody(t, rec, &created)
	assert.Equal(t, "Jorin Stonefist", created["id"])

	// Read
	rec = do(s, http.MethodGet, "/characters/Jorin%20Stonefist", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got types.Character
	decodeBody(t, rec, &got)
	assert.Equal(t, ch.Race.Name, got.Race.Name)
	assert.Equal(t, ch.Class.Skills, got.Class.Skills)

	// List
	rec = do(s, http.MethodGet, "/characters", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all map[string]types.Character
	decodeBody(t, rec, &all)
	assert.Len(t, all, 1)

	// Delete
	rec = do(s, http.MethodDelete, "/characters/Jorin%20Stonefist", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, http.MethodGet, "/characters/Jorin%20Stonefist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSaveCharacter_UnknownGame(t *testing.T) {
	s, _ := newTestServer(t, generation.NewService(nil))

	ch := testCharacterPayload()
	ch.Game = "Daggerfall"
	rec := do(s, http.MethodPost, "/characters", ch)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClearCharacters(t *testing.T) {
	s, repo := newTestServer(t, generation.NewService(nil))

	_, err := repo.SaveCharacter(context.Background(), testCharacterPayload())
	require.NoError(t, err)

	rec := do(s, http.MethodDelete, "/characters", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	all, err := repo.ListCharacters(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCredentialLifecycle(t *testing.T) {
	s, _ := newTestServer(t, generation.NewService(nil))

	// Nothing stored yet
	rec := do(s, http.MethodGet, "/credential", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status map[string]bool
	decodeBody(t, rec, &status)
	assert.False(t, status["configured"])

	// Storing a key also brings the generator online
	rec = do(s, http.MethodPut, "/credential", SetCredentialRequest{APIKey: "sk-test"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, s.generator().Online())

	rec = do(s, http.MethodGet, "/credential", nil)
	decodeBody(t, rec, &status)
	assert.True(t, status["configured"])

	// Clearing drops back to the offline service
	rec = do(s, http.MethodDelete, "/credential", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, s.generator().Online())

	rec = do(s, http.MethodGet, "/credential", nil)
	decodeBody(t, rec, &status)
	assert.False(t, status["configured"])
}

func TestSetCredential_RequiresKey(t *testing.T) {
	s, _ := newTestServer(t, generation.NewService(nil))

	rec := do(s, http.MethodPut, "/credential", SetCredentialRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
