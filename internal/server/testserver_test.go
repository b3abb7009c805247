package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gotolinks/internal/config"
	"gotolinks/internal/database"
	"gotolinks/internal/editor"
	"gotolinks/internal/featureflags"
	"gotolinks/internal/models"
	"gotolinks/internal/preview"
	"gotolinks/internal/repository"
	"gotolinks/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a Server over an in-memory database with no Redis.
// Prometheus middleware is left out; registering it per test would collide in
// the default registry.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := database.OpenEphemeral()
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret: "test-secret-key-0123456789abcdef",
		Port:      "8375",
		Env:       "test",
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	s := &Server{
		config:       cfg,
		db:           db,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		statsRepo:    statsRepo,
		sessions:     editor.NewSessions(0),
		featureFlags: featureflags.NewManager(""),
		notifier:     preview.NewNotifier(nil),
		hub:          preview.NewHub("preview"),
	}
	s.profileService = service.NewProfileService(profileRepo, userRepo)
	s.editorService = service.NewEditorService(s.sessions, profileRepo, userRepo, s.featureFlags, s.notifier)
	s.statsService = service.NewStatsService(statsRepo)

	app := fiber.New()
	s.SetupRoutes(app)
	t.Cleanup(s.sessions.CloseAll)

	return s, app
}

// seedCreator inserts a user with an empty profile and returns the user and a
// valid bearer token.
func seedCreator(t *testing.T, s *Server, handle string) (*models.User, string) {
	t.Helper()

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     handle + "@example.com",
		FirstName: "Sarah",
		LastName:  "Moon",
		Handle:    handle,
		Plan:      models.PlanFree,
	}
	require.NoError(t, s.db.Create(user).Error)

	profile := &models.Profile{
		ID:     uuid.New().String(),
		UserID: user.ID,
		Name:   user.FullName(),
		Theme:  models.DefaultTheme,
	}
	require.NoError(t, s.db.Create(profile).Error)

	token, err := s.generateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func jsonRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
