package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/edvora/internal/logging"
	"github.com/dmitrijs2005/edvora/internal/server/auth"
	"github.com/dmitrijs2005/edvora/internal/server/config"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/edvora/internal/server/services"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	server  *HTTPServer
	handler http.Handler
	tokens  *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repos := repomanager.NewMemoryRepositoryManager()
	tokens := auth.NewTokenService("test-secret", time.Hour)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	svc := Services{
		Users:    services.NewUserService(repos.Users(), tokens, logging.Nop{}),
		Avatars:  services.NewAvatarService(cfg, repos.Users()),
		Tasks:    services.NewTaskService(repos.Tasks()),
		Events:   services.NewEventService(repos.Events()),
		Pomodoro: services.NewPomodoroService(repos.Sessions()),
		Stats:    services.NewStatsService(repos.Tasks()),
	}

	s := NewHTTPServer("127.0.0.1:0", logging.Nop{}, svc, tokens, repos, []string{"http://localhost:3000"})
	s.now = func() time.Time { return time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC) }

	return &testEnv{server: s, handler: s.Handler(), tokens: tokens}
}

// do sends body as JSON and decodes the JSON response into a generic map.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec.Code, out
}

func (e *testEnv) register(t *testing.T, username string) string {
	t.Helper()

	code, body := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"email":    username + "@uni.edu",
		"password": "secret1",
		"name":     username,
	})
	require.Equal(t, http.StatusCreated, code, body)
	return body["token"].(string)
}

type verifierFunc func(token string) error

func (f verifierFunc) Verify(token string) (*auth.Claims, error) {
	if err := f(token); err != nil {
		return nil, err
	}
	return &auth.Claims{}, nil
}
