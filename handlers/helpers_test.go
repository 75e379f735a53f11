package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-manager/backend/middleware"
	"task-manager/backend/utils"
)

const testSecret = "handler-test-secret"

type testServer struct {
	router   http.Handler
	token    string
	auth     *MockAuthService
	teams    *MockTeamService
	projects *MockProjectService
	tasks    *MockTaskService
	healthy  error
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	tokens := utils.NewTokenManager(testSecret, time.Hour)
	token, err := tokens.GenerateToken("65f0c0ffee0000000000abcd")
	require.NoError(t, err)

	s := &testServer{
		token:    token,
		auth:     new(MockAuthService),
		teams:    new(MockTeamService),
		projects: new(MockProjectService),
		tasks:    new(MockTaskService),
	}
	s.router = NewRouter(Handlers{
		Auth:     NewAuthHandler(s.auth),
		Teams:    NewTeamHandler(s.teams),
		Projects: NewProjectHandler(s.projects),
		Tasks:    NewTaskHandler(s.tasks),
		Health: NewHealthHandler(func(context.Context) error {
			return s.healthy
		}),
	}, middleware.NewAuthGate(tokens), "*")
	return s
}

// do sends an authenticated request; body is JSON encoded unless it is a string.
func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := newRequest(t, method, target, body)
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) doAnonymous(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, newRequest(t, method, target, body))
	return rec
}

func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[messageResponse](t, rec).Message
}
