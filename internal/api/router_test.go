package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minesite/dispatch-form/internal/core/domain"
	"github.com/minesite/dispatch-form/internal/core/service"
	"github.com/minesite/dispatch-form/internal/infrastructure/db/document"
	"github.com/minesite/dispatch-form/internal/infrastructure/db/memory"
)

type testServer struct {
	t    *testing.T
	http *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	kv := memory.NewStore()
	log := zerolog.Nop()

	auth := service.NewAuthService(document.NewUserRepository(kv), document.NewSessionRepository(kv), log)
	drivers := service.NewDriverService(document.NewDriverRepository(kv), log)
	subs := service.NewSubmissionService(document.NewSubmissionRepository(kv), log)
	form, err := service.NewFormSession(ctx, auth, drivers, subs, log, service.WithNoticeTTL(time.Minute))
	require.NoError(t, err)
	t.Cleanup(form.Close)

	e := NewRouter(Deps{
		Auth:        auth,
		Drivers:     drivers,
		Submissions: subs,
		Form:        form,
		Guard:       memory.NewSubmitGuard(time.Minute),
		Store:       kv,
		StoreName:   "memory",
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		Log:         log,
		Registry:    prometheus.NewRegistry(),
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return &testServer{t: t, http: srv}
}

func (s *testServer) do(method, path, token, body string) (int, map[string]any) {
	s.t.Helper()
	req, err := http.NewRequest(method, s.http.URL+path, strings.NewReader(body))
	require.NoError(s.t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func (s *testServer) login(username, password string) string {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/v1/auth/login", "", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(s.t, http.StatusOK, code, "login %s: %v", username, body)
	token, _ := body["token"].(string)
	require.NotEmpty(s.t, token)
	return token
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	code, _ = s.do(http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_LoginErrors(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodPost, "/v1/auth/login", "", `{"username":"Admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, domain.ErrInvalidCredentials.Error(), body["error"])

	code, _ = s.do(http.MethodPost, "/v1/auth/login", "", `{"username":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodGet, "/v1/form", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRouter_FillAndSubmitForm(t *testing.T) {
	s := newTestServer(t)
	admin := s.login("Admin", "adaS$128")

	code, body := s.do(http.MethodGet, "/v1/form", admin, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(domain.FormEmpty), body["state"])

	code, _ = s.do(http.MethodPatch, "/v1/form/drivers/B010", admin, `{"field":"driverName","value":"SEM"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = s.do(http.MethodPatch, "/v1/form/drivers/B999", admin, `{"field":"driverName","value":"SEM"}`)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = s.do(http.MethodPatch, "/v1/form/drivers/B010", admin, `{"field":"colour","value":"x"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = s.do(http.MethodPatch, "/v1/form/notes", admin, `{"comments":"fog"}`)
	require.Equal(t, http.StatusOK, code)

	code, body = s.do(http.MethodPost, "/v1/form/submit", admin, "")
	require.Equal(t, http.StatusCreated, code)
	id, _ := body["id"].(string)
	assert.True(t, strings.HasSuffix(id, "-Admin"), id)

	code, body = s.do(http.MethodGet, "/v1/form", admin, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(domain.FormSubmitted), body["state"])
	notice, _ := body["notice"].(map[string]any)
	assert.Equal(t, "Form submitted successfully!", notice["message"])

	code, body = s.do(http.MethodGet, "/v1/submissions/"+id, admin, "")
	require.Equal(t, http.StatusOK, code)
	form, _ := body["formData"].(map[string]any)
	assert.Equal(t, "fog", form["comments"])

	code, _ = s.do(http.MethodGet, "/v1/submissions/nope", admin, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_RolesAndSessionBinding(t *testing.T) {
	s := newTestServer(t)
	admin := s.login("Admin", "adaS$128")

	code, _ := s.do(http.MethodPost, "/v1/users", admin, `{"username":"carol","password":"pw"}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = s.do(http.MethodPost, "/v1/users", admin, `{"username":"carol","password":"pw"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = s.do(http.MethodPost, "/v1/drivers", admin, `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = s.do(http.MethodPost, "/v1/drivers", admin, `{"name":"sem"}`)
	assert.Equal(t, http.StatusConflict, code)

	carol := s.login("carol", "pw")

	// carol's login replaced the stored session, so the admin token is dead
	code, _ = s.do(http.MethodGet, "/v1/users", admin, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodGet, "/v1/users", carol, "")
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = s.do(http.MethodGet, "/v1/drivers", carol, "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPost, "/v1/auth/logout", carol, "")
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = s.do(http.MethodGet, "/v1/auth/me", carol, "")
	assert.Equal(t, http.StatusUnauthorized, code)
}
