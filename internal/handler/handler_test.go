package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msomdec/complaint-tracker/internal/handler"
	"github.com/msomdec/complaint-tracker/internal/nav"
	"github.com/msomdec/complaint-tracker/internal/session"
	"github.com/msomdec/complaint-tracker/internal/store"
	"github.com/msomdec/complaint-tracker/internal/store/sqlite"
)

const testJWTSecret = "test-secret-for-handler-tests"

func newTestManager(t *testing.T) *session.Manager {
	t.Helper()
	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	m := session.NewManager(store.New(db.Records()), testJWTSecret, session.WithBcryptCost(4))
	if err := m.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	return m
}

func newTestServer(t *testing.T) (*httptest.Server, *session.Manager) {
	t.Helper()
	manager := newTestManager(t)
	controller := nav.NewController(manager.IsLoggedIn)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, manager, controller, false)

	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)
	return srv, manager
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

// clientWithJar returns an HTTP client that carries cookies across requests.
func clientWithJar(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func registerAlice(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/auth/register", map[string]string{
		"username":        "alice",
		"email":           "alice@x.com",
		"password":        "Secret1!",
		"confirmPassword": "Secret1!",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register alice: expected 201, got %d", resp.StatusCode)
	}
}

func validComplaintBody() map[string]string {
	return map[string]string{
		"fullName":      "Alice A",
		"collegeName":   "Example College",
		"year":          "2",
		"complaintType": "Academic",
		"subject":       "Library hours",
		"description":   "The library closes too early.",
	}
}
