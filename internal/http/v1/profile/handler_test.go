package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/LucasManfrin/Orcamentos/internal/platform/auth"
	applog "github.com/LucasManfrin/Orcamentos/internal/platform/logging"
	appmiddleware "github.com/LucasManfrin/Orcamentos/internal/platform/middleware"
	"github.com/LucasManfrin/Orcamentos/internal/platform/respond"
	profilesvc "github.com/LucasManfrin/Orcamentos/internal/service/profile"
)

func newTestRouter(svc profilesvc.Service, verifier auth.Verifier) chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("ProfileTest", "test"))
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))
	Register(api, svc)
	return router
}

func seedProfile(t *testing.T, svc profilesvc.Service) *profilesvc.Profile {
	t.Helper()
	p, err := svc.Create(context.Background(), auth.TestUser().UID, profilesvc.CreateParams{
		Name:       "Maria Silva",
		Email:      "maria@example.com",
		Profession: "Eletricista",
		WhatsApp:   "11999998888",
	})
	if err != nil {
		t.Fatalf("seeding profile: %v", err)
	}
	return p
}

func TestCreateProfileSuccess(t *testing.T) {
	svc := profilesvc.NewMockProfileService()
	router := newTestRouter(svc, &auth.MockVerifier{User: auth.TestUser()})

	body := `{"name":"Maria Silva","email":"maria@example.com","profession":"Eletricista","whatsapp":"11999998888"}`
	req := httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if location := resp.Header().Get("Location"); location != "/v1/profile" {
		t.Errorf("expected Location /v1/profile, got %s", location)
	}

	var profile Profile
	if err := json.Unmarshal(resp.Body.Bytes(), &profile); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if profile.Name != "Maria Silva" || profile.Profession != "Eletricista" {
		t.Errorf("unexpected profile %+v", profile)
	}
}

func TestCreateProfileConflict(t *testing.T) {
	svc := profilesvc.NewMockProfileService()
	seedProfile(t, svc)
	router := newTestRouter(svc, &auth.MockVerifier{User: auth.TestUser()})

	body := `{"name":"Maria","email":"maria@example.com","profession":"Eletricista"}`
	req := httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestGetProfile(t *testing.T) {
	svc := profilesvc.NewMockProfileService()
	seedProfile(t, svc)
	router := newTestRouter(svc, &auth.MockVerifier{User: auth.TestUser()})

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var profile Profile
	if err := json.Unmarshal(resp.Body.Bytes(), &profile); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if profile.WhatsApp != "11999998888" {
		t.Errorf("expected whatsapp, got %q", profile.WhatsApp)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc := profilesvc.NewMockProfileService()
	router := newTestRouter(svc, &auth.MockVerifier{User: auth.TestUser()})

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := profilesvc.NewMockProfileService()
	seedProfile(t, svc)
	router := newTestRouter(svc, &auth.MockVerifier{User: auth.TestUser()})

	body := `{"profession":"Encanadora"}`
	req := httptest.NewRequest(http.MethodPatch, "/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var profile Profile
	if err := json.Unmarshal(resp.Body.Bytes(), &profile); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if profile.Profession != "Encanadora" {
		t.Errorf("expected profession Encanadora, got %s", profile.Profession)
	}
	if profile.Name != "Maria Silva" {
		t.Errorf("name changed unexpectedly: %s", profile.Name)
	}
}

func TestUpdateProfileEmptyBody(t *testing.T) {
	svc := profilesvc.NewMockProfileService()
	seedProfile(t, svc)
	router := newTestRouter(svc, &auth.MockVerifier{User: auth.TestUser()})

	req := httptest.NewRequest(http.MethodPatch, "/profile", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestProfileRequiresAuth(t *testing.T) {
	svc := profilesvc.NewMockProfileService()
	router := newTestRouter(svc, &auth.MockVerifier{Error: auth.ErrInvalidToken})

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.Code, resp.Body.String())
	}
}
