package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	platformauth "github.com/LucasManfrin/Orcamentos/internal/platform/auth"
	applog "github.com/LucasManfrin/Orcamentos/internal/platform/logging"
	appmiddleware "github.com/LucasManfrin/Orcamentos/internal/platform/middleware"
	"github.com/LucasManfrin/Orcamentos/internal/platform/respond"
	identitysvc "github.com/LucasManfrin/Orcamentos/internal/service/identity"
)

func newTestRouter(svc identitysvc.Service, verifier platformauth.Verifier) chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("AuthTest", "test"))
	api.UseMiddleware(platformauth.NewAuthMiddleware(api, verifier))
	Register(api, svc)
	return router
}

func postJSON(router chi.Router, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRegisterSuccess(t *testing.T) {
	svc := identitysvc.NewMockIdentityService()
	router := newTestRouter(svc, &platformauth.MockVerifier{User: platformauth.TestUser()})

	body := `{"name":"Maria Silva","email":"maria@example.com","password":"segredo123","profession":"Eletricista","whatsapp":"11999998888"}`
	resp := postJSON(router, "/auth/register", body)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var session Session
	if err := json.Unmarshal(resp.Body.Bytes(), &session); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if session.Email != "maria@example.com" {
		t.Errorf("expected email maria@example.com, got %s", session.Email)
	}
	if session.IDToken == "" {
		t.Error("expected an ID token")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := identitysvc.NewMockIdentityService()
	router := newTestRouter(svc, &platformauth.MockVerifier{User: platformauth.TestUser()})

	body := `{"name":"Maria","email":"maria@example.com","password":"segredo123","profession":"Eletricista"}`
	if resp := postJSON(router, "/auth/register", body); resp.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", resp.Code)
	}

	resp := postJSON(router, "/auth/register", body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}

	var errModel huma.ErrorModel
	if err := json.Unmarshal(resp.Body.Bytes(), &errModel); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if errModel.Detail != "Este e-mail já está em uso" {
		t.Errorf("unexpected detail %q", errModel.Detail)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := identitysvc.NewMockIdentityService()
	router := newTestRouter(svc, &platformauth.MockVerifier{User: platformauth.TestUser()})

	body := `{"name":"Maria","email":"maria@example.com","password":"abc","profession":"Eletricista"}`
	resp := postJSON(router, "/auth/register", body)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := identitysvc.NewMockIdentityService()
	router := newTestRouter(svc, &platformauth.MockVerifier{User: platformauth.TestUser()})

	register := `{"name":"Maria","email":"maria@example.com","password":"segredo123","profession":"Eletricista"}`
	if resp := postJSON(router, "/auth/register", register); resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.Code)
	}

	resp := postJSON(router, "/auth/login", `{"email":"maria@example.com","password":"segredo123"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var session Session
	if err := json.Unmarshal(resp.Body.Bytes(), &session); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if session.UID == "" {
		t.Error("expected a UID")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := identitysvc.NewMockIdentityService()
	router := newTestRouter(svc, &platformauth.MockVerifier{User: platformauth.TestUser()})

	register := `{"name":"Maria","email":"maria@example.com","password":"segredo123","profession":"Eletricista"}`
	if resp := postJSON(router, "/auth/register", register); resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.Code)
	}

	resp := postJSON(router, "/auth/login", `{"email":"maria@example.com","password":"errada"}`)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.Code, resp.Body.String())
	}

	var errModel huma.ErrorModel
	if err := json.Unmarshal(resp.Body.Bytes(), &errModel); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if errModel.Detail != "E-mail ou senha incorretos" {
		t.Errorf("unexpected detail %q", errModel.Detail)
	}
}

func TestLoginThrottled(t *testing.T) {
	svc := identitysvc.NewMockIdentityService()
	svc.Error = identitysvc.ErrTooManyAttempts
	router := newTestRouter(svc, &platformauth.MockVerifier{User: platformauth.TestUser()})

	resp := postJSON(router, "/auth/login", `{"email":"maria@example.com","password":"segredo123"}`)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLogout(t *testing.T) {
	svc := identitysvc.NewMockIdentityService()
	router := newTestRouter(svc, &platformauth.MockVerifier{User: platformauth.TestUser()})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.Code, resp.Body.String())
	}
	if !svc.Revoked(platformauth.TestUser().UID) {
		t.Error("expected refresh tokens to be revoked")
	}
}

func TestLogoutRequiresAuth(t *testing.T) {
	svc := identitysvc.NewMockIdentityService()
	router := newTestRouter(svc, &platformauth.MockVerifier{Error: platformauth.ErrTokenExpired})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.Code, resp.Body.String())
	}
}
