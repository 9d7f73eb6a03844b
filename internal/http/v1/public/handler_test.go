package public

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/LucasManfrin/Orcamentos/internal/platform/auth"
	applog "github.com/LucasManfrin/Orcamentos/internal/platform/logging"
	appmiddleware "github.com/LucasManfrin/Orcamentos/internal/platform/middleware"
	"github.com/LucasManfrin/Orcamentos/internal/platform/respond"
	profilesvc "github.com/LucasManfrin/Orcamentos/internal/service/profile"
	quotesvc "github.com/LucasManfrin/Orcamentos/internal/service/quote"
	"github.com/LucasManfrin/Orcamentos/internal/service/views"
)

type fixture struct {
	quotes   *quotesvc.MockQuoteService
	profiles *profilesvc.MockProfileService
	router   chi.Router
}

func newFixture() *fixture {
	quotes := quotesvc.NewMockQuoteService()
	profiles := profilesvc.NewMockProfileService()
	viewSvc := views.NewService(quotes, views.NewMockGuard())

	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("PublicTest", "test"))
	// No security on public routes, but the middleware is installed the
	// same way it is in production.
	api.UseMiddleware(auth.NewAuthMiddleware(api, &auth.MockVerifier{Error: auth.ErrInvalidToken}))
	Register(api, quotes, profiles, viewSvc)

	return &fixture{quotes: quotes, profiles: profiles, router: router}
}

func (f *fixture) seedProfile(t *testing.T, userID string) {
	t.Helper()
	_, err := f.profiles.Create(context.Background(), userID, profilesvc.CreateParams{
		Name:       "Maria Silva",
		Email:      "maria@example.com",
		Profession: "Eletricista",
		WhatsApp:   "11999998888",
	})
	if err != nil {
		t.Fatalf("seeding profile: %v", err)
	}
}

func (f *fixture) seedQuote(id, userID string, createdAt time.Time) {
	f.quotes.Seed(quotesvc.Quote{
		ID:     id,
		UserID: userID,
		Services: []quotesvc.ServiceLine{
			{ID: "s1", Name: "Pintura", Price: 800},
			{ID: "s2", Name: "Jardinagem", Price: 434.56},
		},
		Total:      1234.56,
		Status:     quotesvc.StatusSent,
		CreatedAt:  createdAt,
		ValidUntil: createdAt.AddDate(0, 0, 30),
	})
}

func TestGetSharedQuote(t *testing.T) {
	f := newFixture()
	f.seedProfile(t, "owner-1")
	f.seedQuote("q1", "owner-1", time.Now().UTC())

	req := httptest.NewRequest(http.MethodGet, "/public/quotes/q1", nil)
	resp := httptest.NewRecorder()

	f.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var shared SharedQuote
	if err := json.Unmarshal(resp.Body.Bytes(), &shared); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if shared.Professional.Name != "Maria Silva" {
		t.Errorf("professional name = %q", shared.Professional.Name)
	}
	if shared.TotalFormatted != "R$ 1.234,56" {
		t.Errorf("total = %q, want R$ 1.234,56", shared.TotalFormatted)
	}
	if shared.Expired {
		t.Error("fresh quote reported as expired")
	}
	if shared.SessionID == "" {
		t.Error("expected a session ID")
	}
	if shared.Contact == nil {
		t.Fatal("expected contact links")
	}
	if !strings.HasPrefix(shared.Contact.WhatsApp, "https://wa.me/11999998888?text=") {
		t.Errorf("whatsapp link = %q", shared.Contact.WhatsApp)
	}
	if !strings.Contains(shared.Contact.WhatsApp, "Pintura") {
		t.Errorf("prefilled message missing service names: %q", shared.Contact.WhatsApp)
	}
	if !strings.HasPrefix(shared.Contact.Email, "mailto:maria@example.com?") {
		t.Errorf("email link = %q", shared.Contact.Email)
	}
	if shared.RenewalLink != "" {
		t.Errorf("unexpected renewal link on a valid quote: %q", shared.RenewalLink)
	}
}

func TestGetSharedQuoteExpired(t *testing.T) {
	f := newFixture()
	f.seedProfile(t, "owner-1")
	f.seedQuote("q1", "owner-1", time.Now().UTC().AddDate(0, 0, -31))

	req := httptest.NewRequest(http.MethodGet, "/public/quotes/q1", nil)
	resp := httptest.NewRecorder()

	f.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var shared SharedQuote
	if err := json.Unmarshal(resp.Body.Bytes(), &shared); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if !shared.Expired {
		t.Error("expected expired flag")
	}
	if shared.Contact != nil {
		t.Error("expired quote still exposes contact links")
	}
	if !strings.HasPrefix(shared.RenewalLink, "https://wa.me/11999998888?text=") {
		t.Errorf("renewal link = %q", shared.RenewalLink)
	}
}

func TestGetSharedQuoteMissingProfile(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "owner-without-profile", time.Now().UTC())

	req := httptest.NewRequest(http.MethodGet, "/public/quotes/q1", nil)
	resp := httptest.NewRecorder()

	f.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var shared SharedQuote
	if err := json.Unmarshal(resp.Body.Bytes(), &shared); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if shared.Professional.Name != fallbackName {
		t.Errorf("professional name = %q, want %q", shared.Professional.Name, fallbackName)
	}
	// No profile means no contact channels.
	if shared.Contact != nil {
		t.Errorf("unexpected contact links: %+v", shared.Contact)
	}
}

func TestGetSharedQuoteNotFound(t *testing.T) {
	f := newFixture()

	req := httptest.NewRequest(http.MethodGet, "/public/quotes/missing", nil)
	resp := httptest.NewRecorder()

	f.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRecordViewDeduplicatesSession(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "owner-1", time.Now().UTC())

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/public/quotes/q1/views", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		f.router.ServeHTTP(resp, req)
		return resp
	}

	resp := post(`{"sessionId":"session-1"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Counted bool `json:"counted"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if !out.Counted {
		t.Error("first view not counted")
	}

	resp = post(`{"sessionId":"session-1"}`)
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if out.Counted {
		t.Error("repeat view counted")
	}

	q, _ := f.quotes.Get(context.Background(), "q1")
	if q.ViewCount != 1 {
		t.Errorf("ViewCount = %d, want 1", q.ViewCount)
	}
	if q.Status != quotesvc.StatusViewed {
		t.Errorf("Status = %q, want viewed", q.Status)
	}
}

func TestRecordViewUnknownQuote(t *testing.T) {
	f := newFixture()

	req := httptest.NewRequest(http.MethodPost, "/public/quotes/missing/views",
		strings.NewReader(`{"sessionId":"session-1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	f.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRecordViewRequiresSessionID(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "owner-1", time.Now().UTC())

	req := httptest.NewRequest(http.MethodPost, "/public/quotes/q1/views", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	f.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}
