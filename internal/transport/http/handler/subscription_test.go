package handler_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/olzhasq/newsletter-service/internal/domain"
	"github.com/olzhasq/newsletter-service/internal/transport/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeSubscriptionUsecase satisfies the unexported subscriptionUsecaser
// interface via method matching.
type fakeSubscriptionUsecase struct {
	subscribe func(ctx context.Context, rawName, rawEmail string) error
	confirm   func(ctx context.Context, rawToken string) error
}

func (f *fakeSubscriptionUsecase) Subscribe(ctx context.Context, rawName, rawEmail string) error {
	return f.subscribe(ctx, rawName, rawEmail)
}

func (f *fakeSubscriptionUsecase) Confirm(ctx context.Context, rawToken string) error {
	return f.confirm(ctx, rawToken)
}

func newRouter(uc *fakeSubscriptionUsecase) *gin.Engine {
	h := handler.NewSubscriptionHandler(uc, slog.Default())
	r := gin.New()
	r.POST("/subscriptions", h.Subscribe)
	r.GET("/subscriptions/confirm", h.Confirm)
	return r
}

func postForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// ---- POST /subscriptions ----

func TestSubscribe_ValidForm_Returns200(t *testing.T) {
	var gotName, gotEmail string
	uc := &fakeSubscriptionUsecase{
		subscribe: func(_ context.Context, rawName, rawEmail string) error {
			gotName, gotEmail = rawName, rawEmail
			return nil
		},
	}

	rec := postForm(newRouter(uc), url.Values{
		"name":  {"le guin"},
		"email": {"ursula_le_guin@gmail.com"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if gotName != "le guin" || gotEmail != "ursula_le_guin@gmail.com" {
		t.Errorf("usecase got (%q, %q), want raw form values", gotName, gotEmail)
	}
}

func TestSubscribe_MissingField_Returns422(t *testing.T) {
	cases := []struct {
		label string
		form  url.Values
	}{
		{"missing email", url.Values{"name": {"le guin"}}},
		{"missing name", url.Values{"email": {"ursula_le_guin@gmail.com"}}},
		{"missing both", url.Values{}},
	}

	for _, tc := range cases {
		uc := &fakeSubscriptionUsecase{
			subscribe: func(_ context.Context, _, _ string) error {
				t.Fatalf("%s: usecase must not be called", tc.label)
				return nil
			},
		}

		rec := postForm(newRouter(uc), tc.form)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: status = %d, want 422", tc.label, rec.Code)
		}
	}
}

func TestSubscribe_PresentButInvalidField_Returns400(t *testing.T) {
	cases := []struct {
		label string
		form  url.Values
	}{
		{"empty name", url.Values{"name": {""}, "email": {"ursula_le_guin@gmail.com"}}},
		{"empty email", url.Values{"name": {"le guin"}, "email": {""}}},
		{"invalid email", url.Values{"name": {"le guin"}, "email": {"not-an-email"}}},
	}

	for _, tc := range cases {
		uc := &fakeSubscriptionUsecase{
			subscribe: func(_ context.Context, rawName, rawEmail string) error {
				if _, err := domain.ParseName(rawName); err != nil {
					return err
				}
				_, err := domain.ParseEmail(rawEmail)
				return err
			},
		}

		rec := postForm(newRouter(uc), tc.form)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400 (body %s)", tc.label, rec.Code, rec.Body.String())
		}
	}
}

func TestSubscribe_UsecaseFailure_Returns500(t *testing.T) {
	uc := &fakeSubscriptionUsecase{
		subscribe: func(_ context.Context, _, _ string) error {
			return errors.New("insert subscriber: db down")
		},
	}

	rec := postForm(newRouter(uc), url.Values{
		"name":  {"le guin"},
		"email": {"ursula_le_guin@gmail.com"},
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "db down") {
		t.Error("internal error text leaked to the caller")
	}
}

// ---- GET /subscriptions/confirm ----

func TestConfirm_ValidToken_Returns200(t *testing.T) {
	var gotToken string
	uc := &fakeSubscriptionUsecase{
		confirm: func(_ context.Context, rawToken string) error {
			gotToken = rawToken
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/subscriptions/confirm?subscription_token=abcDEF123", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotToken != "abcDEF123" {
		t.Errorf("usecase got token %q, want %q", gotToken, "abcDEF123")
	}
}

func TestConfirm_UnknownToken_Returns401(t *testing.T) {
	uc := &fakeSubscriptionUsecase{
		confirm: func(_ context.Context, _ string) error {
			return domain.ErrUnknownToken
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/subscriptions/confirm?subscription_token=neverIssued", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestConfirm_MissingToken_Returns401WithoutLookup(t *testing.T) {
	uc := &fakeSubscriptionUsecase{
		confirm: func(_ context.Context, _ string) error {
			t.Fatal("usecase must not be called without a token")
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/subscriptions/confirm", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestConfirm_StorageFailure_Returns500(t *testing.T) {
	uc := &fakeSubscriptionUsecase{
		confirm: func(_ context.Context, _ string) error {
			return errors.New("resolve subscription token: db down")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/subscriptions/confirm?subscription_token=abcDEF123", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "db down") {
		t.Error("internal error text leaked to the caller")
	}
}
