package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/pkg/apperrors"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, apperrors.ErrUpstreamNotFound},
		{http.StatusUnauthorized, apperrors.ErrInvalidCredentials},
		{http.StatusForbidden, apperrors.ErrPermissionDenied},
		{http.StatusConflict, apperrors.ErrResourceAlreadyExists},
		{http.StatusUnprocessableEntity, apperrors.ErrUpstreamRejected},
		{http.StatusInternalServerError, apperrors.ErrUpstreamUnavailable},
		{http.StatusBadGateway, apperrors.ErrUpstreamUnavailable},
	}
	for _, tt := range tests {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))
		_, err := client.ListInstitutions(context.Background(), "tok", ListParams{})
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d mapped to %v, want %v", tt.status, err, tt.want)
		}
	}
}

func TestUpstreamMessageCarriedInError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"message":"course code already in use"}`)
	}))
	_, err := client.ListCourses(context.Background(), "tok", ListParams{})
	if err == nil || !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "course code already in use"; !strings.Contains(err.Error(), want) {
		t.Fatalf("upstream message lost: %q", err.Error())
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `[]`)
	}))
	if _, err := client.ListInstitutions(context.Background(), "secret-token", ListParams{}); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestListParamsEncoded(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `[]`)
	}))
	_, err := client.ListInstitutions(context.Background(), "tok", ListParams{Offset: 40, Limit: 20, Filter: "tech"})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"offset=40", "limit=20", "filter=tech"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}

func TestScopedPaths(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `[]`)
	}))
	if _, err := client.ListInstitutionFaculties(context.Background(), "tok", 7, ListParams{}); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/institutions/7/faculties" {
		t.Fatalf("path = %q", gotPath)
	}

	if _, err := client.ListProgramCourses(context.Background(), "tok", 3, ListParams{}); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/programs/3/program-courses" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	client, err := NewClient("http://127.0.0.1:1", 100*time.Millisecond, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.ListInstitutions(context.Background(), "tok", ListParams{})
	if !errors.Is(err, apperrors.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestRelativeBaseURLRejected(t *testing.T) {
	if _, err := NewClient("localhost:9000", time.Second, zerolog.Nop()); err == nil {
		t.Fatal("relative base url accepted")
	}
}
