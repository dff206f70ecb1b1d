package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rienbien8/pos-frontend/internal/shared/apperr"
)

func TestLookupKnownCode(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"product_code":"001","product_name":"Tea","price":150}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	p, err := c.Lookup(context.Background(), " 001 ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if gotPath != "/product/001" {
		t.Fatalf("unexpected request path: %s", gotPath)
	}
	if p.Code != "001" || p.Name != "Tea" || p.UnitPrice != 150 {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Lookup(context.Background(), "999")
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.NotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
	if ae.PublicMsg != MsgNotRegistered {
		t.Fatalf("unexpected message: %s", ae.PublicMsg)
	}
}

func TestLookupUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Lookup(context.Background(), "001")
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.BadGateway {
		t.Fatalf("expected bad_gateway, got %v", err)
	}
	if ae.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500 carried, got %d", ae.StatusCode)
	}
	if ae.PublicMsg != "HTTP error: 500" {
		t.Fatalf("unexpected message: %s", ae.PublicMsg)
	}
}

func TestLookupUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewClient(srv.URL, time.Second)
	_, err := c.Lookup(context.Background(), "001")
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.Unreachable {
		t.Fatalf("expected unreachable, got %v", err)
	}
	if ae.PublicMsg != "could not reach server" {
		t.Fatalf("unexpected message: %s", ae.PublicMsg)
	}
}

func TestLookupBlankCodeIssuesNoRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Lookup(context.Background(), "   ")
	if !errors.Is(err, ErrBlankCode) {
		t.Fatalf("expected ErrBlankCode, got %v", err)
	}
	if called {
		t.Fatal("blank code must not issue a request")
	}
}

func TestLookupGarbledBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Lookup(context.Background(), "001")
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.BadGateway {
		t.Fatalf("expected bad_gateway on garbled 2xx body, got %v", err)
	}
}
