package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "websearch-test" {
			t.Errorf("unexpected user agent: %q", got)
		}
		w.WriteHeader(200)
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	c := &Client{UserAgent: "websearch-test", PerRequestTimeout: 2 * time.Second}
	body, status, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != 200 || len(body) == 0 {
		t.Fatalf("expected 200 with body, got %d (%d bytes)", status, len(body))
	}
}

func TestGet_NonSuccessStatusIsNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		_, _ = w.Write([]byte("missing"))
	}))
	defer srv.Close()

	c := &Client{}
	body, status, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != 404 {
		t.Fatalf("expected status 404, got %d", status)
	}
	if string(body) != "missing" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestGet_RejectsNonHTTPScheme(t *testing.T) {
	c := &Client{}
	_, _, err := c.Get(context.Background(), "ftp://example.com/file")
	if err == nil || !strings.Contains(err.Error(), "unsupported URL scheme") {
		t.Fatalf("expected scheme error, got %v", err)
	}
}

func TestGet_TimeoutIsEnforced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := &Client{PerRequestTimeout: 50 * time.Millisecond}
	_, _, err := c.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestPostForm_SendsFormBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("unexpected content type: %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.FormValue("q"); got != "hello world" {
			t.Errorf("unexpected q: %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := &Client{}
	form := url.Values{}
	form.Set("q", "hello world")
	_, status, err := c.PostForm(context.Background(), srv.URL, form)
	if err != nil || status != 200 {
		t.Fatalf("post failed: status=%d err=%v", status, err)
	}
}

func TestMaxConcurrent_Limits(t *testing.T) {
	var inflight, peak int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cur := atomic.AddInt64(&inflight, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if cur <= p || atomic.CompareAndSwapInt64(&peak, p, cur) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		atomic.AddInt64(&inflight, -1)
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := &Client{MaxConcurrent: 2}
	done := make(chan struct{})
	for i := 0; i < 6; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _, _ = c.Get(context.Background(), srv.URL)
		}()
	}
	for i := 0; i < 6; i++ {
		<-done
	}
	if p := atomic.LoadInt64(&peak); p > 2 {
		t.Fatalf("expected at most 2 concurrent requests, saw %d", p)
	}
}
