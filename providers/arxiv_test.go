package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/hyperifyio/websearch"
	"github.com/hyperifyio/websearch/internal/fetch"
)

const arxivFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query Results</title>
  <entry>
    <id>http://arxiv.org/abs/1706.03762v7</id>
    <updated>2023-08-02T00:41:18Z</updated>
    <published>2017-06-12T17:57:34Z</published>
    <title>Attention Is All
 You Need</title>
    <summary>The dominant sequence transduction models are based on complex
 recurrent or convolutional neural networks.</summary>
    <author><name>Ashish Vaswani</name></author>
    <link href="http://arxiv.org/abs/1706.03762v7" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/1706.03762v7" rel="related" type="application/pdf"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2005.14165v4</id>
    <published>2020-05-28T17:29:03Z</published>
    <title>Language Models are Few-Shot Learners</title>
    <summary>Scaling up language models improves task-agnostic performance.</summary>
  </entry>
</feed>`

func TestArxiv_ParsesFeed(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/atom+xml")
		_, _ = w.Write([]byte(arxivFeed))
	}))
	defer srv.Close()

	a := &Arxiv{BaseURL: srv.URL, Client: &fetch.Client{HTTPClient: srv.Client()}}
	got, err := a.Search(context.Background(), &websearch.Options{
		Query:      "attention",
		MaxResults: 5,
		SortBy:     websearch.SortBySubmittedDate,
		SortOrder:  websearch.SortDescending,
	})
	if err != nil {
		t.Fatalf("search error: %v", err)
	}

	if gotQuery.Get("search_query") != "all:attention" {
		t.Errorf("unexpected search_query: %q", gotQuery.Get("search_query"))
	}
	if gotQuery.Get("max_results") != "5" {
		t.Errorf("unexpected max_results: %q", gotQuery.Get("max_results"))
	}
	if gotQuery.Get("sortBy") != "submittedDate" {
		t.Errorf("unexpected sortBy: %q", gotQuery.Get("sortBy"))
	}
	if gotQuery.Get("sortOrder") != "descending" {
		t.Errorf("unexpected sortOrder: %q", gotQuery.Get("sortOrder"))
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Title != "Attention Is All You Need" {
		t.Errorf("title not collapsed: %q", got[0].Title)
	}
	if got[0].URL != "http://arxiv.org/abs/1706.03762v7" {
		t.Errorf("unexpected url: %q", got[0].URL)
	}
	if got[0].PublishedDate != "2017-06-12T17:57:34Z" {
		t.Errorf("unexpected published date: %q", got[0].PublishedDate)
	}
	if got[0].Domain != "arxiv.org" || got[0].Provider != "arxiv" {
		t.Errorf("unexpected domain/provider: %q/%q", got[0].Domain, got[0].Provider)
	}
	if got[0].Raw == nil {
		t.Error("expected raw entry to be retained")
	}
	// Second entry has no alternate link; the entry ID serves as URL.
	if got[1].URL != "http://arxiv.org/abs/2005.14165v4" {
		t.Errorf("unexpected fallback url: %q", got[1].URL)
	}
}

func TestArxiv_IDListLookup(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(arxivFeed))
	}))
	defer srv.Close()

	a := &Arxiv{BaseURL: srv.URL, Client: &fetch.Client{HTTPClient: srv.Client()}}
	got, err := a.Search(context.Background(), &websearch.Options{IDList: "1706.03762,2005.14165"})
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if gotQuery.Get("id_list") != "1706.03762,2005.14165" {
		t.Errorf("unexpected id_list: %q", gotQuery.Get("id_list"))
	}
	if gotQuery.Has("search_query") {
		t.Errorf("search_query should be absent, got %q", gotQuery.Get("search_query"))
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
}

func TestArxiv_EmptyInputRejected(t *testing.T) {
	a := NewArxiv()
	_, err := a.Search(context.Background(), &websearch.Options{})
	var invalid *websearch.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %T: %v", err, err)
	}
}

func TestArxiv_BadXMLMapsToParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not xml at all"))
	}))
	defer srv.Close()

	a := &Arxiv{BaseURL: srv.URL, Client: &fetch.Client{HTTPClient: srv.Client()}}
	_, err := a.Search(context.Background(), &websearch.Options{Query: "attention"})
	var parseErr *websearch.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
}

func TestArxiv_ServerErrorMapsToHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(503)
	}))
	defer srv.Close()

	a := &Arxiv{BaseURL: srv.URL, Client: &fetch.Client{HTTPClient: srv.Client()}}
	_, err := a.Search(context.Background(), &websearch.Options{Query: "attention"})
	var httpErr *websearch.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %T: %v", err, err)
	}
	if httpErr.StatusCode != 503 {
		t.Errorf("unexpected status: %d", httpErr.StatusCode)
	}
}
