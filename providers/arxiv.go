package providers

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/hyperifyio/websearch"
	"github.com/hyperifyio/websearch/internal/fetch"
)

const arxivEndpoint = "http://export.arxiv.org/api/query"

const arxivDefaultMax = 10

// Arxiv implements websearch.Provider against the ArXiv Atom API. It
// supports free-text queries and comma-separated paper-ID lookup, plus
// sorting by relevance, submission date or last-update date.
type Arxiv struct {
	// BaseURL overrides the endpoint, mainly for tests.
	BaseURL string
	Client  *fetch.Client
}

// NewArxiv returns a provider with a default HTTP client.
func NewArxiv() *Arxiv {
	return &Arxiv{Client: &fetch.Client{UserAgent: defaultUserAgent}}
}

func (a *Arxiv) Name() string { return "arxiv" }

func (a *Arxiv) Search(ctx context.Context, opts *websearch.Options) ([]websearch.Result, error) {
	if opts.Query == "" && opts.IDList == "" {
		return nil, &websearch.InvalidInputError{Message: "arxiv requires a query or an ID list"}
	}

	q := url.Values{}
	if opts.Query != "" {
		q.Set("search_query", "all:"+opts.Query)
	}
	if opts.IDList != "" {
		q.Set("id_list", opts.IDList)
	}
	max := opts.MaxResults
	if max <= 0 {
		max = arxivDefaultMax
	}
	q.Set("start", "0")
	q.Set("max_results", strconv.Itoa(max))
	if sb := arxivSortBy(opts.SortBy); sb != "" {
		q.Set("sortBy", sb)
	}
	if so := arxivSortOrder(opts.SortOrder); so != "" {
		q.Set("sortOrder", so)
	}

	base := a.BaseURL
	if base == "" {
		base = arxivEndpoint
	}
	client := a.Client
	if client == nil {
		client = &fetch.Client{UserAgent: defaultUserAgent}
	}

	body, status, err := client.Get(ctx, base+"?"+q.Encode())
	if err != nil {
		return nil, transportError(err, client.Timeout())
	}
	if status < 200 || status > 299 {
		return nil, &websearch.HTTPError{
			StatusCode:   status,
			Message:      fmt.Sprintf("arxiv returned status %d", status),
			ResponseBody: excerpt(body),
		}
	}

	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, &websearch.ParseError{Message: err.Error()}
	}

	out := make([]websearch.Result, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		out = append(out, websearch.Result{
			Title:         collapseSpace(e.Title),
			URL:           e.link(),
			Snippet:       collapseSpace(e.Summary),
			Domain:        "arxiv.org",
			PublishedDate: e.Published,
			Provider:      "arxiv",
			Raw:           e,
		})
		if len(out) >= max {
			break
		}
	}
	return out, nil
}

func arxivSortBy(s websearch.SortBy) string {
	switch s {
	case websearch.SortByRelevance:
		return "relevance"
	case websearch.SortBySubmittedDate:
		return "submittedDate"
	case websearch.SortByLastUpdatedDate:
		return "lastUpdatedDate"
	}
	return ""
}

func arxivSortOrder(s websearch.SortOrder) string {
	switch s {
	case websearch.SortAscending:
		return "ascending"
	case websearch.SortDescending:
		return "descending"
	}
	return ""
}

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string       `xml:"id" json:"id"`
	Title     string       `xml:"title" json:"title"`
	Summary   string       `xml:"summary" json:"summary"`
	Published string       `xml:"published" json:"published"`
	Updated   string       `xml:"updated" json:"updated"`
	Authors   []atomAuthor `xml:"author" json:"authors,omitempty"`
	Links     []atomLink   `xml:"link" json:"links,omitempty"`
}

type atomAuthor struct {
	Name string `xml:"name" json:"name"`
}

type atomLink struct {
	Href string `xml:"href,attr" json:"href"`
	Rel  string `xml:"rel,attr" json:"rel,omitempty"`
	Type string `xml:"type,attr" json:"type,omitempty"`
}

// link prefers the alternate (abstract page) link, then the entry ID,
// which ArXiv sets to the same URL.
func (e atomEntry) link() string {
	for _, l := range e.Links {
		if l.Rel == "alternate" && l.Href != "" {
			return l.Href
		}
	}
	return e.ID
}

// collapseSpace flattens the newline-wrapped text ArXiv returns into a
// single line.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
