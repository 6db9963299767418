package providers

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"github.com/hyperifyio/websearch"
	"github.com/hyperifyio/websearch/internal/fetch"
)

const duckduckgoEndpoint = "https://html.duckduckgo.com/html/"

// DuckDuckGo implements websearch.Provider against DuckDuckGo's HTML
// results endpoint. It has no API key and no ID-lookup support.
type DuckDuckGo struct {
	// BaseURL overrides the endpoint, mainly for tests.
	BaseURL string
	Client  *fetch.Client
}

// NewDuckDuckGo returns a provider with a default HTTP client.
func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{Client: &fetch.Client{UserAgent: defaultUserAgent}}
}

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

func (d *DuckDuckGo) Search(ctx context.Context, opts *websearch.Options) ([]websearch.Result, error) {
	if opts.Query == "" {
		return nil, &websearch.InvalidInputError{Message: "duckduckgo does not support ID-based lookup; a query is required"}
	}

	form := url.Values{}
	form.Set("q", opts.Query)
	if kl := localeParam(opts.Language, opts.Region); kl != "" {
		form.Set("kl", kl)
	}
	if kp := safeSearchParam(opts.SafeSearch); kp != "" {
		form.Set("kp", kp)
	}

	base := d.BaseURL
	if base == "" {
		base = duckduckgoEndpoint
	}
	client := d.Client
	if client == nil {
		client = &fetch.Client{UserAgent: defaultUserAgent}
	}

	body, status, err := client.PostForm(ctx, base, form)
	if err != nil {
		return nil, transportError(err, client.Timeout())
	}
	if status < 200 || status > 299 {
		return nil, &websearch.HTTPError{
			StatusCode:   status,
			Message:      fmt.Sprintf("duckduckgo returned status %d", status),
			ResponseBody: excerpt(body),
		}
	}

	results, err := parseResults(body)
	if err != nil {
		return nil, &websearch.ParseError{Message: err.Error()}
	}
	if opts.MaxResults > 0 && len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results, nil
}

// parseResults walks the result markup: each hit is an anchor with
// class result__a inside a block with class result, with sibling
// result__snippet and result__url nodes.
func parseResults(body []byte) ([]websearch.Result, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	var out []websearch.Result
	var dfs func(*html.Node)
	dfs = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "result__a") {
			r := websearch.Result{
				Title:    strings.TrimSpace(textContent(n)),
				URL:      unwrapRedirect(attrValue(n, "href")),
				Provider: "duckduckgo",
			}
			if block := ancestorWithClass(n, "result"); block != nil {
				if sn := findClass(block, "result__snippet"); sn != nil {
					r.Snippet = strings.TrimSpace(textContent(sn))
				}
				if du := findClass(block, "result__url"); du != nil {
					r.Domain = strings.TrimSpace(textContent(du))
				}
			}
			if r.Domain == "" {
				if u, err := url.Parse(r.URL); err == nil {
					r.Domain = u.Host
				}
			}
			if r.Title != "" && r.URL != "" {
				out = append(out, r)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(root)
	return out, nil
}

// unwrapRedirect resolves DuckDuckGo's /l/?uddg=<target> redirect links
// to the target URL. Non-redirect links pass through untouched.
func unwrapRedirect(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if !strings.HasPrefix(u.Path, "/l/") {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

// localeParam builds the kl parameter ("<region>-<lang>", e.g. "us-en")
// from the locale hints. x/text fills a missing region from the
// language's likely region; "wt" is DuckDuckGo's no-region bucket.
func localeParam(lang, region string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	r := strings.ToLower(strings.TrimSpace(region))
	if l == "" && r == "" {
		return ""
	}
	if l != "" {
		if tag, err := language.Parse(l); err == nil {
			if base, conf := tag.Base(); conf != language.No {
				l = base.String()
			}
			if r == "" {
				if reg, conf := tag.Region(); conf != language.No {
					r = strings.ToLower(reg.String())
				}
			}
		}
	}
	switch {
	case l == "":
		return r + "-en"
	case r == "":
		return "wt-" + l
	default:
		return r + "-" + l
	}
}

func safeSearchParam(s websearch.SafeSearch) string {
	switch s {
	case websearch.SafeSearchOff:
		return "-2"
	case websearch.SafeSearchModerate:
		return "-1"
	case websearch.SafeSearchStrict:
		return "1"
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func ancestorWithClass(n *html.Node, class string) *html.Node {
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur.Type == html.ElementNode && hasClass(cur, class) {
			return cur
		}
	}
	return nil
}

func findClass(n *html.Node, class string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && hasClass(cur, class) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return b.String()
}
