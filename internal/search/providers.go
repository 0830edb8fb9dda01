package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/easeaico/oriona/internal/types"
	"github.com/easeaico/oriona/internal/utils"
)

// Provider names accepted by NewProviders.
const (
	ProviderDuckDuckGo    = "duckduckgo"
	ProviderWikipedia     = "wikipedia"
	ProviderReddit        = "reddit"
	ProviderGitHub        = "github"
	ProviderStackOverflow = "stackoverflow"
)

// Provider queries one public search source.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]types.SearchResult, error)
}

// NewProviders builds the named providers in the given order.
func NewProviders(names []string, f Fetcher) ([]Provider, error) {
	out := make([]Provider, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case ProviderDuckDuckGo:
			out = append(out, &DuckDuckGo{BaseURL: "https://api.duckduckgo.com/", Fetcher: f})
		case ProviderWikipedia:
			out = append(out, &Wikipedia{BaseURL: "https://es.wikipedia.org", Fetcher: f})
		case ProviderReddit:
			out = append(out, &Reddit{BaseURL: "https://www.reddit.com", Fetcher: f})
		case ProviderGitHub:
			out = append(out, &GitHub{BaseURL: "https://api.github.com", Fetcher: f})
		case ProviderStackOverflow:
			out = append(out, &StackOverflow{BaseURL: "https://api.stackexchange.com", Fetcher: f})
		case "":
		default:
			return nil, fmt.Errorf("unknown search provider %q", name)
		}
	}
	return out, nil
}

var techKeywords = []string{
	"programación", "programacion", "código", "codigo", "javascript", "python", "java",
	"html", "css", "react", "node", "angular", "vue", "tecnología", "tecnologia",
	"software", "hardware", "computadora", "ordenador", "app", "aplicación", "aplicacion",
	"web", "internet", "inteligencia artificial", "machine learning", "blockchain",
	"criptomoneda", "bitcoin", "github", "stack overflow", "desarrollo", "developer",
	"programming",
}

// IsTechQuery reports whether query is about software or technology.
func IsTechQuery(query string) bool {
	return utils.ContainsAny(strings.ToLower(query), techKeywords)
}

// DuckDuckGo uses the Instant Answer API.
type DuckDuckGo struct {
	BaseURL string
	Fetcher Fetcher
}

type ddgResponse struct {
	Heading       string `json:"Heading"`
	Abstract      string `json:"Abstract"`
	AbstractURL   string `json:"AbstractURL"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

func (d *DuckDuckGo) Name() string { return ProviderDuckDuckGo }

func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	v := url.Values{"q": {query}, "format": {"json"}, "no_html": {"1"}, "skip_disambig": {"1"}}
	var data ddgResponse
	if err := d.Fetcher.GetJSON(ctx, d.BaseURL+"?"+v.Encode(), nil, &data); err != nil {
		return nil, err
	}

	var out []types.SearchResult
	if utils.RuneLen(data.Abstract) > 50 {
		out = append(out, types.SearchResult{
			Title:   orDefault(data.Heading, "DuckDuckGo - Información"),
			Snippet: data.Abstract,
			URL:     orDefault(data.AbstractURL, "https://duckduckgo.com"),
		})
	}
	for i, topic := range data.RelatedTopics {
		if i == 3 {
			break
		}
		if topic.Text == "" || topic.FirstURL == "" {
			continue
		}
		title, _, _ := strings.Cut(topic.Text, " - ")
		out = append(out, types.SearchResult{
			Title:   orDefault(title, "Información relacionada"),
			Snippet: topic.Text,
			URL:     topic.FirstURL,
		})
	}
	return out, nil
}

// Wikipedia searches the Spanish Wikipedia.
type Wikipedia struct {
	BaseURL string
	Fetcher Fetcher
}

type wikiResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"search"`
	} `json:"query"`
}

func (w *Wikipedia) Name() string { return ProviderWikipedia }

func (w *Wikipedia) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	v := url.Values{"action": {"query"}, "list": {"search"}, "srsearch": {query}, "format": {"json"}, "srlimit": {"3"}}
	var data wikiResponse
	if err := w.Fetcher.GetJSON(ctx, w.BaseURL+"/w/api.php?"+v.Encode(), nil, &data); err != nil {
		return nil, err
	}

	var out []types.SearchResult
	for i, item := range data.Query.Search {
		if i == 2 {
			break
		}
		out = append(out, types.SearchResult{
			Title:   "Wikipedia: " + item.Title,
			Snippet: utils.StripHTML(item.Snippet),
			URL:     w.BaseURL + "/wiki/" + url.PathEscape(item.Title),
		})
	}
	return out, nil
}

// Reddit searches public posts, keeping only those with body text.
type Reddit struct {
	BaseURL string
	Fetcher Fetcher
}

type redditResponse struct {
	Data struct {
		Children []struct {
			Data struct {
				Title     string `json:"title"`
				Selftext  string `json:"selftext"`
				Permalink string `json:"permalink"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (r *Reddit) Name() string { return ProviderReddit }

func (r *Reddit) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	v := url.Values{"q": {query}, "limit": {"3"}, "sort": {"relevance"}}
	var data redditResponse
	if err := r.Fetcher.GetJSON(ctx, r.BaseURL+"/search.json?"+v.Encode(), nil, &data); err != nil {
		return nil, err
	}

	var out []types.SearchResult
	for i, child := range data.Data.Children {
		if i == 2 {
			break
		}
		post := child.Data
		if post.Title == "" || post.Selftext == "" {
			continue
		}
		out = append(out, types.SearchResult{
			Title:   "Reddit: " + post.Title,
			Snippet: utils.TruncateRunes(post.Selftext, 200) + "...",
			URL:     "https://reddit.com" + post.Permalink,
		})
	}
	return out, nil
}

// GitHub searches repositories by stars. It only answers technical queries.
type GitHub struct {
	BaseURL string
	Fetcher Fetcher
}

type githubResponse struct {
	Items []struct {
		FullName    string `json:"full_name"`
		Description string `json:"description"`
		HTMLURL     string `json:"html_url"`
	} `json:"items"`
}

func (g *GitHub) Name() string { return ProviderGitHub }

func (g *GitHub) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	if !IsTechQuery(query) {
		return nil, nil
	}
	v := url.Values{"q": {query}, "sort": {"stars"}, "order": {"desc"}, "per_page": {"2"}}
	header := http.Header{"Accept": {"application/vnd.github.v3+json"}}
	var data githubResponse
	if err := g.Fetcher.GetJSON(ctx, g.BaseURL+"/search/repositories?"+v.Encode(), header, &data); err != nil {
		return nil, err
	}

	var out []types.SearchResult
	for i, repo := range data.Items {
		if i == 2 {
			break
		}
		out = append(out, types.SearchResult{
			Title:   "GitHub: " + repo.FullName,
			Snippet: orDefault(repo.Description, "Repositorio de código en GitHub"),
			URL:     repo.HTMLURL,
		})
	}
	return out, nil
}

// StackOverflow searches questions. It only answers technical queries.
type StackOverflow struct {
	BaseURL string
	Fetcher Fetcher
}

type stackResponse struct {
	Items []struct {
		Title       string `json:"title"`
		Score       int    `json:"score"`
		AnswerCount int    `json:"answer_count"`
		Link        string `json:"link"`
	} `json:"items"`
}

func (s *StackOverflow) Name() string { return ProviderStackOverflow }

func (s *StackOverflow) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	if !IsTechQuery(query) {
		return nil, nil
	}
	v := url.Values{"order": {"desc"}, "sort": {"relevance"}, "q": {query}, "site": {"stackoverflow"}, "pagesize": {"2"}}
	var data stackResponse
	if err := s.Fetcher.GetJSON(ctx, s.BaseURL+"/2.3/search/advanced?"+v.Encode(), nil, &data); err != nil {
		return nil, err
	}

	var out []types.SearchResult
	for i, item := range data.Items {
		if i == 2 {
			break
		}
		out = append(out, types.SearchResult{
			Title:   "Stack Overflow: " + utils.StripHTML(item.Title),
			Snippet: fmt.Sprintf("Pregunta con %d puntos y %d respuestas", item.Score, item.AnswerCount),
			URL:     item.Link,
		})
	}
	return out, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
