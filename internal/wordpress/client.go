package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Post is one published post fetched from the WordPress REST API, with the
// rendered HTML fields already reduced to plain text.
type Post struct {
	ID          int
	Title       string
	Excerpt     string
	Content     string
	URL         string
	PublishedAt time.Time
}

type Client struct {
	baseAPIURL string
	httpClient *http.Client
}

// NewClient builds a client for a WordPress site, e.g.
// NewClient("https://example.com") talks to https://example.com/wp-json/wp/v2.
func NewClient(siteURL string) *Client {
	return &Client{
		baseAPIURL: strings.TrimRight(siteURL, "/") + "/wp-json/wp/v2",
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

type renderedField struct {
	Rendered string `json:"rendered"`
}

type postResponse struct {
	ID      int           `json:"id"`
	Date    string        `json:"date"`
	Link    string        `json:"link"`
	Title   renderedField `json:"title"`
	Excerpt renderedField `json:"excerpt"`
	Content renderedField `json:"content"`
}

// ListRecentPosts fetches up to limit published posts, newest first.
func (c *Client) ListRecentPosts(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = 10
	}

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(limit))
	params.Set("status", "publish")
	params.Set("orderby", "date")
	params.Set("_fields", "id,title,excerpt,link,date,content")

	endpoint := fmt.Sprintf("%s/posts?%s", c.baseAPIURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch WordPress posts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("WordPress API returned status %d", resp.StatusCode)
	}

	var decoded []postResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode WordPress response: %w", err)
	}

	posts := make([]Post, 0, len(decoded))
	for _, p := range decoded {
		posts = append(posts, Post{
			ID:          p.ID,
			Title:       stripHTML(p.Title.Rendered),
			Excerpt:     stripHTML(p.Excerpt.Rendered),
			Content:     stripHTML(p.Content.Rendered),
			URL:         p.Link,
			PublishedAt: parseWPDate(p.Date),
		})
	}
	return posts, nil
}

// stripHTML reduces a rendered WordPress field to its text content.
func stripHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(doc.Text())
}

// WordPress dates come without a timezone designator.
func parseWPDate(value string) time.Time {
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Time{}
}
