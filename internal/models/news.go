// internal/models/news.go
package models

// NewsItem mirrors the Hacker News item fields the frontend renders.
type NewsItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Score int    `json:"score"`
	By    string `json:"by"`
	Type  string `json:"type"`
	Time  int64  `json:"time"`
}

type NewsCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
