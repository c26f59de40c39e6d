package news

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/models"
)

var categories = []models.NewsCategory{
	{ID: 1, Name: "Development", Slug: "development"},
	{ID: 2, Name: "AI & Machine Learning", Slug: "ai"},
	{ID: 3, Name: "Cloud Computing", Slug: "cloud"},
	{ID: 4, Name: "Cybersecurity", Slug: "security"},
	{ID: 5, Name: "Mobile", Slug: "mobile"},
	{ID: 6, Name: "DevOps", Slug: "devops"},
}

// Title words that place a story in a category. Entries with a space
// match as a phrase.
var categoryKeywords = map[string][]string{
	"development": {"programming", "programmer", "developer", "developers", "compiler", "golang", "rust",
		"python", "javascript", "typescript", "java", "react", "framework", "api", "postgres", "sql",
		"database", "git", "open source", "web"},
	"ai": {"ai", "llm", "llms", "gpt", "ml", "neural", "transformer", "agent", "agents", "inference",
		"machine learning", "deep learning"},
	"cloud": {"cloud", "aws", "azure", "gcp", "serverless", "lambda", "s3", "datacenter"},
	"security": {"security", "vulnerability", "cve", "exploit", "breach", "malware", "ransomware",
		"encryption", "password", "phishing", "backdoor"},
	"mobile": {"ios", "android", "iphone", "ipad", "mobile", "swift", "kotlin", "app store"},
	"devops": {"devops", "kubernetes", "k8s", "docker", "container", "containers", "terraform", "ci",
		"deploy", "deployment", "observability", "sre"},
}

// Categories lists the topics a news listing can be narrowed to.
func (c *Client) Categories() []models.NewsCategory {
	out := make([]models.NewsCategory, len(categories))
	copy(out, categories)
	return out
}

// TopStoriesByCategory returns up to limit top stories whose title falls in
// category. An empty category, "all" and "technology" select every story.
func (c *Client) TopStoriesByCategory(ctx context.Context, category string, limit int) ([]models.NewsItem, error) {
	slug := strings.ToLower(strings.TrimSpace(category))
	if slug == "" || slug == "all" || slug == "technology" {
		return c.TopStories(ctx, limit)
	}

	keywords, ok := categoryKeywords[slug]
	if !ok {
		return nil, apperrors.NewInvalidInputError("category", fmt.Sprintf("unknown category %q", category))
	}

	pool, err := c.TopStories(ctx, c.maxLimit)
	if err != nil {
		return nil, err
	}

	limit = c.Limit(limit)
	out := make([]models.NewsItem, 0, limit)
	for _, it := range pool {
		if len(out) == limit {
			break
		}
		if matchesCategory(it.Title, keywords) {
			out = append(out, it)
		}
	}
	return out, nil
}

func matchesCategory(title string, keywords []string) bool {
	lower := strings.ToLower(title)
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = struct{}{}
	}

	for _, k := range keywords {
		if strings.Contains(k, " ") {
			if strings.Contains(lower, k) {
				return true
			}
			continue
		}
		if _, ok := words[k]; ok {
			return true
		}
	}
	return false
}
