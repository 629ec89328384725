package models

import "strings"

// NewsArticle is a single entry of the personalised news feed. Articles are
// never mutated locally; the whole collection is replaced on every load.
type NewsArticle struct {
	ID          int64   `json:"id"`
	Source      string  `json:"source"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	ImageURL    *string `json:"image_url,omitempty"`
	// PublishedAt is kept as the ISO-8601 string sent by the server.
	PublishedAt string  `json:"published_at"`
	Category    string  `json:"category"`
	Author      *string `json:"author,omitempty"`
}

// NewsSources is the body of GET /news/sources.
type NewsSources struct {
	Sources []string `json:"sources"`
}

// Feed category labels shown as filter pills. CategoryForYou is the
// catch-all label that disables filtering.
const (
	CategoryForYou    = "for you"
	CategoryHousing   = "housing"
	CategoryLoans     = "loans & rates"
	CategoryTax       = "tax"
	CategorySavings   = "savings"
	CategoryTransport = "transport"
)

// Categories lists every known category label in display order.
var Categories = []string{
	CategoryForYou,
	CategoryHousing,
	CategoryLoans,
	CategoryTax,
	CategorySavings,
	CategoryTransport,
}

// IsKnownCategory reports whether label is one of [Categories].
func IsKnownCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}

// FilterArticlesByCategory returns the articles matching label. The
// catch-all label returns articles unchanged; any other label keeps the
// articles whose category contains label, ignoring case.
func FilterArticlesByCategory(articles []NewsArticle, label string) []NewsArticle {
	if label == CategoryForYou {
		return articles
	}

	needle := strings.ToLower(label)
	filtered := make([]NewsArticle, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Category), needle) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
