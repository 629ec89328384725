package models

// FeedState is the aggregate published by the feed service. Articles,
// Insights and Sources are replaced together on a successful load and kept
// as they were when a load fails.
type FeedState struct {
	Articles         []NewsArticle
	Insights         []Insight
	Sources          []string
	SelectedCategory string

	// Loading is true while a load is in flight.
	Loading bool

	// ErrorMessage is the user-facing message of the last failed operation,
	// empty after a successful one.
	ErrorMessage string
}

// VisibleArticles returns the articles matching the selected category.
func (f FeedState) VisibleArticles() []NewsArticle {
	return FilterArticlesByCategory(f.Articles, f.SelectedCategory)
}
