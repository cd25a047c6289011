package response

// FeedView is the home page state. Empty is the explicit empty state and
// EndOfFeed the "no more items" footer; they are never both true.
type FeedView struct {
	Category      string        `json:"category"`
	Categories    []string      `json:"categories"`
	Items         []ProductCard `json:"items"`
	Page          int           `json:"page"`
	HasMore       bool          `json:"hasMore"`
	IsLoading     bool          `json:"isLoading"`
	IsLoadingMore bool          `json:"isLoadingMore"`
	Empty         bool          `json:"empty"`
	EndOfFeed     bool          `json:"endOfFeed"`
	Notice        string        `json:"notice,omitempty"`
}

type SearchView struct {
	Query   string        `json:"query"`
	Results []ProductCard `json:"results"`
	Visible bool          `json:"visible"`
}
