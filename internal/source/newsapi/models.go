package newsapi

// apiResponse represents the NewsAPI "everything" response structure.
type apiResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []apiArticle `json:"articles"`
	Code         string       `json:"code"`
	Message      string       `json:"message"`
}

type apiArticle struct {
	Source      apiSource `json:"source"`
	Author      *string   `json:"author"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	URL         string    `json:"url"`
	PublishedAt string    `json:"publishedAt"`
	Content     *string   `json:"content"`
}

type apiSource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}
