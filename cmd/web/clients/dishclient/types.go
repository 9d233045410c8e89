package dishclient

// SearchResult 는 GET /search 가 내려주는 후보 항목이다.
type SearchResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DishesByIngredientsRequest 는 POST /dishes-by-ingredients 요청 바디다.
type DishesByIngredientsRequest struct {
	Ingredients []string `json:"ingredients"`
}
