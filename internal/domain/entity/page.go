package entity

// PageInfo is the pagination envelope paginated list endpoints return
// alongside their data. Pages are 1-indexed.
type PageInfo struct {
	Page         int `json:"page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
	PerPage      int `json:"per_page"`
}
