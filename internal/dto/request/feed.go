package request

// ScrollRequest reports how far the viewport is from the bottom of the page.
type ScrollRequest struct {
	DistanceToBottom int `json:"distanceToBottom"`
}

// SearchRequest carries the navbar search box contents after a keystroke.
type SearchRequest struct {
	Query string `json:"query"`
}
