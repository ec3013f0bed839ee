// types.go declares the wire types exchanged with the Stash API.

package api

import "strings"

// Article is a saved item as returned by list, search and get.
type Article struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	Excerpt   string `json:"excerpt,omitempty"`
	Content   string `json:"content,omitempty"`
	WordCount int    `json:"word_count,omitempty"`
	Read      bool   `json:"read"`
	SavedAt   string `json:"saved_at,omitempty"`
}

// SaveRequest is the body of a create/save call. Title and Markdown are
// optional; the service fetches and extracts content when they are absent.
type SaveRequest struct {
	URL      string `json:"url"`
	Title    string `json:"title,omitempty"`
	Markdown string `json:"markdown,omitempty"`
}

// SaveResponse is the body of a successful create/save call.
type SaveResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Title    string `json:"title,omitempty"`
	Message  string `json:"message,omitempty"`
	Restored bool   `json:"restored"`
}

// AlreadySaved reports whether the service accepted the call but did not
// create a new article because the URL was already in the account.
//
// The API signals this through the message text rather than a status
// field; a restored article carries the same message with the restored
// flag set, and does count as newly available.
func (r *SaveResponse) AlreadySaved() bool {
	return strings.Contains(strings.ToLower(r.Message), "already saved") && !r.Restored
}

// DiscoveryItem is a suggested article in the discovery queue.
type DiscoveryItem struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Source  string `json:"source,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// apiError is the conventional error body shape: {"error": "...", "message": "..."}.
type apiError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

// listResponse wraps paginated article results.
type listResponse struct {
	Articles []Article `json:"articles"`
}

// discoveryResponse wraps discovery queue results.
type discoveryResponse struct {
	Items []DiscoveryItem `json:"items"`
}
