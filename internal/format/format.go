// Package format maps API outcomes to the user-facing text returned by
// MCP tools. Everything here is a pure function over already-classified
// values: no I/O, no state, and formatting the same outcome twice yields
// identical text.
//
// Entity-scoped 404s and 403s are distinct from generic failures, a
// semantic-search outage gets a mode-specific hint, and each domain
// error code on save has its own wording. These strings are part of the
// tool contract; clients parse them.
package format

import (
	"fmt"
	"strings"

	"github.com/stash-reader/stash-mcp/internal/api"
)

// saveFallback is used when a 400 response carries neither a message nor
// an error code.
const saveFallback = "The article could not be saved."

// Messages for the domain error codes a save call can return.
var saveCodeMessages = map[string]string{
	api.CodeUnreadLimit:    "You've reached your unread article limit. Read or delete existing articles before saving more.",
	api.CodeLimitReached:   "You've reached your account's article limit.",
	api.CodeAlreadyRead:    "This article is already saved and marked as read.",
	api.CodeInvalidContent: "The page content could not be extracted. Check that the URL points to a readable article.",
}

// ArticleError renders a failure from a single-article lookup or action.
// Not-found and access-denied name the requested id rather than falling
// through to the generic message.
func ArticleError(id string, err error) string {
	apiErr := api.AsError(err)
	if apiErr == nil {
		return Generic(err)
	}
	switch apiErr.Kind {
	case api.KindNotFound:
		return fmt.Sprintf("Article %s not found.", id)
	case api.KindForbidden:
		return fmt.Sprintf("Access to article %s is denied.", id)
	default:
		return Generic(err)
	}
}

// SearchError renders a failed search. A 503 while in semantic mode gets
// a mode-specific message because the semantic index can be down while
// keyword search still works; the same status in keyword mode is just a
// generic failure.
func SearchError(mode string, err error) string {
	if mode == api.ModeSemantic && api.IsKind(err, api.KindUnavailable) {
		return "Semantic search is temporarily unavailable. Try keyword mode instead."
	}
	return Generic(err)
}

// SaveError renders a failed save call. Recognised domain codes map to
// their agreed messages; any other 400 is built from the response's
// message or error field, with a fixed fallback when both are absent.
func SaveError(err error) string {
	apiErr := api.AsError(err)
	if apiErr == nil {
		return Generic(err)
	}
	if msg, ok := saveCodeMessages[apiErr.Code]; ok {
		return msg
	}
	if apiErr.Kind == api.KindBadRequest {
		switch {
		case apiErr.Message != "":
			return fmt.Sprintf("The article could not be saved: %s.", strings.TrimSuffix(apiErr.Message, "."))
		case apiErr.Code != "":
			return fmt.Sprintf("The article could not be saved (%s).", apiErr.Code)
		default:
			return saveFallback
		}
	}
	return Generic(err)
}

// GenerateError renders a failed discovery-generate call. 429 means the
// account is generating too often; 404 means there is no reading history
// to generate from yet.
func GenerateError(err error) string {
	apiErr := api.AsError(err)
	if apiErr == nil {
		return Generic(err)
	}
	switch apiErr.Kind {
	case api.KindRateLimited:
		return "Suggestion generation is rate-limited right now. Try again later."
	case api.KindNotFound:
		return "Not enough reading history to generate suggestions yet."
	default:
		return Generic(err)
	}
}

// SuggestionError renders a failure from a discovery-dismiss call.
func SuggestionError(id string, err error) string {
	if api.IsKind(err, api.KindNotFound) {
		return fmt.Sprintf("Suggestion %s not found in the discovery queue.", id)
	}
	return Generic(err)
}

// Generic renders any failure without entity- or mode-specific wording.
// Transport faults (no HTTP status) never escalate beyond their error
// text; they are contained, not fatal.
func Generic(err error) string {
	apiErr := api.AsError(err)
	if apiErr == nil || apiErr.Kind == api.KindTransport {
		return fmt.Sprintf("The request failed: %v.", err)
	}
	if apiErr.Message != "" {
		return fmt.Sprintf("The Stash API returned an error (status %d): %s.", apiErr.StatusCode, strings.TrimSuffix(apiErr.Message, "."))
	}
	return fmt.Sprintf("The Stash API returned an unexpected error (status %d).", apiErr.StatusCode)
}

// Articles renders a result list as numbered lines. An empty result is
// an explicit "no results" message, never mistakable for an error.
func Articles(articles []api.Article, empty string) string {
	if len(articles) == 0 {
		return empty
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d article(s):\n", len(articles))
	for i, a := range articles {
		status := "unread"
		if a.Read {
			status = "read"
		}
		fmt.Fprintf(&b, "%d. %s [%s] (%s)\n   %s\n", i+1, a.Title, a.ID, status, a.URL)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Article renders a single article with its content.
func Article(a *api.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", a.Title)
	fmt.Fprintf(&b, "ID: %s\nURL: %s\n", a.ID, a.URL)
	if a.Author != "" {
		fmt.Fprintf(&b, "Author: %s\n", a.Author)
	}
	if a.WordCount > 0 {
		fmt.Fprintf(&b, "Words: %d\n", a.WordCount)
	}
	if a.Content != "" {
		fmt.Fprintf(&b, "\n%s", a.Content)
	} else if a.Excerpt != "" {
		fmt.Fprintf(&b, "\n%s", a.Excerpt)
	}
	return b.String()
}

// Suggestions renders the discovery queue.
func Suggestions(items []api.DiscoveryItem, empty string) string {
	if len(items) == 0 {
		return empty
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d suggestion(s):\n", len(items))
	for i, s := range items {
		fmt.Fprintf(&b, "%d. %s [%s]\n   %s\n", i+1, s.Title, s.ID, s.URL)
		if s.Summary != "" {
			fmt.Fprintf(&b, "   %s\n", s.Summary)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Saved renders a successful save outcome.
func Saved(resp *api.SaveResponse, markedRead bool) string {
	title := resp.Title
	if title == "" {
		title = resp.URL
	}
	msg := fmt.Sprintf("Saved %q [%s].", title, resp.ID)
	if resp.Restored {
		msg = fmt.Sprintf("Restored %q [%s].", title, resp.ID)
	}
	if markedRead {
		msg += " Marked as read."
	}
	return msg
}
