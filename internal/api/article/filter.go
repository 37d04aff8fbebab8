package articles

import "strings"

// FilterArticles derives the filtered view the listing screen shows: an
// exact category match AND'd with a case-insensitive substring match of the
// query against title, excerpt or content. Empty arguments disable their
// filter. The scan is linear over the already-fetched list.
func FilterArticles(list []ArticleResponse, categoryID, query string) []ArticleResponse {
	if categoryID == "" && query == "" {
		return list
	}

	q := strings.ToLower(query)
	filtered := make([]ArticleResponse, 0, len(list))

	for _, a := range list {
		if categoryID != "" && a.CategoryID != categoryID {
			continue
		}
		if q != "" && !matchesQuery(a, q) {
			continue
		}
		filtered = append(filtered, a)
	}

	return filtered
}

func matchesQuery(a ArticleResponse, q string) bool {
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Excerpt), q) ||
		strings.Contains(strings.ToLower(a.Content), q)
}
