package domain

import (
	"sort"
	"strings"
)

const (
	// Scoring weights, one per searchable field. Every field is checked
	// independently so a record can accumulate several of them.
	ScoreTitle       = 10
	ScoreAuthor      = 7
	ScoreDirector    = 7
	ScoreCreator     = 7
	ScoreLocation    = 6
	ScoreTag         = 8 // per matching tag, multiple tags stack
	ScoreDescription = 5
	ScoreContentType = 3
)

// NormalizeQuery lowercases and trims a raw query string.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// ScoreEntry calculates the additive match score of an entry against a query.
// The query is normalized internally; a field contributes its weight when the
// normalized query is a substring of the lowercased field value.
// Empty or whitespace-only queries never match.
func ScoreEntry(query string, entry Entry) int {
	query = NormalizeQuery(query)
	if query == "" {
		return 0
	}

	score := 0

	if fieldMatches(entry.Title, query) {
		score += ScoreTitle
	}
	if fieldMatches(entry.Author, query) {
		score += ScoreAuthor
	}
	if fieldMatches(entry.Director, query) {
		score += ScoreDirector
	}
	if fieldMatches(entry.Creator, query) {
		score += ScoreCreator
	}
	if fieldMatches(entry.Location, query) {
		score += ScoreLocation
	}
	for _, tag := range entry.Tags {
		if fieldMatches(tag, query) {
			score += ScoreTag
		}
	}
	if fieldMatches(entry.Description, query) {
		score += ScoreDescription
	}
	if fieldMatches(entry.ContentType, query) {
		score += ScoreContentType
	}

	return score
}

// fieldMatches reports whether the normalized query is a substring of the
// lowercased field value. Empty fields never match.
func fieldMatches(field, query string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), query)
}

// Rank scores every entry against the query and returns the matches sorted
// by descending score. Zero-score entries are excluded. The sort is stable:
// equal scores keep their index-build order.
func Rank(query string, entries []Entry) []Result {
	query = NormalizeQuery(query)
	if query == "" {
		return nil
	}

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		score := ScoreEntry(query, entry)
		if score == 0 {
			continue
		}
		results = append(results, Result{Entry: entry, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}
