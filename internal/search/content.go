// Package search maintains an in-memory index over static site content and
// answers ranked, fuzzy-tolerant queries against it. The index is built once
// at startup and read-only afterwards, so queries need no locking.
package search

import "strings"

// ContentType partitions the catalog so queries can be restricted to one
// kind of record.
type ContentType string

const (
	TypeService  ContentType = "service"
	TypePage     ContentType = "page"
	TypeFacility ContentType = "facility"
	TypeDoctor   ContentType = "doctor"
	TypeInfo     ContentType = "info"
)

// ContentItem is one indexed unit of site content. SearchableText is
// precomputed at build time so query-time matching is a plain substring scan.
type ContentItem struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	RawContent     string      `json:"content"`
	Type           ContentType `json:"type"`
	Keywords       []string    `json:"keywords"`
	SearchableText string      `json:"-"`
}

// Source is one static record fed to the index builder. Records with an
// empty ID or Title are considered malformed and skipped at build time.
type Source struct {
	ID       string
	Title    string
	Content  string
	Type     ContentType
	Keywords []string
}

// Result pairs an item with its relevance for one query. MatchedTerms lists
// the query terms that contributed to the score.
type Result struct {
	Item         ContentItem `json:"item"`
	Score        float64     `json:"relevanceScore"`
	MatchedTerms []string    `json:"matchedTerms"`
}

func buildSearchableText(s Source) string {
	parts := make([]string, 0, 2+len(s.Keywords))
	parts = append(parts, s.Title, s.Content)
	parts = append(parts, s.Keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}
