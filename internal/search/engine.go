package search

import (
	"math"
	"sort"
	"strings"

	"github.com/accrahealth/carebot/pkg/logging"
)

const (
	weightTitle   = 3.0
	weightBody    = 2.0
	weightKeyword = 1.5
	weightFuzzy   = 0.5

	// minTermLen drops stop-length tokens before scoring.
	minTermLen = 3

	// fuzzyThreshold is the edit-distance similarity a token must exceed
	// to count as a fuzzy hit.
	fuzzyThreshold = 0.7
)

// Options tunes one query. Zero-value Limit means no truncation; empty Type
// means all types; Fuzzy defaults off.
type Options struct {
	Limit    int
	Type     ContentType
	MinScore float64
	Fuzzy    bool
}

// Engine answers ranked queries over a fixed content catalog.
type Engine struct {
	items  []ContentItem
	logger *logging.Logger
}

// NewEngine builds the index from the given sources. Malformed sources are
// logged and skipped so a bad record never takes the whole catalog down.
// Building is idempotent: the same sources always produce the same index.
func NewEngine(sources []Source, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Default()
	}
	items := make([]ContentItem, 0, len(sources))
	for _, s := range sources {
		if s.ID == "" || s.Title == "" {
			logger.Warn("search: skipping malformed content source",
				"id", s.ID, "title", s.Title)
			continue
		}
		items = append(items, ContentItem{
			ID:             s.ID,
			Title:          s.Title,
			RawContent:     s.Content,
			Type:           s.Type,
			Keywords:       s.Keywords,
			SearchableText: buildSearchableText(s),
		})
	}
	logger.Info("search: index built", "items", len(items), "sources", len(sources))
	return &Engine{items: items, logger: logger}
}

// Len reports the number of indexed items.
func (e *Engine) Len() int { return len(e.items) }

// Get returns the indexed item with the given id.
func (e *Engine) Get(id string) (ContentItem, bool) {
	for _, it := range e.items {
		if it.ID == id {
			return it, true
		}
	}
	return ContentItem{}, false
}

// Search scores every indexed item against the query and returns results
// sorted by descending score, truncated to opts.Limit. A query with no
// usable terms returns an empty slice.
func (e *Engine) Search(query string, opts Options) []Result {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		res Result
		raw float64
	}
	hits := make([]scored, 0, len(e.items))
	for _, item := range e.items {
		if opts.Type != "" && item.Type != opts.Type {
			continue
		}
		raw, matched := scoreItem(item, terms, opts.Fuzzy)
		score := math.Min(1, math.Max(0, raw))
		if score < opts.MinScore || score == 0 {
			continue
		}
		hits = append(hits, scored{
			res: Result{Item: item, Score: score, MatchedTerms: matched},
			raw: raw,
		})
	}

	// Order by the raw accumulated score so items clamped to the same
	// reported score still rank by actual match strength; ID ascending on
	// ties keeps repeated queries over an unchanged index identical.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].raw != hits[j].raw {
			return hits[i].raw > hits[j].raw
		}
		return hits[i].res.Item.ID < hits[j].res.Item.ID
	})

	if opts.Limit > 0 && len(hits) > opts.Limit {
		hits = hits[:opts.Limit]
	}
	results := make([]Result, len(hits))
	for i, h := range hits {
		results[i] = h.res
	}
	return results
}

func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:\"'()")
		if len(f) >= minTermLen {
			terms = append(terms, f)
		}
	}
	return terms
}

// scoreItem applies the additive weighting per term and normalizes by the
// term count. The caller clamps the result to [0,1].
func scoreItem(item ContentItem, terms []string, fuzzy bool) (float64, []string) {
	title := strings.ToLower(item.Title)
	var total float64
	var matched []string

	var tokens []string
	if fuzzy {
		tokens = strings.Fields(item.SearchableText)
	}

	for _, term := range terms {
		var termScore float64
		if strings.Contains(title, term) {
			termScore += weightTitle
		}
		if strings.Contains(item.SearchableText, term) {
			termScore += weightBody
		}
		for _, kw := range item.Keywords {
			if strings.Contains(strings.ToLower(kw), term) {
				termScore += weightKeyword
				break
			}
		}
		if fuzzy {
			for _, tok := range tokens {
				if similarity(term, tok) > fuzzyThreshold {
					termScore += weightFuzzy
				}
			}
		}
		if termScore > 0 {
			matched = append(matched, term)
		}
		total += termScore
	}

	return total / float64(len(terms)), matched
}

// similarity is normalized edit-distance: (longerLen - distance) / longerLen.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1
	}
	longer := len([]rune(a))
	if l := len([]rune(b)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 1
	}
	return float64(longer-levenshtein(a, b)) / float64(longer)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
