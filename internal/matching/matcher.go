package matching

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultThreshold is the largest distance still considered a match
const DefaultThreshold = 0.4

// Prefix matches are only credited for query tokens at least this long
const minPrefixRunes = 2

// Matcher scores free-text queries against guest names.
// Distances run from 0 (identical after normalization) to 1 (unrelated).
type Matcher struct {
	threshold float64
	metric    *metrics.Levenshtein
}

// Candidate is the best-scoring name for a query
type Candidate struct {
	Index    int
	Distance float64
}

// NewMatcher creates a matcher; a non-positive threshold selects DefaultThreshold
func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	metric := metrics.NewLevenshtein()
	metric.CaseSensitive = false
	return &Matcher{threshold: threshold, metric: metric}
}

// Threshold returns the configured match threshold
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Best returns the closest name within the threshold. Ties keep the earliest index.
func (m *Matcher) Best(query string, names []string) (Candidate, bool) {
	q := Normalize(query)
	if q == "" {
		return Candidate{}, false
	}
	qTokens := strings.Fields(q)

	best := Candidate{Index: -1, Distance: 2}
	for i, name := range names {
		d := m.distance(q, qTokens, Normalize(name))
		if d < best.Distance {
			best = Candidate{Index: i, Distance: d}
		}
	}

	if best.Index < 0 || best.Distance > m.threshold {
		return Candidate{}, false
	}
	return best, true
}

// Distance scores a single query/name pair
func (m *Matcher) Distance(query, name string) float64 {
	q := Normalize(query)
	if q == "" {
		return 1
	}
	return m.distance(q, strings.Fields(q), Normalize(name))
}

// distance is the smaller of the whole-string and token distances
func (m *Matcher) distance(q string, qTokens []string, n string) float64 {
	if n == "" {
		return 1
	}
	if q == n {
		return 0
	}

	whole := 1 - strutil.Similarity(q, n, m.metric)
	return min(whole, m.tokenDistance(qTokens, strings.Fields(n)))
}

// tokenDistance matches each query token against its closest name token and
// averages the results weighted by query token length. Missing middle names,
// reordered tokens and partial first names all score well here.
func (m *Matcher) tokenDistance(qTokens, nTokens []string) float64 {
	if len(qTokens) == 0 || len(nTokens) == 0 {
		return 1
	}

	var total, weight float64
	for _, qt := range qTokens {
		best := 1.0
		for _, nt := range nTokens {
			best = min(best, m.tokenPairDistance(qt, nt))
		}
		w := float64(utf8.RuneCountInString(qt))
		total += best * w
		weight += w
	}
	return total / weight
}

func (m *Matcher) tokenPairDistance(qt, nt string) float64 {
	if qt == nt {
		return 0
	}
	d := 1 - strutil.Similarity(qt, nt, m.metric)

	// "jen" for "jennifer"
	qLen := utf8.RuneCountInString(qt)
	if qLen >= minPrefixRunes && strings.HasPrefix(nt, qt) {
		nLen := utf8.RuneCountInString(nt)
		d = min(d, 0.25*(1-float64(qLen)/float64(nLen)))
	}
	return d
}

// Normalize folds a name for comparison: accents stripped, lower-cased,
// punctuation turned into spaces and whitespace collapsed.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	folded = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, folded)

	return strings.Join(strings.Fields(folded), " ")
}
