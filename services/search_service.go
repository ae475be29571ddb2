package services

import (
	"sort"
	"strings"
	"unicode"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText lowercases input and strips diacritics so that queries like
// "Sao Paulo" and "São Paulo" compare equal
func NormalizeText(input string) string {
	input = unidecode.Unidecode(input)
	decomposed := norm.NFD.String(input)

	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}

// NewCityMatcher builds a fuzzy matcher over the known city names
func NewCityMatcher(cities []string) *closestmatch.ClosestMatch {
	normalized := make([]string, 0, len(cities))
	seen := make(map[string]bool)
	for _, city := range cities {
		n := NormalizeText(city)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}
	return closestmatch.New(normalized, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(distance)/float64(maxLen)
}

// SearchableProperty is the subset of property fields the ranker looks at
type SearchableProperty struct {
	Name      string
	City      string
	Country   string
	Amenities []string
}

// ScoreProperty rates how well a property matches a free-text query. Zero
// means no match.
func ScoreProperty(query string, p SearchableProperty, cityMatcher *closestmatch.ClosestMatch) int {
	normalizedQuery := NormalizeText(query)
	if normalizedQuery == "" {
		return 0
	}

	score := 0

	name := NormalizeText(p.Name)
	if strings.Contains(name, normalizedQuery) {
		score += 100
	} else if calculateSimilarity(normalizedQuery, name) >= 0.7 {
		score += 60
	}

	city := NormalizeText(p.City)
	if strings.Contains(city, normalizedQuery) || strings.Contains(normalizedQuery, city) {
		score += 50
	} else if cityMatcher != nil && cityMatcher.Closest(normalizedQuery) == city {
		score += 30
	}

	if country := NormalizeText(p.Country); country != "" && strings.Contains(normalizedQuery, country) {
		score += 20
	}

	for _, amenity := range p.Amenities {
		if strings.Contains(NormalizeText(amenity), normalizedQuery) {
			score += 10
			break
		}
	}

	return score
}

// RankByQuery sorts indices of properties by descending match score and
// drops non-matches. items maps an index to its searchable fields.
func RankByQuery(query string, items []SearchableProperty) []int {
	cities := make([]string, 0, len(items))
	for _, item := range items {
		cities = append(cities, item.City)
	}
	matcher := NewCityMatcher(cities)

	type scored struct {
		index int
		score int
	}
	matches := make([]scored, 0, len(items))
	for i, item := range items {
		if s := ScoreProperty(query, item, matcher); s > 0 {
			matches = append(matches, scored{index: i, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]int, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.index)
	}
	return result
}
