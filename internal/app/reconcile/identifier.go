package reconcile

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

// Judge sites put the problem slug right after this marker in every problem URL.
const problemPathMarker = "/problems/"

var trailingNumericID = regexp.MustCompile(`-\d+$`)

// ExtractSlug returns the path segment following "/problems/", cut at the next
// slash. Empty string when the URL does not contain the marker.
func ExtractSlug(rawURL string) string {
	idx := strings.Index(rawURL, problemPathMarker)
	if idx < 0 {
		return ""
	}
	rest := rawURL[idx+len(problemPathMarker):]
	if cut := strings.IndexByte(rest, '/'); cut >= 0 {
		rest = rest[:cut]
	}
	if cut := strings.IndexAny(rest, "?#"); cut >= 0 {
		rest = rest[:cut]
	}
	return strings.ToLower(rest)
}

// CanonicalProblemID derives the identifier used to decide whether two URLs
// refer to the same problem: the slug with the trailing numeric suffix some
// platforms append (e.g. "two-sum-1587115620") stripped. Best-effort heuristic,
// not a guaranteed bijection.
func CanonicalProblemID(rawURL string) string {
	s := ExtractSlug(rawURL)
	if s == "" {
		return ""
	}
	return trailingNumericID.ReplaceAllString(s, "")
}

// NormalizeTitle lowercases a problem title and collapses non-alphanumeric runs
// to single hyphens, so "Merge Intervals" compares equal to "merge-intervals".
func NormalizeTitle(title string) string {
	return slug.Make(title)
}
