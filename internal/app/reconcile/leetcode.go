package reconcile

import (
	"encoding/json"
	"fmt"
	"strings"

	"dsa_tracker/internal/domain/model"
)

// solvedEntry is one solved problem reported by a LeetCode API. Either field
// may be empty depending on which upstream answered.
type solvedEntry struct {
	Title     string `json:"title"`
	TitleSlug string `json:"titleSlug"`
}

// Key dedupes entries: slug wins when present, normalized title otherwise.
func (e solvedEntry) key() string {
	if e.TitleSlug != "" {
		return strings.ToLower(e.TitleSlug)
	}
	return NormalizeTitle(e.Title)
}

// leetcodeProbe covers the recognized upstream shapes. The community LeetCode
// APIs disagree on structure, so fields are probed in a fixed priority order:
//  1. explicit solved list with count ({count, submission: [...]})
//  2. nested data.submitStats (aggregate counts only)
//  3. recentSubmissions list
//  4. flat aggregate counts ({totalSolved, ...})
type leetcodeProbe struct {
	// List fields are pointers so an empty-but-present list still selects its
	// shape: a user with zero accepted submissions is a valid answer, not an
	// unrecognized payload.
	Count      int            `json:"count"`
	Submission *[]solvedEntry `json:"submission"`

	Data *struct {
		SubmitStats *struct {
			AcSubmissionNum []struct {
				Difficulty string `json:"difficulty"`
				Count      int    `json:"count"`
			} `json:"acSubmissionNum"`
		} `json:"submitStats"`
	} `json:"data"`

	RecentSubmissions *[]solvedEntry `json:"recentSubmissions"`

	TotalSolved *int `json:"totalSolved"`
}

const statsOnlyMessage = "upstream returned aggregate counts only; individual problems cannot be identified from counts"

// parseLeetCodePayload extracts solved entries from whichever recognized shape
// the payload carries. Stats-only shapes yield no entries and set statsOnly.
func parseLeetCodePayload(payload []byte) (entries []solvedEntry, solvedCount int, statsOnly bool, err error) {
	var probe leetcodeProbe
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, 0, false, fmt.Errorf("unrecognized payload: %w", err)
	}

	switch {
	case probe.Submission != nil:
		count := probe.Count
		if count == 0 {
			count = len(*probe.Submission)
		}
		return dedupeEntries(*probe.Submission), count, false, nil

	case probe.Data != nil && probe.Data.SubmitStats != nil:
		count := 0
		for _, n := range probe.Data.SubmitStats.AcSubmissionNum {
			if strings.EqualFold(n.Difficulty, "All") {
				count = n.Count
			}
		}
		return nil, count, true, nil

	case probe.RecentSubmissions != nil:
		return dedupeEntries(*probe.RecentSubmissions), len(*probe.RecentSubmissions), false, nil

	case probe.TotalSolved != nil:
		return nil, *probe.TotalSolved, true, nil
	}

	return nil, 0, false, fmt.Errorf("unrecognized payload: no known fields present")
}

// dedupeEntries drops repeat reports of the same problem, keeping the first.
func dedupeEntries(entries []solvedEntry) []solvedEntry {
	seen := make(map[string]struct{}, len(entries))
	deduped := make([]solvedEntry, 0, len(entries))
	for _, e := range entries {
		k := e.key()
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		deduped = append(deduped, e)
	}
	return deduped
}

// matchesEntry decides whether a local question and a solved entry are the
// same problem. Deliberately permissive: any of slug equality, local slug
// appearing inside the entry's normalized title, exact normalized-title
// equality, or either normalized title containing the other counts as a match.
// Recall is favored over precision; short titles can match more than one
// problem.
func matchesEntry(localSlug, localTitle string, e solvedEntry) bool {
	entrySlug := strings.ToLower(e.TitleSlug)
	entryTitle := NormalizeTitle(e.Title)
	if entryTitle == "" {
		entryTitle = entrySlug
	}

	if localSlug != "" && entrySlug != "" && localSlug == entrySlug {
		return true
	}
	if localSlug != "" && entryTitle != "" && strings.Contains(entryTitle, localSlug) {
		return true
	}
	if localTitle != "" && entryTitle != "" {
		if localTitle == entryTitle {
			return true
		}
		if strings.Contains(entryTitle, localTitle) || strings.Contains(localTitle, entryTitle) {
			return true
		}
	}
	return false
}

// LeetCode matches a LeetCode payload of any recognized shape against the
// local questions for that platform.
func LeetCode(payload []byte, questions []model.Question) (*Report, error) {
	entries, solvedCount, statsOnly, err := parseLeetCodePayload(payload)
	if err != nil {
		return nil, fmt.Errorf("reconcile.LeetCode: %w", err)
	}

	report := &Report{SolvedReported: solvedCount, StatsOnly: statsOnly}
	if statsOnly {
		report.Message = statsOnlyMessage
		return report, nil
	}

	for _, q := range questions {
		localSlug := ExtractSlug(q.Link)
		localTitle := NormalizeTitle(q.Name)
		for _, e := range entries {
			if matchesEntry(localSlug, localTitle, e) {
				report.MatchedQuestionIDs = append(report.MatchedQuestionIDs, q.ID)
				break
			}
		}
	}

	report.Message = fmt.Sprintf("matched %d of %d local LeetCode questions", len(report.MatchedQuestionIDs), len(questions))
	return report, nil
}
