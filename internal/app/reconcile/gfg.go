package reconcile

import (
	"encoding/json"
	"fmt"

	"dsa_tracker/internal/domain/model"
)

type gfgQuestionRef struct {
	QuestionURL string `json:"questionUrl"`
}

type gfgBucket struct {
	Questions []gfgQuestionRef `json:"questions"`
}

// gfgProfile is the shape returned by the community GeeksforGeeks profile
// APIs: solved problems grouped into difficulty buckets.
type gfgProfile struct {
	SolvedStats struct {
		Basic  gfgBucket `json:"basic"`
		Easy   gfgBucket `json:"easy"`
		Medium gfgBucket `json:"medium"`
		Hard   gfgBucket `json:"hard"`
	} `json:"solvedStats"`
}

// GFG matches a GeeksforGeeks profile payload against the local questions for
// that platform. Two URLs are the same problem when their canonical IDs are
// equal.
func GFG(payload []byte, questions []model.Question) (*Report, error) {
	var profile gfgProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("reconcile.GFG: unrecognized payload: %w", err)
	}

	var solvedURLs []gfgQuestionRef
	stats := profile.SolvedStats
	for _, bucket := range []gfgBucket{stats.Basic, stats.Easy, stats.Medium, stats.Hard} {
		solvedURLs = append(solvedURLs, bucket.Questions...)
	}

	solvedIDs := make(map[string]struct{}, len(solvedURLs))
	for _, ref := range solvedURLs {
		if id := CanonicalProblemID(ref.QuestionURL); id != "" {
			solvedIDs[id] = struct{}{}
		}
	}

	report := &Report{SolvedReported: len(solvedURLs)}
	for _, q := range questions {
		id := CanonicalProblemID(q.Link)
		if id == "" {
			continue
		}
		if _, ok := solvedIDs[id]; ok {
			report.MatchedQuestionIDs = append(report.MatchedQuestionIDs, q.ID)
		}
	}

	if len(solvedURLs) == 0 {
		report.Message = "GeeksforGeeks profile reports no solved problems"
	} else {
		report.Message = fmt.Sprintf("matched %d of %d local GeeksforGeeks questions", len(report.MatchedQuestionIDs), len(questions))
	}
	return report, nil
}
