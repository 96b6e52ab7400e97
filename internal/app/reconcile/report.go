package reconcile

// Report is the outcome of matching one platform's solved-problem payload
// against the local question bank. MatchedQuestionIDs are the local questions
// the user has solved; questions not listed are left untouched by the caller,
// a sync never downgrades progress.
type Report struct {
	// MatchedQuestionIDs preserves the order of the local question list.
	MatchedQuestionIDs []string
	// SolvedReported is how many solved problems the upstream reported.
	SolvedReported int
	// StatsOnly is set when the payload carried aggregate counts without a
	// problem list; no identities are invented from counts alone.
	StatsOnly bool
	// Message describes the outcome for the caller, e.g. why nothing matched.
	Message string
}
