package model

// SyncStats summarizes one reconciliation pass for a single platform.
type SyncStats struct {
	TotalQuestions   int `json:"totalQuestions"`   // local questions for the platform
	SolvedQuestions  int `json:"solvedQuestions"`  // matched against the upstream report
	UpdatedQuestions int `json:"updatedQuestions"` // progress rows upserted
}

// SyncResult is what a sync endpoint returns for one platform. Partial or zero
// matches are still Success=true; only unreachable upstreams or missing
// usernames produce a failure.
type SyncResult struct {
	Success  bool      `json:"success"`
	Platform Platform  `json:"platform"`
	Message  string    `json:"message,omitempty"`
	Stats    SyncStats `json:"stats"`
	Error    string    `json:"error,omitempty"`
}

// UserSyncResult is one user's outcome inside a bulk "sync all users" run.
type UserSyncResult struct {
	UserID   string                   `json:"user_id"`
	Username string                   `json:"username"`
	Results  map[Platform]*SyncResult `json:"results"`
}
