package model

type LeaderboardPeriod string

const (
	PeriodDaily   LeaderboardPeriod = "daily"
	PeriodWeekly  LeaderboardPeriod = "weekly"
	PeriodAllTime LeaderboardPeriod = "all-time"
)

func (p LeaderboardPeriod) Valid() bool {
	return p == PeriodDaily || p == PeriodWeekly || p == PeriodAllTime
}

type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"id"`
	Username    string  `json:"username"`
	FullName    string  `json:"full_name"`
	SolvedCount int     `json:"solved_count"`
	SuccessRate float64 `json:"success_rate"`
}
