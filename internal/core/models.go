package core

import "time"

// UserRecord is the user shape handed to callers outside the storage layer.
type UserRecord struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Analytics struct {
	Summary  AnalyticsSummary  `json:"summary"`
	Extremes AnalyticsExtremes `json:"extremes"`
}

type AnalyticsSummary struct {
	TotalUsers int `json:"totalUsers"`
}

type AnalyticsExtremes struct {
	LongestName        string `json:"longestName"`
	ShortestName       string `json:"shortestName"`
	LongestNameLength  int    `json:"longestNameLength"`
	ShortestNameLength int    `json:"shortestNameLength"`
}
