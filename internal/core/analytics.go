package core

import "unicode/utf8"

// UsernameAggregator folds usernames into count and length extremes.
// Empty usernames are ignored. On equal lengths the first name seen wins.
// The zero value is ready to use.
type UsernameAggregator struct {
	total       int
	longest     string
	shortest    string
	longestLen  int
	shortestLen int
}

func (a *UsernameAggregator) Add(username string) {
	if username == "" {
		return
	}

	n := utf8.RuneCountInString(username)
	if a.total == 0 {
		a.longest, a.longestLen = username, n
		a.shortest, a.shortestLen = username, n
	} else {
		if n > a.longestLen {
			a.longest, a.longestLen = username, n
		}
		if n < a.shortestLen {
			a.shortest, a.shortestLen = username, n
		}
	}

	a.total++
}

func (a *UsernameAggregator) Result() Analytics {
	return Analytics{
		Summary: AnalyticsSummary{
			TotalUsers: a.total,
		},
		Extremes: AnalyticsExtremes{
			LongestName:        a.longest,
			ShortestName:       a.shortest,
			LongestNameLength:  a.longestLen,
			ShortestNameLength: a.shortestLen,
		},
	}
}
