package kenpom

import "context"

// Get fetches the current ratings with a default Scraper and returns the
// team mapping keyed by team name. It is the zero-configuration entry point;
// use New and FetchTeams directly to control the URL, timeout, policy, or
// cancellation.
func Get() (map[string]Team, error) {
	return New().FetchTeams(context.Background())
}
