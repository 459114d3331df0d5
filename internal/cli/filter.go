package cli

import (
	"strings"

	"github.com/cbbstats/kenpom"
)

// Filter narrows the printed ratings.
type Filter struct {
	// Conferences keeps only teams in one of these conferences
	// (case-insensitive). Empty means all conferences.
	Conferences []string

	// Top keeps only teams ranked at or above this cutoff. Zero disables
	// the cutoff.
	Top int
}

// Apply returns the teams that pass the filter, preserving input order.
func (f *Filter) Apply(teams []kenpom.Team) []kenpom.Team {
	if len(f.Conferences) == 0 && f.Top <= 0 {
		return teams
	}

	kept := make([]kenpom.Team, 0, len(teams))
	for _, team := range teams {
		if f.Top > 0 && team.Rank > f.Top {
			continue
		}
		if len(f.Conferences) > 0 && !f.matchesConference(team.Conference) {
			continue
		}
		kept = append(kept, team)
	}
	return kept
}

func (f *Filter) matchesConference(conference string) bool {
	for _, want := range f.Conferences {
		if strings.EqualFold(strings.TrimSpace(want), conference) {
			return true
		}
	}
	return false
}
