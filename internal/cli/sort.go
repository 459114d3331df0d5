package cli

import (
	"sort"
	"strings"

	"github.com/cbbstats/kenpom"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByRank       SortOrder = "rank"
	SortByName       SortOrder = "name"
	SortByConference SortOrder = "conference"
	SortByEfficiency SortOrder = "efficiency"
)

// sortTeams sorts a slice of teams based on the specified sort order
func sortTeams(teams []kenpom.Team, sortOrder SortOrder) {
	switch sortOrder {
	case SortByName:
		sort.Slice(teams, func(i, j int) bool {
			a, b := strings.ToLower(teams[i].Name), strings.ToLower(teams[j].Name)
			if a != b {
				return a < b
			}
			return teams[i].Rank < teams[j].Rank
		})
	case SortByConference:
		sort.Slice(teams, func(i, j int) bool {
			if teams[i].Conference != teams[j].Conference {
				return teams[i].Conference < teams[j].Conference
			}
			// Within a conference, best team first
			return teams[i].Rank < teams[j].Rank
		})
	case SortByEfficiency:
		sort.Slice(teams, func(i, j int) bool {
			if teams[i].Efficiency != teams[j].Efficiency {
				return teams[i].Efficiency > teams[j].Efficiency
			}
			return teams[i].Rank < teams[j].Rank
		})
	default: // SortByRank
		sort.Slice(teams, func(i, j int) bool {
			return teams[i].Rank < teams[j].Rank
		})
	}
}
