package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cbbstats/kenpom"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Source records where the printed ratings came from.
type Source string

const (
	SourceLive  Source = "live"
	SourceCache Source = "cache"
)

// OutputResult contains data to be output
type OutputResult struct {
	FetchedAt time.Time     `json:"fetched_at"`
	Source    Source        `json:"source"`
	TeamCount int           `json:"team_count"`
	Teams     []kenpom.Team `json:"teams"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as a human-readable table
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.TeamCount == 0 {
		fmt.Fprintln(w, "No teams found.")
		return nil
	}

	fmt.Fprintf(w, "%4s  %-24s %-6s %6s %8s %7s %7s %6s %7s\n",
		"RANK", "TEAM", "CONF", "W-L", "ADJEM", "ADJO", "ADJD", "ADJT", "LUCK")

	for _, team := range result.Teams {
		fmt.Fprintf(w, "%4d  %-24s %-6s %6s %+8.2f %7.1f %7.1f %6.1f %+7.3f\n",
			team.Rank, team.Name, team.Conference, team.Record(),
			team.Efficiency, team.Offense, team.Defense, team.Tempo, team.Luck)
		if verbose {
			fmt.Fprintf(w, "      SOS: %+.2f (O: %.1f, D: %.1f)  NCSOS: %+.2f\n",
				team.OpponentEfficiency, team.OpponentOffense,
				team.OpponentDefense, team.NonconferenceOpponentEfficiency)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d teams (%s, fetched %s)\n",
		result.TeamCount, result.Source, result.FetchedAt.Format(time.RFC3339))

	return nil
}
