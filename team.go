package kenpom

import "fmt"

// Team holds one team's ranking information and efficiency statistics as
// published on kenpom.com. Values are populated once during parsing and
// never mutated afterwards.
type Team struct {
	Rank                            int     `json:"rank"`
	Name                            string  `json:"name"`
	Conference                      string  `json:"conference"`
	Wins                            int     `json:"wins"`
	Losses                          int     `json:"losses"`
	Efficiency                      float64 `json:"efficiency"`
	Offense                         float64 `json:"offense"`
	Defense                         float64 `json:"defense"`
	Tempo                           float64 `json:"tempo"`
	Luck                            float64 `json:"luck"`
	OpponentEfficiency              float64 `json:"opponent_efficiency"`
	OpponentOffense                 float64 `json:"opponent_offense"`
	OpponentDefense                 float64 `json:"opponent_defense"`
	NonconferenceOpponentEfficiency float64 `json:"nonconference_opponent_efficiency"`
}

// Short-name accessors mirror the abbreviations used in the kenpom table
// header. Each is a read-only view over the corresponding long-name field,
// never separate storage.

// W returns Wins.
func (t Team) W() int { return t.Wins }

// L returns Losses.
func (t Team) L() int { return t.Losses }

// E returns Efficiency (adjusted efficiency margin).
func (t Team) E() float64 { return t.Efficiency }

// O returns Offense (adjusted offensive efficiency).
func (t Team) O() float64 { return t.Offense }

// D returns Defense (adjusted defensive efficiency).
func (t Team) D() float64 { return t.Defense }

// T returns Tempo (adjusted tempo).
func (t Team) T() float64 { return t.Tempo }

// OE returns OpponentEfficiency (strength of schedule).
func (t Team) OE() float64 { return t.OpponentEfficiency }

// OO returns OpponentOffense.
func (t Team) OO() float64 { return t.OpponentOffense }

// OD returns OpponentDefense.
func (t Team) OD() float64 { return t.OpponentDefense }

// NCOE returns NonconferenceOpponentEfficiency.
func (t Team) NCOE() float64 { return t.NonconferenceOpponentEfficiency }

// Record formats wins and losses as a single "W-L" string, reconstructing
// the win-loss column as it appears in the source table.
func (t Team) Record() string {
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}
