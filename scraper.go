package kenpom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

const (
	RatingsURL = "https://kenpom.com/"
	UserAgent  = "kenpom-go/1.0 (github.com/cbbstats/kenpom)"
	Timeout    = 30 * time.Second

	// rawRowWidth is the cell count of a data row in the ratings table,
	// including the leading rank-delta icon column that is dropped before
	// field coercion. Rows with any other width are header, ad, or
	// decoration rows and are discarded.
	rawRowWidth = 22
	rowWidth    = rawRowWidth - 1
)

// ParsePolicy controls what happens when a candidate row fails field
// coercion.
type ParsePolicy int

const (
	// FailFast aborts the whole parse on the first bad row and returns no
	// partial result. A malformed row usually means the upstream table
	// layout changed, so a partial mapping would be misleading.
	FailFast ParsePolicy = iota
	// Lenient drops the offending row and keeps going, returning whatever
	// parsed cleanly.
	Lenient
)

// Scraper fetches and parses the kenpom.com ratings table. The zero value is
// not usable; call New and adjust fields before the first FetchTeams call if
// the defaults don't fit.
type Scraper struct {
	// HTTPClient performs the single page fetch.
	HTTPClient *http.Client
	// URL is the ratings page address.
	URL string
	// UserAgent is sent with the request.
	UserAgent string
	// Policy selects fail-fast or lenient row handling. Default FailFast.
	Policy ParsePolicy
	// MinTeams, when positive, fails the parse with ErrLayoutChanged if
	// fewer teams than this survive extraction. Zero disables the check
	// and preserves the silent-drop behavior of the source table format.
	MinTeams int
}

// New creates a Scraper with the production URL and a 30 second timeout.
func New() *Scraper {
	return &Scraper{
		HTTPClient: &http.Client{Timeout: Timeout},
		URL:        RatingsURL,
		UserAgent:  UserAgent,
		Policy:     FailFast,
	}
}

// FetchTeams fetches the ratings page and returns the team mapping, keyed by
// team name. Network and non-200 failures surface as *FetchError; field
// coercion failures surface as *ParseError under the FailFast policy.
func (s *Scraper) FetchTeams(ctx context.Context) (map[string]Team, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &FetchError{URL: s.URL, Err: err}
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: s.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: s.URL, StatusCode: resp.StatusCode}
	}

	return s.parseTeams(resp.Body)
}

// parseTeams extracts the ratings table from HTML and builds the mapping.
func (s *Scraper) parseTeams(r io.Reader) (map[string]Team, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &FetchError{URL: s.URL, Err: err}
	}

	rows, dropped := extractRows(doc)
	log.Debug().Int("kept", len(rows)).Int("dropped", dropped).Msg("extracted table rows")

	teams := make(map[string]Team, len(rows))
	for i, row := range rows {
		team, err := buildTeam(i, row)
		if err != nil {
			if s.Policy == Lenient {
				log.Warn().Err(err).Int("row", i).Msg("skipping unparsable row")
				continue
			}
			return nil, err
		}
		teams[team.Name] = team
	}

	if s.MinTeams > 0 && len(teams) < s.MinTeams {
		log.Error().Int("teams", len(teams)).Int("min", s.MinTeams).Msg("suspiciously few teams parsed")
		return nil, fmt.Errorf("parsed %d teams, below minimum %d: %w", len(teams), s.MinTeams, ErrLayoutChanged)
	}

	return teams, nil
}

// extractRows collects the text tokens of every table row whose cell count
// matches the expected data-row width, dropping the leading icon cell. Rows
// with any other width (headers, ads) are discarded silently; the count of
// discarded rows is returned so callers can log it.
func extractRows(doc *goquery.Document) ([][]string, int) {
	var rows [][]string
	dropped := 0

	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td, th")
		if cells.Length() != rawRowWidth {
			dropped++
			return
		}
		row := make([]string, 0, rowWidth)
		cells.Each(func(j int, cell *goquery.Selection) {
			if j == 0 {
				return
			}
			row = append(row, cell.Text())
		})
		rows = append(rows, row)
	})

	return rows, dropped
}

// Positions of each field within an extracted row. The gaps hold rank-delta
// indicator glyphs that are not retained.
const (
	colRank = iota
	colName
	colConference
	colRecord
	colEfficiency
	colOffense
	_
	colDefense
	_
	colTempo
	_
	colLuck
	_
	colOppEfficiency
	_
	colOppOffense
	_
	colOppDefense
	_
	colNonConfOppEfficiency
	_
)

// buildTeam coerces one extracted row into a Team.
func buildTeam(rowIdx int, row []string) (Team, error) {
	name := strings.TrimSpace(row[colName])

	rank, err := parseInt(rowIdx, name, "rank", row[colRank])
	if err != nil {
		return Team{}, err
	}

	wins, losses, err := parseWinLoss(rowIdx, name, row[colRecord])
	if err != nil {
		return Team{}, err
	}

	team := Team{
		Rank:       rank,
		Name:       name,
		Conference: strings.TrimSpace(row[colConference]),
		Wins:       wins,
		Losses:     losses,
	}

	stats := []struct {
		field string
		col   int
		dst   *float64
	}{
		{"efficiency", colEfficiency, &team.Efficiency},
		{"offense", colOffense, &team.Offense},
		{"defense", colDefense, &team.Defense},
		{"tempo", colTempo, &team.Tempo},
		{"luck", colLuck, &team.Luck},
		{"opponent_efficiency", colOppEfficiency, &team.OpponentEfficiency},
		{"opponent_offense", colOppOffense, &team.OpponentOffense},
		{"opponent_defense", colOppDefense, &team.OpponentDefense},
		{"nonconference_opponent_efficiency", colNonConfOppEfficiency, &team.NonconferenceOpponentEfficiency},
	}
	for _, st := range stats {
		v, err := parseFloat(rowIdx, name, st.field, row[st.col])
		if err != nil {
			return Team{}, err
		}
		*st.dst = v
	}

	return team, nil
}

// parseWinLoss splits a "W-L" token on its single hyphen and parses both
// sides as integers. Splitting on the hyphen means neither side can carry a
// sign, so the results are always non-negative.
func parseWinLoss(rowIdx int, name, token string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(token), "-")
	if len(parts) != 2 {
		return 0, 0, &ParseError{
			Row: rowIdx, Team: name, Field: "record", Token: token,
			Err: errWinLossShape,
		}
	}
	wins, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, &ParseError{Row: rowIdx, Team: name, Field: "wins", Token: parts[0], Err: err}
	}
	losses, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, &ParseError{Row: rowIdx, Team: name, Field: "losses", Token: parts[1], Err: err}
	}
	return wins, losses, nil
}

func parseInt(rowIdx int, name, field, token string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, &ParseError{Row: rowIdx, Team: name, Field: field, Token: token, Err: err}
	}
	return v, nil
}

func parseFloat(rowIdx int, name, field, token string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, &ParseError{Row: rowIdx, Team: name, Field: field, Token: token, Err: err}
	}
	return v, nil
}
