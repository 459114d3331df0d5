package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cbbstats/kenpom"
	"github.com/cbbstats/kenpom/internal/cache"
	"github.com/cbbstats/kenpom/internal/config"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagURL         string
	flagTimeout     time.Duration
	flagLenient     bool
	flagMinTeams    int
	flagFormat      string
	flagSort        string
	flagConferences []string
	flagTop         int
	flagRefresh     bool
	flagNoCache     bool
	flagCacheDir    string
	flagCacheTTL    time.Duration
	flagConfig      string
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kenpom",
		Short: "Fetch and print the current kenpom.com ratings",
		Long: `A CLI tool to fetch the kenpom.com college basketball ratings table
and print it as text or JSON. Results are cached locally for a configurable
TTL so repeated invocations don't hammer the site.`,
		RunE: runRatings,
	}

	// Define flags
	cmd.Flags().StringVar(&flagURL, "url", kenpom.RatingsURL, "Ratings page URL")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", kenpom.Timeout, "HTTP timeout for the fetch")
	cmd.Flags().BoolVar(&flagLenient, "lenient", false, "Skip unparsable rows instead of failing")
	cmd.Flags().IntVar(&flagMinTeams, "min-teams", 0, "Fail if fewer teams than this are parsed (0 disables)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSort, "sort", "rank", "Sort order: rank, name, conference, or efficiency")
	cmd.Flags().StringSliceVar(&flagConferences, "conference", nil, "Only show teams in these conferences")
	cmd.Flags().IntVar(&flagTop, "top", 0, "Only show teams ranked at or above this cutoff (0 shows all)")
	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Bypass the cached snapshot and fetch fresh")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Disable the snapshot cache entirely")
	cmd.Flags().StringVar(&flagCacheDir, "cache-dir", cache.DefaultDir, "Directory for cached snapshots")
	cmd.Flags().DurationVar(&flagCacheTTL, "cache-ttl", cache.DefaultTTL, "How long cached snapshots stay fresh")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and extended statistics")

	return cmd
}

// resolveSettings merges flags with the optional config file. Explicitly set
// flags win over file values; file values win over flag defaults.
func resolveSettings(cmd *cobra.Command) (*config.Config, error) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	eff := &config.Config{
		URL:           flagURL,
		Timeout:       flagTimeout,
		Lenient:       flagLenient,
		MinTeams:      flagMinTeams,
		Format:        flagFormat,
		Sort:          flagSort,
		Conferences:   flagConferences,
		Top:           flagTop,
		Verbose:       flagVerbose,
		CacheDir:      flagCacheDir,
		CacheTTL:      flagCacheTTL,
		CacheDisabled: flagNoCache,
	}

	f := cmd.Flags()
	if !f.Changed("url") && fileCfg.URL != "" {
		eff.URL = fileCfg.URL
	}
	if !f.Changed("timeout") && fileCfg.Timeout > 0 {
		eff.Timeout = fileCfg.Timeout
	}
	if !f.Changed("lenient") && fileCfg.Lenient {
		eff.Lenient = true
	}
	if !f.Changed("min-teams") && fileCfg.MinTeams > 0 {
		eff.MinTeams = fileCfg.MinTeams
	}
	if !f.Changed("format") && fileCfg.Format != "" {
		eff.Format = fileCfg.Format
	}
	if !f.Changed("sort") && fileCfg.Sort != "" {
		eff.Sort = fileCfg.Sort
	}
	if !f.Changed("conference") && len(fileCfg.Conferences) > 0 {
		eff.Conferences = fileCfg.Conferences
	}
	if !f.Changed("top") && fileCfg.Top > 0 {
		eff.Top = fileCfg.Top
	}
	if !f.Changed("verbose") && fileCfg.Verbose {
		eff.Verbose = true
	}
	if !f.Changed("cache-dir") && fileCfg.CacheDir != "" {
		eff.CacheDir = fileCfg.CacheDir
	}
	if !f.Changed("cache-ttl") && fileCfg.CacheTTL > 0 {
		eff.CacheTTL = fileCfg.CacheTTL
	}
	if !f.Changed("no-cache") && fileCfg.CacheDisabled {
		eff.CacheDisabled = true
	}

	return eff, nil
}

// runRatings is the main command logic
func runRatings(cmd *cobra.Command, args []string) error {
	cfg, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	format := OutputFormat(cfg.Format)
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", cfg.Format)
	}

	order := SortOrder(cfg.Sort)
	switch order {
	case SortByRank, SortByName, SortByConference, SortByEfficiency:
	default:
		return fmt.Errorf("invalid sort order: %s", cfg.Sort)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var store *cache.Store
	if !cfg.CacheDisabled {
		store, err = cache.New(cfg.CacheDir, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("initializing cache: %w", err)
		}
	}

	var (
		teams     map[string]kenpom.Team
		fetchedAt time.Time
		source    Source
	)

	if store != nil && !flagRefresh {
		snapshot, err := store.Load()
		if err != nil {
			log.Warn().Err(err).Msg("cache read failed; fetching fresh")
		} else if snapshot != nil {
			log.Debug().Time("fetched_at", snapshot.FetchedAt).Msg("serving cached snapshot")
			teams = snapshot.Teams
			fetchedAt = snapshot.FetchedAt
			source = SourceCache
		}
	}

	if teams == nil {
		scraper := kenpom.New()
		scraper.URL = cfg.URL
		scraper.HTTPClient.Timeout = cfg.Timeout
		scraper.MinTeams = cfg.MinTeams
		if cfg.Lenient {
			scraper.Policy = kenpom.Lenient
		}

		log.Debug().Str("url", cfg.URL).Msg("fetching ratings")
		teams, err = scraper.FetchTeams(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching ratings: %w", err)
		}
		fetchedAt = time.Now().UTC()
		source = SourceLive

		if store != nil {
			if err := store.Save(teams); err != nil {
				log.Warn().Err(err).Msg("cache write failed")
			}
		}
	}

	list := make([]kenpom.Team, 0, len(teams))
	for _, team := range teams {
		list = append(list, team)
	}

	filter := Filter{Conferences: cfg.Conferences, Top: cfg.Top}
	list = filter.Apply(list)
	sortTeams(list, order)

	result := &OutputResult{
		FetchedAt: fetchedAt,
		Source:    source,
		TeamCount: len(list),
		Teams:     list,
	}

	return WriteOutput(cmd.OutOrStdout(), result, format, cfg.Verbose)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
