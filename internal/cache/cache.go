package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cbbstats/kenpom"
)

const (
	// DefaultDir is where the CLI keeps its snapshot file.
	DefaultDir = "~/.cache/kenpom"
	// DefaultTTL bounds how long a snapshot is served before re-fetching.
	DefaultTTL = time.Hour
)

// Snapshot is one cached copy of the ratings table.
type Snapshot struct {
	FetchedAt time.Time              `json:"fetched_at"`
	Teams     map[string]kenpom.Team `json:"teams"`
}

// Store persists ratings snapshots as JSON files under a data directory.
type Store struct {
	dataDir string
	ttl     time.Duration
}

// New creates a Store rooted at dataDir, creating the directory if needed.
// A leading ~/ is expanded to the user's home directory.
func New(dataDir string, ttl time.Duration) (*Store, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{dataDir: dataDir, ttl: ttl}, nil
}

func (s *Store) snapshotPath() string {
	return filepath.Join(s.dataDir, "ratings.json")
}

// Load returns the cached snapshot, or nil if none exists or the existing
// one is older than the TTL.
func (s *Store) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if time.Since(snapshot.FetchedAt) > s.ttl {
		return nil, nil
	}

	if snapshot.Teams == nil {
		snapshot.Teams = make(map[string]kenpom.Team)
	}

	return &snapshot, nil
}

// Save writes a fresh snapshot of the given teams.
func (s *Store) Save(teams map[string]kenpom.Team) error {
	snapshot := Snapshot{
		FetchedAt: time.Now().UTC(),
		Teams:     teams,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.snapshotPath(), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// Clear removes the snapshot file if present.
func (s *Store) Clear() error {
	if err := os.Remove(s.snapshotPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing snapshot: %w", err)
	}
	return nil
}
