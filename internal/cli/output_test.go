package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleResult() *OutputResult {
	teams := testTeams()
	sortTeams(teams, SortByRank)
	return &OutputResult{
		FetchedAt: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		Source:    SourceLive,
		TeamCount: len(teams),
		Teams:     teams,
	}
}

func TestWriteTextOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"RANK", "Houston", "B12", "Total: 4 teams", "live"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	// Houston is rank 1 and should be the first data line
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 || !strings.Contains(lines[1], "Houston") {
		t.Errorf("expected Houston on the first data line, got:\n%s", out)
	}
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	result := &OutputResult{FetchedAt: time.Now(), Source: SourceLive}
	if err := WriteOutput(&buf, result, FormatText, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No teams found.") {
		t.Errorf("expected empty-result message, got %q", buf.String())
	}
}

func TestWriteTextVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, true); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if !strings.Contains(buf.String(), "SOS:") {
		t.Error("expected verbose output to include schedule strength")
	}
}

func TestWriteJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded OutputResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.TeamCount != 4 || len(decoded.Teams) != 4 {
		t.Errorf("unexpected decoded result: %+v", decoded)
	}
	if decoded.Source != SourceLive {
		t.Errorf("expected source live, got %q", decoded.Source)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), OutputFormat("yaml"), false); err == nil {
		t.Error("expected error for unknown format")
	}
}
