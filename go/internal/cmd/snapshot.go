package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mcdev12/tourney/go/internal/models"
)

// Snapshot is a JSON export of a tournament's teams and matches
type Snapshot struct {
	Teams   []*models.Team  `json:"teams"`
	Matches []*models.Match `json:"matches"`
}

type rawSnapshot struct {
	Teams   []json.RawMessage `json:"teams"`
	Matches []json.RawMessage `json:"matches"`
}

// decodeSnapshot parses a snapshot, building matches with the given options
func decodeSnapshot(data []byte, matchOpts ...models.MatchOption) (*Snapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	snap := &Snapshot{
		Teams:   make([]*models.Team, 0, len(raw.Teams)),
		Matches: make([]*models.Match, 0, len(raw.Matches)),
	}

	for i, msg := range raw.Teams {
		var team models.Team
		if err := json.Unmarshal(msg, &team); err != nil {
			return nil, fmt.Errorf("teams[%d]: %w", i, err)
		}
		snap.Teams = append(snap.Teams, &team)
	}

	for i, msg := range raw.Matches {
		// the receiver carries the configured result policy into UnmarshalJSON
		match := models.NewMatch("", "", "", matchOpts...)
		if err := json.Unmarshal(msg, match); err != nil {
			return nil, fmt.Errorf("matches[%d]: %w", i, err)
		}
		snap.Matches = append(snap.Matches, match)
	}

	return snap, nil
}

// Validate reports problems a record-level decode cannot see: duplicate
// jersey numbers, stale points, and matches that are inconsistent or
// reference unknown teams.
func (s *Snapshot) Validate() []error {
	var errs []error

	teams := make(map[string]*models.Team, len(s.Teams))
	for _, team := range s.Teams {
		teams[team.TeamID] = team

		roster := models.NewTeam(team.Name, team.Coach, team.Contact)
		for _, p := range team.Players {
			if err := roster.AddPlayer(p); err != nil {
				errs = append(errs, fmt.Errorf("team %s: %w", team.TeamID, err))
			}
		}
		if !team.Consistent() {
			errs = append(errs, fmt.Errorf("team %s: points %d do not match %d wins and %d draws",
				team.TeamID, team.Points, team.Wins, team.Draws))
		}
	}

	for _, m := range s.Matches {
		for _, id := range []string{m.Team1ID, m.Team2ID} {
			if _, ok := teams[id]; !ok {
				errs = append(errs, fmt.Errorf("match %s: unknown team %s", m.MatchID, id))
			}
		}

		hasResult := m.Team1Score != nil && m.Team2Score != nil && m.WinnerID != nil
		if m.IsCompleted() != hasResult {
			errs = append(errs, fmt.Errorf("match %s: status %s does not agree with recorded result", m.MatchID, m.Status))
		}
	}

	return errs
}

func (s *Snapshot) encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}
