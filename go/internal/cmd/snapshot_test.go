package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mcdev12/tourney/go/internal/models"
)

const validSnapshot = `{
  "teams": [
    {"team_id": "t1", "name": "Harbour FC", "coach": "J. Mendes", "contact": "",
     "registration_date": "2024-03-09", "wins": 1, "points": 3, "matches_played": 1,
     "goals_for": 2, "goals_against": 1,
     "players": [{"player_id": "p1", "name": "Ana", "age": 24, "position": "FW", "jersey_number": 9, "contact": ""}]},
    {"team_id": "t2", "name": "River United", "coach": "P. Costa", "contact": "",
     "registration_date": "2024-03-10", "losses": 1, "matches_played": 1,
     "goals_for": 1, "goals_against": 2}
  ],
  "matches": [
    {"match_id": "m1", "tournament_id": "cup", "team1_id": "t1", "team2_id": "t2",
     "match_date": "2024-04-01", "venue": "North", "team1_score": 2, "team2_score": 1,
     "status": "completed", "winner_id": "t1"},
    {"match_id": "m2", "tournament_id": "cup", "team1_id": "t2", "team2_id": "t1"}
  ]
}`

func TestDecodeSnapshot(t *testing.T) {
	snap, err := decodeSnapshot([]byte(validSnapshot))
	if err != nil {
		t.Fatalf("decodeSnapshot() error = %v", err)
	}
	if len(snap.Teams) != 2 || len(snap.Matches) != 2 {
		t.Fatalf("got %d teams, %d matches", len(snap.Teams), len(snap.Matches))
	}
	if got := snap.Teams[0].GoalDifference(); got != 1 {
		t.Errorf("GoalDifference() = %d, want 1", got)
	}
	if got := snap.Matches[0].Result(); got != "Winner: t1" {
		t.Errorf("Result() = %q", got)
	}
	if snap.Matches[1].Status != models.MatchStatusScheduled {
		t.Errorf("second match status = %q", snap.Matches[1].Status)
	}
	if errs := snap.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v", errs)
	}
}

func TestDecodeSnapshotAppliesMatchOptions(t *testing.T) {
	snap, err := decodeSnapshot([]byte(validSnapshot), models.WithResultPolicy(models.ResultPolicyReject))
	if err != nil {
		t.Fatal(err)
	}
	if err := snap.Matches[0].RecordResult(0, 0); !errors.Is(err, models.ErrResultAlreadyRecorded) {
		t.Errorf("expected reject policy, got %v", err)
	}
}

func TestDecodeSnapshotMissingField(t *testing.T) {
	_, err := decodeSnapshot([]byte(`{"teams": [{"team_id": "t1", "coach": "", "contact": ""}]}`))
	if !errors.Is(err, models.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if !strings.Contains(err.Error(), "teams[0]") {
		t.Errorf("error should locate the team: %v", err)
	}
}

func TestSnapshotValidate(t *testing.T) {
	snap := &Snapshot{}

	team := models.NewTeam("Harbour FC", "", "")
	team.Players = []*models.Player{
		models.NewPlayer("A", 20, "GK", 1, ""),
		models.NewPlayer("B", 21, "GK", 1, ""),
	}
	team.Wins = 2
	snap.Teams = append(snap.Teams, team)

	m := models.NewMatch("cup", team.TeamID, "ghost")
	m.Status = models.MatchStatusCompleted
	snap.Matches = append(snap.Matches, m)

	errs := snap.Validate()
	if len(errs) != 4 {
		t.Fatalf("Validate() returned %d problems, want 4: %v", len(errs), errs)
	}
	if !errors.Is(errs[0], models.ErrDuplicateJerseyNumber) {
		t.Errorf("first problem = %v, want duplicate jersey", errs[0])
	}
}

func TestSnapshotEncodeRoundTrip(t *testing.T) {
	snap, err := decodeSnapshot([]byte(validSnapshot))
	if err != nil {
		t.Fatal(err)
	}
	out, err := snap.encode()
	if err != nil {
		t.Fatalf("encode() error = %v", err)
	}

	again, err := decodeSnapshot(out)
	if err != nil {
		t.Fatalf("decodeSnapshot(encoded) error = %v", err)
	}
	if diff := cmp.Diff(snap, again, cmp.AllowUnexported(models.Match{})); diff != "" {
		t.Errorf("re-encoded snapshot differs (-want +got):\n%s", diff)
	}
}
