package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// RegistrationDateLayout is the date stamp format used for Team.RegistrationDate
const RegistrationDateLayout = "2006-01-02"

// Result is a match outcome from one team's point of view
type Result string

const (
	ResultWin  Result = "win"
	ResultDraw Result = "draw"
	ResultLoss Result = "loss"
)

// ParseResult converts a string into a Result
func ParseResult(s string) (Result, error) {
	switch r := Result(s); r {
	case ResultWin, ResultDraw, ResultLoss:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownResult, s)
	}
}

// Stats holds a team's cumulative match statistics
type Stats struct {
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	GoalsFor      int
	GoalsAgainst  int
	Points        int
}

// Consistent reports whether points equal three per win plus one per draw
func (s Stats) Consistent() bool {
	return s.Points == 3*s.Wins+s.Draws
}

// Team represents a registered team, its roster and its statistics
type Team struct {
	TeamID           string
	Name             string
	Coach            string
	Contact          string
	RegistrationDate string
	Players          []*Player
	Stats
}

type teamOptions struct {
	clock clockwork.Clock
}

// TeamOption configures team construction
type TeamOption func(*teamOptions)

// WithClock sets the clock used to stamp the registration date
func WithClock(clock clockwork.Clock) TeamOption {
	return func(o *teamOptions) {
		o.clock = clock
	}
}

func newTeamOptions(opts []TeamOption) teamOptions {
	o := teamOptions{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewTeam creates a team with a generated ID, an empty roster and zeroed statistics
func NewTeam(name, coach, contact string, opts ...TeamOption) *Team {
	o := newTeamOptions(opts)
	return &Team{
		TeamID:           uuid.NewString(),
		Name:             name,
		Coach:            coach,
		Contact:          contact,
		RegistrationDate: o.clock.Now().Format(RegistrationDateLayout),
		Players:          []*Player{},
	}
}

// AddPlayer appends a player to the roster. The roster is unchanged when
// another player already wears the same jersey number.
func (t *Team) AddPlayer(p *Player) error {
	for _, existing := range t.Players {
		if existing.JerseyNumber == p.JerseyNumber {
			return fmt.Errorf("%w: %d already exists in team %s", ErrDuplicateJerseyNumber, p.JerseyNumber, t.Name)
		}
	}
	t.Players = append(t.Players, p)

	log.Debug().
		Str("team_id", t.TeamID).
		Str("player_id", p.PlayerID).
		Int("jersey_number", p.JerseyNumber).
		Msg("player added to team")
	return nil
}

// RemovePlayer drops the player with the given ID. Unknown IDs are ignored.
func (t *Team) RemovePlayer(playerID string) {
	kept := make([]*Player, 0, len(t.Players))
	for _, p := range t.Players {
		if p.PlayerID != playerID {
			kept = append(kept, p)
		}
	}
	t.Players = kept
}

// Player looks up a roster player by ID
func (t *Team) Player(playerID string) (*Player, bool) {
	for _, p := range t.Players {
		if p.PlayerID == playerID {
			return p, true
		}
	}
	return nil, false
}

// GoalDifference returns goals for minus goals against
func (t *Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// UpdateStats records one played match. An unrecognised result is rejected
// and leaves the statistics untouched.
func (t *Team) UpdateStats(goalsFor, goalsAgainst int, result Result) error {
	switch result {
	case ResultWin:
		t.Wins++
		t.Points += 3
	case ResultDraw:
		t.Draws++
		t.Points++
	case ResultLoss:
		t.Losses++
	default:
		return fmt.Errorf("%w: %q", ErrUnknownResult, result)
	}

	t.MatchesPlayed++
	t.GoalsFor += goalsFor
	t.GoalsAgainst += goalsAgainst

	log.Debug().
		Str("team_id", t.TeamID).
		Str("result", string(result)).
		Int("goals_for", goalsFor).
		Int("goals_against", goalsAgainst).
		Int("points", t.Points).
		Msg("team stats updated")
	return nil
}

// ResetStats zeroes all statistics. Identity and roster are kept.
func (t *Team) ResetStats() {
	t.Stats = Stats{}
}

// ToRecord converts the team to its mapping form, players included
func (t *Team) ToRecord() Record {
	players := make([]Record, len(t.Players))
	for i, p := range t.Players {
		players[i] = p.ToRecord()
	}

	return Record{
		"team_id":           t.TeamID,
		"name":              t.Name,
		"coach":             t.Coach,
		"contact":           t.Contact,
		"players":           players,
		"registration_date": t.RegistrationDate,
		"matches_played":    t.MatchesPlayed,
		"wins":              t.Wins,
		"draws":             t.Draws,
		"losses":            t.Losses,
		"goals_for":         t.GoalsFor,
		"goals_against":     t.GoalsAgainst,
		"points":            t.Points,
	}
}

// TeamFromRecord rebuilds a team. name, coach, contact and team_id are
// required; statistics default to zero and the registration date to today.
func TeamFromRecord(rec Record, opts ...TeamOption) (*Team, error) {
	name, err := rec.requireString("name")
	if err != nil {
		return nil, err
	}
	coach, err := rec.requireString("coach")
	if err != nil {
		return nil, err
	}
	contact, err := rec.requireString("contact")
	if err != nil {
		return nil, err
	}
	id, err := rec.requireString("team_id")
	if err != nil {
		return nil, err
	}

	team := NewTeam(name, coach, contact, opts...)
	team.TeamID = id

	playerRecs, err := rec.records("players")
	if err != nil {
		return nil, err
	}
	for i, pr := range playerRecs {
		p, err := PlayerFromRecord(pr)
		if err != nil {
			return nil, fmt.Errorf("players[%d]: %w", i, err)
		}
		team.Players = append(team.Players, p)
	}

	if team.RegistrationDate, err = rec.stringOr("registration_date", team.RegistrationDate); err != nil {
		return nil, err
	}

	stats := []struct {
		key string
		dst *int
	}{
		{"matches_played", &team.MatchesPlayed},
		{"wins", &team.Wins},
		{"draws", &team.Draws},
		{"losses", &team.Losses},
		{"goals_for", &team.GoalsFor},
		{"goals_against", &team.GoalsAgainst},
		{"points", &team.Points},
	}
	for _, s := range stats {
		if *s.dst, err = rec.intOr(s.key, 0); err != nil {
			return nil, err
		}
	}

	return team, nil
}

func (t Team) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToRecord())
}

// UnmarshalJSON decodes a team using the real clock for a missing registration date
func (t *Team) UnmarshalJSON(data []byte) error {
	rec, err := decodeRecord(data)
	if err != nil {
		return err
	}
	decoded, err := TeamFromRecord(rec)
	if err != nil {
		return err
	}
	*t = *decoded
	return nil
}
