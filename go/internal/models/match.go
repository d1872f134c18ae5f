package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DrawSentinel is stored in Match.WinnerID when neither team won
const DrawSentinel = "draw"

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
)

// ResultPolicy decides what RecordResult does on an already completed match
type ResultPolicy string

const (
	// ResultPolicyOverwrite replaces the previous result and logs a warning
	ResultPolicyOverwrite ResultPolicy = "overwrite"
	// ResultPolicyReject keeps the previous result and returns ErrResultAlreadyRecorded
	ResultPolicyReject ResultPolicy = "reject"
)

// ParseResultPolicy converts a configuration value into a ResultPolicy
func ParseResultPolicy(s string) (ResultPolicy, error) {
	switch p := ResultPolicy(s); p {
	case ResultPolicyOverwrite, ResultPolicyReject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown result policy %q", s)
	}
}

// Match represents a fixture between two teams of a tournament
type Match struct {
	MatchID      string
	TournamentID string
	Team1ID      string
	Team2ID      string
	MatchDate    *string
	Venue        *string
	Team1Score   *int
	Team2Score   *int
	Status       MatchStatus
	WinnerID     *string // team1, team2 or DrawSentinel once completed

	policy ResultPolicy
}

// MatchOption configures match construction
type MatchOption func(*Match)

// WithResultPolicy sets how repeated RecordResult calls are handled
func WithResultPolicy(policy ResultPolicy) MatchOption {
	return func(m *Match) {
		m.policy = policy
	}
}

// NewMatch creates a scheduled match with a generated ID and no result
func NewMatch(tournamentID, team1ID, team2ID string, opts ...MatchOption) *Match {
	m := &Match{
		MatchID:      uuid.NewString(),
		TournamentID: tournamentID,
		Team1ID:      team1ID,
		Team2ID:      team2ID,
		Status:       MatchStatusScheduled,
		policy:       ResultPolicyOverwrite,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetSchedule overwrites date and venue in any state
func (m *Match) SetSchedule(date, venue string) {
	m.MatchDate = stringPtr(date)
	m.Venue = stringPtr(venue)
}

// IsCompleted reports whether a result has been recorded
func (m *Match) IsCompleted() bool {
	return m.Status == MatchStatusCompleted
}

// RecordResult stores both scores, completes the match and derives the winner.
// Scores are not validated.
func (m *Match) RecordResult(team1Score, team2Score int) error {
	if m.IsCompleted() {
		if m.policy == ResultPolicyReject {
			return fmt.Errorf("%w: match %s", ErrResultAlreadyRecorded, m.MatchID)
		}
		log.Warn().
			Str("match_id", m.MatchID).
			Str("previous", m.Result()).
			Int("team1_score", team1Score).
			Int("team2_score", team2Score).
			Msg("overwriting recorded match result")
	}

	m.Team1Score = intPtr(team1Score)
	m.Team2Score = intPtr(team2Score)
	m.Status = MatchStatusCompleted

	switch {
	case team1Score > team2Score:
		m.WinnerID = stringPtr(m.Team1ID)
	case team2Score > team1Score:
		m.WinnerID = stringPtr(m.Team2ID)
	default:
		m.WinnerID = stringPtr(DrawSentinel)
	}

	log.Debug().
		Str("match_id", m.MatchID).
		Str("winner_id", *m.WinnerID).
		Msg("match result recorded")
	return nil
}

// Result describes the outcome in a human readable form
func (m *Match) Result() string {
	if !m.IsCompleted() {
		return "Match not completed"
	}
	if m.WinnerID != nil && *m.WinnerID == DrawSentinel {
		return fmt.Sprintf("Draw %s-%s", scoreString(m.Team1Score), scoreString(m.Team2Score))
	}
	return fmt.Sprintf("Winner: %s", stringOrNone(m.WinnerID))
}

// Outcome returns the goals and result of a completed match seen from
// teamID's side, in the shape Team.UpdateStats expects.
func (m *Match) Outcome(teamID string) (goalsFor, goalsAgainst int, result Result, err error) {
	if !m.IsCompleted() || m.Team1Score == nil || m.Team2Score == nil {
		return 0, 0, "", fmt.Errorf("%w: match %s", ErrMatchNotCompleted, m.MatchID)
	}

	switch teamID {
	case m.Team1ID:
		goalsFor, goalsAgainst = *m.Team1Score, *m.Team2Score
	case m.Team2ID:
		goalsFor, goalsAgainst = *m.Team2Score, *m.Team1Score
	default:
		return 0, 0, "", fmt.Errorf("%w: team %s, match %s", ErrTeamNotInMatch, teamID, m.MatchID)
	}

	switch {
	case goalsFor > goalsAgainst:
		result = ResultWin
	case goalsFor < goalsAgainst:
		result = ResultLoss
	default:
		result = ResultDraw
	}
	return goalsFor, goalsAgainst, result, nil
}

// unset values print as None
func scoreString(score *int) string {
	if score == nil {
		return "None"
	}
	return fmt.Sprint(*score)
}

func stringOrNone(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}

// ToRecord converts the match to its mapping form. Unset optionals are nil.
func (m *Match) ToRecord() Record {
	rec := Record{
		"match_id":      m.MatchID,
		"tournament_id": m.TournamentID,
		"team1_id":      m.Team1ID,
		"team2_id":      m.Team2ID,
		"match_date":    nil,
		"venue":         nil,
		"team1_score":   nil,
		"team2_score":   nil,
		"status":        string(m.Status),
		"winner_id":     nil,
	}
	if m.MatchDate != nil {
		rec["match_date"] = *m.MatchDate
	}
	if m.Venue != nil {
		rec["venue"] = *m.Venue
	}
	if m.Team1Score != nil {
		rec["team1_score"] = *m.Team1Score
	}
	if m.Team2Score != nil {
		rec["team2_score"] = *m.Team2Score
	}
	if m.WinnerID != nil {
		rec["winner_id"] = *m.WinnerID
	}
	return rec
}

// MatchFromRecord rebuilds a match. tournament_id, team1_id, team2_id and
// match_id are required; status defaults to scheduled.
func MatchFromRecord(rec Record, opts ...MatchOption) (*Match, error) {
	tournamentID, err := rec.requireString("tournament_id")
	if err != nil {
		return nil, err
	}
	team1ID, err := rec.requireString("team1_id")
	if err != nil {
		return nil, err
	}
	team2ID, err := rec.requireString("team2_id")
	if err != nil {
		return nil, err
	}
	id, err := rec.requireString("match_id")
	if err != nil {
		return nil, err
	}

	m := NewMatch(tournamentID, team1ID, team2ID, opts...)
	m.MatchID = id

	if m.MatchDate, err = rec.optionalString("match_date"); err != nil {
		return nil, err
	}
	if m.Venue, err = rec.optionalString("venue"); err != nil {
		return nil, err
	}
	if m.Team1Score, err = rec.optionalInt("team1_score"); err != nil {
		return nil, err
	}
	if m.Team2Score, err = rec.optionalInt("team2_score"); err != nil {
		return nil, err
	}
	if m.WinnerID, err = rec.optionalString("winner_id"); err != nil {
		return nil, err
	}

	status, err := rec.stringOr("status", string(MatchStatusScheduled))
	if err != nil {
		return nil, err
	}
	switch s := MatchStatus(status); s {
	case MatchStatusScheduled, MatchStatusCompleted:
		m.Status = s
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidField, status)
	}

	return m, nil
}

func (m Match) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToRecord())
}

// UnmarshalJSON decodes a match. The result policy already set on m is kept.
func (m *Match) UnmarshalJSON(data []byte) error {
	rec, err := decodeRecord(data)
	if err != nil {
		return err
	}
	policy := m.policy
	if policy == "" {
		policy = ResultPolicyOverwrite
	}
	decoded, err := MatchFromRecord(rec, WithResultPolicy(policy))
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}
