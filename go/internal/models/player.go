package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Player represents a player registered with a team
type Player struct {
	PlayerID     string
	Name         string
	Age          int
	Position     string
	JerseyNumber int // unique within the owning team
	Contact      string
}

// NewPlayer creates a player with a freshly generated ID. Values are accepted as given.
func NewPlayer(name string, age int, position string, jerseyNumber int, contact string) *Player {
	return &Player{
		PlayerID:     uuid.NewString(),
		Name:         name,
		Age:          age,
		Position:     position,
		JerseyNumber: jerseyNumber,
		Contact:      contact,
	}
}

// ToRecord converts the player to its mapping form
func (p *Player) ToRecord() Record {
	return Record{
		"player_id":     p.PlayerID,
		"name":          p.Name,
		"age":           p.Age,
		"position":      p.Position,
		"jersey_number": p.JerseyNumber,
		"contact":       p.Contact,
	}
}

// PlayerFromRecord rebuilds a player, keeping the ID stored in the record.
// Every key is required.
func PlayerFromRecord(rec Record) (*Player, error) {
	name, err := rec.requireString("name")
	if err != nil {
		return nil, err
	}
	age, err := rec.requireInt("age")
	if err != nil {
		return nil, err
	}
	position, err := rec.requireString("position")
	if err != nil {
		return nil, err
	}
	jersey, err := rec.requireInt("jersey_number")
	if err != nil {
		return nil, err
	}
	contact, err := rec.requireString("contact")
	if err != nil {
		return nil, err
	}
	id, err := rec.requireString("player_id")
	if err != nil {
		return nil, err
	}

	return &Player{
		PlayerID:     id,
		Name:         name,
		Age:          age,
		Position:     position,
		JerseyNumber: jersey,
		Contact:      contact,
	}, nil
}

func (p Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToRecord())
}

func (p *Player) UnmarshalJSON(data []byte) error {
	rec, err := decodeRecord(data)
	if err != nil {
		return err
	}
	decoded, err := PlayerFromRecord(rec)
	if err != nil {
		return err
	}
	*p = *decoded
	return nil
}
