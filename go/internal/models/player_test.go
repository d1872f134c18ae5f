package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlayerRecordRoundTrip(t *testing.T) {
	p := NewPlayer("Ana Silva", 24, "Forward", 9, "+351 900 000 001")

	got, err := PlayerFromRecord(p.ToRecord())
	if err != nil {
		t.Fatalf("PlayerFromRecord() error = %v", err)
	}
	if diff := cmp.Diff(p, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPlayerGeneratesDistinctIDs(t *testing.T) {
	a := NewPlayer("A", 20, "GK", 1, "")
	b := NewPlayer("B", 21, "GK", 12, "")
	if a.PlayerID == "" || a.PlayerID == b.PlayerID {
		t.Fatalf("expected distinct non-empty IDs, got %q and %q", a.PlayerID, b.PlayerID)
	}
}

func TestPlayerFromRecordMissingField(t *testing.T) {
	for _, key := range []string{"name", "age", "position", "jersey_number", "contact", "player_id"} {
		t.Run(key, func(t *testing.T) {
			rec := NewPlayer("Ana", 24, "Forward", 9, "x").ToRecord()
			delete(rec, key)

			_, err := PlayerFromRecord(rec)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			var mf *MissingFieldError
			if !errors.As(err, &mf) || mf.Field != key {
				t.Fatalf("expected MissingFieldError for %q, got %v", key, err)
			}
		})
	}
}

func TestPlayerFromRecordInvalidField(t *testing.T) {
	rec := NewPlayer("Ana", 24, "Forward", 9, "x").ToRecord()
	rec["age"] = "twenty"

	if _, err := PlayerFromRecord(rec); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestPlayerJSON(t *testing.T) {
	p := NewPlayer("Ana Silva", 24, "Forward", 9, "+351")

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got Player
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(*p, got); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPlayerUnmarshalJSONMissingName(t *testing.T) {
	var p Player
	err := json.Unmarshal([]byte(`{"player_id":"p1","age":20,"position":"GK","jersey_number":1,"contact":""}`), &p)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestPlayerJSONByValue(t *testing.T) {
	p := NewPlayer("Ana Silva", 24, "Forward", 9, "+351")

	data, err := json.Marshal([]Player{*p})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"jersey_number":9`) {
		t.Errorf("value did not encode with record keys: %s", data)
	}

	var got []Player
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff([]Player{*p}, got); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPlayerUnmarshalJSONWholeFloat(t *testing.T) {
	var p Player
	err := json.Unmarshal([]byte(`{"player_id":"p1","name":"Ana","age":3.0,"position":"GK","jersey_number":1e1,"contact":""}`), &p)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p.Age != 3 || p.JerseyNumber != 10 {
		t.Errorf("age = %d, jersey = %d", p.Age, p.JerseyNumber)
	}
}
