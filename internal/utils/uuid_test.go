package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	g := NewUUIDGenerator()

	id, err := uuid.Parse(g.Generate())
	if err != nil {
		t.Fatalf("expected valid uuid, got error: %v", err)
	}
	if id.Version() != 7 {
		t.Errorf("expected uuid version 7, got %d", id.Version())
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()

	if g.Generate() == g.Generate() {
		t.Error("expected two generated ids to differ")
	}
}

func TestUUIDGenerator_FallsBackToV4(t *testing.T) {
	g := &UUIDGenerator{newV7: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("clock unavailable")
	}}

	id, err := uuid.Parse(g.Generate())
	if err != nil {
		t.Fatalf("expected valid uuid, got error: %v", err)
	}
	if id.Version() != 4 {
		t.Errorf("expected uuid version 4, got %d", id.Version())
	}
}

func TestUUIDGenerator_ZeroValue(t *testing.T) {
	var g UUIDGenerator

	if _, err := uuid.Parse(g.Generate()); err != nil {
		t.Fatalf("expected valid uuid from zero value, got error: %v", err)
	}
}
