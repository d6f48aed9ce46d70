package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	g := NewUUIDGenerator()
	got := g.NewID("ref")
	if !strings.HasPrefix(got, "ref-") {
		t.Fatalf("expected ref- prefix, got %s", got)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(got, "ref-")); err != nil {
		t.Fatalf("suffix is not a uuid: %v", err)
	}
	if g.NewID("") == g.NewID("") {
		t.Fatalf("ids must be unique")
	}
}
