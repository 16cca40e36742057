package mossy

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/jotomicron/mossy/internal/db/sqlite"
)

// newTestClient seeds a closure store on disk and opens a client over
// it: Heart isA Organ, Lung isA Organ, Heart partOf Thorax,
// Lung partOf Thorax.
func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ontology.db")

	store, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.InitSchema(); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}

	entities := []struct {
		id   int64
		iri  string
		kind string
	}{
		{1, "ex:Heart", "Concept"},
		{2, "ex:Lung", "Concept"},
		{3, "ex:Thorax", "Concept"},
		{4, "ex:Organ", "Concept"},
		{10, "ex:partOf", "ObjectProperty"},
	}
	for _, e := range entities {
		if err := store.InsertEntity(e.id, e.iri, e.kind); err != nil {
			t.Fatalf("InsertEntity: %v", err)
		}
	}
	for _, start := range []int64{1, 2} {
		if err := store.InsertRelation("10", start, 3, 1); err != nil {
			t.Fatalf("InsertRelation: %v", err)
		}
		if err := store.InsertHierarchy(start, 4, 1); err != nil {
			t.Fatalf("InsertHierarchy: %v", err)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	client, err := New(append([]Option{WithSQLite(path)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := New()
	if err == nil {
		t.Fatal("expected an error when no store path is configured")
	}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"negative distance threshold", WithDistanceThreshold(-1)},
		{"weight threshold above 1", WithWeightThreshold(1.5)},
		{"negative default weight", WithDefaultWeight(-0.1)},
		{"hierarchy weight above 1", WithHierarchyWeight(2)},
		{"property weight above 1", WithPropertyWeights(map[string]float64{"ex:partOf": 1.2})},
		{"log scale min above max", WithLogScaleWeights(0.9, 0.5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(WithSQLite("ontology.db"), tc.opt); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestClient_Compare(t *testing.T) {
	client := newTestClient(t)

	got, err := client.Compare(context.Background(), Concept("ex:Heart"), Concept("ex:Lung"))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got <= 0 || got >= 1 {
		t.Errorf("similarity of sibling organs: got %v, want a value strictly between 0 and 1", got)
	}

	reversed, err := client.Compare(context.Background(), Concept("ex:Lung"), Concept("ex:Heart"))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if math.Abs(got-reversed) > 1e-12 {
		t.Errorf("similarity not symmetric: %v vs %v", got, reversed)
	}
}

func TestClient_CompareItemShapes(t *testing.T) {
	client := newTestClient(t)

	got, err := client.Compare(context.Background(),
		ConceptList("ex:Heart", "ex:Lung"),
		ChainList([]string{"ex:partOf", "ex:Thorax"}),
	)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got <= 0 {
		t.Errorf("expected overlap through the shared region, got %v", got)
	}
}

func TestClient_CompareUnknownEntity(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Compare(context.Background(), Concept("ex:Heart"), Concept("ex:Unicorn"))
	if !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("expected ErrUnknownEntity, got %v", err)
	}
}

func TestClient_ComparePropertyWeights(t *testing.T) {
	baseline := newTestClient(t)
	damped := newTestClient(t, WithPropertyWeights(map[string]float64{"ex:partOf": 0.1}), WithWeightThreshold(0))

	a, b := Concept("ex:Heart"), Concept("ex:Lung")

	base, err := baseline.Compare(context.Background(), a, b)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	low, err := damped.Compare(context.Background(), a, b)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if low >= base {
		t.Errorf("damping the connecting property should lower similarity: %v >= %v", low, base)
	}
}

func TestClient_CompareLogScaleWeights(t *testing.T) {
	client := newTestClient(t, WithLogScaleWeights(0.2, 0.9), WithWeightThreshold(0))

	got, err := client.Compare(context.Background(), Concept("ex:Heart"), Concept("ex:Lung"))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got <= 0 || got > 1 {
		t.Errorf("similarity with derived weights: got %v, want a value in (0,1]", got)
	}
}

func TestClient_CompareDistanceThresholdZero(t *testing.T) {
	client := newTestClient(t, WithDistanceThreshold(0))

	got, err := client.Compare(context.Background(), Concept("ex:Heart"), Concept("ex:Heart"))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got != 1 {
		t.Errorf("self similarity without expansion: got %v, want 1", got)
	}

	got, err = client.Compare(context.Background(), Concept("ex:Heart"), Concept("ex:Lung"))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got != 0 {
		t.Errorf("similarity without expansion: got %v, want 0", got)
	}
}
