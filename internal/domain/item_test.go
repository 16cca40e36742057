package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestChainIRIs(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want [][]string
	}{
		{
			name: "concept",
			item: NewConcept("ex:Heart"),
			want: [][]string{{"ex:Heart"}},
		},
		{
			name: "concept list",
			item: NewConceptList([]string{"ex:Heart", "ex:Lung"}),
			want: [][]string{{"ex:Heart"}, {"ex:Lung"}},
		},
		{
			name: "chain list",
			item: NewChainList([][]string{{"ex:partOf", "ex:Thorax"}, {"ex:Lung"}}),
			want: [][]string{{"ex:partOf", "ex:Thorax"}, {"ex:Lung"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.item.ChainIRIs()
			if err != nil {
				t.Fatalf("ChainIRIs: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ChainIRIs: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestChainIRIs_Invalid(t *testing.T) {
	cases := []struct {
		name string
		item Item
	}{
		{"zero value", Item{}},
		{"empty concept", NewConcept("")},
		{"empty concept list", NewConceptList(nil)},
		{"empty IRI in list", NewConceptList([]string{"ex:Heart", ""})},
		{"empty chain list", NewChainList(nil)},
		{"empty chain", NewChainList([][]string{{}})},
		{"empty IRI in chain", NewChainList([][]string{{"ex:partOf", ""}})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.item.ChainIRIs()
			if !errors.Is(err, ErrInvalidInputShape) {
				t.Fatalf("expected ErrInvalidInputShape, got %v", err)
			}
		})
	}
}

func TestNeighborhood_Absorb(t *testing.T) {
	n := Neighborhood{}

	n.Absorb(1, 0.5)
	if n[1] != 0.5 {
		t.Errorf("after first absorb: got %v, want 0.5", n[1])
	}

	n.Absorb(1, 0.3)
	if n[1] != 0.5 {
		t.Errorf("lower weight must not replace a higher one: got %v, want 0.5", n[1])
	}

	n.Absorb(1, 0.9)
	if n[1] != 0.9 {
		t.Errorf("higher weight must win: got %v, want 0.9", n[1])
	}
}

func TestNeighborhood_Merge(t *testing.T) {
	n := Neighborhood{1: 0.5, 2: 0.8}
	n.Merge(Neighborhood{1: 0.7, 2: 0.2, 3: 0.4})

	want := Neighborhood{1: 0.7, 2: 0.8, 3: 0.4}
	if !reflect.DeepEqual(n, want) {
		t.Errorf("Merge: got %v, want %v", n, want)
	}
}
