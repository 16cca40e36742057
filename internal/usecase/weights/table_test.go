package weights

import (
	"math"
	"testing"

	"github.com/jotomicron/mossy/internal/domain"
)

func TestTable_DefaultWeight(t *testing.T) {
	table := NewTable(nil, nil, 0.7, 0.8)

	if got := table.WeightOf(42); got != 0.7 {
		t.Errorf("unlisted property: got %v, want default 0.7", got)
	}
	if got := table.DefaultWeight(); got != 0.7 {
		t.Errorf("DefaultWeight: got %v, want 0.7", got)
	}
	if got := table.HierarchyWeight(); got != 0.8 {
		t.Errorf("HierarchyWeight: got %v, want 0.8", got)
	}
}

func TestTable_DerivedForcesZeroDefault(t *testing.T) {
	derived := map[domain.PropertyID]float64{1: 0.9}
	table := NewTable(derived, nil, 0.7, 0.8)

	if got := table.WeightOf(1); got != 0.9 {
		t.Errorf("derived property: got %v, want 0.9", got)
	}
	if got := table.WeightOf(99); got != 0 {
		t.Errorf("property absent from derived table: got %v, want 0", got)
	}
}

func TestTable_OverridesWinOverDerived(t *testing.T) {
	derived := map[domain.PropertyID]float64{1: 0.9, 2: 0.4}
	overrides := map[domain.PropertyID]float64{2: 1.0, 3: 0.5}
	table := NewTable(derived, overrides, 0.7, 0.8)

	if got := table.WeightOf(1); got != 0.9 {
		t.Errorf("derived-only property: got %v, want 0.9", got)
	}
	if got := table.WeightOf(2); got != 1.0 {
		t.Errorf("overridden property: got %v, want 1.0", got)
	}
	if got := table.WeightOf(3); got != 0.5 {
		t.Errorf("override-only property: got %v, want 0.5", got)
	}
}

func TestTable_ChainWeight(t *testing.T) {
	overrides := map[domain.PropertyID]float64{1: 0.5, 2: 0.4}
	table := NewTable(nil, overrides, 0.7, 0.8)

	if got := table.ChainWeight(nil); got != 1 {
		t.Errorf("empty chain: got %v, want 1", got)
	}
	want := 0.5 * 0.4 * 0.7
	if got := table.ChainWeight([]domain.PropertyID{1, 2, 3}); math.Abs(got-want) > 1e-12 {
		t.Errorf("chain weight: got %v, want %v", got, want)
	}
}

func TestTable_SnapshotIsACopy(t *testing.T) {
	table := NewTable(nil, map[domain.PropertyID]float64{1: 0.5}, 0.7, 0.8)

	snap := table.Snapshot()
	snap[1] = 0
	snap[2] = 0.3

	if got := table.WeightOf(1); got != 0.5 {
		t.Errorf("table mutated through snapshot: got %v, want 0.5", got)
	}
	if got := table.WeightOf(2); got != 0.7 {
		t.Errorf("table mutated through snapshot: got %v, want default 0.7", got)
	}
}
