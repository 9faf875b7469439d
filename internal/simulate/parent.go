package simulate

import "github.com/dparity/draid/internal/draid"

// ParentTable is a minimal draid.ParentInfo backed by an explicit
// childIdx -> operator map, letting tests simulate a spare or replacing
// operation taking over a slot without modeling the full vdev tree.
type ParentTable struct {
	operators map[uint64]draid.ParentOperator
}

// NewParentTable returns a ParentTable with every child starting under
// no special operator.
func NewParentTable() *ParentTable {
	return &ParentTable{operators: make(map[uint64]draid.ParentOperator)}
}

// SetOperator records which operator currently governs childIdx.
func (p *ParentTable) SetOperator(childIdx uint64, op draid.ParentOperator) {
	p.operators[childIdx] = op
}

// ParentOperator implements draid.ParentInfo.
func (p *ParentTable) ParentOperator(childIdx uint64) draid.ParentOperator {
	return p.operators[childIdx]
}

// NestedRouter implements draid.ParentInfo. The harness never nests
// distributed spares across multiple top-level dRAID vdevs, so this
// always reports no nested router.
func (p *ParentTable) NestedRouter(childIdx uint64) (*draid.SpareRouter, bool) {
	return nil, false
}
