package simulate

import (
	"testing"

	"github.com/dparity/draid/internal/draid"
	"github.com/stretchr/testify/assert"
)

func TestParentTable_DefaultOperatorIsNone(t *testing.T) {
	pt := NewParentTable()
	assert.Equal(t, draid.OperatorNone, pt.ParentOperator(3))
}

func TestParentTable_SetOperator(t *testing.T) {
	pt := NewParentTable()
	pt.SetOperator(2, draid.OperatorReplacing)
	assert.Equal(t, draid.OperatorReplacing, pt.ParentOperator(2))
	assert.Equal(t, draid.OperatorNone, pt.ParentOperator(3))
}

func TestParentTable_NestedRouterAlwaysAbsent(t *testing.T) {
	pt := NewParentTable()
	router, ok := pt.NestedRouter(0)
	assert.False(t, ok)
	assert.Nil(t, router)
}
