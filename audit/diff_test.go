package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfdelacruz/property-app/audit"
)

func TestDiffOnlyConsidersChangedKeys(t *testing.T) {
	original := map[string]interface{}{
		"name":    "Main Hall",
		"code":    "MH-01",
		"address": "North Campus",
	}
	changes := map[string]interface{}{
		"name": "Science Hall",
		"code": "MH-01",
	}

	before, after := audit.Diff(original, changes)

	assert.Equal(t, map[string]interface{}{"name": "Main Hall"}, before)
	assert.Equal(t, map[string]interface{}{"name": "Science Hall"}, after)
}

func TestDiffNewKeyHasNoBefore(t *testing.T) {
	before, after := audit.Diff(
		map[string]interface{}{"name": "Main Hall"},
		map[string]interface{}{"remarks": "repainted"},
	)

	assert.Empty(t, before)
	assert.Equal(t, map[string]interface{}{"remarks": "repainted"}, after)
}

func TestDiffIdenticalChangeSetIsEmpty(t *testing.T) {
	original := map[string]interface{}{"name": "Main Hall", "code": "MH-01"}

	before, after := audit.Diff(original, map[string]interface{}{"name": "Main Hall", "code": "MH-01"})

	assert.Empty(t, before)
	assert.Empty(t, after)
}

func TestDiffIsDeterministic(t *testing.T) {
	original := map[string]interface{}{"a": 1, "b": "x", "c": []string{"p", "q"}}
	changes := map[string]interface{}{"a": 2, "b": "x", "c": []string{"p", "r"}}

	b1, a1 := audit.Diff(original, changes)
	b2, a2 := audit.Diff(original, changes)

	assert.Equal(t, b1, b2)
	assert.Equal(t, a1, a2)
}

func TestRestoreOnly(t *testing.T) {
	assert.True(t, audit.RestoreOnly(map[string]interface{}{"deleted_at": nil}))
	assert.False(t, audit.RestoreOnly(map[string]interface{}{"deleted_at": nil, "name": "x"}))
	assert.False(t, audit.RestoreOnly(map[string]interface{}{"name": "x"}))
	assert.False(t, audit.RestoreOnly(map[string]interface{}{"deleted_at": "2024-01-01"}))
	assert.False(t, audit.RestoreOnly(map[string]interface{}{}))
}
