package indental

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Accessors(t *testing.T) {
	s := NewScalar("x")
	got, ok := s.Scalar()
	assert.True(t, ok)
	assert.Equal(t, "x", got)
	_, ok = s.Sequence()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())

	seq := NewSequence([]string{"a", "b"})
	assert.Equal(t, KindSequence, seq.Kind())
	assert.Equal(t, 2, seq.Len())
	_, ok = seq.Mapping()
	assert.False(t, ok)

	var zero Value
	assert.Equal(t, KindMapping, zero.Kind())
	assert.Equal(t, map[string]any{}, zero.Interface())
}

func TestValue_InterfaceCopiesSequence(t *testing.T) {
	items := []string{"a"}
	v := NewSequence(items)

	out := v.Interface().([]string)
	out[0] = "changed"

	assert.Equal(t, "a", items[0])
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "scalar", KindScalar.String())
}

func TestDocument_Labels(t *testing.T) {
	doc := Parse("b\nA\nc\n")

	assert.Equal(t, []string{"A", "B", "C"}, doc.Labels())
	assert.Equal(t, KindMapping, doc.Value().Kind())
	assert.Equal(t, 3, doc.Value().Len())
}
