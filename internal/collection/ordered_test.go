package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap_SetGet(t *testing.T) {
	m := NewOrderedMap[int]()

	assert.False(t, m.Set("a", 1))
	assert.False(t, m.Set("b", 2))
	assert.True(t, m.Set("a", 3), "second set of same key should report replacement")

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
}

func TestOrderedMap_ReplaceKeepsPosition(t *testing.T) {
	m := NewOrderedMap[string]()
	m.Set("a", "first")
	m.Set("b", "second")
	m.Set("c", "third")
	m.Set("b", "updated")

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, []string{"first", "updated", "third"}, m.Values())
}

func TestOrderedMap_Delete(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.Equal(t, 2, m.Len())
}

func TestOrderedMap_Clear(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("a", 1)
	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())

	m.Set("b", 2)
	assert.Equal(t, []string{"b"}, m.Keys())
}
