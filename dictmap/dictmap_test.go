package dictmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndGet(t *testing.T) {
	d := New()
	d.Insert("龙", "龍", 1)
	d.Insert("这里", "這裡", 2)

	v, ok := d.Get("龙")
	require.True(t, ok)
	assert.Equal(t, "龍", v)

	v, ok = d.Get("这里")
	require.True(t, ok)
	assert.Equal(t, "這裡", v)

	_, ok = d.Get("missing")
	assert.False(t, ok)
}

func TestDuplicateKeyLastWriteWins(t *testing.T) {
	d := New()
	d.Insert("k", "first", 1)
	d.Insert("k", "second", 1)

	v, ok := d.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, d.Len())
}

func TestMinMaxLen(t *testing.T) {
	d := New()
	assert.Equal(t, uint16(0), d.MinLen())
	assert.Equal(t, uint16(0), d.MaxLen())

	d.Insert("a", "b", 1)
	d.Insert("abcd", "wxyz", 4)
	d.Insert("ab", "cd", 2)

	assert.Equal(t, uint16(1), d.MinLen())
	assert.Equal(t, uint16(4), d.MaxLen())
}

func TestHasKeyLenShortLengths(t *testing.T) {
	d := New()
	assert.False(t, d.HasKeyLen(1))
	assert.False(t, d.HasKeyLen(0))

	d.Insert("a", "b", 1)
	d.Insert("abc", "xyz", 3)
	d.Insert("abcdefghij", "klmnopqrst", 10)

	assert.True(t, d.HasKeyLen(1))
	assert.False(t, d.HasKeyLen(2))
	assert.True(t, d.HasKeyLen(3))
	assert.True(t, d.HasKeyLen(10))
	assert.False(t, d.HasKeyLen(64))
}

func TestHasKeyLenLongLengths(t *testing.T) {
	d := New()
	longKey := make([]rune, 70)
	for i := range longKey {
		longKey[i] = 'x'
	}
	d.Insert(string(longKey), "y", 70)

	assert.True(t, d.HasKeyLen(70))
	assert.False(t, d.HasKeyLen(71))
	assert.False(t, d.HasKeyLen(64))
	assert.Equal(t, []uint16{70}, d.LongLengths())
}

func TestHasKeyLenZeroIsAlwaysFalse(t *testing.T) {
	d := New()
	d.Insert("a", "b", 1)
	assert.False(t, d.HasKeyLen(0))
}

func TestNewFromEntriesComputesStats(t *testing.T) {
	d := NewFromEntries(map[string]string{
		"龙":  "龍",
		"这里": "這裡",
	})
	assert.Equal(t, uint16(1), d.MinLen())
	assert.Equal(t, uint16(2), d.MaxLen())
	assert.True(t, d.HasKeyLen(1))
	assert.True(t, d.HasKeyLen(2))
	v, ok := d.Get("龙")
	require.True(t, ok)
	assert.Equal(t, "龍", v)
}

func TestNilDictMapIsSafeToQuery(t *testing.T) {
	var d *DictMap
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, uint16(0), d.MinLen())
	assert.False(t, d.HasKeyLen(1))
	_, ok := d.Get("x")
	assert.False(t, ok)
}
