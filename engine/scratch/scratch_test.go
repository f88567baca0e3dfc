package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderChain(t *testing.T) {
	Init(64)
	Reset()

	mark := Mark()
	F().S("quads: ").I(42).C(' ').F32(1.5, 2)
	assert.Equal(t, "quads: 42 1.50", StringFrom(mark))
}

func TestMarkIsolatesSegments(t *testing.T) {
	Init(64)
	Reset()

	F().S("first")
	mark := Mark()
	F().S("second")
	assert.Equal(t, "second", StringFrom(mark))
	assert.Equal(t, "firstsecond", StringFrom(0))
}

func TestStringViewFrom(t *testing.T) {
	Init(64)
	Reset()

	mark := Mark()
	F().S("view")
	assert.Equal(t, "view", StringViewFrom(mark))

	// Empty segment gives an empty string, not a panic.
	assert.Equal(t, "", StringViewFrom(Mark()))
}

func TestResetKeepsCapacity(t *testing.T) {
	Init(32)
	F().S("some content that stays under cap")
	c := Cap()
	Reset()
	assert.Zero(t, Len())
	assert.Equal(t, c, Cap())
}

func TestInitDefaultsCapacity(t *testing.T) {
	Init(0)
	assert.Equal(t, 1024, Cap())
}

func TestNegativeFloatAndInt(t *testing.T) {
	Init(64)
	Reset()
	mark := Mark()
	F().I(-7).C(' ').F32(-0.25, 3)
	assert.Equal(t, "-7 -0.250", StringFrom(mark))
}
