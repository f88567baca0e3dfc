// Package scratch is a package-level reusable byte buffer for building
// per-frame strings (overlay labels, window titles) without allocating.
// Single-threaded usage: Init once at startup, Reset once per frame.
package scratch

import (
	"strconv"
	"unsafe"
)

var buf []byte

// Init sets up the global scratch buffer. Call once at startup.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1024
	}
	buf = make([]byte, 0, capacity)
}

// Reset clears the buffer length without freeing memory. Call once per
// frame, before building any UI strings.
func Reset() { buf = buf[:0] }

func Cap() int { return cap(buf) }
func Len() int { return len(buf) }

// Mark returns a bookmark to later slice the output.
func Mark() int { return len(buf) }

// StringFrom copies the bytes produced since mark into a fresh string.
func StringFrom(mark int) string { return string(buf[mark:]) }

// StringViewFrom is a zero-copy string view of the bytes since mark. Valid
// only until the next append or Reset; do not retain it.
func StringViewFrom(mark int) string {
	b := buf[mark:]
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// ----- Chainable builder over the global buffer -----

type Builder struct{}

// F returns a builder bound to the global buffer.
func F() Builder { return Builder{} }

func (Builder) S(s string) Builder {
	buf = append(buf, s...)
	return Builder{}
}

func (Builder) C(c byte) Builder {
	buf = append(buf, c)
	return Builder{}
}

// I appends a base-10 integer.
func (Builder) I(v int) Builder {
	buf = strconv.AppendInt(buf, int64(v), 10)
	return Builder{}
}

// F32 appends a float with the given number of decimals.
func (Builder) F32(v float32, decimals int) Builder {
	buf = strconv.AppendFloat(buf, float64(v), 'f', decimals, 32)
	return Builder{}
}
