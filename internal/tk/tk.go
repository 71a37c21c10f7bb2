// Package tk computes the "tk" request token the translate endpoint
// requires. The token is a 32-bit rotate/xor hash of the UTF-8 text keyed
// by the current Unix hour; a wrong value makes the server reject the call.
package tk

import (
	"fmt"
	"time"
)

const (
	textMix  = "+-a^+6"
	finalMix = "+-3^+b+-f"
)

// HourSeed returns the seed for t: whole hours since the Unix epoch.
func HourSeed(t time.Time) int64 {
	return t.Unix() / 3600
}

// Sign returns the token for text under the given hour seed, formatted as
// "<a>.<a xor seed>".
func Sign(text string, hourSeed int64) string {
	a := int32(uint32(hourSeed))
	for _, b := range []byte(text) {
		a = rotateMix(uint32(a)+uint32(b), textMix)
	}
	a = rotateMix(uint32(a), finalMix)

	var v int64
	if a < 0 {
		v = int64(uint32(a)&0x7fffffff) + 0x80000000
	} else {
		v = int64(a)
	}
	v %= 1_000_000
	return fmt.Sprintf("%d.%d", v, v^hourSeed)
}

// SignNow signs text with the seed for the current wall-clock hour.
func SignNow(text string) string {
	return Sign(text, HourSeed(time.Now()))
}

// rotateMix applies the pattern in triplets of (op, direction, amount).
// Shifts act on the unsigned 32-bit value; the sum wraps modulo 2^32.
// The result is reinterpreted as a signed 32-bit integer.
func rotateMix(a uint32, pattern string) int32 {
	for i := 0; i+2 < len(pattern); i += 3 {
		amount := shiftAmount(pattern[i+2])
		var d uint32
		if pattern[i+1] == '+' {
			d = a >> amount
		} else {
			d = a << amount
		}
		if pattern[i] == '+' {
			a += d
		} else {
			a ^= d
		}
	}
	return int32(a)
}

func shiftAmount(c byte) uint {
	if c >= 'a' {
		return uint(c) - 87
	}
	return uint(c - '0')
}
