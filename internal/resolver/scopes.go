package resolver

import (
	"fmt"

	"fen/internal/source"
)

// Capability selects which lexical binding category a scope operation
// targets. Term variables and type variables live on independent stacks.
type Capability uint8

const (
	CapValue Capability = iota
	CapType

	capCount
)

func (c Capability) String() string {
	switch c {
	case CapValue:
		return "value"
	case CapType:
		return "type"
	default:
		return "invalid"
	}
}

// Kaleidoscope is the capability-tagged scope stack. Each capability has
// its own stack of frames; a frame is the set of symbols bound by one
// syntactic binder. Push/Pop must nest strictly per capability.
type Kaleidoscope struct {
	frames [capCount][]map[source.StringID]struct{}
}

func NewKaleidoscope() *Kaleidoscope {
	return &Kaleidoscope{}
}

// Push opens a fresh innermost frame for the capability.
func (k *Kaleidoscope) Push(c Capability) {
	k.frames[c] = append(k.frames[c], make(map[source.StringID]struct{}))
}

// Pop discards the innermost frame. Popping with no open frame is a
// programming bug, not a user error.
func (k *Kaleidoscope) Pop(c Capability) {
	frames := k.frames[c]
	if len(frames) == 0 {
		panic(fmt.Sprintf("kaleidoscope: pop on empty %s stack", c))
	}
	k.frames[c] = frames[:len(frames)-1]
}

// Add binds a symbol in the innermost open frame of the capability.
func (k *Kaleidoscope) Add(c Capability, sym source.StringID) {
	frames := k.frames[c]
	if len(frames) == 0 {
		panic(fmt.Sprintf("kaleidoscope: add with no open %s frame", c))
	}
	frames[len(frames)-1][sym] = struct{}{}
}

// Contains searches every frame of the capability, innermost first.
func (k *Kaleidoscope) Contains(c Capability, sym source.StringID) bool {
	frames := k.frames[c]
	for i := len(frames) - 1; i >= 0; i-- {
		if _, ok := frames[i][sym]; ok {
			return true
		}
	}
	return false
}

// Depth reports the number of open frames for the capability.
func (k *Kaleidoscope) Depth(c Capability) int {
	return len(k.frames[c])
}
