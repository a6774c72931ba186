// Package orbit assigns bodies to orbit slots and moves them along their
// orbits.
package orbit

import "github.com/Faultbox/orbitforge/internal/preset"

// Slot layout: slot 0 holds the center body, slots 1..MaxSlots-1 orbit it.
const (
	CenterSlot = preset.CenterPosition
	MaxSlots   = preset.MaxPositions
)

// FindAvailable returns the lowest free orbit slot in 1..MaxSlots-1.
// ok is false when every orbit slot is taken; that is the cue to call
// ReplaceLast. Positions outside the slot range are ignored.
func FindAvailable(bodies []preset.Body) (slot int, ok bool) {
	var taken [MaxSlots]bool
	for _, b := range bodies {
		if b.Position >= 0 && b.Position < MaxSlots {
			taken[b.Position] = true
		}
	}
	for slot = CenterSlot + 1; slot < MaxSlots; slot++ {
		if !taken[slot] {
			return slot, true
		}
	}
	return 0, false
}

// ReplaceLast overwrites the body holding the highest non-center slot with
// nb. The replacement keeps the evicted slot regardless of nb.Position.
// It returns false when there is nothing to evict.
func ReplaceLast(bodies []preset.Body, nb preset.Body) bool {
	_, ok := ReplaceLastIndex(bodies, nb)
	return ok
}

// ReplaceLastIndex is ReplaceLast that also reports which element was
// overwritten. On ties the first body in list order is evicted.
func ReplaceLastIndex(bodies []preset.Body, nb preset.Body) (int, bool) {
	last := -1
	for i, b := range bodies {
		if b.Position == CenterSlot {
			continue
		}
		if last < 0 || b.Position > bodies[last].Position {
			last = i
		}
	}
	if last < 0 {
		return -1, false
	}

	nb.Position = bodies[last].Position
	bodies[last] = nb
	return last, true
}
