package domain

// CompositeState packs a target power state for every level of a power-domain
// hierarchy into a single word: four bits per level starting at level 0, with
// the highest affected level in the top nibble. It is used only by deep
// wakeup requests, where a single call must power a whole subtree.
type CompositeState uint32

const (
	compositeLevelShift = 28
	compositeStateBits  = 4
	compositeStateMask  = 1<<compositeStateBits - 1

	// CompositeMaxLevel is the deepest hierarchy level the encoding carries.
	CompositeMaxLevel = 3
)

// NewCompositeState packs per-level states, states[0] being level 0. Levels
// beyond CompositeMaxLevel and the per-level state width are truncated.
func NewCompositeState(highestLevel uint32, states ...PowerState) CompositeState {
	cs := CompositeState(highestLevel) << compositeLevelShift
	for level, s := range states {
		if level > CompositeMaxLevel {
			break
		}
		cs |= CompositeState(uint32(s)&compositeStateMask) << (level * compositeStateBits)
	}
	return cs
}

// Level returns the highest hierarchy level the composite state affects.
func (cs CompositeState) Level() uint32 {
	return uint32(cs >> compositeLevelShift)
}

// StateAt unpacks the state encoded for the given level.
func (cs CompositeState) StateAt(level uint32) PowerState {
	return PowerState(uint32(cs) >> (level * compositeStateBits) & compositeStateMask)
}

// SoCWakeComposite is the "fully powered, two levels deep" target submitted
// by the wake interrupt path.
func SoCWakeComposite() CompositeState {
	return NewCompositeState(2, StateOn, StateOn, StateOn)
}
