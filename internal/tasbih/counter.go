package tasbih

import "github.com/noorhq/noor-server/internal/model"

// Advance applies one tap to the counter state. Reaching the dhikr's
// target (non-free mode) completes a cycle: laps increments exactly once
// and the running count resets to zero in the same step, so rapid
// repeated taps at the boundary can never double-count a lap.
func Advance(s model.TasbihState, d model.Dhikr) (model.TasbihState, bool) {
	s.Count++
	s.Total++

	if d.Target > 0 && s.Count >= d.Target {
		s.Laps++
		s.Count = 0
		return s, true
	}
	return s, false
}

// Reset zeroes the running count and the lap counter. Lifetime total is
// kept.
func Reset(s model.TasbihState) model.TasbihState {
	s.Count = 0
	s.Laps = 0
	return s
}

// Select switches to another dhikr, resetting count and laps.
func Select(s model.TasbihState, d model.Dhikr) model.TasbihState {
	s = Reset(s)
	s.DhikrID = d.ID
	return s
}
