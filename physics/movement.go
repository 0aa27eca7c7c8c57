package physics

import (
	"fmt"
	"math"
)

// accelerationGain scales the per-tick speed increase
const accelerationGain = 0.75

// restThreshold snaps speeds closer to zero than this to rest
const restThreshold = 0.1

// UpdateSpeed applies directional input (-1, 0, 1 per axis) to a velocity pair.
// An axis without input keeps its speed: there is no drag, a moving ship drifts until countered
func UpdateSpeed(rowSpeed, columnSpeed float64, rowsDirection, columnsDirection int, limit float64) (float64, float64) {
	if rowsDirection < -1 || rowsDirection > 1 || columnsDirection < -1 || columnsDirection > 1 {
		panic(fmt.Sprintf("physics: direction out of range: rows=%d columns=%d", rowsDirection, columnsDirection))
	}

	if rowsDirection != 0 {
		rowSpeed = accelerate(rowSpeed, limit, rowsDirection > 0)
	}
	if columnsDirection != 0 {
		columnSpeed = accelerate(columnSpeed, limit, columnsDirection > 0)
	}
	return rowSpeed, columnSpeed
}

// accelerate adds a gain that shrinks as speed approaches the limit, capping at ±limit
func accelerate(speed, limit float64, forward bool) float64 {
	limit = math.Abs(limit)
	delta := math.Cos(speed/limit) * accelerationGain

	if forward {
		speed += delta
	} else {
		speed -= delta
	}
	speed = Clamp(speed, -limit, limit)

	if math.Abs(speed) < restThreshold {
		speed = 0
	}
	return speed
}

// Clamp limits v to [lo, hi]; when hi < lo the result is lo
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
