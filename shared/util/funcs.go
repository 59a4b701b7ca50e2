package util

import "math"

// TwoPi é uma volta completa em radianos.
const TwoPi = float32(2 * math.Pi)

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// Clamp limita v ao intervalo [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// WrapAngle normaliza um ângulo em radianos para [0, 2π).
func WrapAngle(a float32) float32 {
	w := float32(math.Mod(float64(a), float64(TwoPi)))
	if w < 0 {
		w += TwoPi
	}
	if w >= TwoPi {
		w = 0
	}
	return w
}
