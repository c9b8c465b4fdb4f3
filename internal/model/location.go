package model

import "math"

// Location задаёт позицию объекта в мире.
// Value type, передаётся по значению (immutable).
type Location struct {
	X float64
	Y float64
	Z float64
}

// NewLocation создаёт Location с указанными координатами.
func NewLocation(x, y, z float64) Location {
	return Location{X: x, Y: y, Z: z}
}

// WithOffsetY возвращает новый Location, сдвинутый по Y (точка привязки эффекта над объектом).
func (l Location) WithOffsetY(dy float64) Location {
	l.Y += dy
	return l
}

// DistanceSquared возвращает квадрат расстояния до другой точки (без sqrt).
func (l Location) DistanceSquared(other Location) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	dz := l.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the euclidean distance to other.
func (l Location) Distance(other Location) float64 {
	return math.Sqrt(l.DistanceSquared(other))
}
