package domain

import "math"

// Vec3 - координаты в мировой сетке [x, y, z].
// Сериализуется как обычный JSON-массив, совместимый с клиентом.
type Vec3 [3]float64

// Dist возвращает прямое (евклидово) расстояние между двумя точками.
func Dist(a, b Vec3) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
