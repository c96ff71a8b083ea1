package domain

// PlacedBlock - запись журнала мировых правок.
// Дубликаты по позиции не схлопываются: повторная установка в занятую
// точку просто добавляет вторую запись.
type PlacedBlock struct {
	Pos      Vec3
	Type     string
	PlacedBy string
}
