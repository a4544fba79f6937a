// internal/app/stats.go
package app

// Stats — счётчики движка с момента создания.
type Stats struct {
	Emitted         int // частиц основного канала
	WarningsEmitted int
	Expired         int
	Culled          int // вышли за край
	Cleared         int // сняты жёсткой очисткой
	StaleHandles    int // хост уже удалил визуальный объект
	Ticks           int
	Live            int
}

// Retired возвращает общее число удалённых частиц.
func (s Stats) Retired() int {
	return s.Expired + s.Culled + s.Cleared
}
