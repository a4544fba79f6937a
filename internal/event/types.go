// internal/event/types.go
package event

const (
	PriceUpdated     EventType = "PriceUpdated"     // Новая пара цен, данные PricePair
	ActiveChanged    EventType = "ActiveChanged"    // Включение/выключение, данные bool
	ViewportResized  EventType = "ViewportResized"  // Изменение размера окна, данные Viewport
	ParticlesEmitted EventType = "ParticlesEmitted" // Эмиссия завершена, данные system.EmissionReport
	ParticlesCleared EventType = "ParticlesCleared" // Жёсткая очистка, данные int (число частиц)
)
