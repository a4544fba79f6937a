// internal/types/types.go
package types

// ParticleID — идентификатор частицы, выдаётся хранилищем.
// Используется хостом как ключ визуального дескриптора.
type ParticleID uint64

// NoParticle — нулевой идентификатор, никогда не выдаётся хранилищем.
const NoParticle ParticleID = 0
