package world

import "sync/atomic"

// Object id ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: reserved (0 = no object)
//	0x10000000 - 0x1FFFFFFF: characters
//	0x20000000 - 0x2FFFFFFF: NPCs
const (
	characterIDBase uint32 = 0x10000000
	npcIDBase       uint32 = 0x20000000
)

// ObjectIDGenerator hands out unique object ids for actors.
type ObjectIDGenerator struct {
	nextCharacterID atomic.Uint32
	nextNpcID       atomic.Uint32
}

// NewObjectIDGenerator creates a generator positioned at the start of every range.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextCharacterID.Store(characterIDBase)
	gen.nextNpcID.Store(npcIDBase)
	return gen
}

// NextCharacterID returns the next character id. Safe for concurrent use.
func (g *ObjectIDGenerator) NextCharacterID() uint32 {
	return g.nextCharacterID.Add(1)
}

// NextNpcID returns the next NPC id. Safe for concurrent use.
func (g *ObjectIDGenerator) NextNpcID() uint32 {
	return g.nextNpcID.Add(1)
}

// IsNpcID reports whether id lies in the NPC range.
func IsNpcID(id uint32) bool {
	return id > npcIDBase && id < npcIDBase+0x10000000
}
