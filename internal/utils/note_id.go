package utils

import "math/rand/v2"

// Bounds of locally generated note identifiers.
const (
	MinLocalNoteID = 1000
	MaxLocalNoteID = 9999
)

// NoteIDGenerator draws identifiers for locally created notes uniformly
// from [MinLocalNoteID, MaxLocalNoteID]. Collisions are not checked.
type NoteIDGenerator struct {
}

func NewNoteIDGenerator() *NoteIDGenerator {
	return &NoteIDGenerator{}
}

func (g *NoteIDGenerator) Generate() int {
	return MinLocalNoteID + rand.IntN(MaxLocalNoteID-MinLocalNoteID+1)
}
