package utils

import "github.com/google/uuid"

// UUIDGenerator produces globally-unique identifiers for persisted entities.
// UUIDv7 is preferred because the embedded timestamp keeps b-tree indexes
// append-friendly; random v4 is the fallback when v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s is a syntactically valid UUID.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
