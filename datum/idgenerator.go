package datum

import (
	"crypto/rand"
	"encoding/hex"
)

//go:generate mockgen --build_flags=--mod=mod -source=./idgenerator.go -destination=./test/mock_idgenerator.go -package test MockIdGenerator

type IdGenerator interface {
	NewId() string
}

// RandomIdGenerator produces 16 random bytes, hex encoded.
type RandomIdGenerator struct{}

func (RandomIdGenerator) NewId() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
