package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var (
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
)

// RandomElement returns one of values, which must not be empty.
func RandomElement[T any](values []T) T {
	return values[Rand.Intn(len(values))]
}

// Shuffled returns a shuffled copy of values.
func Shuffled[T any](values []T) []T {
	shuffled := append(make([]T, 0, len(values)), values...)
	Rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
