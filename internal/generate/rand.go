package generate

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Source provides the two random streams one entity generation draws from:
// structured fake values (names, addresses, phones) and plain numeric or
// categorical sampling. Both streams are seeded with the same value, so a
// Source rebuilt with the same seed replays the exact same sequences.
type Source struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

func NewSource(seed int64) *Source {
	return &Source{
		faker: gofakeit.New(uint64(seed)),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (s *Source) FirstName() string   { return s.faker.FirstName() }
func (s *Source) LastName() string    { return s.faker.LastName() }
func (s *Source) Phone() string       { return s.faker.Phone() }
func (s *Source) Street() string      { return s.faker.Street() }
func (s *Source) City() string        { return s.faker.City() }
func (s *Source) StateAbr() string    { return s.faker.StateAbr() }
func (s *Source) Zip() string         { return s.faker.Zip() }
func (s *Source) ProductName() string { return s.faker.ProductName() }

// TimeBetween returns a timestamp uniformly distributed in [start, end].
func (s *Source) TimeBetween(start, end time.Time) time.Time {
	return s.faker.DateRange(start, end)
}

// Float returns a uniform float64 in [lo, hi).
func (s *Source) Float(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Int returns a uniform int in [lo, hi].
func (s *Source) Int(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Choice returns a uniformly sampled element of opts.
func Choice[T any](s *Source, opts []T) T {
	return opts[s.rng.Intn(len(opts))]
}
