// Package generator produces internally consistent synthetic rows for
// the transit schema. Each Generate method reads the current repository
// state to satisfy uniqueness and referential constraints, then returns
// a new entity for the caller to persist.
package generator

import (
	"errors"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/citytransit/transitseed/dataobjects"
)

// Repository is the persistence surface the generator reads existing
// state from. A few operations also write through it: role allocation
// can create a user, driver generation can create a license, ticket
// generation creates the purchase, and the ticket type catalog is
// persisted as a whole batch.
type Repository interface {
	Users() ([]*dataobjects.AppUser, error)
	InsertUser(user *dataobjects.AppUser) error
	DriversLicenses() ([]*dataobjects.DriversLicense, error)
	InsertDriversLicense(license *dataobjects.DriversLicense) error
	Drivers() ([]*dataobjects.Driver, error)
	Passengers() ([]*dataobjects.Passenger, error)
	TicketInspectors() ([]*dataobjects.TicketInspector, error)
	Editors() ([]*dataobjects.Editor, error)
	Vehicles() ([]*dataobjects.Vehicle, error)
	Stops() ([]*dataobjects.Stop, error)
	Paths() ([]*dataobjects.Path, error)
	Lines() ([]*dataobjects.Line, error)
	Rides() ([]*dataobjects.Ride, error)
	TicketTypes() ([]*dataobjects.TicketType, error)
	InsertTicketType(ticketType *dataobjects.TicketType) error
	InsertPurchase(purchase *dataobjects.Purchase) error
}

// ErrInsufficientData means the entities a generator depends on do not
// exist yet. Nothing is persisted when this is returned.
var ErrInsufficientData = errors.New("insufficient data")

// ErrNamespaceExhausted means rejection sampling ran out of attempts
// without finding a candidate satisfying the uniqueness constraint.
var ErrNamespaceExhausted = errors.New("namespace exhausted")

// maxSampleAttempts bounds every rejection sampling loop. The original
// constraints leave plenty of headroom, so hitting the budget means the
// namespace is (close to) saturated rather than unlucky.
const maxSampleAttempts = 10000

// Generator produces entity values consistent with the repository state
type Generator struct {
	repo Repository
	fake *gofakeit.Faker
}

// New returns a Generator backed by the given repository. A seed of 0
// picks a random seed.
func New(repo Repository, seed int64) *Generator {
	return &Generator{
		repo: repo,
		fake: gofakeit.New(seed),
	}
}

// sampleUnique draws candidates until one is not in taken, up to the
// attempt budget
func (g *Generator) sampleUnique(taken map[string]bool, draw func() string) (string, error) {
	for i := 0; i < maxSampleAttempts; i++ {
		if candidate := draw(); !taken[candidate] {
			return candidate, nil
		}
	}
	return "", ErrNamespaceExhausted
}

// weighted picks one of the options according to their relative weights
func (g *Generator) weighted(options []string, weights []float32) string {
	anyOptions := make([]any, len(options))
	for i, option := range options {
		anyOptions[i] = option
	}
	choice, err := g.fake.Weighted(anyOptions, weights)
	if err != nil {
		return options[0]
	}
	return choice.(string)
}

// chance returns true with the given percent probability
func (g *Generator) chance(percent int) bool {
	return g.fake.Number(1, 100) <= percent
}

// dateThisDecade returns a timestamp between the start of the current
// decade and now
func (g *Generator) dateThisDecade() time.Time {
	now := time.Now()
	decadeStart := time.Date(now.Year()-now.Year()%10, time.January, 1, 0, 0, 0, 0, now.Location())
	return g.fake.DateRange(decadeStart, now)
}

// dateBetween returns a timestamp in [start, end]
func (g *Generator) dateBetween(start, end time.Time) time.Time {
	return g.fake.DateRange(start, end)
}

// walkCoordinate advances a bounded random walk from the given origin:
// a uniform step in [-0.25, 0.25] is proposed and redrawn while it
// would leave [min, max], so the result is always within bounds.
func (g *Generator) walkCoordinate(origin, min, max float64) (float64, error) {
	for i := 0; i < maxSampleAttempts; i++ {
		next := origin + float64(g.fake.Number(-250000, 250000))/1000000
		if next >= min && next <= max {
			return next, nil
		}
	}
	return 0, ErrNamespaceExhausted
}

func roundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
