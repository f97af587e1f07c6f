package generator

import (
	"fmt"
	"time"

	"github.com/citytransit/transitseed/dataobjects"
)

// Default pricing knobs for the fare catalog and fines
const (
	DefaultPricePerMinute = 0.2
	DefaultPricePerDay    = 6.0
	DefaultFineAmount     = 250
)

var (
	minuteTicketDurations = []int{15, 30, 45, 60, 90}
	dayTicketDurations    = []int{1, 2, 3, 7, 30, 90, 180, 365}
)

// GenerateTicketTypes builds and persists the whole fare catalog: the
// cross product of durations and discount types. Longer validity earns
// a duration rebate (up to 35% for minute tickets, 30% for day tickets)
// and the discounted variant always costs half the normal one.
// Rates of 0 or less fall back to the defaults.
func (g *Generator) GenerateTicketTypes(pricePerMinute, pricePerDay float64) ([]*dataobjects.TicketType, error) {
	if pricePerMinute <= 0 {
		pricePerMinute = DefaultPricePerMinute
	}
	if pricePerDay <= 0 {
		pricePerDay = DefaultPricePerDay
	}

	discountTypes := []dataobjects.TicketDiscountType{
		dataobjects.TicketDiscountTypeNormal,
		dataobjects.TicketDiscountTypeDiscounted,
	}

	ticketTypes := []*dataobjects.TicketType{}
	maxMinutes := minuteTicketDurations[len(minuteTicketDurations)-1]
	for _, minutes := range minuteTicketDurations {
		for _, discount := range discountTypes {
			price := pricePerMinute * float64(minutes) *
				(1 - float64(minutes)/float64(maxMinutes)*0.35) *
				discountFactor(discount)
			ticketTypes = append(ticketTypes, &dataobjects.TicketType{
				Name:             fmt.Sprintf("%d minutes ticket - %s", minutes, discount),
				Type:             discount,
				Price:            roundMoney(price),
				ValidityDuration: minutes,
				IsDiscounted:     discount == dataobjects.TicketDiscountTypeDiscounted,
			})
		}
	}
	maxDays := dayTicketDurations[len(dayTicketDurations)-1]
	for _, days := range dayTicketDurations {
		for _, discount := range discountTypes {
			price := pricePerDay * float64(days) *
				(1 - float64(days)/float64(maxDays)*0.3) *
				discountFactor(discount)
			ticketTypes = append(ticketTypes, &dataobjects.TicketType{
				Name:             fmt.Sprintf("%d days ticket - %s", days, discount),
				Type:             discount,
				Price:            roundMoney(price),
				ValidityDuration: days * 24 * 60,
				IsDiscounted:     discount == dataobjects.TicketDiscountTypeDiscounted,
			})
		}
	}

	for _, ticketType := range ticketTypes {
		if err := g.repo.InsertTicketType(ticketType); err != nil {
			return nil, fmt.Errorf("GenerateTicketTypes: %w", err)
		}
	}
	return ticketTypes, nil
}

func discountFactor(discount dataobjects.TicketDiscountType) float64 {
	if discount == dataobjects.TicketDiscountTypeDiscounted {
		return 0.5
	}
	return 1
}

// GeneratePurchase produces a payment record over the given amount
func (g *Generator) GeneratePurchase(amount float64) (*dataobjects.Purchase, error) {
	return &dataobjects.Purchase{
		Date:   g.dateThisDecade(),
		Amount: amount,
	}, nil
}

// GenerateTicket produces a ticket for a random passenger and ticket
// type. The backing purchase is generated and persisted here, priced at
// the chosen ticket type.
func (g *Generator) GenerateTicket() (*dataobjects.Ticket, error) {
	passengers, err := g.repo.Passengers()
	if err != nil {
		return nil, fmt.Errorf("GenerateTicket: %w", err)
	}
	ticketTypes, err := g.repo.TicketTypes()
	if err != nil {
		return nil, fmt.Errorf("GenerateTicket: %w", err)
	}
	if len(passengers) == 0 || len(ticketTypes) == 0 {
		return nil, fmt.Errorf("GenerateTicket: needs passengers and ticket types: %w", ErrInsufficientData)
	}

	ticketType := ticketTypes[g.fake.Number(0, len(ticketTypes)-1)]
	purchase, err := g.GeneratePurchase(ticketType.Price)
	if err != nil {
		return nil, err
	}
	if err := g.repo.InsertPurchase(purchase); err != nil {
		return nil, fmt.Errorf("GenerateTicket: %w", err)
	}

	return &dataobjects.Ticket{
		Passenger:  passengers[g.fake.Number(0, len(passengers)-1)],
		Purchase:   purchase,
		TicketType: ticketType,
	}, nil
}

// GenerateFine produces a fine issued by a random inspector to a random
// passenger, due 90 days after issue. An amount of 0 or less means
// DefaultFineAmount.
func (g *Generator) GenerateFine(amount float64) (*dataobjects.Fine, error) {
	if amount <= 0 {
		amount = DefaultFineAmount
	}
	passengers, err := g.repo.Passengers()
	if err != nil {
		return nil, fmt.Errorf("GenerateFine: %w", err)
	}
	inspectors, err := g.repo.TicketInspectors()
	if err != nil {
		return nil, fmt.Errorf("GenerateFine: %w", err)
	}
	if len(passengers) == 0 || len(inspectors) == 0 {
		return nil, fmt.Errorf("GenerateFine: needs passengers and inspectors: %w", ErrInsufficientData)
	}

	issueDate := g.dateThisDecade()
	return &dataobjects.Fine{
		Passenger: passengers[g.fake.Number(0, len(passengers)-1)],
		Inspector: inspectors[g.fake.Number(0, len(inspectors)-1)],
		Amount:    amount,
		IssueDate: issueDate,
		Deadline:  issueDate.Add(90 * 24 * time.Hour),
		Status: dataobjects.FineStatus(g.weighted(
			[]string{string(dataobjects.FineStatusPaid), string(dataobjects.FineStatusUnpaid)},
			[]float32{0.95, 0.05})),
	}, nil
}

// GenerateInspection produces a ticket check on a random ride by a
// random inspector
func (g *Generator) GenerateInspection() (*dataobjects.Inspection, error) {
	inspectors, err := g.repo.TicketInspectors()
	if err != nil {
		return nil, fmt.Errorf("GenerateInspection: %w", err)
	}
	rides, err := g.repo.Rides()
	if err != nil {
		return nil, fmt.Errorf("GenerateInspection: %w", err)
	}
	if len(inspectors) == 0 || len(rides) == 0 {
		return nil, fmt.Errorf("GenerateInspection: needs inspectors and rides: %w", ErrInsufficientData)
	}

	return &dataobjects.Inspection{
		Inspector: inspectors[g.fake.Number(0, len(inspectors)-1)],
		Ride:      rides[g.fake.Number(0, len(rides)-1)],
		Date:      g.dateThisDecade(),
	}, nil
}
