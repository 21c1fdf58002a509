package pricing

import (
	"github.com/Edonabdullahu1/city-sub002/internal/occupancy"
)

// TransferTier is one vehicle class: the largest party it takes and its
// one-way rate in minor units.
type TransferTier struct {
	MaxPeople int
	Price     int64
}

// Policy holds the business parameters of package pricing that used to be
// scattered inline across the admin calculator: the default flight seat
// price, the transfer vehicle tiers and the child age bands. Injected at
// construction so every call site prices the same way.
type Policy struct {
	// FlightSeatPrice is charged per seat when the selected flight block
	// carries no price of its own.
	FlightSeatPrice int64

	// TransferTiers must be sorted ascending by MaxPeople. The last tier
	// takes any party too large for the others.
	TransferTiers []TransferTier

	AgeBands occupancy.AgeBands
}

// DefaultPolicy mirrors the agency's standing rates: EUR 120 per flight
// seat, sedan up to 3 people, van up to 7, minibus beyond.
func DefaultPolicy() Policy {
	return Policy{
		FlightSeatPrice: 12000,
		TransferTiers: []TransferTier{
			{MaxPeople: 3, Price: 4000},
			{MaxPeople: 7, Price: 7000},
			{MaxPeople: 99, Price: 12000},
		},
		AgeBands: occupancy.DefaultAgeBands(),
	}
}

// TransferCost picks the smallest vehicle that fits the party and doubles
// the rate for the round trip (arrival + departure).
func (p Policy) TransferCost(totalPeople int) int64 {
	for _, tier := range p.TransferTiers {
		if totalPeople <= tier.MaxPeople {
			return tier.Price * 2
		}
	}
	if len(p.TransferTiers) == 0 {
		return 0
	}
	return p.TransferTiers[len(p.TransferTiers)-1].Price * 2
}
