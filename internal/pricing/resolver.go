package pricing

import (
	"context"
	"time"

	"github.com/Edonabdullahu1/city-sub002/internal/availability"
	"github.com/Edonabdullahu1/city-sub002/internal/catalog"
	"github.com/Edonabdullahu1/city-sub002/internal/daterange"
	"github.com/Edonabdullahu1/city-sub002/internal/occupancy"
)

// Resolver turns a rate card and an occupancy assignment into nightly and
// stay prices, honoring per-day price overrides from the availability
// calendar. All results are minor currency units.
type Resolver struct {
	avail availability.Repository
}

func NewResolver(avail availability.Repository) *Resolver {
	return &Resolver{avail: avail}
}

// cardNightly derives the rate-card nightly price for the party: room base
// by adult count, extra beds for third and fourth adults, then each child
// by their pricing tier.
func cardNightly(rc *catalog.RateCard, party occupancy.Party, asg occupancy.Assignment) int64 {
	var total int64
	if party.Adults == 1 {
		total = rc.Single
	} else {
		total = rc.Double + int64(asg.ExtraAdults(party.Adults))*rc.ExtraBed
	}

	for _, tier := range asg.ChildTiers {
		switch tier {
		case occupancy.TierChild:
			total += rc.ChildPrice
		case occupancy.TierAdult:
			total += rc.ExtraBed
		}
		// TierFree adds nothing.
	}
	return total
}

// NightlyPrice resolves the price of one night. A stored price override
// for that day replaces the rate-card derivation outright; it is the full
// nightly price, not a surcharge.
func (r *Resolver) NightlyPrice(ctx context.Context, rc *catalog.RateCard, party occupancy.Party, asg occupancy.Assignment, day time.Time) (int64, error) {
	stored, err := r.avail.GetDay(ctx, rc.RoomID, day)
	if err != nil {
		return 0, err
	}
	if stored != nil && stored.PriceOverride != nil {
		return *stored.PriceOverride, nil
	}
	return cardNightly(rc, party, asg), nil
}

// StayPrice sums NightlyPrice over every night of the stay. It is a
// day-by-day walk, never nightly x nights: holiday overrides make nights
// genuinely different from each other.
func (r *Resolver) StayPrice(ctx context.Context, rc *catalog.RateCard, party occupancy.Party, asg occupancy.Assignment, rng daterange.Range) (int64, error) {
	var total int64
	for _, day := range rng.Days() {
		nightly, err := r.NightlyPrice(ctx, rc, party, asg, day)
		if err != nil {
			return 0, err
		}
		total += nightly
	}
	return total, nil
}
