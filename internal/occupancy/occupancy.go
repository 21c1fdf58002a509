package occupancy

import (
	"fmt"
	"net/http"

	"github.com/Edonabdullahu1/city-sub002/internal/pkg/apperror"
)

var ErrInvalidParty = apperror.New(http.StatusBadRequest, "invalid party composition")

const (
	minAdults   = 1
	maxAdults   = 4
	maxChildren = 3
	maxChildAge = 17
)

// Room-type buckets a party can be assigned to. These are catalog labels:
// rate cards are filed under the same strings.
const (
	RoomSingle         = "Single"
	RoomSingleChild    = "Single + Child"
	RoomDouble         = "Double"
	RoomDoubleExtraBed = "Double + Extra Bed"
	RoomFamily         = "Family Room"
	RoomTriple         = "Triple"
	RoomQuad           = "Quad"
)

// Tier is the pricing treatment of a single child.
type Tier string

const (
	TierFree  Tier = "free"  // infants: no hotel charge
	TierChild Tier = "child" // charged the rate card's child price
	TierAdult Tier = "adult" // charged the extra-bed adult rate
)

// AgeBands configures the age thresholds (inclusive) for child pricing.
// A child aged <= InfantMaxAge stays free; aged <= ChildMaxAge pays the
// child rate; anyone older pays the adult extra-bed rate. Hotels and the
// admin calculator must share one policy, so it is configuration rather
// than a constant.
type AgeBands struct {
	InfantMaxAge int
	ChildMaxAge  int
}

// DefaultAgeBands is the agency's standing rule: infants 0-1 free,
// children 2-11 at the child rate.
func DefaultAgeBands() AgeBands {
	return AgeBands{InfantMaxAge: 1, ChildMaxAge: 11}
}

// Tier classifies a single child age.
func (b AgeBands) Tier(age int) Tier {
	switch {
	case age <= b.InfantMaxAge:
		return TierFree
	case age <= b.ChildMaxAge:
		return TierChild
	default:
		return TierAdult
	}
}

// Party is one occupancy configuration for a quote: the adults plus the
// explicit age of every child. Built per request, never persisted.
type Party struct {
	Adults    int
	ChildAges []int
}

// TotalPeople counts every traveller, infants included. Flights and
// transfers charge per head regardless of age.
func (p Party) TotalPeople() int {
	return p.Adults + len(p.ChildAges)
}

// Label is the display name for the configuration, e.g. "2 Adults + 1 Child".
// Quotes are deduplicated by (hotel, label), so two parties with the same
// composition collapse to one quote.
func (p Party) Label() string {
	label := fmt.Sprintf("%d Adult", p.Adults)
	if p.Adults != 1 {
		label += "s"
	}
	switch len(p.ChildAges) {
	case 0:
	case 1:
		label += " + 1 Child"
	default:
		label += fmt.Sprintf(" + %d Children", len(p.ChildAges))
	}
	return label
}

// Assignment is the result of classification: which room-type bucket the
// party books and how each child is priced, in ChildAges order.
type Assignment struct {
	RoomType   string
	ChildTiers []Tier
}

// ExtraAdults is the number of adults beyond the double-room base pair.
// A single traveller has none; the room base price already covers them.
func (a Assignment) ExtraAdults(adults int) int {
	if adults <= 2 {
		return 0
	}
	return adults - 2
}

// Classify maps a party onto a room-type bucket and per-child pricing tiers.
// The party must hold 1-4 adults and at most 3 children aged 0-17.
func Classify(p Party, bands AgeBands) (Assignment, error) {
	if p.Adults < minAdults || p.Adults > maxAdults {
		return Assignment{}, ErrInvalidParty
	}
	if len(p.ChildAges) > maxChildren {
		return Assignment{}, ErrInvalidParty
	}
	for _, age := range p.ChildAges {
		if age < 0 || age > maxChildAge {
			return Assignment{}, ErrInvalidParty
		}
	}

	tiers := make([]Tier, len(p.ChildAges))
	for i, age := range p.ChildAges {
		tiers[i] = bands.Tier(age)
	}

	return Assignment{
		RoomType:   roomType(p.Adults, len(p.ChildAges)),
		ChildTiers: tiers,
	}, nil
}

func roomType(adults, children int) string {
	switch adults {
	case 1:
		switch children {
		case 0:
			return RoomSingle
		case 1:
			// Child shares the parent's room.
			return RoomSingleChild
		default:
			return RoomFamily
		}
	case 2:
		switch children {
		case 0:
			return RoomDouble
		case 1:
			return RoomDoubleExtraBed
		default:
			return RoomFamily
		}
	case 3:
		if children == 0 {
			return RoomTriple
		}
		return RoomFamily
	default: // 4 adults
		if children == 0 {
			return RoomQuad
		}
		return RoomFamily
	}
}
