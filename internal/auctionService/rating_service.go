package auction

import (
	"fmt"

	"huddle-auction/internal/auctionerrors"
	"huddle-auction/internal/clock"
	"huddle-auction/internal/events"
	"huddle-auction/internal/idalloc"
	"huddle-auction/internal/models"
	"huddle-auction/internal/repository"
)

// RatingService records a winning guest's rating of a concluded huddle.
// It reads the bid ledger and mutates the huddle registry only.
type RatingService struct {
	huddles repository.HuddleRegistry
	bids    repository.BidLedger
	ids     *idalloc.Allocator
	clock   clock.Clock
	sink    events.Sink
}

// NewRatingService creates a RatingService wired to its collaborators.
func NewRatingService(
	huddles repository.HuddleRegistry,
	bids repository.BidLedger,
	ids *idalloc.Allocator,
	clk clock.Clock,
	sink events.Sink,
) *RatingService {
	return &RatingService{
		huddles: huddles,
		bids:    bids,
		ids:     ids,
		clock:   clk,
		sink:    sink,
	}
}

// Rate stores the guest's star rating on the huddle. Only the account whose
// bid holds winner status may rate, and only once the slot time has passed.
// A repeated call overwrites the previous rating.
func (s *RatingService) Rate(guest, host string, id models.HuddleID, stars uint8) error {
	if guest == host {
		return fmt.Errorf("service: rate huddle %d: %w", id, auctionerrors.ErrSelfRate)
	}
	if stars > 5 {
		return fmt.Errorf("service: rate huddle %d: %w", id, auctionerrors.ErrMaxStars)
	}
	if id == 0 || id > s.ids.Last() {
		return fmt.Errorf("service: rate huddle %d: %w", id, auctionerrors.ErrInvalidHuddleID)
	}

	hs := s.huddles.Huddles(host)
	pos, ok := searchHuddles(hs, id)
	if !ok {
		return fmt.Errorf("service: rate huddle %d: %w", id, auctionerrors.ErrHostInvalidHuddleID)
	}

	now := s.clock.Now()
	if hs[pos].ScheduledAt == 0 || hs[pos].ScheduledAt >= now {
		return fmt.Errorf("service: rate huddle %d: scheduled %d, now %d: %w",
			id, hs[pos].ScheduledAt, now, auctionerrors.ErrTimestampNotReached)
	}

	bid, ok := s.bids.FindBid(guest, id)
	if !ok || bid.Status != models.BidStatusWinner {
		return fmt.Errorf("service: rate huddle %d: %w", id, auctionerrors.ErrNotWinnerBid)
	}

	hs[pos].Stars = stars
	s.huddles.UpdateHuddles(host, hs)

	ev := events.New(events.TypeRatingSent)
	ev.Host = host
	ev.Guest = guest
	ev.HuddleID = id
	ev.Stars = stars
	s.sink.Emit(ev)
	return nil
}
