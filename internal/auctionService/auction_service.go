package auction

import (
	"fmt"

	"huddle-auction/internal/auctionerrors"
	"huddle-auction/internal/clock"
	"huddle-auction/internal/config"
	"huddle-auction/internal/escrow"
	"huddle-auction/internal/events"
	"huddle-auction/internal/idalloc"
	"huddle-auction/internal/models"
	"huddle-auction/internal/repository"
)

// Engine orchestrates every public auction operation over the keyed stores.
//
// Each operation is a finite, non-suspending computation executed under a
// single sequential model: all validations and escrow calls run first against
// staged copies, and store write-back happens only once nothing can fail
// anymore. A failed call leaves entities and escrow exactly as before.
type Engine struct {
	huddles  repository.HuddleRegistry
	bids     repository.BidLedger
	profiles repository.ProfileStore
	ids      *idalloc.Allocator
	escrow   escrow.Controller
	clock    clock.Clock
	sink     events.Sink
	limits   config.Limits
}

// NewEngine creates an Engine wired to its collaborators.
func NewEngine(
	huddles repository.HuddleRegistry,
	bids repository.BidLedger,
	profiles repository.ProfileStore,
	ids *idalloc.Allocator,
	esc escrow.Controller,
	clk clock.Clock,
	sink events.Sink,
	limits config.Limits,
) *Engine {
	return &Engine{
		huddles:  huddles,
		bids:     bids,
		profiles: profiles,
		ids:      ids,
		escrow:   esc,
		clock:    clk,
		sink:     sink,
		limits:   limits,
	}
}

// Register binds the caller's account to a social identity, upserting any
// previous binding.
func (e *Engine) Register(caller string, socialAccount, socialProof []byte) error {
	if len(socialAccount) > e.limits.MaxSocialAccountLen {
		return fmt.Errorf("service: register %s: %w", caller, auctionerrors.ErrSocialAccountTooLong)
	}
	if len(socialProof) > e.limits.MaxSocialProofLen {
		return fmt.Errorf("service: register %s: %w", caller, auctionerrors.ErrSocialProofTooLong)
	}

	e.profiles.PutProfile(caller, models.UserProfile{
		SocialAccount: socialAccount,
		SocialProof:   socialProof,
	})

	ev := events.New(events.TypeHostRegistered)
	ev.Host = caller
	e.sink.Emit(ev)
	return nil
}

// Create lets a registered host offer a new huddle at a floor value,
// scheduled sufficiently far in the future.
func (e *Engine) Create(host string, scheduledAt models.Moment, floor models.Balance) (models.Huddle, error) {
	if _, ok := e.profiles.Profile(host); !ok {
		return models.Huddle{}, fmt.Errorf("service: create for %s: %w", host, auctionerrors.ErrHostNotRegistered)
	}

	now := e.clock.Now()
	if scheduledAt < now+e.limits.MinScheduleLead {
		return models.Huddle{}, fmt.Errorf("service: create for %s: scheduled %d, now %d: %w",
			host, scheduledAt, now, auctionerrors.ErrInvalidTimestamp)
	}

	id, err := e.ids.Next()
	if err != nil {
		return models.Huddle{}, fmt.Errorf("service: create for %s: %w", host, err)
	}

	h := models.Huddle{
		ID:          id,
		ScheduledAt: scheduledAt,
		Value:       floor,
		Status:      models.HuddleStatusCreated,
	}
	if err := e.huddles.InsertHuddle(host, h); err != nil {
		return models.Huddle{}, fmt.Errorf("service: create for %s: %w", host, err)
	}
	e.ids.Commit(id)

	ev := events.New(events.TypeHuddleCreated)
	ev.Host = host
	ev.HuddleID = id
	ev.Value = floor
	ev.ScheduledAt = scheduledAt
	e.sink.Emit(ev)
	return h, nil
}

// Open lets a guest request a huddle with a host who has not offered one,
// reserving the opening value immediately. The huddle has no schedule until
// the host accepts.
func (e *Engine) Open(guest, host string, value models.Balance) (models.Huddle, error) {
	if guest == host {
		return models.Huddle{}, fmt.Errorf("service: open with %s: %w", host, auctionerrors.ErrSelfBid)
	}
	if _, ok := e.profiles.Profile(host); !ok {
		return models.Huddle{}, fmt.Errorf("service: open with %s: %w", host, auctionerrors.ErrHostNotRegistered)
	}

	hs := e.huddles.Huddles(host)
	if len(hs) >= e.limits.MaxHuddlesPerHost {
		return models.Huddle{}, fmt.Errorf("service: open with %s: %w", host, auctionerrors.ErrTooManyHuddles)
	}
	// A host's offers form a monotonic floor: a fresh opening may not undercut
	// the most recently appended huddle.
	if len(hs) > 0 && value < hs[len(hs)-1].Value {
		return models.Huddle{}, fmt.Errorf("service: open with %s: floor is %d: %w",
			host, hs[len(hs)-1].Value, auctionerrors.ErrBidTooLow)
	}
	if err := e.checkBidCapacity(guest, 0); err != nil {
		return models.Huddle{}, fmt.Errorf("service: open with %s: %w", host, err)
	}

	id, err := e.ids.Next()
	if err != nil {
		return models.Huddle{}, fmt.Errorf("service: open with %s: %w", host, err)
	}

	if err := e.escrow.Reserve(guest, value); err != nil {
		return models.Huddle{}, fmt.Errorf("service: open with %s: %w", host, err)
	}

	h := models.Huddle{
		ID:     id,
		Guest:  guest,
		Value:  value,
		Status: models.HuddleStatusOpen,
	}
	if err := e.huddles.InsertHuddle(host, h); err != nil {
		_ = e.escrow.Release(guest, value)
		return models.Huddle{}, fmt.Errorf("service: open with %s: %w", host, err)
	}
	if err := e.bids.UpsertBid(guest, models.Bid{HuddleID: id, Value: value, Status: models.BidStatusWinning}); err != nil {
		return models.Huddle{}, fmt.Errorf("service: open with %s: %w", host, err)
	}
	e.ids.Commit(id)

	ev := events.New(events.TypeHuddleOpen)
	ev.Host = host
	ev.Guest = guest
	ev.HuddleID = id
	ev.Value = value
	e.sink.Emit(ev)
	return h, nil
}

// Accept lets the host schedule a huddle and put it in auction. A host may
// call it again to reschedule; the new time must still be in the future by
// the configured lead.
func (e *Engine) Accept(host string, id models.HuddleID, scheduledAt models.Moment) error {
	hs, pos, err := e.lookupHuddle(host, id)
	if err != nil {
		return fmt.Errorf("service: accept huddle %d: %w", id, err)
	}
	if hs[pos].Status == models.HuddleStatusConcluded {
		return fmt.Errorf("service: accept huddle %d: %w", id, auctionerrors.ErrAlreadyConcluded)
	}

	now := e.clock.Now()
	if scheduledAt < now+e.limits.MinScheduleLead {
		return fmt.Errorf("service: accept huddle %d: scheduled %d, now %d: %w",
			id, scheduledAt, now, auctionerrors.ErrInvalidTimestamp)
	}

	hs[pos].ScheduledAt = scheduledAt
	hs[pos].Status = models.HuddleStatusInAuction
	e.huddles.UpdateHuddles(host, hs)

	ev := events.New(events.TypeHuddleAccepted)
	ev.Host = host
	ev.HuddleID = id
	ev.ScheduledAt = scheduledAt
	e.sink.Emit(ev)
	return nil
}

// PlaceBid records a guest's bid on a host's huddle, releasing the prior
// winner's reservation and reserving the new value.
func (e *Engine) PlaceBid(guest, host string, id models.HuddleID, value models.Balance) error {
	if guest == host {
		return fmt.Errorf("service: bid on huddle %d: %w", id, auctionerrors.ErrSelfBid)
	}

	hs, pos, err := e.lookupHuddle(host, id)
	if err != nil {
		return fmt.Errorf("service: bid on huddle %d: %w", id, err)
	}
	h := hs[pos]

	now := e.clock.Now()
	// Guest-opened huddles carry no schedule until accepted, so the deadline
	// check only applies once one exists.
	if h.Status != models.HuddleStatusOpen && h.ScheduledAt < now {
		return fmt.Errorf("service: bid on huddle %d: slot already past: %w", id, auctionerrors.ErrInvalidTimestamp)
	}
	if value <= h.Value || value-h.Value <= e.limits.MinBidIncrement {
		return fmt.Errorf("service: bid on huddle %d: current value %d: %w", id, h.Value, auctionerrors.ErrBidTooLow)
	}
	if err := e.checkBidCapacity(guest, id); err != nil {
		return fmt.Errorf("service: bid on huddle %d: %w", id, err)
	}

	// Release the displaced winner's reservation before taking the new one.
	var prevBids []models.Bid
	var prevValue models.Balance
	released := false
	if h.Guest != "" {
		prevBids = e.bids.Bids(h.Guest)
		p, ok := searchBids(prevBids, id)
		if !ok {
			return fmt.Errorf("service: bid on huddle %d: no bid recorded for %s: %w", id, h.Guest, auctionerrors.ErrUnreserve)
		}
		prevValue = prevBids[p].Value
		if err := e.escrow.Release(h.Guest, prevValue); err != nil {
			return fmt.Errorf("service: bid on huddle %d: %w: %v", id, auctionerrors.ErrUnreserve, err)
		}
		prevBids[p].Status = models.BidStatusSurpassed
		released = true
	}

	if err := e.escrow.Reserve(guest, value); err != nil {
		if released {
			// Put the displaced winner's reservation back so the failed call
			// leaves escrow untouched.
			_ = e.escrow.Reserve(h.Guest, prevValue)
		}
		return fmt.Errorf("service: bid on huddle %d: %w", id, err)
	}

	// Commit phase: every check has passed and escrow is settled.
	if released {
		e.bids.UpdateBids(h.Guest, prevBids)
	}
	if err := e.bids.UpsertBid(guest, models.Bid{HuddleID: id, Value: value, Status: models.BidStatusWinning}); err != nil {
		return fmt.Errorf("service: bid on huddle %d: %w", id, err)
	}

	hs[pos].Value = value
	hs[pos].Guest = guest
	if h.Status != models.HuddleStatusOpen {
		hs[pos].Status = models.HuddleStatusInAuction
	}
	e.huddles.UpdateHuddles(host, hs)

	ev := events.New(events.TypeBidCreated)
	ev.Host = host
	ev.Guest = guest
	ev.HuddleID = id
	ev.Value = value
	e.sink.Emit(ev)
	return nil
}

// Claim concludes a huddle whose deadline has passed, repatriating the
// winning reservation to the host. Claiming an already concluded huddle
// fails and never moves funds again.
func (e *Engine) Claim(host string, id models.HuddleID) (models.Balance, error) {
	hs, pos, err := e.lookupHuddle(host, id)
	if err != nil {
		return 0, fmt.Errorf("service: claim huddle %d: %w", id, err)
	}
	h := hs[pos]

	if h.Status == models.HuddleStatusConcluded {
		return 0, fmt.Errorf("service: claim huddle %d: %w", id, auctionerrors.ErrAlreadyConcluded)
	}
	// An unscheduled huddle has no deadline to pass.
	now := e.clock.Now()
	if h.ScheduledAt == 0 || h.ScheduledAt >= now {
		return 0, fmt.Errorf("service: claim huddle %d: scheduled %d, now %d: %w",
			id, h.ScheduledAt, now, auctionerrors.ErrTimestampNotReached)
	}

	if h.Guest != "" {
		gbids := e.bids.Bids(h.Guest)
		p, ok := searchBids(gbids, id)
		if !ok {
			return 0, fmt.Errorf("service: claim huddle %d: no bid recorded for %s: %w", id, h.Guest, auctionerrors.ErrRepatriate)
		}
		if err := e.escrow.Repatriate(h.Guest, host, gbids[p].Value); err != nil {
			return 0, fmt.Errorf("service: claim huddle %d: %w: %v", id, auctionerrors.ErrRepatriate, err)
		}
		gbids[p].Status = models.BidStatusWinner
		e.bids.UpdateBids(h.Guest, gbids)
	}

	hs[pos].Status = models.HuddleStatusConcluded
	e.huddles.UpdateHuddles(host, hs)

	ev := events.New(events.TypeClaimed)
	ev.Host = host
	ev.Guest = h.Guest
	ev.HuddleID = id
	ev.Value = h.Value
	e.sink.Emit(ev)
	return h.Value, nil
}

// lookupHuddle loads the host's staged huddle collection and locates one id,
// distinguishing a never-issued id from one the host does not own.
func (e *Engine) lookupHuddle(host string, id models.HuddleID) ([]models.Huddle, int, error) {
	if id == 0 || id > e.ids.Last() {
		return nil, 0, auctionerrors.ErrInvalidHuddleID
	}
	hs := e.huddles.Huddles(host)
	pos, ok := searchHuddles(hs, id)
	if !ok {
		return nil, 0, auctionerrors.ErrHostInvalidHuddleID
	}
	return hs, pos, nil
}

// checkBidCapacity rejects a bid that would need a fresh ledger entry for a
// guest whose collection is already full. Run before any escrow call so the
// later upsert cannot fail.
func (e *Engine) checkBidCapacity(guest string, id models.HuddleID) error {
	if id != 0 {
		if _, ok := e.bids.FindBid(guest, id); ok {
			return nil
		}
	}
	if len(e.bids.Bids(guest)) >= e.limits.MaxBidsPerGuest {
		return auctionerrors.ErrTooManyBids
	}
	return nil
}
