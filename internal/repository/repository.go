package repository

import (
	"fmt"
	"sort"
	"sync"

	"huddle-auction/internal/auctionerrors"
	"huddle-auction/internal/models"
)

// HuddleRegistry owns each host's bounded ordered huddle collection.
// Collections are kept sorted by id at all times; ids are allocated
// monotonically, so sortedness is maintained by always appending.
type HuddleRegistry interface {
	Huddles(host string) []models.Huddle
	FindHuddle(host string, id models.HuddleID) (models.Huddle, bool)
	InsertHuddle(host string, h models.Huddle) error
	UpdateHuddles(host string, hs []models.Huddle)
}

// BidLedger owns each guest's bounded ordered bid collection, at most one
// entry per huddle id.
type BidLedger interface {
	Bids(guest string) []models.Bid
	FindBid(guest string, id models.HuddleID) (models.Bid, bool)
	UpsertBid(guest string, b models.Bid) error
	UpdateBids(guest string, bs []models.Bid)
}

// ProfileStore binds host accounts to their social identities.
type ProfileStore interface {
	Profile(host string) (models.UserProfile, bool)
	PutProfile(host string, p models.UserProfile)
}

// MemoryStore is a concurrency-safe in-memory implementation of
// HuddleRegistry, BidLedger and ProfileStore. Reads return copies, so
// callers can stage mutations and write them back as a whole collection.
type MemoryStore struct {
	mu                sync.RWMutex
	profiles          map[string]models.UserProfile
	huddles           map[string][]models.Huddle // key: host account
	bids              map[string][]models.Bid    // key: guest account
	maxHuddlesPerHost int
	maxBidsPerGuest   int
}

// NewMemoryStore creates a store with the given per-account capacity limits.
func NewMemoryStore(maxHuddlesPerHost, maxBidsPerGuest int) *MemoryStore {
	return &MemoryStore{
		profiles:          make(map[string]models.UserProfile),
		huddles:           make(map[string][]models.Huddle),
		bids:              make(map[string][]models.Bid),
		maxHuddlesPerHost: maxHuddlesPerHost,
		maxBidsPerGuest:   maxBidsPerGuest,
	}
}

// Huddles returns a copy of the host's huddles, nil if the host has none.
func (s *MemoryStore) Huddles(host string) []models.Huddle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hs, ok := s.huddles[host]
	if !ok {
		return nil
	}
	return append([]models.Huddle(nil), hs...)
}

// FindHuddle looks up one huddle by binary search over the host's collection.
func (s *MemoryStore) FindHuddle(host string, id models.HuddleID) (models.Huddle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hs := s.huddles[host]
	pos, ok := searchHuddles(hs, id)
	if !ok {
		return models.Huddle{}, false
	}
	return hs[pos], true
}

// InsertHuddle appends to the host's collection, enforcing the per-host
// capacity and the append-only id ordering invariant.
func (s *MemoryStore) InsertHuddle(host string, h models.Huddle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hs := s.huddles[host]
	if len(hs) >= s.maxHuddlesPerHost {
		return fmt.Errorf("insert huddle %d for host %s: %w", h.ID, host, auctionerrors.ErrTooManyHuddles)
	}
	if len(hs) > 0 && h.ID <= hs[len(hs)-1].ID {
		return fmt.Errorf("insert huddle %d for host %s: out of order: %w", h.ID, host, auctionerrors.ErrInvalidHuddleID)
	}

	s.huddles[host] = append(hs, h)
	return nil
}

// UpdateHuddles replaces the host's whole collection (write-back after staged
// in-place mutations; no partial persistence of a single record).
func (s *MemoryStore) UpdateHuddles(host string, hs []models.Huddle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.huddles[host] = append([]models.Huddle(nil), hs...)
}

// Bids returns a copy of the guest's bids, nil if the guest has none.
func (s *MemoryStore) Bids(guest string) []models.Bid {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bs, ok := s.bids[guest]
	if !ok {
		return nil
	}
	return append([]models.Bid(nil), bs...)
}

// FindBid looks up the guest's bid for one huddle by binary search.
func (s *MemoryStore) FindBid(guest string, id models.HuddleID) (models.Bid, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bs := s.bids[guest]
	pos, ok := searchBids(bs, id)
	if !ok {
		return models.Bid{}, false
	}
	return bs[pos], true
}

// UpsertBid overwrites the guest's existing entry for the bid's huddle, or
// appends a new one, enforcing the per-guest capacity.
func (s *MemoryStore) UpsertBid(guest string, b models.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bs := s.bids[guest]
	if pos, ok := searchBids(bs, b.HuddleID); ok {
		bs[pos] = b
		return nil
	}
	if len(bs) >= s.maxBidsPerGuest {
		return fmt.Errorf("upsert bid on huddle %d for guest %s: %w", b.HuddleID, guest, auctionerrors.ErrTooManyBids)
	}
	if len(bs) > 0 && b.HuddleID < bs[len(bs)-1].HuddleID {
		// A fresh bid on an older huddle still has to keep the collection sorted.
		pos := sort.Search(len(bs), func(i int) bool { return bs[i].HuddleID >= b.HuddleID })
		bs = append(bs, models.Bid{})
		copy(bs[pos+1:], bs[pos:])
		bs[pos] = b
		s.bids[guest] = bs
		return nil
	}

	s.bids[guest] = append(bs, b)
	return nil
}

// UpdateBids replaces the guest's whole collection (write-back semantics).
func (s *MemoryStore) UpdateBids(guest string, bs []models.Bid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bids[guest] = append([]models.Bid(nil), bs...)
}

// Profile returns the host's registered profile, if any.
func (s *MemoryStore) Profile(host string) (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[host]
	return p, ok
}

// PutProfile inserts or updates the host's profile.
func (s *MemoryStore) PutProfile(host string, p models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[host] = p
}

// searchHuddles binary-searches a sorted huddle slice for an id.
func searchHuddles(hs []models.Huddle, id models.HuddleID) (int, bool) {
	i := sort.Search(len(hs), func(i int) bool { return hs[i].ID >= id })
	return i, i < len(hs) && hs[i].ID == id
}

// searchBids binary-searches a sorted bid slice for a huddle id.
func searchBids(bs []models.Bid, id models.HuddleID) (int, bool) {
	i := sort.Search(len(bs), func(i int) bool { return bs[i].HuddleID >= id })
	return i, i < len(bs) && bs[i].HuddleID == id
}
