package models

// Moment is an opaque, totally ordered scheduling instant (unix milliseconds).
// The zero value means "not yet scheduled".
type Moment int64

// Balance is an amount of funds that can be held in escrow.
type Balance uint64

// HuddleID uniquely identifies a huddle. Ids are allocated monotonically,
// start at 1 and are never reused.
type HuddleID uint64

// HuddleStatus is the lifecycle state of a huddle.
type HuddleStatus string

const (
	// HuddleStatusCreated marks a host-created huddle that is open for bids.
	HuddleStatusCreated HuddleStatus = "created"
	// HuddleStatusOpen marks a guest-opened huddle the host has not accepted yet.
	HuddleStatusOpen HuddleStatus = "open"
	// HuddleStatusInAuction marks a scheduled huddle with at least one bid.
	HuddleStatusInAuction HuddleStatus = "in_auction"
	// HuddleStatusConcluded marks a claimed huddle. Terminal; only the star
	// rating may still change.
	HuddleStatusConcluded HuddleStatus = "concluded"
)

// BidStatus is the lifecycle state of a guest's bid on one huddle.
type BidStatus string

const (
	// BidStatusWinning is the currently winning bid.
	BidStatusWinning BidStatus = "winning"
	// BidStatusSurpassed is a bid displaced by a higher one. The guest may
	// rebid, which flips the same entry back to winning.
	BidStatusSurpassed BidStatus = "surpassed"
	// BidStatusWinner is the bid that won a concluded huddle. Terminal.
	BidStatusWinner BidStatus = "winner"
)

// Huddle represents one schedulable meeting slot and its auction state.
type Huddle struct {
	ID          HuddleID     `json:"id"`
	ScheduledAt Moment       `json:"scheduled_at"`
	Guest       string       `json:"guest,omitempty"` // account holding the winning bid; empty until the first bid
	Value       Balance      `json:"value"`
	Status      HuddleStatus `json:"status"`
	Stars       uint8        `json:"stars"`
}

// Bid represents a guest's recorded offer and its status for one huddle.
type Bid struct {
	HuddleID HuddleID  `json:"huddle_id"`
	Value    Balance   `json:"value"`
	Status   BidStatus `json:"status"`
}

// UserProfile binds a host account to its social identity.
type UserProfile struct {
	SocialAccount []byte `json:"social_account"`
	SocialProof   []byte `json:"social_proof"`
}
