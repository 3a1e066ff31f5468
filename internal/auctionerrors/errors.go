package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrInvalidHuddleID     = errors.New("invalid huddle id")
	ErrHostInvalidHuddleID = errors.New("huddle id not found for host")
	ErrTooManyHuddles      = errors.New("host has reached the huddle limit")
	ErrTooManyBids         = errors.New("guest has reached the bid limit")
	ErrIDOverflow          = errors.New("huddle id space exhausted")
)

// business logic errors
var (
	ErrHostNotRegistered    = errors.New("host is not registered")
	ErrSocialAccountTooLong = errors.New("social account is too long")
	ErrSocialProofTooLong   = errors.New("social proof is too long")
	ErrInvalidTimestamp     = errors.New("scheduled time is invalid")
	ErrBidTooLow            = errors.New("bid value too low")
	ErrSelfBid              = errors.New("hosts cannot bid on their own huddles")
	ErrSelfRate             = errors.New("hosts cannot rate their own huddles")
	ErrNotWinnerBid         = errors.New("caller's bid is not the winner")
	ErrTimestampNotReached  = errors.New("scheduled time not reached yet")
	ErrAlreadyConcluded     = errors.New("huddle already concluded")
	ErrMaxStars             = errors.New("rating exceeds five stars")
)

// escrow errors
var (
	ErrUnreserve  = errors.New("failed to release prior reservation")
	ErrRepatriate = errors.New("failed to repatriate reservation to host")
)
