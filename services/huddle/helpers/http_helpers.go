package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"huddle-auction/internal/auctionerrors"
	"huddle-auction/internal/escrow"
	"huddle-auction/internal/models"
	"huddle-auction/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrHostNotRegistered):
		return http.StatusForbidden, "host not registered"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusForbidden, "hosts cannot bid on their own huddles"
	case errors.Is(err, auctionerrors.ErrSelfRate):
		return http.StatusForbidden, "hosts cannot rate their own huddles"
	case errors.Is(err, auctionerrors.ErrNotWinnerBid):
		return http.StatusForbidden, "caller is not the winning guest"
	case errors.Is(err, auctionerrors.ErrInvalidHuddleID),
		errors.Is(err, auctionerrors.ErrHostInvalidHuddleID):
		return http.StatusNotFound, "huddle not found"
	case errors.Is(err, auctionerrors.ErrTooManyHuddles),
		errors.Is(err, auctionerrors.ErrTooManyBids),
		errors.Is(err, auctionerrors.ErrIDOverflow):
		return http.StatusConflict, "capacity limit reached"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid value too low"
	case errors.Is(err, auctionerrors.ErrAlreadyConcluded):
		return http.StatusConflict, "huddle already concluded"
	case errors.Is(err, auctionerrors.ErrTimestampNotReached):
		return http.StatusConflict, "scheduled time not reached yet"
	case errors.Is(err, auctionerrors.ErrInvalidTimestamp):
		return http.StatusBadRequest, "invalid scheduled time"
	case errors.Is(err, auctionerrors.ErrMaxStars):
		return http.StatusBadRequest, "rating exceeds five stars"
	case errors.Is(err, auctionerrors.ErrSocialAccountTooLong),
		errors.Is(err, auctionerrors.ErrSocialProofTooLong):
		return http.StatusBadRequest, "profile field too long"
	case errors.Is(err, escrow.ErrInsufficientFree):
		return http.StatusPaymentRequired, "insufficient funds"
	case errors.Is(err, auctionerrors.ErrUnreserve),
		errors.Is(err, auctionerrors.ErrRepatriate),
		errors.Is(err, escrow.ErrInsufficientReserved):
		return http.StatusBadGateway, "escrow operation failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HuddleToResponse flattens a huddle into its wire representation
func HuddleToResponse(h models.Huddle) HuddleResponse {
	return HuddleResponse{
		ID:          uint64(h.ID),
		ScheduledAt: int64(h.ScheduledAt),
		Guest:       h.Guest,
		Value:       uint64(h.Value),
		Status:      string(h.Status),
		Stars:       h.Stars,
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
