package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"huddle-auction/internal/models"
	"huddle-auction/services/huddle/helpers"
	"huddle-auction/utils"
)

//go:generate mockgen -source=huddle_handler.go -destination=mock_service.go -package=handler

type AuctionServiceInterface interface {
	Register(caller string, socialAccount, socialProof []byte) error
	Create(host string, scheduledAt models.Moment, floor models.Balance) (models.Huddle, error)
	Open(guest, host string, value models.Balance) (models.Huddle, error)
	Accept(host string, id models.HuddleID, scheduledAt models.Moment) error
	PlaceBid(guest, host string, id models.HuddleID, value models.Balance) error
	Claim(host string, id models.HuddleID) (models.Balance, error)
}

type RatingServiceInterface interface {
	Rate(guest, host string, id models.HuddleID, stars uint8) error
}

type HuddleHandler struct {
	auctions AuctionServiceInterface
	ratings  RatingServiceInterface
}

func NewHuddleHandler(auctions AuctionServiceInterface, ratings RatingServiceInterface) *HuddleHandler {
	return &HuddleHandler{auctions: auctions, ratings: ratings}
}

// RegisterHandler handles POST /register
func (h *HuddleHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	if err := h.auctions.Register(req.Caller, []byte(req.SocialAccount), []byte(req.SocialProof)); err != nil {
		h.fail(c, "RegisterHandler", err, map[string]any{"caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, nil, "host registered successfully")
	helpers.LogSuccess("RegisterHandler", "host registered successfully", map[string]any{
		"caller": req.Caller,
	})
}

// CreateHuddleHandler handles POST /huddles
func (h *HuddleHandler) CreateHuddleHandler(c *gin.Context) {
	var req helpers.CreateHuddleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateHuddleHandler", err)
		return
	}

	huddle, err := h.auctions.Create(req.Host, models.Moment(req.ScheduledAt), models.Balance(req.Floor))
	if err != nil {
		h.fail(c, "CreateHuddleHandler", err, map[string]any{"host": req.Host})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.HuddleToResponse(huddle), "huddle created successfully")
	helpers.LogSuccess("CreateHuddleHandler", "huddle created successfully", map[string]any{
		"host":      req.Host,
		"huddle_id": uint64(huddle.ID),
		"floor":     req.Floor,
	})
}

// OpenHuddleHandler handles POST /huddles/open
func (h *HuddleHandler) OpenHuddleHandler(c *gin.Context) {
	var req helpers.OpenHuddleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "OpenHuddleHandler", err)
		return
	}

	huddle, err := h.auctions.Open(req.Guest, req.Host, models.Balance(req.Value))
	if err != nil {
		h.fail(c, "OpenHuddleHandler", err, map[string]any{"guest": req.Guest, "host": req.Host})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.HuddleToResponse(huddle), "huddle opened successfully")
	helpers.LogSuccess("OpenHuddleHandler", "huddle opened successfully", map[string]any{
		"guest":     req.Guest,
		"host":      req.Host,
		"huddle_id": uint64(huddle.ID),
		"value":     req.Value,
	})
}

// AcceptHuddleHandler handles POST /hosts/:host/huddles/:huddle_id/accept
func (h *HuddleHandler) AcceptHuddleHandler(c *gin.Context) {
	host := c.Param("host")
	id, ok := parseHuddleID(c, "AcceptHuddleHandler")
	if !ok {
		return
	}

	var req helpers.AcceptHuddleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AcceptHuddleHandler", err)
		return
	}

	if err := h.auctions.Accept(host, id, models.Moment(req.ScheduledAt)); err != nil {
		h.fail(c, "AcceptHuddleHandler", err, map[string]any{"host": host, "huddle_id": uint64(id)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "huddle accepted successfully")
	helpers.LogSuccess("AcceptHuddleHandler", "huddle accepted successfully", map[string]any{
		"host":         host,
		"huddle_id":    uint64(id),
		"scheduled_at": req.ScheduledAt,
	})
}

// PlaceBidHandler handles POST /bids
func (h *HuddleHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	if err := h.auctions.PlaceBid(req.Guest, req.Host, models.HuddleID(req.HuddleID), models.Balance(req.Value)); err != nil {
		h.fail(c, "PlaceBidHandler", err, map[string]any{
			"guest":     req.Guest,
			"host":      req.Host,
			"huddle_id": req.HuddleID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, nil, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"guest":     req.Guest,
		"host":      req.Host,
		"huddle_id": req.HuddleID,
		"value":     req.Value,
	})
}

// ClaimHandler handles POST /huddles/:huddle_id/claim
func (h *HuddleHandler) ClaimHandler(c *gin.Context) {
	id, ok := parseHuddleID(c, "ClaimHandler")
	if !ok {
		return
	}

	var req helpers.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ClaimHandler", err)
		return
	}

	value, err := h.auctions.Claim(req.Host, id)
	if err != nil {
		h.fail(c, "ClaimHandler", err, map[string]any{"host": req.Host, "huddle_id": uint64(id)})
		return
	}

	resp := helpers.ClaimResponse{HuddleID: uint64(id), Value: uint64(value)}
	utils.JSONResponse(c, http.StatusOK, resp, "huddle claimed successfully")
	helpers.LogSuccess("ClaimHandler", "huddle claimed successfully", map[string]any{
		"host":      req.Host,
		"huddle_id": uint64(id),
		"value":     uint64(value),
	})
}

// RateHandler handles POST /ratings
func (h *HuddleHandler) RateHandler(c *gin.Context) {
	var req helpers.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RateHandler", err)
		return
	}

	if err := h.ratings.Rate(req.Guest, req.Host, models.HuddleID(req.HuddleID), req.Stars); err != nil {
		h.fail(c, "RateHandler", err, map[string]any{
			"guest":     req.Guest,
			"host":      req.Host,
			"huddle_id": req.HuddleID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "rating recorded successfully")
	helpers.LogSuccess("RateHandler", "rating recorded successfully", map[string]any{
		"guest":     req.Guest,
		"host":      req.Host,
		"huddle_id": req.HuddleID,
		"stars":     req.Stars,
	})
}

// fail maps a service error to HTTP, responds and logs it.
func (h *HuddleHandler) fail(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	ctx["error"] = err.Error()
	utils.Error(handlerName+": operation failed", ctx)
}

// parseHuddleID reads the :huddle_id path parameter.
func parseHuddleID(c *gin.Context, handlerName string) (models.HuddleID, bool) {
	raw := c.Param("huddle_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		helpers.HandleBindError(c, handlerName, fmt.Errorf("invalid huddle_id %q: %w", raw, err))
		return 0, false
	}
	return models.HuddleID(id), true
}
