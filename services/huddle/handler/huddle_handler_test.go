package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"huddle-auction/internal/auctionerrors"
	"huddle-auction/internal/models"
	"huddle-auction/services/huddle/helpers"
)

// newTestRouter wires a handler backed by mocks into a test-mode router.
func newTestRouter(auctions AuctionServiceInterface, ratings RatingServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHuddleHandler(auctions, ratings)

	router.POST("/register", h.RegisterHandler)
	router.POST("/huddles", h.CreateHuddleHandler)
	router.POST("/huddles/open", h.OpenHuddleHandler)
	router.POST("/huddles/:huddle_id/claim", h.ClaimHandler)
	router.POST("/hosts/:host/huddles/:huddle_id/accept", h.AcceptHuddleHandler)
	router.POST("/bids", h.PlaceBidHandler)
	router.POST("/ratings", h.RateHandler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Test CreateHuddleHandler
func TestCreateHuddleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := NewMockAuctionServiceInterface(ctrl)
	mockRatings := NewMockRatingServiceInterface(ctrl)
	router := newTestRouter(mockAuctions, mockRatings)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: helpers.CreateHuddleRequest{Host: "alice", ScheduledAt: 100, Floor: 2},
			mockSetup: func() {
				mockAuctions.EXPECT().
					Create("alice", models.Moment(100), models.Balance(2)).
					Return(models.Huddle{ID: 1, ScheduledAt: 100, Value: 2, Status: models.HuddleStatusCreated}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid_json",
			requestBody:    `{host: missing quotes}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_host",
			requestBody:    helpers.CreateHuddleRequest{ScheduledAt: 100, Floor: 2},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "host_not_registered",
			requestBody: helpers.CreateHuddleRequest{Host: "bob", ScheduledAt: 100, Floor: 2},
			mockSetup: func() {
				mockAuctions.EXPECT().
					Create("bob", models.Moment(100), models.Balance(2)).
					Return(models.Huddle{}, auctionerrors.ErrHostNotRegistered)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "timestamp_rejected",
			requestBody: helpers.CreateHuddleRequest{Host: "alice", ScheduledAt: 1, Floor: 2},
			mockSetup: func() {
				mockAuctions.EXPECT().
					Create("alice", models.Moment(1), models.Balance(2)).
					Return(models.Huddle{}, auctionerrors.ErrInvalidTimestamp)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := doJSON(t, router, http.MethodPost, "/huddles", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]any)
				require.Equal(t, float64(1), data["id"])
				require.Equal(t, string(models.HuddleStatusCreated), data["status"])
			}
		})
	}
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := NewMockAuctionServiceInterface(ctrl)
	mockRatings := NewMockRatingServiceInterface(ctrl)
	router := newTestRouter(mockAuctions, mockRatings)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: helpers.PlaceBidRequest{Guest: "bob", Host: "alice", HuddleID: 1, Value: 5},
			mockSetup: func() {
				mockAuctions.EXPECT().
					PlaceBid("bob", "alice", models.HuddleID(1), models.Balance(5)).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing_value",
			requestBody:    helpers.PlaceBidRequest{Guest: "bob", Host: "alice", HuddleID: 1},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "bid_too_low",
			requestBody: helpers.PlaceBidRequest{Guest: "bob", Host: "alice", HuddleID: 1, Value: 2},
			mockSetup: func() {
				mockAuctions.EXPECT().
					PlaceBid("bob", "alice", models.HuddleID(1), models.Balance(2)).
					Return(auctionerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "self_bid",
			requestBody: helpers.PlaceBidRequest{Guest: "alice", Host: "alice", HuddleID: 1, Value: 5},
			mockSetup: func() {
				mockAuctions.EXPECT().
					PlaceBid("alice", "alice", models.HuddleID(1), models.Balance(5)).
					Return(auctionerrors.ErrSelfBid)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "unknown_huddle",
			requestBody: helpers.PlaceBidRequest{Guest: "bob", Host: "alice", HuddleID: 9, Value: 5},
			mockSetup: func() {
				mockAuctions.EXPECT().
					PlaceBid("bob", "alice", models.HuddleID(9), models.Balance(5)).
					Return(auctionerrors.ErrInvalidHuddleID)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := doJSON(t, router, http.MethodPost, "/bids", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test ClaimHandler
func TestClaimHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := NewMockAuctionServiceInterface(ctrl)
	mockRatings := NewMockRatingServiceInterface(ctrl)
	router := newTestRouter(mockAuctions, mockRatings)

	tests := []struct {
		name           string
		url            string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "success",
			url:         "/huddles/1/claim",
			requestBody: helpers.ClaimRequest{Host: "alice"},
			mockSetup: func() {
				mockAuctions.EXPECT().
					Claim("alice", models.HuddleID(1)).
					Return(models.Balance(15), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad_huddle_id",
			url:            "/huddles/notanumber/claim",
			requestBody:    helpers.ClaimRequest{Host: "alice"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "not_reached",
			url:         "/huddles/1/claim",
			requestBody: helpers.ClaimRequest{Host: "alice"},
			mockSetup: func() {
				mockAuctions.EXPECT().
					Claim("alice", models.HuddleID(1)).
					Return(models.Balance(0), auctionerrors.ErrTimestampNotReached)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "already_concluded",
			url:         "/huddles/1/claim",
			requestBody: helpers.ClaimRequest{Host: "alice"},
			mockSetup: func() {
				mockAuctions.EXPECT().
					Claim("alice", models.HuddleID(1)).
					Return(models.Balance(0), auctionerrors.ErrAlreadyConcluded)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := doJSON(t, router, http.MethodPost, tc.url, tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]any)
				require.Equal(t, float64(15), data["value"])
			}
		})
	}
}

// Test RateHandler
func TestRateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := NewMockAuctionServiceInterface(ctrl)
	mockRatings := NewMockRatingServiceInterface(ctrl)
	router := newTestRouter(mockAuctions, mockRatings)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: helpers.RateRequest{Guest: "bob", Host: "alice", HuddleID: 1, Stars: 3},
			mockSetup: func() {
				mockRatings.EXPECT().
					Rate("bob", "alice", models.HuddleID(1), uint8(3)).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "not_winner",
			requestBody: helpers.RateRequest{Guest: "carol", Host: "alice", HuddleID: 1, Stars: 3},
			mockSetup: func() {
				mockRatings.EXPECT().
					Rate("carol", "alice", models.HuddleID(1), uint8(3)).
					Return(auctionerrors.ErrNotWinnerBid)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "too_many_stars",
			requestBody: helpers.RateRequest{Guest: "bob", Host: "alice", HuddleID: 1, Stars: 6},
			mockSetup: func() {
				mockRatings.EXPECT().
					Rate("bob", "alice", models.HuddleID(1), uint8(6)).
					Return(auctionerrors.ErrMaxStars)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := doJSON(t, router, http.MethodPost, "/ratings", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test RegisterHandler
func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := NewMockAuctionServiceInterface(ctrl)
	mockRatings := NewMockRatingServiceInterface(ctrl)
	router := newTestRouter(mockAuctions, mockRatings)

	t.Run("success", func(t *testing.T) {
		mockAuctions.EXPECT().
			Register("alice", []byte("@alice"), []byte("https://example.com/proof")).
			Return(nil)

		w := doJSON(t, router, http.MethodPost, "/register", helpers.RegisterRequest{
			Caller:        "alice",
			SocialAccount: "@alice",
			SocialProof:   "https://example.com/proof",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("account_too_long", func(t *testing.T) {
		mockAuctions.EXPECT().
			Register("alice", gomock.Any(), gomock.Any()).
			Return(auctionerrors.ErrSocialAccountTooLong)

		w := doJSON(t, router, http.MethodPost, "/register", helpers.RegisterRequest{
			Caller:        "alice",
			SocialAccount: "way-too-long",
			SocialProof:   "proof",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Test AcceptHuddleHandler
func TestAcceptHuddleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := NewMockAuctionServiceInterface(ctrl)
	mockRatings := NewMockRatingServiceInterface(ctrl)
	router := newTestRouter(mockAuctions, mockRatings)

	t.Run("success", func(t *testing.T) {
		mockAuctions.EXPECT().
			Accept("alice", models.HuddleID(1), models.Moment(100)).
			Return(nil)

		w := doJSON(t, router, http.MethodPost, "/hosts/alice/huddles/1/accept",
			helpers.AcceptHuddleRequest{ScheduledAt: 100})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign_huddle", func(t *testing.T) {
		mockAuctions.EXPECT().
			Accept("bob", models.HuddleID(1), models.Moment(100)).
			Return(auctionerrors.ErrHostInvalidHuddleID)

		w := doJSON(t, router, http.MethodPost, "/hosts/bob/huddles/1/accept",
			helpers.AcceptHuddleRequest{ScheduledAt: 100})
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
