package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	auction "huddle-auction/internal/auctionService"
	"huddle-auction/internal/clock"
	"huddle-auction/internal/config"
	"huddle-auction/internal/escrow"
	"huddle-auction/internal/events"
	"huddle-auction/internal/idalloc"
	"huddle-auction/internal/repository"
	"huddle-auction/internal/server"
)

// testEnv bundles the wired router with the collaborators a scenario needs to
// drive: the manual clock and the in-memory ledger.
type testEnv struct {
	Router *gin.Engine
	Clock  *clock.Manual
	Ledger *escrow.MemoryLedger
	Store  *repository.MemoryStore
}

// SetupTestEnv wires the full stack over in-memory collaborators.
func SetupTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	limits := config.DefaultLimits()
	store := repository.NewMemoryStore(limits.MaxHuddlesPerHost, limits.MaxBidsPerGuest)
	ledger := escrow.NewMemoryLedger()
	ids := idalloc.New(0)
	clk := clock.NewManual(0)
	sink := events.NopSink{}

	engine := auction.NewEngine(store, store, store, ids, ledger, clk, sink, limits)
	ratings := auction.NewRatingService(store, store, ids, clk, sink)

	return &testEnv{
		Router: server.SetupRouter(engine, ratings),
		Clock:  clk,
		Ledger: ledger,
		Store:  store,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
