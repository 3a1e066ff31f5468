package main

import (
	"fmt"
	"os"

	auction "huddle-auction/internal/auctionService"
	"huddle-auction/internal/clock"
	"huddle-auction/internal/config"
	"huddle-auction/internal/escrow"
	"huddle-auction/internal/events"
	"huddle-auction/internal/idalloc"
	"huddle-auction/internal/repository"
	"huddle-auction/internal/server"
)

func main() {

	cfg := config.Load()

	store := repository.NewMemoryStore(cfg.Limits.MaxHuddlesPerHost, cfg.Limits.MaxBidsPerGuest)
	ledger := escrow.NewMemoryLedger()
	ids := idalloc.New(0)
	sink := events.LogSink{}
	clk := clock.NewSystem()

	prepopulateBalances(ledger)

	engine := auction.NewEngine(store, store, store, ids, ledger, clk, sink, cfg.Limits)
	ratings := auction.NewRatingService(store, store, ids, clk, sink)

	router := server.SetupRouter(engine, ratings)

	addr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Starting huddle auction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateBalances funds a few demo accounts in the in-memory ledger
func prepopulateBalances(ledger *escrow.MemoryLedger) {
	for _, account := range []string{"alice", "bob", "carol"} {
		ledger.Deposit(account, 1_000)
	}
}
