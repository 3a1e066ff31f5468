package auction

import (
	"sort"

	"huddle-auction/internal/models"
)

// Staged collections stay sorted by id (append-only allocation), so lookups
// inside an operation are plain binary searches over the local copy.

func searchHuddles(hs []models.Huddle, id models.HuddleID) (int, bool) {
	i := sort.Search(len(hs), func(i int) bool { return hs[i].ID >= id })
	return i, i < len(hs) && hs[i].ID == id
}

func searchBids(bs []models.Bid, id models.HuddleID) (int, bool) {
	i := sort.Search(len(bs), func(i int) bool { return bs[i].HuddleID >= id })
	return i, i < len(bs) && bs[i].HuddleID == id
}
