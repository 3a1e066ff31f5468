package helpers

// Request/Response DTOs
type RegisterRequest struct {
	Caller        string `json:"caller" binding:"required"`
	SocialAccount string `json:"social_account" binding:"required"`
	SocialProof   string `json:"social_proof" binding:"required"`
}

type CreateHuddleRequest struct {
	Host        string `json:"host" binding:"required"`
	ScheduledAt int64  `json:"scheduled_at" binding:"required"`
	Floor       uint64 `json:"floor"`
}

type OpenHuddleRequest struct {
	Guest string `json:"guest" binding:"required"`
	Host  string `json:"host" binding:"required"`
	Value uint64 `json:"value" binding:"required,gt=0"`
}

type AcceptHuddleRequest struct {
	ScheduledAt int64 `json:"scheduled_at" binding:"required"`
}

type PlaceBidRequest struct {
	Guest    string `json:"guest" binding:"required"`
	Host     string `json:"host" binding:"required"`
	HuddleID uint64 `json:"huddle_id" binding:"required"`
	Value    uint64 `json:"value" binding:"required,gt=0"`
}

type ClaimRequest struct {
	Host string `json:"host" binding:"required"`
}

type RateRequest struct {
	Guest    string `json:"guest" binding:"required"`
	Host     string `json:"host" binding:"required"`
	HuddleID uint64 `json:"huddle_id" binding:"required"`
	Stars    uint8  `json:"stars"`
}

type HuddleResponse struct {
	ID          uint64 `json:"id"`
	ScheduledAt int64  `json:"scheduled_at"`
	Guest       string `json:"guest,omitempty"`
	Value       uint64 `json:"value"`
	Status      string `json:"status"`
	Stars       uint8  `json:"stars"`
}

type ClaimResponse struct {
	HuddleID uint64 `json:"huddle_id"`
	Value    uint64 `json:"value"`
}
