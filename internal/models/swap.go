package models

import "time"

// Swap request lifecycle states. Rejected and completed are terminal.
const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusRejected  = "rejected"
	SwapStatusCompleted = "completed"
)

// SwapRequest represents a proposed exchange of skills between two users.
// PairKey is the canonical unordered id of the two participants; a partial
// unique index over it (rows with status pending or accepted) guarantees at
// most one active swap per pair even under concurrent creation.
type SwapRequest struct {
	ID           string        `json:"id" gorm:"type:uuid;primaryKey"`
	FromUserID   string        `json:"fromUserId" gorm:"index"`
	ToUserID     string        `json:"toUserId" gorm:"index"`
	PairKey      string        `json:"-" gorm:"index"`
	Status       string        `json:"status"`
	OfferedSkill SkillSnapshot `json:"offeredSkill" gorm:"type:text"`
	WantedSkill  SkillSnapshot `json:"wantedSkill" gorm:"type:text"`
	Message      string        `json:"message"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// SwapPairKey returns the canonical unordered key for a pair of user ids.
func SwapPairKey(a, b string) string {
	if a < b {
		return a + ":" + b
	}
	return b + ":" + a
}

// swapTransitions is the legal edge set of the lifecycle. Nothing re-enters
// pending; admins follow the same edges (deletion is separate).
var swapTransitions = map[string][]string{
	SwapStatusPending:  {SwapStatusAccepted, SwapStatusRejected},
	SwapStatusAccepted: {SwapStatusCompleted},
}

// CanTransition reports whether a swap may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range swapTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateSwapRequest defines the request body for creating a swap request
type CreateSwapRequest struct {
	ToUserID     string       `json:"toUserId" validate:"required"`
	OfferedSkill SkillPayload `json:"offeredSkill" validate:"required"`
	WantedSkill  SkillPayload `json:"wantedSkill" validate:"required"`
	Message      string       `json:"message,omitempty"`
}

// SkillPayload is the skill object the client names on a swap request
type SkillPayload struct {
	Name string `json:"name" validate:"required"`
}

// UpdateSwapStatusRequest defines the request body for accepting or rejecting
// a swap request
type UpdateSwapStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// AdminUpdateSwapStatusRequest defines the request body for an admin forcing
// a status change. The engine still checks edge legality.
type AdminUpdateSwapStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed"`
}

// SwapRequestDetail is a swap request enriched with both parties' display
// details for listing responses. Emails are filled on the admin surface only.
type SwapRequestDetail struct {
	SwapRequest
	FromUserName          string    `json:"fromUserName"`
	FromUserEmail         string    `json:"fromUserEmail,omitempty"`
	FromUserProfilePhoto  string    `json:"fromUserProfilePhoto"`
	FromUserSkillsOffered SkillList `json:"fromUserSkillsOffered"`
	FromUserSkillsWanted  SkillList `json:"fromUserSkillsWanted"`
	FromUserRating        float64   `json:"fromUserRating"`
	ToUserName            string    `json:"toUserName"`
	ToUserEmail           string    `json:"toUserEmail,omitempty"`
	ToUserProfilePhoto    string    `json:"toUserProfilePhoto"`
	ToUserSkillsOffered   SkillList `json:"toUserSkillsOffered"`
	ToUserSkillsWanted    SkillList `json:"toUserSkillsWanted"`
	ToUserRating          float64   `json:"toUserRating"`
}
