package models

import "time"

// Feedback is a rating left by one swap participant for the other once the
// swap has been accepted. Exactly one feedback row may exist per swap; its
// creation is what moves the swap to completed and updates the ratee's
// running rating.
type Feedback struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey"`
	SwapRequestID string    `json:"swapRequestId" gorm:"uniqueIndex"`
	FromUserID    string    `json:"fromUserId" gorm:"index"`
	ToUserID      string    `json:"toUserId" gorm:"index"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SubmitFeedbackRequest defines the request body for submitting feedback
type SubmitFeedbackRequest struct {
	SwapRequestID string `json:"swapRequestId" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment,omitempty"`
}
