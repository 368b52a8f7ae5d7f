package models

import "time"

var FeedbackTypes = []string{"question", "feedback", "workout_rating", "general"}

type Feedback struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	AdminID     *int64     `json:"admin_id"`
	Type        string     `json:"type"`
	Subject     string     `json:"subject"`
	Message     string     `json:"message"`
	Rating      *int       `json:"rating"`
	Response    *string    `json:"response"`
	RespondedAt *time.Time `json:"responded_at"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func IsValidFeedbackType(feedbackType string) bool {
	for _, t := range FeedbackTypes {
		if t == feedbackType {
			return true
		}
	}
	return false
}
