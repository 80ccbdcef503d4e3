package dto

// SubscribeRequest represents a newsletter signup.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UnsubscribeRequest removes an address from the newsletter.
type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// EmailsSent reports which best-effort notifications actually went out.
type EmailsSent struct {
	Welcome      bool `json:"welcome"`
	Notification bool `json:"notification"`
}

// SubscribeResponse is the subscribe payload; the emailsSent flags are a
// partial-success indicator, the subscription itself has already committed.
type SubscribeResponse struct {
	Email        string     `json:"email"`
	SubscribedAt string     `json:"subscribedAt"`
	EmailsSent   EmailsSent `json:"emailsSent"`
}

// SubscriberFilter holds admin subscriber-list query parameters.
type SubscriberFilter struct {
	Active *bool
	Search string
	Page   int
	Limit  int
}

// SubscriberCount is the public counter payload.
type SubscriberCount struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}
