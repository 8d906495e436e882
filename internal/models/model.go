package models

import "time"

// User represents a registered reporter. Only contact fields live here;
// authentication is handled outside this service.
type User struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// SecurityAnswer pairs a catalog question id with the reporter's answer
type SecurityAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// Item lifecycle states
const (
	StatusPending = "pending"
	StatusMatched = "matched"
	StatusClaimed = "claimed"
	// Found items end in "returned" instead of "claimed"
	StatusReturned = "returned"
)

// LostItem represents a user-reported lost object
type LostItem struct {
	ItemID            string           `json:"item_id"`
	UserID            string           `json:"user_id"`
	DistrictID        string           `json:"district_id"`
	VenueID           string           `json:"venue_id"`
	ItemName          string           `json:"item_name"`
	Description       string           `json:"description"`
	Category          string           `json:"category"`
	DateLost          string           `json:"date_lost"`
	SecurityQuestions []SecurityAnswer `json:"security_questions"`
	Status            string           `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
}

// FoundItem represents a user-reported found object
type FoundItem struct {
	ItemID            string           `json:"item_id"`
	UserID            string           `json:"user_id"`
	DistrictID        string           `json:"district_id"`
	VenueID           string           `json:"venue_id"`
	ItemName          string           `json:"item_name"`
	Description       string           `json:"description"`
	Category          string           `json:"category"`
	DateFound         string           `json:"date_found"`
	Photos            []string         `json:"photos,omitempty"`
	SecurityQuestions []SecurityAnswer `json:"security_questions"`
	Status            string           `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
}

// Match links one lost report to one found report with a confidence score.
// Matches are immutable once created; at most one exists per item pair.
type Match struct {
	MatchID        string    `json:"match_id"`
	LostItemID     string    `json:"lost_item_id"`
	FoundItemID    string    `json:"found_item_id"`
	MatchScore     float64   `json:"match_score"`
	FinderContact  string    `json:"finder_contact"`
	ClaimerContact string    `json:"claimer_contact"`
	CreatedAt      time.Time `json:"created_at"`
}

// MatchDetail is a Match resolved to both of its underlying items
type MatchDetail struct {
	Match     Match     `json:"match"`
	LostItem  LostItem  `json:"lost_item"`
	FoundItem FoundItem `json:"found_item"`
}

// ItemFilter narrows item listings. Zero-value fields are ignored.
type ItemFilter struct {
	UserID     string
	Status     string
	DistrictID string
	VenueID    string
}
