package helpers

// Request DTOs

type SecurityAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type ReportLostItemRequest struct {
	UserID            string                  `json:"user_id" binding:"required"`
	DistrictID        string                  `json:"district_id" binding:"required"`
	VenueID           string                  `json:"venue_id" binding:"required"`
	ItemName          string                  `json:"item_name" binding:"required"`
	Description       string                  `json:"description" binding:"required"`
	Category          string                  `json:"category" binding:"required"`
	DateLost          string                  `json:"date_lost" binding:"required"`
	SecurityQuestions []SecurityAnswerRequest `json:"security_questions" binding:"required"`
}

type ReportFoundItemRequest struct {
	UserID            string                  `json:"user_id" binding:"required"`
	DistrictID        string                  `json:"district_id" binding:"required"`
	VenueID           string                  `json:"venue_id" binding:"required"`
	ItemName          string                  `json:"item_name" binding:"required"`
	Description       string                  `json:"description" binding:"required"`
	Category          string                  `json:"category" binding:"required"`
	DateFound         string                  `json:"date_found" binding:"required"`
	Photos            []string                `json:"photos"`
	SecurityQuestions []SecurityAnswerRequest `json:"security_questions" binding:"required"`
}

type ClaimRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}
