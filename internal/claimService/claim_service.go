package claim

import (
	"errors"
	"fmt"
	"strings"

	"lostfound-tracker/internal/lferrors"
	model "lostfound-tracker/internal/models"
	"lostfound-tracker/internal/repository"
	"lostfound-tracker/internal/scoring"
	"lostfound-tracker/utils"
)

// ClaimService verifies ownership claims against a found item's security questions
type ClaimService struct {
	repo repository.LostFoundDB
}

// NewClaimService creates a new ClaimService instance
func NewClaimService(repo repository.LostFoundDB) *ClaimService {
	return &ClaimService{
		repo: repo,
	}
}

// VerificationResult is the outcome of a claim attempt. Finder is only set
// on success and only when the contact lookup resolved.
type VerificationResult struct {
	Success    bool        `json:"success"`
	MatchScore float64     `json:"match_score"`
	Finder     *model.User `json:"finder,omitempty"`
}

// VerifyClaim scores the submitted answers against the found item's stored
// security answers. Every question must carry a non-empty answer before any
// scoring happens. On a score at or above the threshold the finder's contact
// is looked up; a failed lookup does not fail the verification. This is a
// read-only check: no match is created and no item status changes.
func (s *ClaimService) VerifyClaim(foundItemID string, answers map[string]string) (VerificationResult, error) {
	if foundItemID == "" {
		return VerificationResult{}, fmt.Errorf("service: %w - empty item ID", lferrors.ErrInvalidRequest)
	}

	item, err := s.repo.GetFoundItem(foundItemID)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("service: failed to get found item %s: %w", foundItemID, err)
	}

	for _, sq := range item.SecurityQuestions {
		if strings.TrimSpace(answers[sq.QuestionID]) == "" {
			return VerificationResult{}, fmt.Errorf("service: %w - question %s unanswered", lferrors.ErrMissingAnswers, sq.QuestionID)
		}
	}

	matchScore := scoring.AnswerRatio(item.SecurityQuestions, answers)
	if matchScore < scoring.Threshold {
		return VerificationResult{Success: false, MatchScore: matchScore}, nil
	}

	result := VerificationResult{Success: true, MatchScore: matchScore}

	finder, err := s.repo.GetUserContact(item.UserID)
	if err != nil {
		// Verification stands even when the finder's contact cannot be resolved.
		if !errors.Is(err, lferrors.ErrUserNotFound) {
			utils.Warn("claim: finder contact lookup failed", map[string]any{
				"item_id": foundItemID,
				"user_id": item.UserID,
				"error":   err.Error(),
			})
		}
		return result, nil
	}

	result.Finder = &finder
	return result, nil
}
