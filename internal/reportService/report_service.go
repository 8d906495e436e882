package report

import (
	"fmt"
	"strings"
	"time"

	"lostfound-tracker/internal/lferrors"
	model "lostfound-tracker/internal/models"
	"lostfound-tracker/internal/refdata"
	"lostfound-tracker/internal/repository"
	"lostfound-tracker/utils"
)

// RequiredQuestions is how many security questions every report must carry
const RequiredQuestions = 3

// ReportService validates and stores lost/found item reports
type ReportService struct {
	repo repository.LostFoundDB
}

// NewReportService creates a new ReportService instance
func NewReportService(repo repository.LostFoundDB) *ReportService {
	return &ReportService{
		repo: repo,
	}
}

// LostItemReport is the input for reporting a lost item
type LostItemReport struct {
	UserID            string
	DistrictID        string
	VenueID           string
	ItemName          string
	Description       string
	Category          string
	DateLost          string
	SecurityQuestions []model.SecurityAnswer
}

// FoundItemReport is the input for reporting a found item
type FoundItemReport struct {
	UserID            string
	DistrictID        string
	VenueID           string
	ItemName          string
	Description       string
	Category          string
	DateFound         string
	Photos            []string
	SecurityQuestions []model.SecurityAnswer
}

// validateReport checks the fields shared by lost and found reports
func validateReport(userID, districtID, venueID, itemName, description, category string) error {
	if userID == "" {
		return fmt.Errorf("service: %w - missing user ID", lferrors.ErrInvalidReport)
	}
	if strings.TrimSpace(itemName) == "" {
		return fmt.Errorf("service: %w - missing item name", lferrors.ErrInvalidReport)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("service: %w - missing description", lferrors.ErrInvalidReport)
	}
	if !refdata.CategoryExists(category) {
		return fmt.Errorf("service: %w - unknown category %q", lferrors.ErrInvalidReport, category)
	}
	if !refdata.DistrictExists(districtID) {
		return fmt.Errorf("service: %w - unknown district %q", lferrors.ErrInvalidReport, districtID)
	}
	if !refdata.VenueInDistrict(venueID, districtID) {
		return fmt.Errorf("service: %w - venue %q not in district %q", lferrors.ErrInvalidReport, venueID, districtID)
	}
	return nil
}

// validateQuestions checks count, uniqueness, catalog membership and answers.
// Returns the questions with answers trimmed, ready for storage.
func validateQuestions(questions []model.SecurityAnswer) ([]model.SecurityAnswer, error) {
	if len(questions) != RequiredQuestions {
		return nil, fmt.Errorf("service: %w - expected %d security questions, got %d",
			lferrors.ErrInvalidReport, RequiredQuestions, len(questions))
	}

	seen := make(map[string]bool, len(questions))
	cleaned := make([]model.SecurityAnswer, 0, len(questions))
	for _, q := range questions {
		if !refdata.QuestionExists(q.QuestionID) {
			return nil, fmt.Errorf("service: %w - unknown question %q", lferrors.ErrInvalidReport, q.QuestionID)
		}
		if seen[q.QuestionID] {
			return nil, fmt.Errorf("service: %w - question %s selected twice", lferrors.ErrDuplicateQuestion, q.QuestionID)
		}
		seen[q.QuestionID] = true

		answer := strings.TrimSpace(q.Answer)
		if answer == "" {
			return nil, fmt.Errorf("service: %w - empty answer for question %s", lferrors.ErrInvalidReport, q.QuestionID)
		}
		cleaned = append(cleaned, model.SecurityAnswer{QuestionID: q.QuestionID, Answer: answer})
	}
	return cleaned, nil
}

// ReportLostItem validates and stores a lost item report
func (s *ReportService) ReportLostItem(req LostItemReport) (model.LostItem, error) {
	if err := validateReport(req.UserID, req.DistrictID, req.VenueID, req.ItemName, req.Description, req.Category); err != nil {
		return model.LostItem{}, err
	}
	questions, err := validateQuestions(req.SecurityQuestions)
	if err != nil {
		return model.LostItem{}, err
	}

	item := model.LostItem{
		ItemID:            utils.GenerateID(),
		UserID:            req.UserID,
		DistrictID:        req.DistrictID,
		VenueID:           req.VenueID,
		ItemName:          strings.TrimSpace(req.ItemName),
		Description:       strings.TrimSpace(req.Description),
		Category:          req.Category,
		DateLost:          req.DateLost,
		SecurityQuestions: questions,
		Status:            model.StatusPending,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.repo.SaveLostItem(item); err != nil {
		return model.LostItem{}, fmt.Errorf("service: failed to save lost item for user %s: %w", req.UserID, err)
	}
	return item, nil
}

// ReportFoundItem validates and stores a found item report
func (s *ReportService) ReportFoundItem(req FoundItemReport) (model.FoundItem, error) {
	if err := validateReport(req.UserID, req.DistrictID, req.VenueID, req.ItemName, req.Description, req.Category); err != nil {
		return model.FoundItem{}, err
	}
	questions, err := validateQuestions(req.SecurityQuestions)
	if err != nil {
		return model.FoundItem{}, err
	}

	item := model.FoundItem{
		ItemID:            utils.GenerateID(),
		UserID:            req.UserID,
		DistrictID:        req.DistrictID,
		VenueID:           req.VenueID,
		ItemName:          strings.TrimSpace(req.ItemName),
		Description:       strings.TrimSpace(req.Description),
		Category:          req.Category,
		DateFound:         req.DateFound,
		Photos:            req.Photos,
		SecurityQuestions: questions,
		Status:            model.StatusPending,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.repo.SaveFoundItem(item); err != nil {
		return model.FoundItem{}, fmt.Errorf("service: failed to save found item for user %s: %w", req.UserID, err)
	}
	return item, nil
}

// ListLostItemsByUser returns a user's lost reports
func (s *ReportService) ListLostItemsByUser(userID string) ([]model.LostItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", lferrors.ErrInvalidRequest)
	}
	items, err := s.repo.ListLostItems(model.ItemFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list lost items for user %s: %w", userID, err)
	}
	return items, nil
}

// BrowseFoundItems returns found items, optionally narrowed by district, venue or reporter
func (s *ReportService) BrowseFoundItems(filter model.ItemFilter) ([]model.FoundItem, error) {
	items, err := s.repo.ListFoundItems(filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list found items: %w", err)
	}
	return items, nil
}
