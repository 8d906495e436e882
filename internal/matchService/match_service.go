package matching

import (
	"errors"
	"fmt"
	"time"

	"lostfound-tracker/internal/lferrors"
	model "lostfound-tracker/internal/models"
	"lostfound-tracker/internal/repository"
	"lostfound-tracker/internal/scoring"
	"lostfound-tracker/utils"
)

// MatchService discovers and resolves matches between lost and found reports
type MatchService struct {
	repo repository.LostFoundDB
}

// NewMatchService creates a new MatchService instance
func NewMatchService(repo repository.LostFoundDB) *MatchService {
	return &MatchService{
		repo: repo,
	}
}

// UserMatches groups a user's resolved matches by which side they reported
type UserMatches struct {
	LostItemMatches  []model.MatchDetail `json:"lost_item_matches"`
	FoundItemMatches []model.MatchDetail `json:"found_item_matches"`
}

// DiscoverMatches scans the user's pending reports against all opposite-type
// pending reports, persists every new qualifying match and returns only the
// newly created ones. Pairs already linked by an existing match are skipped,
// so a second run over unchanged data returns an empty slice.
func (s *MatchService) DiscoverMatches(userID string) ([]model.Match, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", lferrors.ErrInvalidRequest)
	}

	pendingLost, err := s.repo.ListLostItems(model.ItemFilter{Status: model.StatusPending})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list lost items: %w", err)
	}
	pendingFound, err := s.repo.ListFoundItems(model.ItemFilter{Status: model.StatusPending})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list found items: %w", err)
	}
	existing, err := s.repo.ListMatches()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list matches: %w", err)
	}

	linked := make(map[string]bool, len(existing))
	for _, m := range existing {
		linked[m.LostItemID+"|"+m.FoundItemID] = true
	}

	newMatches := make([]model.Match, 0)

	record := func(lost model.LostItem, found model.FoundItem, score float64) error {
		key := lost.ItemID + "|" + found.ItemID
		if linked[key] {
			return nil
		}

		match := model.Match{
			MatchID:        utils.GenerateID(),
			LostItemID:     lost.ItemID,
			FoundItemID:    found.ItemID,
			MatchScore:     score,
			FinderContact:  found.UserID,
			ClaimerContact: lost.UserID,
			CreatedAt:      time.Now().UTC(),
		}

		if err := s.repo.CreateMatch(match); err != nil {
			// A concurrent discovery run got there first; the pair is linked either way.
			if errors.Is(err, lferrors.ErrMatchExists) {
				linked[key] = true
				return nil
			}
			return fmt.Errorf("service: failed to create match for pair (%s, %s): %w", lost.ItemID, found.ItemID, err)
		}

		linked[key] = true
		newMatches = append(newMatches, match)
		return nil
	}

	// The user's lost reports against every pending found report.
	for _, lost := range pendingLost {
		if lost.UserID != userID {
			continue
		}
		for _, found := range pendingFound {
			if score := scoring.Score(lost, found); score >= scoring.Threshold {
				if err := record(lost, found, score); err != nil {
					return nil, err
				}
			}
		}
	}

	// The user's found reports against every pending lost report.
	for _, found := range pendingFound {
		if found.UserID != userID {
			continue
		}
		for _, lost := range pendingLost {
			if score := scoring.Score(lost, found); score >= scoring.Threshold {
				if err := record(lost, found, score); err != nil {
					return nil, err
				}
			}
		}
	}

	return newMatches, nil
}

// GetUserMatches resolves every stored match to its items and returns the
// ones involving the user, split by side. Matches whose lost or found item
// no longer resolves are dropped.
func (s *MatchService) GetUserMatches(userID string) (UserMatches, error) {
	if userID == "" {
		return UserMatches{}, fmt.Errorf("service: %w - empty user ID", lferrors.ErrInvalidRequest)
	}

	matches, err := s.repo.ListMatches()
	if err != nil {
		return UserMatches{}, fmt.Errorf("service: failed to list matches: %w", err)
	}
	allLost, err := s.repo.ListLostItems(model.ItemFilter{})
	if err != nil {
		return UserMatches{}, fmt.Errorf("service: failed to list lost items: %w", err)
	}
	allFound, err := s.repo.ListFoundItems(model.ItemFilter{})
	if err != nil {
		return UserMatches{}, fmt.Errorf("service: failed to list found items: %w", err)
	}

	lostByID := make(map[string]model.LostItem, len(allLost))
	for _, item := range allLost {
		lostByID[item.ItemID] = item
	}
	foundByID := make(map[string]model.FoundItem, len(allFound))
	for _, item := range allFound {
		foundByID[item.ItemID] = item
	}

	result := UserMatches{
		LostItemMatches:  make([]model.MatchDetail, 0),
		FoundItemMatches: make([]model.MatchDetail, 0),
	}
	for _, m := range matches {
		lost, lostOK := lostByID[m.LostItemID]
		found, foundOK := foundByID[m.FoundItemID]
		if !lostOK || !foundOK {
			continue
		}

		detail := model.MatchDetail{Match: m, LostItem: lost, FoundItem: found}
		if lost.UserID == userID {
			result.LostItemMatches = append(result.LostItemMatches, detail)
		}
		if found.UserID == userID {
			result.FoundItemMatches = append(result.FoundItemMatches, detail)
		}
	}

	return result, nil
}
