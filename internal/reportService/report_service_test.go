package report

import (
	"errors"
	"testing"
	"time"

	"lostfound-tracker/internal/lferrors"
	model "lostfound-tracker/internal/models"
	"lostfound-tracker/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func validQuestions() []model.SecurityAnswer {
	return []model.SecurityAnswer{
		{QuestionID: "1", Answer: "black"},
		{QuestionID: "2", Answer: "fossil"},
		{QuestionID: "3", Answer: "small"},
	}
}

func validLostReport() LostItemReport {
	return LostItemReport{
		UserID:            "user1",
		DistrictID:        "1",
		VenueID:           "1",
		ItemName:          "black wallet",
		Description:       "leather wallet with a broken zip",
		Category:          "Wallets & Purses",
		DateLost:          "2026-08-20",
		SecurityQuestions: validQuestions(),
	}
}

// Tests ReportLostItem
func TestReportService_ReportLostItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockLostFoundDB(ctrl)
	service := NewReportService(mockRepo)

	now := time.Now().UTC()

	tests := []struct {
		name          string
		mutate        func(req *LostItemReport)
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:   "valid_report",
			mutate: func(req *LostItemReport) {},
			mockSetup: func() {
				mockRepo.EXPECT().SaveLostItem(gomock.Any()).Return(nil)
			},
		},
		{
			name:          "missing_userID",
			mutate:        func(req *LostItemReport) { req.UserID = "" },
			mockSetup:     func() {},
			expectError:   true,
			expectedError: lferrors.ErrInvalidReport,
		},
		{
			name:          "blank_item_name",
			mutate:        func(req *LostItemReport) { req.ItemName = "   " },
			mockSetup:     func() {},
			expectError:   true,
			expectedError: lferrors.ErrInvalidReport,
		},
		{
			name:          "blank_description",
			mutate:        func(req *LostItemReport) { req.Description = "" },
			mockSetup:     func() {},
			expectError:   true,
			expectedError: lferrors.ErrInvalidReport,
		},
		{
			name:          "unknown_category",
			mutate:        func(req *LostItemReport) { req.Category = "Spacecraft" },
			mockSetup:     func() {},
			expectError:   true,
			expectedError: lferrors.ErrInvalidReport,
		},
		{
			name:          "unknown_district",
			mutate:        func(req *LostItemReport) { req.DistrictID = "99" },
			mockSetup:     func() {},
			expectError:   true,
			expectedError: lferrors.ErrInvalidReport,
		},
		{
			// Venue 4 (India Gate) belongs to district 2, not 1
			name:          "venue_outside_district",
			mutate:        func(req *LostItemReport) { req.VenueID = "4" },
			mockSetup:     func() {},
			expectError:   true,
			expectedError: lferrors.ErrInvalidReport,
		},
		{
			name:          "too_few_questions",
			mutate:        func(req *LostItemReport) { req.SecurityQuestions = req.SecurityQuestions[:2] },
			mockSetup:     func() {},
			expectError:   true,
			expectedError: lferrors.ErrInvalidReport,
		},
		{
			name: "duplicate_question",
			mutate: func(req *LostItemReport) {
				req.SecurityQuestions[2].QuestionID = req.SecurityQuestions[0].QuestionID
			},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: lferrors.ErrDuplicateQuestion,
		},
		{
			name: "unknown_question",
			mutate: func(req *LostItemReport) {
				req.SecurityQuestions[0].QuestionID = "42"
			},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: lferrors.ErrInvalidReport,
		},
		{
			name: "blank_answer",
			mutate: func(req *LostItemReport) {
				req.SecurityQuestions[1].Answer = "  "
			},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: lferrors.ErrInvalidReport,
		},
		{
			name:   "repo_write_fails",
			mutate: func(req *LostItemReport) {},
			mockSetup: func() {
				mockRepo.EXPECT().SaveLostItem(gomock.Any()).Return(errors.New("db write failed"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := validLostReport()
			tc.mutate(&req)
			tc.mockSetup()

			item, err := service.ReportLostItem(req)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
				return
			}
			require.NoError(t, err)

			_, parseErr := uuid.Parse(item.ItemID)
			require.NoError(t, parseErr, "ItemID should be a valid UUID")
			require.Equal(t, model.StatusPending, item.Status)
			require.Equal(t, req.UserID, item.UserID)
			require.WithinDuration(t, now, item.CreatedAt, 2*time.Second)
		})
	}
}

// Answers are stored whitespace-trimmed so later comparisons start clean
func TestReportService_ReportLostItem_TrimsAnswers(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	service := NewReportService(repo)

	req := validLostReport()
	req.SecurityQuestions = []model.SecurityAnswer{
		{QuestionID: "1", Answer: "  black "},
		{QuestionID: "2", Answer: "fossil\t"},
		{QuestionID: "3", Answer: " small"},
	}

	item, err := service.ReportLostItem(req)
	require.NoError(t, err)
	require.Equal(t, []model.SecurityAnswer{
		{QuestionID: "1", Answer: "black"},
		{QuestionID: "2", Answer: "fossil"},
		{QuestionID: "3", Answer: "small"},
	}, item.SecurityQuestions)
}

// Tests ReportFoundItem
func TestReportService_ReportFoundItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockLostFoundDB(ctrl)
	service := NewReportService(mockRepo)

	validReq := FoundItemReport{
		UserID:            "user2",
		DistrictID:        "2",
		VenueID:           "5",
		ItemName:          "silver keychain",
		Description:       "three keys on a silver ring",
		Category:          "Keys",
		DateFound:         "2026-08-21",
		Photos:            []string{"photo-ref-1"},
		SecurityQuestions: validQuestions(),
	}

	t.Run("valid_report", func(t *testing.T) {
		mockRepo.EXPECT().SaveFoundItem(gomock.Any()).Return(nil)

		item, err := service.ReportFoundItem(validReq)
		require.NoError(t, err)
		require.Equal(t, model.StatusPending, item.Status)
		require.Equal(t, []string{"photo-ref-1"}, item.Photos)

		_, parseErr := uuid.Parse(item.ItemID)
		require.NoError(t, parseErr)
	})

	t.Run("venue_outside_district", func(t *testing.T) {
		req := validReq
		req.VenueID = "1" // Gateway of India is in district 1

		_, err := service.ReportFoundItem(req)
		require.ErrorIs(t, err, lferrors.ErrInvalidReport)
	})

	t.Run("repo_write_fails", func(t *testing.T) {
		mockRepo.EXPECT().SaveFoundItem(gomock.Any()).Return(errors.New("db write failed"))

		_, err := service.ReportFoundItem(validReq)
		require.Error(t, err)
	})
}

// Tests the listing passthroughs
func TestReportService_Listings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockLostFoundDB(ctrl)
	service := NewReportService(mockRepo)

	t.Run("lost_items_by_user", func(t *testing.T) {
		expected := []model.LostItem{{ItemID: "lost1", UserID: "user1"}}
		mockRepo.EXPECT().ListLostItems(model.ItemFilter{UserID: "user1"}).Return(expected, nil)

		items, err := service.ListLostItemsByUser("user1")
		require.NoError(t, err)
		require.Equal(t, expected, items)
	})

	t.Run("lost_items_empty_userID", func(t *testing.T) {
		_, err := service.ListLostItemsByUser("")
		require.ErrorIs(t, err, lferrors.ErrInvalidRequest)
	})

	t.Run("browse_found_items_with_filter", func(t *testing.T) {
		filter := model.ItemFilter{DistrictID: "1", VenueID: "2"}
		expected := []model.FoundItem{{ItemID: "found1", DistrictID: "1", VenueID: "2"}}
		mockRepo.EXPECT().ListFoundItems(filter).Return(expected, nil)

		items, err := service.BrowseFoundItems(filter)
		require.NoError(t, err)
		require.Equal(t, expected, items)
	})

	t.Run("browse_found_items_repo_error", func(t *testing.T) {
		mockRepo.EXPECT().ListFoundItems(model.ItemFilter{}).Return(nil, errors.New("db unavailable"))

		_, err := service.BrowseFoundItems(model.ItemFilter{})
		require.Error(t, err)
	})
}
