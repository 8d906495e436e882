package scoring

import (
	"testing"

	model "lostfound-tracker/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to build a lost item with fixed location/category
func newLostItem(districtID, venueID, category string, answers ...model.SecurityAnswer) model.LostItem {
	return model.LostItem{
		ItemID:            "lost1",
		UserID:            "user1",
		DistrictID:        districtID,
		VenueID:           venueID,
		Category:          category,
		SecurityQuestions: answers,
	}
}

// Helper to build a found item with fixed location/category
func newFoundItem(districtID, venueID, category string, answers ...model.SecurityAnswer) model.FoundItem {
	return model.FoundItem{
		ItemID:            "found1",
		UserID:            "user2",
		DistrictID:        districtID,
		VenueID:           venueID,
		Category:          category,
		SecurityQuestions: answers,
	}
}

func qa(questionID, answer string) model.SecurityAnswer {
	return model.SecurityAnswer{QuestionID: questionID, Answer: answer}
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lost     model.LostItem
		found    model.FoundItem
		expected float64
	}{
		{
			name:     "district_mismatch_disqualifies",
			lost:     newLostItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			found:    newFoundItem("2", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			expected: 0,
		},
		{
			name:     "venue_mismatch_disqualifies",
			lost:     newLostItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			found:    newFoundItem("1", "2", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			expected: 0,
		},
		{
			name:     "category_mismatch_disqualifies",
			lost:     newLostItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			found:    newFoundItem("1", "1", "Keys", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			expected: 0,
		},
		{
			name:     "all_answers_equal",
			lost:     newLostItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			found:    newFoundItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			expected: 100,
		},
		{
			name:     "answers_equal_after_normalization",
			lost:     newLostItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			found:    newFoundItem("1", "1", "Electronics", qa("1", "Red"), qa("2", "nike "), qa("3", "medium")),
			expected: 100,
		},
		{
			// 2 of 3 is 66.67%, just under the 67% threshold
			name:     "two_of_three_below_threshold",
			lost:     newLostItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			found:    newFoundItem("1", "1", "Electronics", qa("1", "Red"), qa("2", "nike "), qa("3", "large")),
			expected: 0,
		},
		{
			name:     "two_of_two_meets_threshold",
			lost:     newLostItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike")),
			found:    newFoundItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "large")),
			expected: 100,
		},
		{
			// 3 of 4 = 75% passes and is returned exactly
			name:     "three_of_four_meets_threshold",
			lost:     newLostItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium"), qa("4", "scratch")),
			found:    newFoundItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium"), qa("4", "dent")),
			expected: 75,
		},
		{
			name:     "no_shared_questions",
			lost:     newLostItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			found:    newFoundItem("1", "1", "Electronics", qa("4", "scratch"), qa("5", "leather"), qa("6", "cards")),
			expected: 0,
		},
		{
			name:     "empty_question_lists",
			lost:     newLostItem("1", "1", "Electronics"),
			found:    newFoundItem("1", "1", "Electronics"),
			expected: 0,
		},
		{
			// Found item questions outside the lost set are ignored; the lost
			// item's question set is the denominator.
			name:     "extra_found_questions_ignored",
			lost:     newLostItem("1", "1", "Electronics", qa("1", "red")),
			found:    newFoundItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium")),
			expected: 100,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			score := Score(tc.lost, tc.found)
			require.InDelta(t, tc.expected, score, 0.001)

			// Any non-zero score must be at or above the threshold
			if score > 0 {
				require.GreaterOrEqual(t, score, Threshold)
			}
		})
	}
}

func TestScore_TwoOfThreeExactValue(t *testing.T) {
	t.Parallel()

	lost := newLostItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "medium"))
	found := newFoundItem("1", "1", "Electronics", qa("1", "red"), qa("2", "nike"), qa("3", "large"))

	// The raw ratio is 200/3 = 66.67%, strictly below 67, so the rule
	// collapses it to 0 rather than reporting a near-miss.
	require.Less(t, 2.0/3.0*100, Threshold)
	require.Equal(t, 0.0, Score(lost, found))
}

func TestNormalizeAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "Red", expected: "red"},
		{name: "trims_whitespace", input: "  nike \t", expected: "nike"},
		{name: "trims_and_lowercases", input: " Medium ", expected: "medium"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace_only", input: "   ", expected: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := NormalizeAnswer(tc.input)
			require.Equal(t, tc.expected, got)

			// Normalization must be idempotent
			require.Equal(t, got, NormalizeAnswer(got))
		})
	}
}

func TestAnswerRatio(t *testing.T) {
	t.Parallel()

	stored := []model.SecurityAnswer{
		qa("1", "red"),
		qa("2", "nike"),
		qa("3", "medium"),
	}

	tests := []struct {
		name      string
		submitted map[string]string
		expected  float64
	}{
		{
			name:      "all_correct",
			submitted: map[string]string{"1": "red", "2": "nike", "3": "medium"},
			expected:  100,
		},
		{
			name:      "correct_after_normalization",
			submitted: map[string]string{"1": "Red", "2": " nike ", "3": "MEDIUM"},
			expected:  100,
		},
		{
			name:      "two_of_three",
			submitted: map[string]string{"1": "red", "2": "nike", "3": "large"},
			expected:  200.0 / 3.0,
		},
		{
			name:      "none_correct",
			submitted: map[string]string{"1": "blue", "2": "adidas", "3": "large"},
			expected:  0,
		},
		{
			name:      "missing_entries_score_zero",
			submitted: map[string]string{"1": "red"},
			expected:  100.0 / 3.0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.InDelta(t, tc.expected, AnswerRatio(stored, tc.submitted), 0.001)
		})
	}

	t.Run("empty_stored_questions", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 0.0, AnswerRatio(nil, map[string]string{"1": "red"}))
	})
}
