// Package scoring implements the compatibility rule shared by match
// discovery and claim verification.
package scoring

import (
	"strings"

	model "lostfound-tracker/internal/models"
)

// Threshold is the minimum percentage of agreeing security answers for a
// match or claim to count. 67 approximates "at least 2 of 3 correct" for
// the canonical 3-question flow.
const Threshold = 67.0

// NormalizeAnswer canonicalizes a security answer for comparison.
// Idempotent: applying it twice yields the same result.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// Score computes the compatibility between a lost report and a found report.
// Location or category disagreement disqualifies outright. Otherwise the
// lost item's question set drives the comparison: questions present on both
// sides are counted, and normalized answer equality scores them. Returns the
// match percentage when it reaches Threshold, else 0. Any non-zero return is
// therefore guaranteed to be >= Threshold.
func Score(lost model.LostItem, found model.FoundItem) float64 {
	if lost.DistrictID != found.DistrictID || lost.VenueID != found.VenueID {
		return 0
	}
	if lost.Category != found.Category {
		return 0
	}

	counted := 0
	matched := 0
	for _, lq := range lost.SecurityQuestions {
		for _, fq := range found.SecurityQuestions {
			if fq.QuestionID != lq.QuestionID {
				continue
			}
			counted++
			if NormalizeAnswer(lq.Answer) == NormalizeAnswer(fq.Answer) {
				matched++
			}
			break
		}
	}

	if counted == 0 {
		return 0
	}

	percentage := float64(matched) / float64(counted) * 100
	if percentage >= Threshold {
		return percentage
	}
	return 0
}

// AnswerRatio scores a set of submitted answers against an item's stored
// security answers, without the location/category gates (the claim flow
// compares against a single item, not an item pair). Returns the raw
// percentage of matching answers over the full question set.
func AnswerRatio(stored []model.SecurityAnswer, submitted map[string]string) float64 {
	if len(stored) == 0 {
		return 0
	}
	matched := 0
	for _, sq := range stored {
		if NormalizeAnswer(submitted[sq.QuestionID]) == NormalizeAnswer(sq.Answer) {
			matched++
		}
	}
	return float64(matched) / float64(len(stored)) * 100
}
