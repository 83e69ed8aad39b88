package services

import (
	"testing"

	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBank creates n questions cycling through the five sections, each
// with two options worth 5 and 20 points.
func buildBank(n int) (map[uint]models.Question, map[uint][]models.QuestionOption) {
	questions := make(map[uint]models.Question, n)
	options := make(map[uint][]models.QuestionOption, n)
	for i := 1; i <= n; i++ {
		id := uint(i)
		questions[id] = models.Question{
			ID:             id,
			QuestionNumber: i,
			Section:        models.Sections[(i-1)%5],
		}
		options[id] = []models.QuestionOption{
			{QuestionID: id, OptionLetter: "A", Points: 5},
			{QuestionID: id, OptionLetter: "B", Points: 20},
		}
	}
	return questions, options
}

func answerAll(questions map[uint]models.Question, points int) []models.UserAnswer {
	answers := make([]models.UserAnswer, 0, len(questions))
	for id := range questions {
		answers = append(answers, models.UserAnswer{
			UserID:       1,
			QuestionID:   id,
			PointsEarned: points,
		})
	}
	return answers
}

func TestRecomputeProfileSectionScores(t *testing.T) {
	questions, options := buildBank(5)

	t.Run("perfect answers score 100 everywhere", func(t *testing.T) {
		profile := RecomputeProfile(1, answerAll(questions, 20), questions, options)

		assert.Equal(t, 100, profile.InvestorScore)
		assert.Equal(t, 100, profile.SpenderScore)
		assert.Equal(t, 100, profile.SaverScore)
		assert.Equal(t, 100, profile.OstrichScore)
		assert.Equal(t, 100, profile.DebtorScore)
	})

	t.Run("unanswered sections score zero", func(t *testing.T) {
		answers := []models.UserAnswer{
			{UserID: 1, QuestionID: 1, PointsEarned: 20}, // investor
		}
		profile := RecomputeProfile(1, answers, questions, options)

		assert.Equal(t, 100, profile.InvestorScore)
		assert.Equal(t, 0, profile.SpenderScore)
		assert.Equal(t, 0, profile.SaverScore)
		assert.Equal(t, 0, profile.OstrichScore)
		assert.Equal(t, 0, profile.DebtorScore)
	})

	t.Run("scores are rounded percentages", func(t *testing.T) {
		answers := []models.UserAnswer{
			{UserID: 1, QuestionID: 1, PointsEarned: 5}, // 5 of 20 -> 25
		}
		profile := RecomputeProfile(1, answers, questions, options)

		assert.Equal(t, 25, profile.InvestorScore)
	})

	t.Run("partial credit on a single answer", func(t *testing.T) {
		answers := []models.UserAnswer{
			{UserID: 1, QuestionID: 1, PointsEarned: 15}, // 15 of 20 -> 75
		}
		profile := RecomputeProfile(1, answers, questions, options)

		assert.Equal(t, 75, profile.InvestorScore)
		assert.Equal(t, 2, profile.ConfidenceScore)
		for _, score := range []int{profile.SpenderScore, profile.SaverScore, profile.OstrichScore, profile.DebtorScore} {
			assert.Equal(t, 0, score)
		}
	})
}

func TestRecomputeProfilePrimaryAndSecondary(t *testing.T) {
	questions, options := buildBank(5)

	t.Run("highest section wins primary", func(t *testing.T) {
		answers := []models.UserAnswer{
			{UserID: 1, QuestionID: 3, PointsEarned: 20}, // saver 100
			{UserID: 1, QuestionID: 1, PointsEarned: 5},  // investor 25
		}
		profile := RecomputeProfile(1, answers, questions, options)

		assert.Equal(t, TagSaver, profile.PrimaryType)
	})

	t.Run("ties break by fixed tag order", func(t *testing.T) {
		answers := []models.UserAnswer{
			{UserID: 1, QuestionID: 4, PointsEarned: 20}, // ostrich 100
			{UserID: 1, QuestionID: 2, PointsEarned: 20}, // spender 100
		}
		profile := RecomputeProfile(1, answers, questions, options)

		assert.Equal(t, TagSpender, profile.PrimaryType)
		require.NotNil(t, profile.SecondaryType)
		assert.Equal(t, TagOstrich, *profile.SecondaryType)
	})

	t.Run("secondary requires score above 30", func(t *testing.T) {
		answers := []models.UserAnswer{
			{UserID: 1, QuestionID: 1, PointsEarned: 20}, // investor 100
			{UserID: 1, QuestionID: 2, PointsEarned: 5},  // spender 25
		}
		profile := RecomputeProfile(1, answers, questions, options)

		assert.Equal(t, TagInvestor, profile.PrimaryType)
		assert.Nil(t, profile.SecondaryType)
		assert.Nil(t, profile.HybridType)
	})
}

func TestRecomputeProfileHybrid(t *testing.T) {
	questions, options := buildBank(10)

	t.Run("strong investor and saver form Portfolio Guardian", func(t *testing.T) {
		answers := []models.UserAnswer{
			{UserID: 1, QuestionID: 1, PointsEarned: 20}, // investor 100
			{UserID: 1, QuestionID: 3, PointsEarned: 20}, // saver...
			{UserID: 1, QuestionID: 8, PointsEarned: 5},  // ...(20+5)/40 -> 63
		}
		profile := RecomputeProfile(1, answers, questions, options)

		assert.Equal(t, TagInvestor, profile.PrimaryType)
		require.NotNil(t, profile.SecondaryType)
		assert.Equal(t, TagSaver, *profile.SecondaryType)
		require.NotNil(t, profile.HybridType)
		assert.Equal(t, "Portfolio Guardian 🛡️", *profile.HybridType)
	})

	t.Run("hybrid pair matches in either order", func(t *testing.T) {
		answers := []models.UserAnswer{
			{UserID: 1, QuestionID: 3, PointsEarned: 20}, // saver 100 (primary)
			{UserID: 1, QuestionID: 1, PointsEarned: 20}, // investor...
			{UserID: 1, QuestionID: 6, PointsEarned: 5},  // ...63 (secondary)
		}
		profile := RecomputeProfile(1, answers, questions, options)

		assert.Equal(t, TagSaver, profile.PrimaryType)
		require.NotNil(t, profile.HybridType)
		assert.Equal(t, "Portfolio Guardian 🛡️", *profile.HybridType)
	})

	t.Run("unmapped pair yields no hybrid", func(t *testing.T) {
		answers := []models.UserAnswer{
			{UserID: 1, QuestionID: 4, PointsEarned: 20}, // ostrich 100
			{UserID: 1, QuestionID: 5, PointsEarned: 20}, // debtor...
			{UserID: 1, QuestionID: 10, PointsEarned: 5}, // ...63
		}
		profile := RecomputeProfile(1, answers, questions, options)

		assert.Equal(t, TagOstrich, profile.PrimaryType)
		require.NotNil(t, profile.SecondaryType)
		assert.Equal(t, TagDebtor, *profile.SecondaryType)
		assert.Nil(t, profile.HybridType)
	})

	t.Run("secondary at 40 or below never forms a hybrid", func(t *testing.T) {
		answers := []models.UserAnswer{
			{UserID: 1, QuestionID: 1, PointsEarned: 20}, // investor 100
			{UserID: 1, QuestionID: 3, PointsEarned: 5},  // saver...
			{UserID: 1, QuestionID: 8, PointsEarned: 10}, // ...(5+10)/40 -> 38
		}
		profile := RecomputeProfile(1, answers, questions, options)

		require.NotNil(t, profile.SecondaryType)
		assert.Equal(t, TagSaver, *profile.SecondaryType)
		assert.Nil(t, profile.HybridType)
	})
}

func TestConfidenceScore(t *testing.T) {
	tests := []struct {
		name     string
		answered int
		want     int
	}{
		{"no answers", 0, 0},
		{"single answer", 1, 2},
		{"fifteen answers", 15, 30},
		{"half the bank", 25, 50},
		{"full bank", 50, 100},
		{"capped at 100", 60, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, confidenceScore(tt.answered))
		})
	}
}

func TestRecomputeProfileMetadata(t *testing.T) {
	questions, options := buildBank(5)
	answers := answerAll(questions, 20)

	profile := RecomputeProfile(7, answers, questions, options)

	assert.Equal(t, uint(7), profile.UserID)
	assert.Equal(t, 5, profile.QuestionsAnswered)
	assert.Equal(t, 10, profile.ConfidenceScore)
	assert.False(t, profile.LastUpdated.IsZero())
}
