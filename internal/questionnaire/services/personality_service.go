package services

import (
	"math"
	"sort"
	"time"

	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/models"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/repository"
)

const (
	TagInvestor = "investor"
	TagSpender  = "spender"
	TagSaver    = "saver"
	TagOstrich  = "ostrich"
	TagDebtor   = "debtor"
)

// tagOrder fixes the tie-break priority between equal section scores.
var tagOrder = []string{TagInvestor, TagSpender, TagSaver, TagOstrich, TagDebtor}

var sectionTags = map[string]string{
	models.SectionInvestor:   TagInvestor,
	models.SectionBigSpender: TagSpender,
	models.SectionBigSaver:   TagSaver,
	models.SectionOstrich:    TagOstrich,
	models.SectionDebtor:     TagDebtor,
}

// hybridTypes maps unordered primary/secondary pairs to hybrid labels.
var hybridTypes = map[[2]string]string{
	{TagInvestor, TagSaver}:   "Portfolio Guardian 🛡️",
	{TagInvestor, TagSpender}: "Balanced Trader ⚖️",
	{TagSaver, TagOstrich}:    "Anxious Hoarder 😰",
	{TagInvestor, TagDebtor}:  "Overleveraged Gambler 🎰",
	{TagSpender, TagOstrich}:  "Impulsive Avoider 🎭",
}

func hybridFor(primary, secondary string) string {
	if label, ok := hybridTypes[[2]string{primary, secondary}]; ok {
		return label
	}
	return hybridTypes[[2]string{secondary, primary}]
}

// RecomputeProfile derives a personality profile from a user's answers.
// Each section scores the points earned against the maximum obtainable on
// the questions answered in that section; unanswered sections score zero.
func RecomputeProfile(
	userID uint,
	answers []models.UserAnswer,
	questions map[uint]models.Question,
	options map[uint][]models.QuestionOption,
) *models.UserPersonality {
	earned := map[string]int{}
	maxPossible := map[string]int{}

	for _, answer := range answers {
		question, ok := questions[answer.QuestionID]
		if !ok {
			continue
		}
		tag := sectionTags[question.Section]
		earned[tag] += answer.PointsEarned

		best := 0
		for _, option := range options[answer.QuestionID] {
			if option.Points > best {
				best = option.Points
			}
		}
		maxPossible[tag] += best
	}

	scores := map[string]int{}
	for _, tag := range tagOrder {
		if maxPossible[tag] > 0 {
			scores[tag] = int(math.Round(100 * float64(earned[tag]) / float64(maxPossible[tag])))
		} else {
			scores[tag] = 0
		}
	}

	ranked := make([]string, len(tagOrder))
	copy(ranked, tagOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	profile := &models.UserPersonality{
		UserID:            userID,
		PrimaryType:       ranked[0],
		ConfidenceScore:   confidenceScore(len(answers)),
		InvestorScore:     scores[TagInvestor],
		SpenderScore:      scores[TagSpender],
		SaverScore:        scores[TagSaver],
		OstrichScore:      scores[TagOstrich],
		DebtorScore:       scores[TagDebtor],
		LastUpdated:       time.Now(),
		QuestionsAnswered: len(answers),
	}

	if scores[ranked[1]] > 30 {
		secondary := ranked[1]
		profile.SecondaryType = &secondary

		if scores[ranked[0]] > 60 && scores[secondary] > 40 {
			if label := hybridFor(ranked[0], secondary); label != "" {
				profile.HybridType = &label
			}
		}
	}

	return profile
}

func confidenceScore(answered int) int {
	confidence := int(math.Round(100 * float64(answered) / float64(models.TotalQuestions)))
	if confidence > 100 {
		confidence = 100
	}
	return confidence
}

// UpdatePersonality recomputes and persists a user's personality profile
// from their current answer set.
func UpdatePersonality(userID uint) error {
	answers, err := repository.GetUserAnswers(userID)
	if err != nil {
		return err
	}
	if len(answers) == 0 {
		return nil
	}

	allQuestions, err := repository.GetAllQuestions()
	if err != nil {
		return err
	}
	questions := make(map[uint]models.Question, len(allQuestions))
	for _, q := range allQuestions {
		questions[q.ID] = q
	}

	allOptions, err := repository.GetAllOptions()
	if err != nil {
		return err
	}
	options := make(map[uint][]models.QuestionOption, len(allQuestions))
	for _, o := range allOptions {
		options[o.QuestionID] = append(options[o.QuestionID], o)
	}

	return repository.UpsertPersonality(RecomputeProfile(userID, answers, questions, options))
}
