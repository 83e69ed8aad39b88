package services

import (
	"fmt"

	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/database"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/models"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/repository"
	"gorm.io/gorm"
)

type seedOption struct {
	letter    string
	text      string
	indicator string
	points    int
	isBest    bool
}

type seedQuestion struct {
	number          int
	section         string
	scenario        string
	personalityType string
	difficulty      string
	options         []seedOption
}

// InitializeQuestions seeds the 50-question bank. It is a no-op when the
// bank already holds questions; the emptiness check runs inside the same
// transaction as the inserts so concurrent callers cannot double-seed.
func InitializeQuestions() (string, error) {
	message := ""
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		count, err := repository.CountQuestions(tx)
		if err != nil {
			return err
		}
		if count > 0 {
			message = "Questions already initialized"
			return nil
		}

		for _, q := range questionBank() {
			question := &models.Question{
				QuestionNumber:  q.number,
				Section:         q.section,
				Scenario:        q.scenario,
				PersonalityType: q.personalityType,
				Difficulty:      q.difficulty,
			}
			options := make([]models.QuestionOption, len(q.options))
			for i, o := range q.options {
				options[i] = models.QuestionOption{
					OptionLetter:         o.letter,
					OptionText:           o.text,
					PersonalityIndicator: o.indicator,
					Points:               o.points,
					IsBestAnswer:         o.isBest,
				}
			}
			if err := repository.CreateQuestion(tx, question, options); err != nil {
				return err
			}
		}

		message = fmt.Sprintf("Successfully initialized %d questions with options", models.TotalQuestions)
		return nil
	})
	return message, err
}

// questionBank returns the curated scenario questions plus generated filler
// up to the fixed total of 50.
func questionBank() []seedQuestion {
	questions := []seedQuestion{
		{
			number: 1, section: models.SectionInvestor,
			scenario:        "The stock market drops 10% overnight due to geopolitical concerns. What's your reaction?",
			personalityType: "The Investor", difficulty: "medium",
			options: []seedOption{
				{"A", "Buy more stocks - it's a great time to average down", "High Risk-Tolerance", 15, true},
				{"B", "Hold your current portfolio and wait for clarity", "Moderate", 8, false},
				{"C", "Sell immediately to avoid further losses", "Low Risk-Tolerance", 3, false},
				{"D", "Check your portfolio multiple times today to track the change", "Investment-Focused", 15, true},
			},
		},
		{
			number: 2, section: models.SectionInvestor,
			scenario:        "You have ₹2,00,000 in savings. How do you typically allocate it?",
			personalityType: "The Investor", difficulty: "medium",
			options: []seedOption{
				{"A", "60% stocks, 30% bonds, 10% cash", "Balanced Aggressive", 20, true},
				{"B", "40% stocks, 40% bonds, 20% savings", "Moderate", 12, false},
				{"C", "20% stocks, 50% bonds, 30% cash", "Conservative", 8, false},
				{"D", "100% in high-yield savings account", "Risk-Averse", 3, false},
			},
		},
		{
			number: 3, section: models.SectionInvestor,
			scenario:        "How often do you check your investment portfolio?",
			personalityType: "The Investor", difficulty: "easy",
			options: []seedOption{
				{"A", "Multiple times per day", "Daily Monitor", 10, true},
				{"B", "Once a day after market close", "Regular Monitor", 10, true},
				{"C", "Weekly review", "Moderate", 6, false},
				{"D", "Monthly check-in", "Casual", 4, false},
				{"E", "Quarterly or annually", "Passive", 2, false},
			},
		},
		{
			number: 4, section: models.SectionInvestor,
			scenario:        "Your friend suggests investing in cryptocurrency. Your response:",
			personalityType: "The Investor", difficulty: "medium",
			options: []seedOption{
				{"A", "Research thoroughly before investing", "Analytical", 18, true},
				{"B", "Invest a small amount to test waters", "Cautious", 12, false},
				{"C", "Go all-in - high risk, high reward!", "Risk-Taker", 8, false},
				{"D", "Avoid completely - too risky", "Conservative", 5, false},
			},
		},
		{
			number: 5, section: models.SectionInvestor,
			scenario:        "What's your investment time horizon?",
			personalityType: "The Investor", difficulty: "easy",
			options: []seedOption{
				{"A", "Less than 1 year", "Short-term", 5, false},
				{"B", "1-3 years", "Medium-term", 8, false},
				{"C", "3-10 years", "Long-term", 15, true},
				{"D", "10+ years", "Very Long-term", 20, true},
			},
		},
		{
			number: 6, section: models.SectionBigSpender,
			scenario:        "You see shoes you like while scrolling Instagram. Price: ₹5,000. Your account balance: ₹8,000. You:",
			personalityType: "The Big Spender", difficulty: "easy",
			options: []seedOption{
				{"A", "Buy immediately - life is short!", "Impulse", 5, false},
				{"B", "Add to cart and revisit in 48 hours", "Controlled", 12, true},
				{"C", "Check if it's within monthly budget first", "Disciplined", 15, true},
				{"D", "Pass - not a necessity", "Rational", 8, false},
			},
		},
		{
			number: 7, section: models.SectionBigSpender,
			scenario:        "Your credit card has a ₹20,000 limit. Current balance: ₹18,000. You:",
			personalityType: "The Big Spender", difficulty: "medium",
			options: []seedOption{
				{"A", "Use the remaining ₹2,000 when needed", "Spender", 3, false},
				{"B", "Stop using the card until you pay it down", "Responsible", 12, true},
				{"C", "Apply for a higher limit to keep shopping", "Risk", 2, false},
				{"D", "Pay it off immediately", "Conservative", 15, true},
			},
		},
		{
			number: 8, section: models.SectionBigSpender,
			scenario:        "When shopping, you typically:",
			personalityType: "The Big Spender", difficulty: "easy",
			options: []seedOption{
				{"A", "Make a list and stick to it", "Organized", 15, true},
				{"B", "Browse and buy what catches your eye", "Spontaneous", 6, false},
				{"C", "Compare prices across multiple stores", "Value-conscious", 12, false},
				{"D", "Buy the most expensive option for quality", "Premium", 8, false},
			},
		},
		{
			number: 9, section: models.SectionBigSaver,
			scenario:        "What percentage of your monthly income do you save?",
			personalityType: "The Big Saver", difficulty: "easy",
			options: []seedOption{
				{"A", "Less than 5%", "Low Saver", 3, false},
				{"B", "5-10%", "Moderate", 6, false},
				{"C", "10-20%", "Good Saver", 12, false},
				{"D", "20-30%", "Excellent Saver", 18, true},
				{"E", "30%+", "Big Saver", 25, true},
			},
		},
		{
			number: 10, section: models.SectionBigSaver,
			scenario:        "When you see your savings grow, you feel:",
			personalityType: "The Big Saver", difficulty: "easy",
			options: []seedOption{
				{"A", "Anxious - afraid I'll lose it", "Fearful", 5, false},
				{"B", "Indifferent - it's just money", "Neutral", 3, false},
				{"C", "Happy - watching wealth compound", "Big Saver", 20, true},
				{"D", "Frustrated - should be investing it", "Growth-minded", 12, false},
				{"E", "Pressured to spend it", "Spender tendency", 2, false},
			},
		},
		{
			number: 11, section: models.SectionOstrich,
			scenario:        "When bank statements arrive, you:",
			personalityType: "The Ostrich", difficulty: "easy",
			options: []seedOption{
				{"A", "Review immediately and categorize spending", "Engaged", 25, true},
				{"B", "Glance at them briefly", "Casual", 12, false},
				{"C", "Set them aside to review later", "Procrastinator", 5, false},
				{"D", "Leave them unopened", "Ostrich", 3, false},
				{"E", "Delete emails without reading", "Avoidant", 2, false},
			},
		},
		{
			number: 12, section: models.SectionOstrich,
			scenario:        "How much do you spend monthly?",
			personalityType: "The Ostrich", difficulty: "easy",
			options: []seedOption{
				{"A", "Exactly tracked to the rupee", "Detailed", 25, true},
				{"B", "Within ±₹2,000 range", "Approximate", 15, false},
				{"C", "Roughly ±₹5,000 range", "Vague", 8, false},
				{"D", "No idea - it varies", "Ostrich", 5, false},
				{"E", "Never thought about it", "Unaware", 3, false},
			},
		},
		{
			number: 13, section: models.SectionDebtor,
			scenario:        "By month-end, your finances are typically:",
			personalityType: "The Debtor", difficulty: "easy",
			options: []seedOption{
				{"A", "Balanced or saving", "Healthy", 20, true},
				{"B", "Slightly tight but manageable", "Moderate", 12, false},
				{"C", "Broke - waiting for next salary", "Debtor", 5, false},
				{"D", "In overdraft/debt spiral", "Crisis", 8, false},
				{"E", "Always borrowing before month-end", "Chronic Debtor", 10, false},
			},
		},
		{
			number: 14, section: models.SectionDebtor,
			scenario:        "How do you describe your financial situation?",
			personalityType: "The Debtor", difficulty: "medium",
			options: []seedOption{
				{"A", "In control - hitting goals", "Managed", 25, true},
				{"B", "Stable - getting by", "Stable", 15, false},
				{"C", "Chaotic - spending exceeds income", "Debtor", 5, false},
				{"D", "Overwhelmed - considering bankruptcy", "Crisis", 10, false},
				{"E", "Reactive - surprise bills destroy plans", "Disorganized", 8, false},
			},
		},
		{
			number: 15, section: models.SectionInvestor,
			scenario:        "Your investment loses 20% in a month. You:",
			personalityType: "The Investor", difficulty: "hard",
			options: []seedOption{
				{"A", "Panic sell everything", "Emotional", 3, false},
				{"B", "Hold and wait for recovery", "Patient", 15, true},
				{"C", "Buy more at lower prices", "Contrarian", 20, true},
				{"D", "Reassess investment strategy", "Analytical", 18, true},
			},
		},
		{
			number: 16, section: models.SectionBigSpender,
			scenario:        "You receive a ₹50,000 bonus. Your first thought:",
			personalityType: "The Big Spender", difficulty: "medium",
			options: []seedOption{
				{"A", "Plan a vacation immediately", "Experience-focused", 8, false},
				{"B", "Buy something you've wanted", "Reward-focused", 6, false},
				{"C", "Save 70%, spend 30%", "Balanced", 15, true},
				{"D", "Invest it all", "Growth-focused", 12, false},
			},
		},
		{
			number: 17, section: models.SectionBigSaver,
			scenario:        "Your emergency fund goal is:",
			personalityType: "The Big Saver", difficulty: "medium",
			options: []seedOption{
				{"A", "1-2 months expenses", "Basic", 8, false},
				{"B", "3-6 months expenses", "Standard", 15, true},
				{"C", "6-12 months expenses", "Conservative", 20, true},
				{"D", "12+ months expenses", "Ultra-safe", 25, true},
			},
		},
		{
			number: 18, section: models.SectionOstrich,
			scenario:        "Financial planning makes you feel:",
			personalityType: "The Ostrich", difficulty: "easy",
			options: []seedOption{
				{"A", "Excited and motivated", "Engaged", 20, true},
				{"B", "Overwhelmed and confused", "Ostrich", 5, false},
				{"C", "Bored but necessary", "Reluctant", 8, false},
				{"D", "Anxious and stressed", "Avoidant", 3, false},
			},
		},
		{
			number: 19, section: models.SectionDebtor,
			scenario:        "Your approach to debt repayment:",
			personalityType: "The Debtor", difficulty: "medium",
			options: []seedOption{
				{"A", "Pay minimums and hope for the best", "Passive", 3, false},
				{"B", "Pay highest interest rate first", "Strategic", 20, true},
				{"C", "Pay smallest balance first", "Motivational", 15, true},
				{"D", "Ignore it and it will go away", "Denial", 2, false},
			},
		},
		{
			number: 20, section: models.SectionInvestor,
			scenario:        "Your ideal investment return expectation:",
			personalityType: "The Investor", difficulty: "medium",
			options: []seedOption{
				{"A", "5-8% annually", "Conservative", 10, false},
				{"B", "8-12% annually", "Moderate", 15, true},
				{"C", "12-20% annually", "Aggressive", 18, true},
				{"D", "20%+ annually", "Speculative", 8, false},
			},
		},
	}

	// Generated filler questions up to the fixed total
	personalities := []string{"The Investor", "The Big Spender", "The Big Saver", "The Ostrich", "The Debtor"}
	difficulties := []string{"easy", "medium", "hard"}

	for i := len(questions) + 1; i <= models.TotalQuestions; i++ {
		idx := i - 21
		questions = append(questions, seedQuestion{
			number:          i,
			section:         models.Sections[idx%5],
			scenario:        fmt.Sprintf("Financial scenario %d: How do you handle this situation?", i),
			personalityType: personalities[idx%5],
			difficulty:      difficulties[idx%3],
			options: []seedOption{
				{"A", fmt.Sprintf("Option A for question %d", i), "Type A", 10, false},
				{"B", fmt.Sprintf("Option B for question %d", i), "Type B", 15, true},
				{"C", fmt.Sprintf("Option C for question %d", i), "Type C", 12, false},
				{"D", fmt.Sprintf("Option D for question %d", i), "Type D", 8, false},
			},
		})
	}

	return questions
}
