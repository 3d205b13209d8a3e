package advice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BrayanU12/BudgetMate/internal/config"
	"github.com/BrayanU12/BudgetMate/internal/test_utils"
	"github.com/BrayanU12/BudgetMate/pkg/ledger"
	"github.com/BrayanU12/BudgetMate/pkg/score"
	"github.com/BrayanU12/BudgetMate/pkg/transaction"
	"github.com/BrayanU12/BudgetMate/pkg/user"
	"github.com/stretchr/testify/assert"
)

type fakeGenerator struct {
	prompt   string
	response string
	err      error
}

func (f *fakeGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

type stubScoreService struct {
	report score.Report
}

func (s *stubScoreService) Report(ctx context.Context) (score.Report, error) {
	return s.report, nil
}

func (s *stubScoreService) Snapshot(ctx context.Context) (int, error) {
	return s.report.Score, nil
}

func (s *stubScoreService) SnapshotAll(ctx context.Context) error {
	return nil
}

type adviceFixture struct {
	service   *ServiceImpl
	generator *fakeGenerator
	ctx       context.Context
}

func newAdviceFixture(t *testing.T, colombian bool) adviceFixture {
	t.Helper()
	repo := transaction.NewStubTransactionRepo()
	seed := func(txType transaction.Type, category string, amount float64) {
		created, err := transaction.New("id-"+category, category, amount, txType, category, time.Now())
		assert.NoError(t, err)
		assert.NoError(t, repo.Store(context.Background(), 123, created))
	}
	seed(transaction.Income, "Salary", 2600000)
	seed(transaction.Expense, "Housing", 900000)
	seed(transaction.Expense, "Dining Out", 300000)

	generator := &fakeGenerator{}
	contextUser := test_utils.TestUser()
	contextUser.Settings.ColombianMode = colombian

	return adviceFixture{
		service: NewAdviceService(
			generator,
			ledger.NewLedgerService(repo),
			&stubScoreService{report: score.Report{Score: 72, PreviousScore: 65}},
			config.Advice{Model: "gemini-2.5-flash", Smlv: 1300000, TransportAllowance: 162000},
		),
		generator: generator,
		ctx:       user.WithUser(context.Background(), contextUser),
	}
}

func TestAdviceService_Coach_PromptCarriesLedgerFigures(t *testing.T) {
	// given
	f := newAdviceFixture(t, false)
	f.generator.response = "### Behavioral Analysis\nLooks fine."

	// when
	text, err := f.service.Coach(f.ctx, ledger.Monthly)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "### Behavioral Analysis\nLooks fine.", text)
	assert.Contains(t, f.generator.prompt, "2600000.00")
	assert.Contains(t, f.generator.prompt, "1200000.00")
	assert.Contains(t, f.generator.prompt, "Housing")
	assert.Contains(t, f.generator.prompt, "general personal finance")
}

func TestAdviceService_Coach_ColombianModeAddsRegionalContext(t *testing.T) {
	// given: 2,600,000 COP income at an SMLV of 1,300,000
	f := newAdviceFixture(t, true)
	f.generator.response = "ok"

	// when
	_, err := f.service.Coach(f.ctx, ledger.Monthly)

	// then
	assert.NoError(t, err)
	assert.Contains(t, f.generator.prompt, "COLOMBIAN MODE")
	assert.Contains(t, f.generator.prompt, "2.0 SMLV")
	assert.Contains(t, f.generator.prompt, "162000 COP")
}

func TestAdviceService_Coach_FallsBackOnModelError(t *testing.T) {
	// given
	f := newAdviceFixture(t, false)
	f.generator.err = errors.New("quota exceeded")

	// when
	text, err := f.service.Coach(f.ctx, ledger.Monthly)

	// then: the failure never reaches the caller
	assert.NoError(t, err)
	assert.Equal(t, coachFallback, text)
}

func TestAdviceService_Prediction_ParsesFencedJSON(t *testing.T) {
	// given: the model ignored the no-fences instruction
	f := newAdviceFixture(t, false)
	f.generator.response = "```json\n{\"predictedTotal\": 1350000, \"percentageChange\": 12.5, \"riskyCategory\": \"Dining Out\", \"riskReason\": \"growing fast\", \"cutCategory\": \"Leisure\", \"cutSuggestion\": \"cook at home\"}\n```"

	// when
	result, err := f.service.Prediction(f.ctx)

	// then
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 1350000.0, result.PredictedTotal)
	assert.Equal(t, "Dining Out", result.RiskyCategory)
}

func TestAdviceService_Prediction_DiscardsGarbage(t *testing.T) {
	f := newAdviceFixture(t, false)
	f.generator.response = "I cannot help with that."

	result, err := f.service.Prediction(f.ctx)

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestAdviceService_GoalSuggestions_ParsesArray(t *testing.T) {
	// given
	f := newAdviceFixture(t, false)
	f.generator.response = `[{"name": "Emergency fund", "targetAmount": 3000000, "reason": "three months of expenses", "emoji": "🚨", "estimatedMonths": 10}]`

	// when
	suggestions, err := f.service.GoalSuggestions(f.ctx)

	// then
	assert.NoError(t, err)
	assert.Len(t, suggestions, 1)
	assert.Equal(t, "Emergency fund", suggestions[0].Name)
	assert.Equal(t, 10, suggestions[0].EstimatedMonths)
}

func TestAdviceService_GoalSuggestions_EmptyOnModelError(t *testing.T) {
	f := newAdviceFixture(t, false)
	f.generator.err = errors.New("backend unavailable")

	suggestions, err := f.service.GoalSuggestions(f.ctx)

	assert.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestAdviceService_ScoreAdvice_PromptCarriesBothScores(t *testing.T) {
	// given
	f := newAdviceFixture(t, false)
	f.generator.response = `{"reason": "savings rate climbed", "tips": ["keep the automated transfer", "review subscriptions"]}`

	// when
	analysis, err := f.service.ScoreAdvice(f.ctx)

	// then
	assert.NoError(t, err)
	assert.NotNil(t, analysis)
	assert.Len(t, analysis.Tips, 2)
	assert.Contains(t, f.generator.prompt, "Score: 72 (previous: 65)")
}

func TestAdviceService_RequiresUser(t *testing.T) {
	f := newAdviceFixture(t, false)

	_, err := f.service.Coach(context.Background(), ledger.Monthly)

	assert.ErrorIs(t, err, user.ErrNoUser)
}

func TestCleanModelJSON(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"plain object", `{"a": 1}`, `{"a": 1}`},
		{"fenced object", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced array", "```\n[1, 2]\n```", `[1, 2]`},
		{"prose around object", "Here you go: {\"a\": 1} Hope it helps!", `{"a": 1}`},
		{"no json at all", "sorry", "sorry"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, cleanModelJSON(c.in))
		})
	}
}
