package advice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BrayanU12/BudgetMate/internal/config"
	"github.com/BrayanU12/BudgetMate/pkg/ledger"
	"github.com/BrayanU12/BudgetMate/pkg/score"
	"github.com/BrayanU12/BudgetMate/pkg/user"
	log "github.com/sirupsen/logrus"
)

const coachFallback = "Your financial coach is taking a coffee break. Try again in a moment."

// Service wraps the model as an optional enrichment step. Model failures and
// unparseable output degrade to fallbacks instead of surfacing as errors; only
// session and ledger failures do.
type Service interface {
	Coach(ctx context.Context, period ledger.Period) (string, error)
	Prediction(ctx context.Context) (*PredictionResult, error)
	GoalSuggestions(ctx context.Context) ([]GoalSuggestion, error)
	ScoreAdvice(ctx context.Context) (*ScoreAnalysis, error)
}

type ServiceImpl struct {
	generator     Generator
	ledgerService ledger.Service
	scoreService  score.Service
	cfg           config.Advice
}

func NewAdviceService(generator Generator, ledgerService ledger.Service, scoreService score.Service, cfg config.Advice) *ServiceImpl {
	return &ServiceImpl{
		generator:     generator,
		ledgerService: ledgerService,
		scoreService:  scoreService,
		cfg:           cfg,
	}
}

func (s *ServiceImpl) Coach(ctx context.Context, period ledger.Period) (string, error) {
	adviceContext, err := s.buildContext(ctx, period)
	if err != nil {
		return "", err
	}

	text, err := s.generator.GenerateText(ctx, s.cfg.Model, coachPrompt(adviceContext))
	if err != nil {
		log.Warnf("advice generation failed, serving fallback: %v", err)
		return coachFallback, nil
	}
	if text == "" {
		return coachFallback, nil
	}
	return text, nil
}

func (s *ServiceImpl) Prediction(ctx context.Context) (*PredictionResult, error) {
	adviceContext, err := s.buildContext(ctx, ledger.Monthly)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.GenerateText(ctx, s.cfg.Model, predictionPrompt(adviceContext))
	if err != nil {
		log.Warnf("prediction generation failed: %v", err)
		return nil, nil
	}

	var result PredictionResult
	if err := json.Unmarshal([]byte(cleanModelJSON(text)), &result); err != nil {
		log.Warnf("discarding unparseable prediction response: %v", err)
		return nil, nil
	}
	return &result, nil
}

func (s *ServiceImpl) GoalSuggestions(ctx context.Context) ([]GoalSuggestion, error) {
	adviceContext, err := s.buildContext(ctx, ledger.Monthly)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.GenerateText(ctx, s.cfg.Model, goalsPrompt(adviceContext))
	if err != nil {
		log.Warnf("goal suggestion generation failed: %v", err)
		return []GoalSuggestion{}, nil
	}

	var suggestions []GoalSuggestion
	if err := json.Unmarshal([]byte(cleanModelJSON(text)), &suggestions); err != nil {
		log.Warnf("discarding unparseable goal suggestions: %v", err)
		return []GoalSuggestion{}, nil
	}
	return suggestions, nil
}

func (s *ServiceImpl) ScoreAdvice(ctx context.Context) (*ScoreAnalysis, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	report, err := s.scoreService.Report(ctx)
	if err != nil {
		return nil, err
	}

	prompt := scorePrompt(report.Score, report.PreviousScore, currentUser.Settings.ColombianMode)
	text, err := s.generator.GenerateText(ctx, s.cfg.Model, prompt)
	if err != nil {
		log.Warnf("score advice generation failed: %v", err)
		return nil, nil
	}

	var analysis ScoreAnalysis
	if err := json.Unmarshal([]byte(cleanModelJSON(text)), &analysis); err != nil {
		log.Warnf("discarding unparseable score advice: %v", err)
		return nil, nil
	}
	return &analysis, nil
}

func (s *ServiceImpl) buildContext(ctx context.Context, period ledger.Period) (Context, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return Context{}, fmt.Errorf("failed to get current user: %w", err)
	}

	view, err := s.ledgerService.GetView(ctx, period)
	if err != nil {
		return Context{}, err
	}

	byCategory := make(map[string]float64, len(view.Breakdown))
	for _, ct := range view.Breakdown {
		byCategory[ct.Category] = ct.Amount
	}

	adviceContext := Context{
		Period:             string(view.Period),
		TotalIncome:        view.Summary.TotalIncome,
		TotalExpenses:      view.Summary.TotalExpenses,
		SavingsRate:        view.Summary.SavingsRate,
		ExpensesByCategory: byCategory,
		ColombianMode:      currentUser.Settings.ColombianMode,
	}
	if adviceContext.ColombianMode && s.cfg.Smlv > 0 {
		adviceContext.SmlvCount = view.Summary.TotalIncome / s.cfg.Smlv
		adviceContext.TransportAllowance = s.cfg.TransportAllowance
	}
	return adviceContext, nil
}
