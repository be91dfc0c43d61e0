package services

import (
	"context"
	"fmt"

	"findflow/internal/models/db_models"
	"findflow/internal/models/request_models"
	"findflow/internal/models/response_models"
	"findflow/pkg/utils"
)

type DialogueServiceInterface interface {
	HandleTurn(ctx context.Context, req request_models.DialogueTurnRequest) (*response_models.DialogueTurnResponse, error)
}

func NewDialogueService(
	categories CategoryServiceInterface,
	recommendations RecommendationServiceInterface,
) DialogueServiceInterface {
	return &DialogueService{
		categories:      categories,
		recommendations: recommendations,
	}
}

type DialogueService struct {
	categories      CategoryServiceInterface
	recommendations RecommendationServiceInterface
}

// HandleTurn runs one stateless dialogue turn. The schema is re-read from
// the store on every call so out-of-band category edits take effect on the
// next request.
func (s *DialogueService) HandleTurn(ctx context.Context, req request_models.DialogueTurnRequest) (*response_models.DialogueTurnResponse, error) {
	language := req.Language
	if language == "" {
		language = "en"
	}

	if req.Step == 0 {
		prompt, err := s.categoryPrompt(ctx, language)
		if err != nil {
			return nil, err
		}
		return &response_models.DialogueTurnResponse{CategoryPrompt: prompt}, nil
	}

	if req.Category == "" {
		return nil, fmt.Errorf("%w: missing category", utils.ErrInvalidInput)
	}

	category, err := s.categories.EnsureCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	preferences := InterpretAnswers(req.Answers, category.Specs)
	if req.BudgetBand != "" {
		preferences[BudgetBandKey] = req.BudgetBand
	}

	asked := askedSpecs(category.Specs, req.Step)
	confidence := ConfidenceScore(preferences, category.Specs)

	if question := NextQuestion(category, preferences, confidence, language, asked); question != nil {
		question.Progress = ProgressPercent(preferences, category.Specs)
		return &response_models.DialogueTurnResponse{Question: question}, nil
	}

	recommendation := s.recommendations.Generate(ctx, category, preferences, language)
	return &response_models.DialogueTurnResponse{Recommendation: recommendation}, nil
}

func (s *DialogueService) categoryPrompt(ctx context.Context, language string) (*response_models.CategoryPrompt, error) {
	names, err := s.categories.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	question := "What tech are you shopping for?"
	if language == "tr" {
		question = "Hangi teknoloji ürününü arıyorsunuz?"
	}
	return &response_models.CategoryPrompt{
		Question:   question,
		Categories: names,
	}, nil
}

// askedSpecs marks the first step-1 specs as already asked this session.
func askedSpecs(specs []db_models.QuestionSpec, step int) map[string]bool {
	asked := make(map[string]bool)
	count := step - 1
	if count > len(specs) {
		count = len(specs)
	}
	for i := 0; i < count; i++ {
		asked[specs[i].ID] = true
	}
	return asked
}
