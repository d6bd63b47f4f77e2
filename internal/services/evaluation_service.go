package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"studio_backend/internal/logger"
	"studio_backend/internal/models"
	"studio_backend/internal/repositories"
	"studio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Evaluator produces the free-text evaluation an admin sees next to an
// application. The keyword scorer below is placeholder logic; a real model
// integration would implement this same interface.
type Evaluator interface {
	Evaluate(app *models.CastingApplication) string
}

// KeywordEvaluator scores an application bio by counting occurrences of
// weighted keywords.
type KeywordEvaluator struct {
	weights map[string]int
}

func NewKeywordEvaluator() *KeywordEvaluator {
	return &KeywordEvaluator{
		weights: map[string]int{
			"acting":     3,
			"film":       2,
			"theater":    2,
			"theatre":    2,
			"voice":      2,
			"singing":    2,
			"dance":      1,
			"experience": 1,
			"training":   1,
			"improv":     1,
		},
	}
}

func (e *KeywordEvaluator) Evaluate(app *models.CastingApplication) string {
	bio := strings.ToLower(app.Bio)

	score := 0
	var matched []string
	for keyword, weight := range e.weights {
		count := strings.Count(bio, keyword)
		if count > 0 {
			score += count * weight
			matched = append(matched, keyword)
		}
	}
	sort.Strings(matched)

	verdict := "Limited relevant background mentioned."
	switch {
	case score >= 8:
		verdict = "Strong relevant background."
	case score >= 3:
		verdict = "Some relevant background."
	}

	if len(matched) == 0 {
		return fmt.Sprintf("Score %d. %s", score, verdict)
	}
	return fmt.Sprintf("Score %d (mentions: %s). %s", score, strings.Join(matched, ", "), verdict)
}

// EvaluationService fills in the null evaluation field of pending
// applications, either on demand from the admin API or in batches from the
// background worker.
type EvaluationService interface {
	EvaluateApplication(db *gorm.DB, id string) (*models.CastingApplication, error)
	EvaluatePending(ctx context.Context, db *gorm.DB, limit int) (int, error)
}

type evaluationService struct {
	applications repositories.CastingApplicationRepository
	evaluator    Evaluator
}

func NewEvaluationService(applications repositories.CastingApplicationRepository, evaluator Evaluator) EvaluationService {
	return &evaluationService{
		applications: applications,
		evaluator:    evaluator,
	}
}

func (s *evaluationService) EvaluateApplication(db *gorm.DB, id string) (*models.CastingApplication, error) {
	app, err := s.applications.GetByID(db, id)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("casting", "Application not found")
		}
		return nil, apperrors.NewPersistenceError("casting", err)
	}

	evaluation := s.evaluator.Evaluate(app)
	if err := s.applications.UpdateEvaluation(db, app.ID, evaluation); err != nil {
		return nil, apperrors.NewPersistenceError("casting", err)
	}

	app.AIEvaluation = &evaluation
	return app, nil
}

func (s *evaluationService) EvaluatePending(ctx context.Context, db *gorm.DB, limit int) (int, error) {
	apps, err := s.applications.ListUnevaluated(db, limit)
	if err != nil {
		return 0, err
	}

	evaluated := 0
	for _, app := range apps {
		select {
		case <-ctx.Done():
			return evaluated, ctx.Err()
		default:
		}

		evaluation := s.evaluator.Evaluate(&app)
		if err := s.applications.UpdateEvaluation(db, app.ID, evaluation); err != nil {
			logger.CtxWithError(ctx, "failed to store evaluation", err, "application_id", app.ID)
			continue
		}
		evaluated++
	}

	return evaluated, nil
}
