package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
)

type expertService struct {
	expert ExpertClient

	logger *logger.Logger
}

func NewExpertService(expert ExpertClient, logger *logger.Logger) ExpertService {
	return &expertService{
		expert: expert,
		logger: logger,
	}
}

// AskExpert forwards question to the advice model. A blank question is
// rejected before any outbound call is made.
func (e *expertService) AskExpert(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrNoQuestionAsked
	}

	answer, err := e.expert.Ask(ctx, question)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("expert call failed")
		return "", fmt.Errorf("expert call failed: %w", err)
	}

	return answer, nil
}
