package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

type NewsletterService struct {
	repo       ports.NewsletterRepository
	gateway    ports.AIGatewayClient
	maxRetries int
	baseDelay  time.Duration
}

func NewNewsletterService(repo ports.NewsletterRepository, gateway ports.AIGatewayClient, maxRetries int, baseDelay time.Duration) *NewsletterService {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	return &NewsletterService{repo: repo, gateway: gateway, maxRetries: maxRetries, baseDelay: baseDelay}
}

// Generate asks the AI gateway for a newsletter draft and saves it. Gateway
// calls are retried with exponential backoff; the draft is only persisted
// after a successful generation.
func (s *NewsletterService) Generate(ctx context.Context, teacherID uuid.UUID, req ports.GenerationRequest) (*domain.Newsletter, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, domain.ErrInvalidNewsletterTitle
	}
	if s.gateway == nil || !s.gateway.IsAvailable() {
		return nil, domain.ErrAIGatewayNotAvailable
	}
	if req.Language == "" {
		req.Language = "fr"
	}

	content, err := s.generateWithRetry(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newsletter := &domain.Newsletter{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		TeacherID: teacherID,
		Title:     req.Title,
		Term:      req.Term,
		Content:   content,
		Status:    domain.NewsletterStatusDraft,
		Generated: true,
	}
	if err := s.repo.Create(ctx, newsletter); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, newsletter.ID)
}

func (s *NewsletterService) generateWithRetry(ctx context.Context, req ports.GenerationRequest) (string, error) {
	delay := s.baseDelay
	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		content, err := s.gateway.GenerateNewsletter(ctx, req)
		if err == nil {
			return content, nil
		}
		lastErr = err
		log.WithError(err).WithField("attempt", attempt).Warn("newsletter generation attempt failed")

		if attempt == s.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	log.WithError(lastErr).Error("newsletter generation exhausted retries")
	return "", domain.ErrGenerationFailed
}

func (s *NewsletterService) Create(ctx context.Context, teacherID uuid.UUID, title, term, content string) (*domain.Newsletter, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrInvalidNewsletterTitle
	}
	now := time.Now()
	newsletter := &domain.Newsletter{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		TeacherID: teacherID,
		Title:     title,
		Term:      term,
		Content:   content,
		Status:    domain.NewsletterStatusDraft,
	}
	if err := s.repo.Create(ctx, newsletter); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, newsletter.ID)
}

func (s *NewsletterService) Get(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) (*domain.Newsletter, error) {
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *NewsletterService) List(ctx context.Context, filter ports.NewsletterListFilter) ([]*domain.Newsletter, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.repo.List(ctx, filter)
}

func (s *NewsletterService) Update(ctx context.Context, teacherID uuid.UUID, id uuid.UUID, updates map[string]interface{}) (*domain.Newsletter, error) {
	newsletter, err := s.repo.GetByID(ctx, teacherID, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["title"]; ok && v != nil {
		title := strings.TrimSpace(v.(string))
		if title == "" {
			return nil, domain.ErrInvalidNewsletterTitle
		}
		newsletter.Title = title
	}
	if v, ok := updates["content"]; ok && v != nil {
		newsletter.Content = v.(string)
	}
	if v, ok := updates["term"]; ok && v != nil {
		newsletter.Term = v.(string)
	}
	if v, ok := updates["status"]; ok && v != nil {
		newsletter.Status = domain.NewsletterStatus(v.(string))
	}

	if err := s.repo.Update(ctx, teacherID, newsletter); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, teacherID, id)
}

func (s *NewsletterService) Delete(ctx context.Context, teacherID uuid.UUID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, teacherID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, teacherID, id)
}
