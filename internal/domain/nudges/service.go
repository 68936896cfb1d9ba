package nudges

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, body map[string]any) (string, error) {
	return s.repo.Insert(ctx, NewDocument(body))
}
