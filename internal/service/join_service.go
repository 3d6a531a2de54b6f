package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthshop/internal/model"
	"healthshop/internal/repository"
)

// JoinService records community sign-ups.
type JoinService interface {
	Join(ctx context.Context, request *model.JoinRequest) (*model.JoinRequest, error)
}

type joinService struct {
	repo repository.JoinRequestRepository
	now  func() time.Time
}

// NewJoinService creates a new join service.
func NewJoinService(repo repository.JoinRequestRepository) JoinService {
	return &joinService{repo: repo, now: time.Now}
}

func (s *joinService) Join(ctx context.Context, request *model.JoinRequest) (*model.JoinRequest, error) {
	request.ID = primitive.NilObjectID
	request.JoinedAt = s.now().UTC()
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}
