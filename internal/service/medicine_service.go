package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "healthshop/internal/errors"
	"healthshop/internal/model"
	"healthshop/internal/repository"
)

// MedicineService handles the medicine catalogue.
type MedicineService interface {
	List(ctx context.Context, filter model.MedicineFilter) ([]model.Medicine, error)
	ListByCategory(ctx context.Context, category string) ([]model.Medicine, error)
	ListDiscounted(ctx context.Context) ([]model.Medicine, error)
	ListByOwner(ctx context.Context, email string) ([]model.Medicine, error)
	Get(ctx context.Context, id string) (*model.Medicine, error)
	Create(ctx context.Context, medicine *model.Medicine, ownerEmail string) (*model.Medicine, error)
	Update(ctx context.Context, id string, update model.MedicineUpdate) (*model.Medicine, error)
	Delete(ctx context.Context, id string) error
}

type medicineService struct {
	repo repository.MedicineRepository
	now  func() time.Time
}

// NewMedicineService creates a new medicine service.
func NewMedicineService(repo repository.MedicineRepository) MedicineService {
	return &medicineService{repo: repo, now: time.Now}
}

func (s *medicineService) List(ctx context.Context, filter model.MedicineFilter) ([]model.Medicine, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.List(ctx, filter)
}

func (s *medicineService) ListByCategory(ctx context.Context, category string) ([]model.Medicine, error) {
	return s.repo.List(ctx, model.MedicineFilter{Category: category})
}

func (s *medicineService) ListDiscounted(ctx context.Context) ([]model.Medicine, error) {
	return s.repo.List(ctx, model.MedicineFilter{DiscountOnly: true})
}

func (s *medicineService) ListByOwner(ctx context.Context, email string) ([]model.Medicine, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.ErrMissingEmail
	}
	return s.repo.List(ctx, model.MedicineFilter{Email: email})
}

func (s *medicineService) Get(ctx context.Context, id string) (*model.Medicine, error) {
	return s.repo.FindByID(ctx, id)
}

// Create lists a new medicine. The owner defaults to the authenticated
// caller when the payload names none.
func (s *medicineService) Create(ctx context.Context, medicine *model.Medicine, ownerEmail string) (*model.Medicine, error) {
	if medicine.Price <= 0 {
		return nil, apperrors.ErrInvalidPrice
	}
	if medicine.Email == "" {
		medicine.Email = ownerEmail
	}
	medicine.ID = primitive.NilObjectID
	medicine.CreatedAt = s.now().UTC()

	if err := s.repo.Create(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

func (s *medicineService) Update(ctx context.Context, id string, update model.MedicineUpdate) (*model.Medicine, error) {
	if update.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}
	if update.Price != nil && *update.Price <= 0 {
		return nil, apperrors.ErrInvalidPrice
	}
	return s.repo.Update(ctx, id, update)
}

func (s *medicineService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
