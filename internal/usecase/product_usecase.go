package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salescrm/internal/domain"
)

// Products are global: no ownership concept applies to them.
type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) domain.ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(input); err != nil {
		uc.log.Warnf("Use Case: Product creation failed validation: %v", err)
		return nil, err
	}

	created, err := uc.productRepo.Create(ctx, &domain.Product{
		Name:  input.Name,
		Stock: input.Stock,
		Price: input.Price,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", input.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product created successfully. ID: %s, Name: %s", created.ID.Hex(), created.Name)
	return created, nil
}

func (uc *productUseCase) Get(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *productUseCase) List(ctx context.Context) ([]domain.Product, error) {
	return uc.productRepo.List(ctx)
}

func (uc *productUseCase) Update(ctx context.Context, id primitive.ObjectID, input domain.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(input); err != nil {
		uc.log.Warnf("Use Case: Product update failed validation: %v", err)
		return nil, err
	}

	updated, err := uc.productRepo.Update(ctx, id, input)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to update product %s: %v", id.Hex(), err)
		return nil, err
	}
	return updated, nil
}

func (uc *productUseCase) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Failed to delete product %s: %v", id.Hex(), err)
		return err
	}
	return nil
}

func (uc *productUseCase) Search(ctx context.Context, text string) ([]domain.Product, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("search text cannot be empty")
	}
	return uc.productRepo.Search(ctx, text)
}

func validateProductInput(input domain.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.New("product name cannot be empty")
	}
	if input.Stock < 0 {
		return errors.New("product stock cannot be negative")
	}
	if input.Price < 0 {
		return errors.New("product price cannot be negative")
	}
	return nil
}
