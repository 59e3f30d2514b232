package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salescrm/internal/domain"
)

type clientUseCase struct {
	clientRepo domain.ClientRepository
	log        *logrus.Logger
}

func NewClientUseCase(repo domain.ClientRepository, logger *logrus.Logger) domain.ClientUseCase {
	return &clientUseCase{
		clientRepo: repo,
		log:        logger,
	}
}

func (uc *clientUseCase) Create(ctx context.Context, seller primitive.ObjectID, input domain.ClientInput) (*domain.Client, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	uc.log.Infof("Use Case: Attempting to create client %s for seller %s", input.Email, seller.Hex())

	if err := validateClientInput(input); err != nil {
		uc.log.Warnf("Use Case: Client creation failed validation: %v", err)
		return nil, err
	}

	if _, err := uc.clientRepo.GetByEmail(ctx, input.Email); err == nil {
		uc.log.Warnf("Use Case: Client creation failed - email already exists: %s", input.Email)
		return nil, fmt.Errorf("client %s: %w", input.Email, domain.ErrDuplicateEmail)
	} else if !errors.Is(err, domain.ErrNotFound) {
		uc.log.Errorf("Use Case: Error checking client email %s: %v", input.Email, err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}

	client := &domain.Client{
		Name:    input.Name,
		Surname: input.Surname,
		Company: input.Company,
		Email:   input.Email,
		Seller:  seller,
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}

	created, err := uc.clientRepo.Create(ctx, client)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create client %s: %v", input.Email, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Client created successfully. ID: %s, Seller: %s", created.ID.Hex(), seller.Hex())
	return created, nil
}

// Get enforces ownership: only the seller a client belongs to may read it.
func (uc *clientUseCase) Get(ctx context.Context, seller, id primitive.ObjectID) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client.Seller != seller {
		uc.log.Warnf("Use Case: Seller %s denied access to client %s", seller.Hex(), id.Hex())
		return nil, fmt.Errorf("client %s: %w", id.Hex(), domain.ErrForbidden)
	}
	return client, nil
}

func (uc *clientUseCase) List(ctx context.Context) ([]domain.Client, error) {
	return uc.clientRepo.List(ctx)
}

func (uc *clientUseCase) ListBySeller(ctx context.Context, seller primitive.ObjectID) ([]domain.Client, error) {
	return uc.clientRepo.ListBySeller(ctx, seller)
}

func (uc *clientUseCase) Update(ctx context.Context, seller, id primitive.ObjectID, input domain.ClientInput) (*domain.Client, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validateClientInput(input); err != nil {
		uc.log.Warnf("Use Case: Client update failed validation: %v", err)
		return nil, err
	}

	if _, err := uc.Get(ctx, seller, id); err != nil {
		return nil, err
	}

	updated, err := uc.clientRepo.Update(ctx, id, input)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update client %s: %v", id.Hex(), err)
		return nil, err
	}

	uc.log.Infof("Use Case: Client updated successfully: ID %s", id.Hex())
	return updated, nil
}

func (uc *clientUseCase) Delete(ctx context.Context, seller, id primitive.ObjectID) error {
	if _, err := uc.Get(ctx, seller, id); err != nil {
		return err
	}

	if err := uc.clientRepo.Delete(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete client %s: %v", id.Hex(), err)
		return err
	}

	uc.log.Infof("Use Case: Client deleted successfully: ID %s", id.Hex())
	return nil
}

func validateClientInput(input domain.ClientInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Surname) == "" {
		return errors.New("client name and surname cannot be empty")
	}
	if strings.TrimSpace(input.Company) == "" {
		return errors.New("client company cannot be empty")
	}
	if !isValidEmail(input.Email) {
		return errors.New("invalid email format")
	}
	return nil
}
