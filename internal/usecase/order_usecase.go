package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salescrm/internal/domain"
)

const (
	statusListLimit = 10
	topLimit        = 5
)

type orderUseCase struct {
	orderRepo   domain.OrderRepository
	clientRepo  domain.ClientRepository
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewOrderUseCase(orderRepo domain.OrderRepository, clientRepo domain.ClientRepository, productRepo domain.ProductRepository, logger *logrus.Logger) domain.OrderUseCase {
	return &orderUseCase{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		log:         logger,
	}
}

// Create places an order for one of the caller's clients. Stock for each
// line is taken with an atomic compare-and-decrement; if any line fails,
// stock already taken for earlier lines is restored before returning, so
// a failed order never partially commits.
func (uc *orderUseCase) Create(ctx context.Context, seller primitive.ObjectID, input domain.OrderInput) (*domain.Order, error) {
	uc.log.Infof("Use Case: Attempting to create order for client %s by seller %s", input.Client.Hex(), seller.Hex())

	if len(input.Lines) == 0 {
		return nil, errors.New("order must contain at least one line")
	}
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, errors.New("order line quantity must be positive")
		}
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !domain.IsValidStatus(status) {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	if err := uc.checkClientOwnership(ctx, seller, input.Client); err != nil {
		return nil, err
	}

	if err := uc.takeStock(ctx, input.Lines); err != nil {
		return nil, err
	}

	created, err := uc.orderRepo.Create(ctx, &domain.Order{
		Lines:    input.Lines,
		Total:    input.Total,
		ClientID: input.Client,
		Seller:   seller,
		Status:   status,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create order: %v", err)
		uc.restoreStock(ctx, input.Lines)
		return nil, err
	}

	uc.log.Infof("Use Case: Order created successfully. ID: %s", created.ID.Hex())
	return created, nil
}

func (uc *orderUseCase) Get(ctx context.Context, seller, id primitive.ObjectID) (*domain.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Seller != seller {
		uc.log.Warnf("Use Case: Seller %s denied access to order %s", seller.Hex(), id.Hex())
		return nil, fmt.Errorf("order %s: %w", id.Hex(), domain.ErrForbidden)
	}
	return order, nil
}

func (uc *orderUseCase) List(ctx context.Context) ([]domain.Order, error) {
	return uc.orderRepo.List(ctx)
}

func (uc *orderUseCase) ListBySeller(ctx context.Context, seller primitive.ObjectID) ([]domain.Order, error) {
	return uc.orderRepo.ListBySeller(ctx, seller)
}

func (uc *orderUseCase) ListBySellerAndStatus(ctx context.Context, seller primitive.ObjectID, status domain.OrderStatus) ([]domain.Order, error) {
	if !domain.IsValidStatus(status) {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}
	return uc.orderRepo.ListBySellerAndStatus(ctx, seller, status, statusListLimit)
}

// Update applies a partial replace. The order must belong to the caller;
// when the update points the order at a different client, that client must
// belong to the caller too. New lines go through the same stock loop as
// order creation.
func (uc *orderUseCase) Update(ctx context.Context, seller, id primitive.ObjectID, update domain.OrderUpdate) (*domain.Order, error) {
	uc.log.Infof("Use Case: Attempting to update order %s by seller %s", id.Hex(), seller.Hex())

	if _, err := uc.Get(ctx, seller, id); err != nil {
		return nil, err
	}

	if update.Client != nil {
		if err := uc.checkClientOwnership(ctx, seller, *update.Client); err != nil {
			return nil, err
		}
	}
	if update.Status != nil && !domain.IsValidStatus(*update.Status) {
		return nil, fmt.Errorf("invalid order status: %s", *update.Status)
	}
	if update.Lines != nil {
		for _, line := range update.Lines {
			if line.Quantity <= 0 {
				return nil, errors.New("order line quantity must be positive")
			}
		}
		if err := uc.takeStock(ctx, update.Lines); err != nil {
			return nil, err
		}
	}

	updated, err := uc.orderRepo.Update(ctx, id, update)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update order %s: %v", id.Hex(), err)
		if update.Lines != nil {
			uc.restoreStock(ctx, update.Lines)
		}
		return nil, err
	}

	uc.log.Infof("Use Case: Order updated successfully: ID %s", id.Hex())
	return updated, nil
}

// Delete removes the order without restoring stock.
func (uc *orderUseCase) Delete(ctx context.Context, seller, id primitive.ObjectID) error {
	if _, err := uc.Get(ctx, seller, id); err != nil {
		return err
	}

	if err := uc.orderRepo.Delete(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete order %s: %v", id.Hex(), err)
		return err
	}

	uc.log.Infof("Use Case: Order deleted successfully: ID %s", id.Hex())
	return nil
}

// Client resolves the client an order references, without an ownership
// check: the order itself has already been authorized when this is called.
func (uc *orderUseCase) Client(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	return uc.clientRepo.GetByID(ctx, id)
}

func (uc *orderUseCase) TopClients(ctx context.Context) ([]domain.ClientTotal, error) {
	return uc.orderRepo.TopClients(ctx, topLimit)
}

func (uc *orderUseCase) TopSellers(ctx context.Context) ([]domain.SellerTotal, error) {
	return uc.orderRepo.TopSellers(ctx, topLimit)
}

func (uc *orderUseCase) checkClientOwnership(ctx context.Context, seller, clientID primitive.ObjectID) error {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client.Seller != seller {
		uc.log.Warnf("Use Case: Seller %s does not own client %s", seller.Hex(), clientID.Hex())
		return fmt.Errorf("client %s: %w", clientID.Hex(), domain.ErrForbidden)
	}
	return nil
}

func (uc *orderUseCase) takeStock(ctx context.Context, lines []domain.OrderLine) error {
	var applied []domain.OrderLine
	for _, line := range lines {
		if err := uc.productRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			uc.log.Warnf("Use Case: Stock decrement failed for product %s: %v", line.ProductID.Hex(), err)
			uc.restoreStock(ctx, applied)
			return err
		}
		applied = append(applied, line)
	}
	return nil
}

func (uc *orderUseCase) restoreStock(ctx context.Context, lines []domain.OrderLine) {
	for _, line := range lines {
		if err := uc.productRepo.IncrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			uc.log.Errorf("Use Case: Failed to restore %d units of product %s: %v", line.Quantity, line.ProductID.Hex(), err)
		}
	}
}
