package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCanceled  OrderStatus = "CANCELED"
)

func IsValidStatus(status OrderStatus) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

// OrderLine snapshots the product's name and price at order time.
type OrderLine struct {
	ProductID primitive.ObjectID `bson:"product"`
	Quantity  int32              `bson:"quantity"`
	Name      string             `bson:"name"`
	Price     float64            `bson:"price"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Lines     []OrderLine        `bson:"lines"`
	Total     float64            `bson:"total"`
	ClientID  primitive.ObjectID `bson:"client"`
	Seller    primitive.ObjectID `bson:"seller"`
	Status    OrderStatus        `bson:"status"`
	CreatedAt time.Time          `bson:"created"`
}

type OrderInput struct {
	Lines  []OrderLine
	Total  float64
	Client primitive.ObjectID
	Status OrderStatus
}

// OrderUpdate is a partial replace; nil fields keep their stored value.
type OrderUpdate struct {
	Lines  []OrderLine
	Total  *float64
	Client *primitive.ObjectID
	Status *OrderStatus
}

// ClientTotal and SellerTotal are aggregation results: summed completed
// order totals joined back to the grouped entity.
type ClientTotal struct {
	Total  float64 `bson:"total"`
	Client Client  `bson:"client"`
}

type SellerTotal struct {
	Total  float64 `bson:"total"`
	Seller User    `bson:"seller"`
}

type OrderRepository interface {
	Create(ctx context.Context, order *Order) (*Order, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListBySeller(ctx context.Context, seller primitive.ObjectID) ([]Order, error)
	ListBySellerAndStatus(ctx context.Context, seller primitive.ObjectID, status OrderStatus, limit int64) ([]Order, error)
	Update(ctx context.Context, id primitive.ObjectID, update OrderUpdate) (*Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	TopClients(ctx context.Context, limit int64) ([]ClientTotal, error)
	TopSellers(ctx context.Context, limit int64) ([]SellerTotal, error)
}

type OrderUseCase interface {
	Create(ctx context.Context, seller primitive.ObjectID, input OrderInput) (*Order, error)
	Get(ctx context.Context, seller, id primitive.ObjectID) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListBySeller(ctx context.Context, seller primitive.ObjectID) ([]Order, error)
	ListBySellerAndStatus(ctx context.Context, seller primitive.ObjectID, status OrderStatus) ([]Order, error)
	Update(ctx context.Context, seller, id primitive.ObjectID, update OrderUpdate) (*Order, error)
	Delete(ctx context.Context, seller, id primitive.ObjectID) error
	Client(ctx context.Context, id primitive.ObjectID) (*Client, error)
	TopClients(ctx context.Context) ([]ClientTotal, error)
	TopSellers(ctx context.Context) ([]SellerTotal, error)
}
