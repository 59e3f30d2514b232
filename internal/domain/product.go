package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Stock     int32              `bson:"stock"`
	Price     float64            `bson:"price"`
	CreatedAt time.Time          `bson:"created"`
}

type ProductInput struct {
	Name  string
	Stock int32
	Price float64
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) (*Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id primitive.ObjectID, input ProductInput) (*Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Search(ctx context.Context, text string) ([]Product, error)

	// DecrementStock atomically subtracts qty from the product's stock,
	// failing with ErrInsufficientStock (naming the product) when fewer
	// than qty units remain. IncrementStock is its compensating inverse.
	DecrementStock(ctx context.Context, id primitive.ObjectID, qty int32) error
	IncrementStock(ctx context.Context, id primitive.ObjectID, qty int32) error
}

type ProductUseCase interface {
	Create(ctx context.Context, input ProductInput) (*Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id primitive.ObjectID, input ProductInput) (*Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Search(ctx context.Context, text string) ([]Product, error)
}
