package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a customer record owned by exactly one seller.
type Client struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Surname   string             `bson:"surname"`
	Company   string             `bson:"company"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Seller    primitive.ObjectID `bson:"seller"`
	CreatedAt time.Time          `bson:"created"`
}

type ClientInput struct {
	Name    string
	Surname string
	Company string
	Email   string
	Phone   *string
}

type ClientRepository interface {
	Create(ctx context.Context, client *Client) (*Client, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Client, error)
	GetByEmail(ctx context.Context, email string) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	ListBySeller(ctx context.Context, seller primitive.ObjectID) ([]Client, error)
	Update(ctx context.Context, id primitive.ObjectID, input ClientInput) (*Client, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ClientUseCase interface {
	Create(ctx context.Context, seller primitive.ObjectID, input ClientInput) (*Client, error)
	Get(ctx context.Context, seller, id primitive.ObjectID) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	ListBySeller(ctx context.Context, seller primitive.ObjectID) ([]Client, error)
	Update(ctx context.Context, seller, id primitive.ObjectID, input ClientInput) (*Client, error)
	Delete(ctx context.Context, seller, id primitive.ObjectID) error
}
