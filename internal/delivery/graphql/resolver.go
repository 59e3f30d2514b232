package graphql

import (
	"context"
	"fmt"

	"github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salescrm/internal/auth"
	"salescrm/internal/domain"
)

// Resolver is the schema root; it holds the use cases every field
// resolver dispatches to.
type Resolver struct {
	users    domain.UserUseCase
	products domain.ProductUseCase
	clients  domain.ClientUseCase
	orders   domain.OrderUseCase
	log      *logrus.Logger
}

func NewResolver(users domain.UserUseCase, products domain.ProductUseCase, clients domain.ClientUseCase, orders domain.OrderUseCase, logger *logrus.Logger) *Resolver {
	return &Resolver{
		users:    users,
		products: products,
		clients:  clients,
		orders:   orders,
		log:      logger,
	}
}

// identity returns the caller's seller ID, failing when the request
// carries no verified identity. Resolvers that need ownership call this
// instead of assuming the context is populated.
func identity(ctx context.Context) (primitive.ObjectID, error) {
	claims, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return primitive.NilObjectID, domain.ErrNotAuthenticated
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed identity", domain.ErrNotAuthenticated)
	}
	return id, nil
}

// objectID parses a GraphQL ID into a store document ID. An ID that is
// not valid hex cannot name any document, so it resolves to NotFound.
func objectID(id graphql.ID) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("id %s: %w", id, domain.ErrNotFound)
	}
	return oid, nil
}
