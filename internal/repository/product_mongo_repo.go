package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salescrm/internal/domain"
)

type mongoProductRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

func NewMongoProductRepository(database *mongo.Database, logger *logrus.Logger) domain.ProductRepository {
	return &mongoProductRepository{
		coll: database.Collection("products"),
		log:  logger,
	}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	r.log.Debugf("Repository: Attempting to create product: %s", product.Name)

	product.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		r.log.Errorf("Repository: Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}

	product.ID = res.InsertedID.(primitive.ObjectID)
	r.log.Infof("Repository: Product created successfully with ID: %s, Name: %s", product.ID.Hex(), product.Name)
	return product, nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var product domain.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("Repository: Product with ID %s not found", id.Hex())
			return nil, fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get product by ID %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}

	return &product, nil
}

func (r *mongoProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.log.Errorf("Repository: Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		r.log.Errorf("Repository: Failed to decode products: %v", err)
		return nil, fmt.Errorf("could not decode products: %w", err)
	}
	return products, nil
}

func (r *mongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, input domain.ProductInput) (*domain.Product, error) {
	r.log.Debugf("Repository: Attempting to update product ID: %s", id.Hex())

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	update := bson.M{"$set": bson.M{
		"name":  input.Name,
		"stock": input.Stock,
		"price": input.Price,
	}}

	var product domain.Product
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("Repository: Product with ID %s not found for update", id.Hex())
			return nil, fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to update product %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}

	r.log.Infof("Repository: Product updated successfully: ID %s", id.Hex())
	return &product, nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Errorf("Repository: Failed to delete product %s: %v", id.Hex(), err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		r.log.Warnf("Repository: Product with ID %s not found for delete", id.Hex())
		return fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}

	r.log.Infof("Repository: Product deleted successfully: ID %s", id.Hex())
	return nil
}

func (r *mongoProductRepository) Search(ctx context.Context, text string) ([]domain.Product, error) {
	r.log.Debugf("Repository: Searching products for text: %q", text)

	cursor, err := r.coll.Find(ctx, bson.M{"$text": bson.M{"$search": text}})
	if err != nil {
		r.log.Errorf("Repository: Failed to search products for %q: %v", text, err)
		return nil, fmt.Errorf("could not search products: %w", err)
	}

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		r.log.Errorf("Repository: Failed to decode search results: %v", err)
		return nil, fmt.Errorf("could not decode search results: %w", err)
	}
	return products, nil
}

// DecrementStock relies on a conditional update so that checking and
// subtracting the stock is a single atomic step: the filter only matches
// while at least qty units remain.
func (r *mongoProductRepository) DecrementStock(ctx context.Context, id primitive.ObjectID, qty int32) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "stock": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stock": -qty}},
	)
	if err != nil {
		r.log.Errorf("Repository: Failed to decrement stock for product %s: %v", id.Hex(), err)
		return fmt.Errorf("could not decrement stock: %w", err)
	}
	if res.MatchedCount > 0 {
		r.log.Debugf("Repository: Decremented stock for product %s by %d", id.Hex(), qty)
		return nil
	}

	// Nothing matched: either the product is gone or it lacks stock.
	product, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	r.log.Warnf("Repository: Product %s has %d units, %d requested", product.Name, product.Stock, qty)
	return fmt.Errorf("product %q: %w", product.Name, domain.ErrInsufficientStock)
}

func (r *mongoProductRepository) IncrementStock(ctx context.Context, id primitive.ObjectID, qty int32) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"stock": qty}},
	)
	if err != nil {
		r.log.Errorf("Repository: Failed to increment stock for product %s: %v", id.Hex(), err)
		return fmt.Errorf("could not increment stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	return nil
}
