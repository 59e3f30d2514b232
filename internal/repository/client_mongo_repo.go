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

type mongoClientRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

func NewMongoClientRepository(database *mongo.Database, logger *logrus.Logger) domain.ClientRepository {
	return &mongoClientRepository{
		coll: database.Collection("clients"),
		log:  logger,
	}
}

func (r *mongoClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	r.log.Debugf("Repository: Attempting to create client with email: %s", client.Email)

	client.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, client)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.log.Warnf("Repository: Attempted to create client with duplicate email: %s", client.Email)
			return nil, fmt.Errorf("client %s: %w", client.Email, domain.ErrDuplicateEmail)
		}
		r.log.Errorf("Repository: Failed to create client '%s': %v", client.Email, err)
		return nil, fmt.Errorf("could not create client: %w", err)
	}

	client.ID = res.InsertedID.(primitive.ObjectID)
	r.log.Infof("Repository: Client created successfully with ID: %s, Email: %s", client.ID.Hex(), client.Email)
	return client, nil
}

func (r *mongoClientRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	var client domain.Client
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("Repository: Client with ID %s not found", id.Hex())
			return nil, fmt.Errorf("client %s: %w", id.Hex(), domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get client by ID %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not get client by id: %w", err)
	}

	return &client, nil
}

func (r *mongoClientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	var client domain.Client
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("client with email %s: %w", email, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get client by email %s: %v", email, err)
		return nil, fmt.Errorf("could not get client by email: %w", err)
	}

	return &client, nil
}

func (r *mongoClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoClientRepository) ListBySeller(ctx context.Context, seller primitive.ObjectID) ([]domain.Client, error) {
	return r.find(ctx, bson.M{"seller": seller})
}

func (r *mongoClientRepository) find(ctx context.Context, filter bson.M) ([]domain.Client, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		r.log.Errorf("Repository: Failed to list clients: %v", err)
		return nil, fmt.Errorf("could not list clients: %w", err)
	}

	var clients []domain.Client
	if err := cursor.All(ctx, &clients); err != nil {
		r.log.Errorf("Repository: Failed to decode clients: %v", err)
		return nil, fmt.Errorf("could not decode clients: %w", err)
	}
	return clients, nil
}

func (r *mongoClientRepository) Update(ctx context.Context, id primitive.ObjectID, input domain.ClientInput) (*domain.Client, error) {
	r.log.Debugf("Repository: Attempting to update client ID: %s", id.Hex())

	fields := bson.M{
		"name":    input.Name,
		"surname": input.Surname,
		"company": input.Company,
		"email":   input.Email,
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var client domain.Client
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("Repository: Client with ID %s not found for update", id.Hex())
			return nil, fmt.Errorf("client %s: %w", id.Hex(), domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to update client %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not update client: %w", err)
	}

	r.log.Infof("Repository: Client updated successfully: ID %s", id.Hex())
	return &client, nil
}

func (r *mongoClientRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Errorf("Repository: Failed to delete client %s: %v", id.Hex(), err)
		return fmt.Errorf("could not delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		r.log.Warnf("Repository: Client with ID %s not found for delete", id.Hex())
		return fmt.Errorf("client %s: %w", id.Hex(), domain.ErrNotFound)
	}

	r.log.Infof("Repository: Client deleted successfully: ID %s", id.Hex())
	return nil
}
