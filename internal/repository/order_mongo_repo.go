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

type mongoOrderRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

func NewMongoOrderRepository(database *mongo.Database, logger *logrus.Logger) domain.OrderRepository {
	return &mongoOrderRepository{
		coll: database.Collection("orders"),
		log:  logger,
	}
}

func (r *mongoOrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	r.log.Debugf("Repository: Attempting to create order for client: %s", order.ClientID.Hex())

	order.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		r.log.Errorf("Repository: Failed to create order: %v", err)
		return nil, fmt.Errorf("could not create order: %w", err)
	}

	order.ID = res.InsertedID.(primitive.ObjectID)
	r.log.Infof("Repository: Order created successfully with ID: %s", order.ID.Hex())
	return order, nil
}

func (r *mongoOrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	var order domain.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("Repository: Order with ID %s not found", id.Hex())
			return nil, fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get order by ID %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not get order by id: %w", err)
	}

	return &order, nil
}

func (r *mongoOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *mongoOrderRepository) ListBySeller(ctx context.Context, seller primitive.ObjectID) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"seller": seller}, nil)
}

func (r *mongoOrderRepository) ListBySellerAndStatus(ctx context.Context, seller primitive.ObjectID, status domain.OrderStatus, limit int64) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"seller": seller, "status": status}, options.Find().SetLimit(limit))
}

func (r *mongoOrderRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Order, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		r.log.Errorf("Repository: Failed to list orders: %v", err)
		return nil, fmt.Errorf("could not list orders: %w", err)
	}

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		r.log.Errorf("Repository: Failed to decode orders: %v", err)
		return nil, fmt.Errorf("could not decode orders: %w", err)
	}
	return orders, nil
}

func (r *mongoOrderRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.OrderUpdate) (*domain.Order, error) {
	r.log.Debugf("Repository: Attempting to update order ID: %s", id.Hex())

	fields := bson.M{}
	if update.Lines != nil {
		fields["lines"] = update.Lines
	}
	if update.Total != nil {
		fields["total"] = *update.Total
	}
	if update.Client != nil {
		fields["client"] = *update.Client
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var order domain.Order
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("Repository: Order with ID %s not found for update", id.Hex())
			return nil, fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to update order %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not update order: %w", err)
	}

	r.log.Infof("Repository: Order updated successfully: ID %s", id.Hex())
	return &order, nil
}

func (r *mongoOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Errorf("Repository: Failed to delete order %s: %v", id.Hex(), err)
		return fmt.Errorf("could not delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		r.log.Warnf("Repository: Order with ID %s not found for delete", id.Hex())
		return fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
	}

	r.log.Infof("Repository: Order deleted successfully: ID %s", id.Hex())
	return nil
}

// TopClients sums completed order totals per client and joins the client
// document back in. Sorting happens before the limit so the result is the
// true top N by total.
func (r *mongoOrderRepository) TopClients(ctx context.Context, limit int64) ([]domain.ClientTotal, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: domain.StatusCompleted}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$client"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "clients"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "client"},
		}}},
		bson.D{{Key: "$unwind", Value: "$client"}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		r.log.Errorf("Repository: Failed to aggregate top clients: %v", err)
		return nil, fmt.Errorf("could not aggregate top clients: %w", err)
	}

	var totals []domain.ClientTotal
	if err := cursor.All(ctx, &totals); err != nil {
		r.log.Errorf("Repository: Failed to decode top clients: %v", err)
		return nil, fmt.Errorf("could not decode top clients: %w", err)
	}
	return totals, nil
}

func (r *mongoOrderRepository) TopSellers(ctx context.Context, limit int64) ([]domain.SellerTotal, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: domain.StatusCompleted}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$seller"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "seller"},
		}}},
		bson.D{{Key: "$unwind", Value: "$seller"}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		r.log.Errorf("Repository: Failed to aggregate top sellers: %v", err)
		return nil, fmt.Errorf("could not aggregate top sellers: %w", err)
	}

	var totals []domain.SellerTotal
	if err := cursor.All(ctx, &totals); err != nil {
		r.log.Errorf("Repository: Failed to decode top sellers: %v", err)
		return nil, fmt.Errorf("could not decode top sellers: %w", err)
	}
	return totals, nil
}
