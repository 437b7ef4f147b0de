package mongodb

import (
	"context"
	"fmt"
	"time"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type customerRepository struct {
	collection *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) interfaces.CustomerRepository {
	return &customerRepository{
		collection: db.Collection("customers"),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	customer.ID = primitive.NewObjectID()
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, customer)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *customerRepository) GetByReferralCode(ctx context.Context, code string) (*models.Customer, error) {
	return r.findOne(ctx, bson.M{"referral_code": code})
}

func (r *customerRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", interfaces.ErrCustomerNotFound, id.Hex())
	}

	return nil
}

func (r *customerRepository) GetByCampaignID(ctx context.Context, campaignID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Customer, int64, error) {
	filter := bson.M{"campaign_id": campaignID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []*models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, 0, fmt.Errorf("failed to decode customers: %w", err)
	}

	return customers, total, nil
}

// IncrementPoints applies the ledger deltas with a single atomic $inc and
// returns the post-update document.
func (r *customerRepository) IncrementPoints(ctx context.Context, id primitive.ObjectID, totalDelta, redeemedDelta int) (*models.Customer, error) {
	update := bson.M{
		"$inc": bson.M{
			"total_points":    totalDelta,
			"redeemed_points": redeemedDelta,
		},
		"$set": bson.M{"updated_at": time.Now()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var customer models.Customer
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: %s", interfaces.ErrCustomerNotFound, id.Hex())
		}
		return nil, fmt.Errorf("failed to increment points: %w", err)
	}

	return &customer, nil
}

func (r *customerRepository) findOne(ctx context.Context, filter bson.M) (*models.Customer, error) {
	var customer models.Customer
	err := r.collection.FindOne(ctx, filter).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w", interfaces.ErrCustomerNotFound)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}
