package mongodb

import (
	"context"
	"fmt"
	"time"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type shopRepository struct {
	collection *mongo.Collection
}

func NewShopRepository(db *mongo.Database) interfaces.ShopRepository {
	return &shopRepository{
		collection: db.Collection("shops"),
	}
}

func (r *shopRepository) Create(ctx context.Context, shop *models.Shop) error {
	shop.ID = primitive.NewObjectID()
	shop.CreatedAt = time.Now()
	shop.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, shop)
	if err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}

	return nil
}

func (r *shopRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Shop, error) {
	var shop models.Shop
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&shop)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: %s", interfaces.ErrShopNotFound, id.Hex())
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &shop, nil
}

func (r *shopRepository) GetByEmail(ctx context.Context, email string) (*models.Shop, error) {
	var shop models.Shop
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&shop)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w", interfaces.ErrShopNotFound)
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &shop, nil
}

func (r *shopRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update shop: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", interfaces.ErrShopNotFound, id.Hex())
	}

	return nil
}
