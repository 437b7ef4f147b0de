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
)

type campaignRepository struct {
	collection *mongo.Collection
}

func NewCampaignRepository(db *mongo.Database) interfaces.CampaignRepository {
	return &campaignRepository{
		collection: db.Collection("campaigns"),
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	campaign.ID = primitive.NewObjectID()
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, campaign)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: %s", interfaces.ErrCampaignNotFound, id.Hex())
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return &campaign, nil
}

func (r *campaignRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", interfaces.ErrCampaignNotFound, id.Hex())
	}

	return nil
}

func (r *campaignRepository) GetByShopID(ctx context.Context, shopID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Campaign, int64, error) {
	filter := bson.M{"shop_id": shopID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var campaigns []*models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, 0, fmt.Errorf("failed to decode campaigns: %w", err)
	}

	return campaigns, total, nil
}

func (r *campaignRepository) GetActiveByShopID(ctx context.Context, shopID primitive.ObjectID) ([]*models.Campaign, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"shop_id": shopID, "is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to find active campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var campaigns []*models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}

	return campaigns, nil
}

// UpdatePointRules replaces the whole rule array; Mongo preserves array
// order, which keeps the first-match-wins semantics intact.
func (r *campaignRepository) UpdatePointRules(ctx context.Context, id primitive.ObjectID, rules []models.PointRule) error {
	return r.Update(ctx, id, map[string]interface{}{"point_rules": rules})
}
