package services

import (
	"context"
	"fmt"
	"time"

	"shopperks/internal/models"
	"shopperks/internal/utils"
	"shopperks/pkg/cache"
	"shopperks/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CacheService interface {
	// Basic cache operations
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)

	// Application-specific cache operations
	CacheCampaign(ctx context.Context, campaign *models.Campaign, expiration time.Duration) error
	GetCachedCampaign(ctx context.Context, campaignID primitive.ObjectID) (*models.Campaign, error)
	InvalidateCampaign(ctx context.Context, campaignID primitive.ObjectID) error

	CacheCustomer(ctx context.Context, customer *models.Customer, expiration time.Duration) error
	GetCachedCustomer(ctx context.Context, customerID primitive.ObjectID) (*models.Customer, error)
	InvalidateCustomer(ctx context.Context, customerID primitive.ObjectID) error

	// Rate limiting
	IncrementRateLimit(ctx context.Context, key string, window time.Duration) (int64, error)

	Ping(ctx context.Context) error
}

type cacheService struct {
	redis      *cache.RedisCache
	logger     *logger.Logger
	defaultTTL time.Duration
}

func NewCacheService(redis *cache.RedisCache, log *logger.Logger) CacheService {
	return &cacheService{
		redis:      redis,
		logger:     log,
		defaultTTL: 15 * time.Minute,
	}
}

func (s *cacheService) Get(ctx context.Context, key string, dest interface{}) error {
	return s.redis.Get(ctx, key, dest)
}

func (s *cacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if expiration == 0 {
		expiration = s.defaultTTL
	}
	return s.redis.Set(ctx, key, value, expiration)
}

func (s *cacheService) Delete(ctx context.Context, keys ...string) error {
	return s.redis.Delete(ctx, keys...)
}

func (s *cacheService) Exists(ctx context.Context, key string) (bool, error) {
	return s.redis.Exists(ctx, key)
}

func (s *cacheService) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return s.redis.SetNX(ctx, key, value, expiration)
}

func (s *cacheService) CacheCampaign(ctx context.Context, campaign *models.Campaign, expiration time.Duration) error {
	key := utils.CacheCampaignPrefix + campaign.ID.Hex()
	if err := s.Set(ctx, key, campaign, expiration); err != nil {
		s.logError("failed to cache campaign", err)
		return err
	}
	return nil
}

func (s *cacheService) GetCachedCampaign(ctx context.Context, campaignID primitive.ObjectID) (*models.Campaign, error) {
	var campaign models.Campaign
	key := utils.CacheCampaignPrefix + campaignID.Hex()
	if err := s.redis.Get(ctx, key, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (s *cacheService) InvalidateCampaign(ctx context.Context, campaignID primitive.ObjectID) error {
	return s.redis.Delete(ctx, utils.CacheCampaignPrefix+campaignID.Hex())
}

func (s *cacheService) CacheCustomer(ctx context.Context, customer *models.Customer, expiration time.Duration) error {
	key := utils.CacheCustomerPrefix + customer.ID.Hex()
	if err := s.Set(ctx, key, customer, expiration); err != nil {
		s.logError("failed to cache customer", err)
		return err
	}
	return nil
}

func (s *cacheService) GetCachedCustomer(ctx context.Context, customerID primitive.ObjectID) (*models.Customer, error) {
	var customer models.Customer
	key := utils.CacheCustomerPrefix + customerID.Hex()
	if err := s.redis.Get(ctx, key, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *cacheService) InvalidateCustomer(ctx context.Context, customerID primitive.ObjectID) error {
	return s.redis.Delete(ctx, utils.CacheCustomerPrefix+customerID.Hex())
}

func (s *cacheService) IncrementRateLimit(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := utils.CacheRateLimitPrefix + key

	count, err := s.redis.Increment(ctx, fullKey)
	if err != nil {
		return 0, fmt.Errorf("failed to increment rate limit: %w", err)
	}

	if count == 1 {
		if err := s.redis.SetExpire(ctx, fullKey, window); err != nil {
			return count, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count, nil
}

func (s *cacheService) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx)
}

func (s *cacheService) logError(msg string, err error) {
	if s.logger != nil {
		s.logger.WithError(err).Warn(msg)
	}
}
