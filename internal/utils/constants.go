package utils

import "time"

// Application Constants
const (
	AppName    = "ShopPerks"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "USD"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength  = 8
	PasswordMaxLength  = 128

	// Campaign Constants
	DefaultRedemptionValue    = 100  // points per redemption unit
	DefaultRedemptionDiscount = 10.0 // percent per redemption unit
	MaxPointRules             = 20
	MaxPointsPerRule          = 100000

	// Referral
	ReferralCodeLength = 8
	CouponCodeLength   = 10
	DefaultCouponTTL   = 90 * 24 * time.Hour

	// File Upload
	MaxBillImageSize = 5 * 1024 * 1024 // 5MB

	// Rate Limiting
	DefaultRateLimit = 100
	LoginRateLimit   = 5
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFailed  = "failed"
)

// Error Messages
const (
	ErrInvalidCredentials    = "invalid credentials"
	ErrCustomerNotFound      = "customer not found"
	ErrCustomerExists        = "customer already exists"
	ErrShopNotFound          = "shop not found"
	ErrShopExists            = "shop already exists"
	ErrCampaignNotFound      = "campaign not found"
	ErrTransactionNotFound   = "transaction not found"
	ErrCouponNotFound        = "coupon not found"
	ErrInvalidToken          = "invalid token"
	ErrTokenExpired          = "token expired"
	ErrInvalidInput          = "invalid input"
	ErrInternalServer        = "internal server error"
	ErrUnauthorized          = "unauthorized"
	ErrForbidden             = "forbidden"
	ErrNotFound              = "not found"
	ErrConflict              = "conflict"
	ErrValidationFailed      = "validation failed"
	ErrFileUploadFailed      = "file upload failed"
	ErrInsufficientPoints    = "insufficient points"
	ErrInvalidStatus         = "invalid transaction status"
	ErrCampaignInactive      = "campaign is not active"
	ErrCouponNotClaimable    = "coupon cannot be claimed"
	ErrBelowMinimumPurchase  = "purchase amount below campaign minimum"
)

// Cache Keys
const (
	CacheShopPrefix        = "shop:"
	CacheCustomerPrefix    = "customer:"
	CacheCampaignPrefix    = "campaign:"
	CacheTransactionPrefix = "transaction:"
	CacheCouponPrefix      = "coupon:"
	CacheRateLimitPrefix   = "rate_limit:"
	CacheSessionPrefix     = "session:"
)

// Event Types
const (
	EventCustomerRegistered  = "customer_registered"
	EventTransactionCreated  = "transaction_created"
	EventTransactionApproved = "transaction_approved"
	EventTransactionRejected = "transaction_rejected"
	EventPointsApplied       = "points_applied"
	EventCouponIssued        = "coupon_issued"
	EventCouponClaimed       = "coupon_claimed"
)

// User Types
const (
	UserTypeShop     = "shop"
	UserTypeCustomer = "customer"
)

// Notification Types
const (
	NotificationSMS   = "sms"
	NotificationInApp = "in_app"
)

// File Types
var (
	AllowedImageTypes = []string{"jpg", "jpeg", "png", "gif", "webp"}
)
