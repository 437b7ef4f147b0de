package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/services"
	"shopperks/internal/utils"
	"shopperks/internal/validators"
)

// serviceErrorResponse translates domain errors into HTTP responses so
// handlers do not repeat the same errors.Is ladder.
func serviceErrorResponse(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	switch {
	case errors.Is(err, interfaces.ErrTransactionNotFound):
		utils.NotFoundResponse(c, "Transaction")
	case errors.Is(err, interfaces.ErrCustomerNotFound):
		utils.NotFoundResponse(c, "Customer")
	case errors.Is(err, interfaces.ErrCampaignNotFound):
		utils.NotFoundResponse(c, "Campaign")
	case errors.Is(err, interfaces.ErrCouponNotFound):
		utils.NotFoundResponse(c, "Coupon")
	case errors.Is(err, interfaces.ErrShopNotFound):
		utils.NotFoundResponse(c, "Shop")
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrInvalidType):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInsufficientPoints):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "INSUFFICIENT_POINTS", err.Error())
	case errors.Is(err, services.ErrCampaignInactive):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "CAMPAIGN_INACTIVE", err.Error())
	case errors.Is(err, services.ErrCampaignRequired):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrCouponNotClaimable):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "COUPON_NOT_CLAIMABLE", err.Error())
	case errors.Is(err, services.ErrInvalidPointRules):
		utils.BadRequestResponse(c, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallbackCode, fallbackMessage+": "+err.Error())
	}
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

func validationErrorDetails(errs validators.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, err := range errs {
		details[err.Field] = err.Message
	}
	return details
}

func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.UnauthorizedResponse(c)
		return primitive.NilObjectID, false
	}

	userObjectID, ok := userID.(primitive.ObjectID)
	if !ok {
		utils.BadRequestResponse(c, "Invalid user ID")
		return primitive.NilObjectID, false
	}

	return userObjectID, true
}
