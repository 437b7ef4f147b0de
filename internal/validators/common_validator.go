package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("strong_password", validateStrongPassword)
	validate.RegisterValidation("hex_color", validateHexColor)
	validate.RegisterValidation("referral_code", validateReferralCode)
	validate.RegisterValidation("coupon_code", validateCouponCode)
	validate.RegisterValidation("future_date", validateFutureDate)
	validate.RegisterValidation("past_date", validatePastDate)
	validate.RegisterValidation("bill_amount", validateBillAmount)
	validate.RegisterValidation("points_value", validatePointsValue)
}

// Common validation errors
var (
	ErrInvalidObjectID     = errors.New("invalid object ID format")
	ErrInvalidPhoneNumber  = errors.New("invalid phone number format")
	ErrWeakPassword        = errors.New("password does not meet strength requirements")
	ErrInvalidHexColor     = errors.New("invalid hex color code")
	ErrInvalidReferralCode = errors.New("invalid referral code format")
	ErrInvalidCouponCode   = errors.New("invalid coupon code format")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidBillAmount   = errors.New("invalid bill amount")
	ErrInvalidPointsValue  = errors.New("invalid points value")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "object_id":
		return "Invalid ID format"
	case "phone_number":
		return "Invalid phone number format"
	case "strong_password":
		return "Password must contain uppercase, lowercase, number, and special character"
	case "hex_color":
		return "Invalid hex color code"
	case "referral_code":
		return "Invalid referral code format"
	case "coupon_code":
		return "Invalid coupon code format"
	case "future_date":
		return "Date must be in the future"
	case "past_date":
		return "Date must be in the past"
	case "bill_amount":
		return "Invalid bill amount"
	case "points_value":
		return "Invalid points value"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

// Custom validation functions
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if phone == "" {
		return true
	}

	// E.164 format validation
	phoneRegex := regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	return phoneRegex.MatchString(phone)
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 128 {
		return false
	}

	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}

func validateHexColor(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	if color == "" {
		return true
	}

	colorRegex := regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	return colorRegex.MatchString(color)
}

func validateReferralCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "" {
		return true
	}

	codeRegex := regexp.MustCompile(`^[A-Z0-9]{6,12}$`)
	return codeRegex.MatchString(strings.ToUpper(code))
}

func validateCouponCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "" {
		return true
	}

	codeRegex := regexp.MustCompile(`^[A-Z0-9\-]{6,20}$`)
	return codeRegex.MatchString(strings.ToUpper(code))
}

func validateFutureDate(fl validator.FieldLevel) bool {
	date := fl.Field().Interface().(time.Time)
	return date.After(time.Now())
}

func validatePastDate(fl validator.FieldLevel) bool {
	date := fl.Field().Interface().(time.Time)
	return date.Before(time.Now())
}

func validateBillAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()
	return amount >= 0 && amount <= 1000000
}

func validatePointsValue(fl validator.FieldLevel) bool {
	points := fl.Field().Int()
	return points >= 0 && points <= 1000000
}

// Helper functions for common validations
func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsValidObjectID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

func SanitizeInput(input string) string {
	// Remove HTML tags and trim whitespace
	htmlRegex := regexp.MustCompile(`<[^>]*>`)
	cleaned := htmlRegex.ReplaceAllString(input, "")
	return strings.TrimSpace(cleaned)
}
