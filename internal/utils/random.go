package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	letterBytes  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberBytes  = "0123456789"
	alphanumeric = letterBytes + numberBytes

	// Ambiguous characters (0/O, 1/I/L) are excluded from shareable codes
	// because customers read them aloud and type them by hand.
	codeBytes = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

func GenerateRandomString(length int) string {
	return generateRandom(length, alphanumeric)
}

func GenerateRandomNumericString(length int) string {
	return generateRandom(length, numberBytes)
}

// GenerateReferralCode returns an upper-case code suitable for sharing.
func GenerateReferralCode() string {
	return generateRandom(ReferralCodeLength, codeBytes)
}

// GenerateCouponCode returns a coupon code with a readable PERK- prefix.
func GenerateCouponCode() string {
	var b strings.Builder
	b.WriteString("PERK-")
	b.WriteString(generateRandom(CouponCodeLength-5, codeBytes))
	return b.String()
}

func generateRandom(length int, charset string) string {
	result := make([]byte, length)
	charsetLength := big.NewInt(int64(len(charset)))

	for i := range result {
		num, _ := rand.Int(rand.Reader, charsetLength)
		result[i] = charset[num.Int64()]
	}

	return string(result)
}

func SecureRandomInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}
