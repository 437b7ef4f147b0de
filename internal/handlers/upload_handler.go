package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopperks/internal/utils"
	"shopperks/pkg/storage"
)

const maxBillImageSize = 10 << 20 // 10 MiB

// signedBillURLTTL bounds how long a reviewer's link to a bill stays
// valid.
const signedBillURLTTL = 15 * time.Minute

var allowedBillImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

type UploadHandler struct {
	storageProvider storage.StorageProvider
}

func NewUploadHandler(storageProvider storage.StorageProvider) *UploadHandler {
	return &UploadHandler{
		storageProvider: storageProvider,
	}
}

// UploadBillImage stores a bill photo and returns its key and URL for
// attaching to a transaction.
func (h *UploadHandler) UploadBillImage(c *gin.Context) {
	fileHeader, err := c.FormFile("bill")
	if err != nil {
		utils.BadRequestResponse(c, "Bill file required")
		return
	}

	if fileHeader.Size > maxBillImageSize {
		utils.BadRequestResponse(c, "Bill file too large")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedBillImageTypes[ext] {
		utils.BadRequestResponse(c, "Unsupported bill file type")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to read bill file")
		return
	}
	defer file.Close()

	result, err := h.storageProvider.Upload(c.Request.Context(), &storage.UploadRequest{
		Key:         storage.BillKey(ext),
		Reader:      file,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	})
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store bill file: "+err.Error())
		return
	}

	utils.CreatedResponse(c, "Bill uploaded successfully", gin.H{
		"key": result.Key,
		"url": result.URL,
	})
}

// GetBillImageURL hands a reviewer a short-lived link to a bill so they
// can inspect it before deciding on the transaction.
func (h *UploadHandler) GetBillImageURL(c *gin.Context) {
	key, ok := billKeyFromName(c.Param("name"))
	if !ok {
		utils.BadRequestResponse(c, "Invalid bill name")
		return
	}

	url, err := h.storageProvider.SignedURL(c.Request.Context(), key, signedBillURLTTL)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "SIGN_FAILED", "Failed to generate bill URL")
		return
	}

	utils.SuccessResponse(c, "Bill URL generated", gin.H{
		"url":        url,
		"expires_in": int(signedBillURLTTL.Seconds()),
	})
}

// DeleteBillImage removes an uploaded bill, for example when a customer
// replaces a blurry photo before submitting the transaction.
func (h *UploadHandler) DeleteBillImage(c *gin.Context) {
	key, ok := billKeyFromName(c.Param("name"))
	if !ok {
		utils.BadRequestResponse(c, "Invalid bill name")
		return
	}

	if err := h.storageProvider.Delete(c.Request.Context(), key); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete bill file")
		return
	}

	utils.SuccessResponse(c, "Bill deleted successfully", gin.H{"key": key})
}

// billKeyFromName rebuilds an object key from a bill name issued by
// UploadBillImage. Anything not shaped like <objectid><ext> with an
// allowed extension is rejected before it reaches the provider.
func billKeyFromName(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedBillImageTypes[ext] {
		return "", false
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	if _, err := primitive.ObjectIDFromHex(base); err != nil {
		return "", false
	}

	return storage.BillKeyPrefix + strings.ToLower(base) + ext, true
}
