package response

import (
	"errors"
	"net/http"
	"time"

	"brit-matcher/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// ContentTypeEncrypted is the media type of encrypted exchange payloads.
const ContentTypeEncrypted = "application/octet-stream"

// SuccessResponse wraps admin and health payloads.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is returned for every failure, including failed exchanges.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

func OK(c *gin.Context, data interface{}) {
	success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	success(c, http.StatusCreated, data)
}

// Encrypted writes an EncryptedMatcherResponse as the raw body. Only the
// requesting payer can open it, so intermediaries must not keep a copy.
func Encrypted(c *gin.Context, payload []byte) {
	c.Header("X-Request-ID", requestID(c))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, ContentTypeEncrypted, payload)
}

// Error writes err's AppError code and message. Anything else is reported as
// SYS_001 without its text.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

func success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

func requestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return uuid.NewString()
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
