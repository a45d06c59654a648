package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/truckload-service/internal/domain/dto"
	"github.com/guttosm/truckload-service/internal/i18n"
	"github.com/guttosm/truckload-service/internal/middleware"
)

// Response DTO pools for reducing allocations on the hot path.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// BindJSON decodes the request body into a new T.
func BindJSON[T any](c *gin.Context) (*T, error) {
	var v T
	if err := c.ShouldBindJSON(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ResponseBuilder writes the uniform success and error envelopes, with
// messages translated for the request locale.
type ResponseBuilder struct {
	c      *gin.Context
	locale string
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c, locale: i18n.GetLocale(c)}
}

func (b *ResponseBuilder) translate(key string) string {
	if key == "" {
		return ""
	}
	return i18n.GetTranslator().Translate(key, b.locale)
}

// Success sends data with an optional translated message.
func (b *ResponseBuilder) Success(statusCode int, data interface{}, messageKey string) {
	resp := getSuccessResponse()
	defer putSuccessResponse(resp)

	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Message = b.translate(messageKey)
	resp.Timestamp = time.Now()

	// gin serializes synchronously, so resp can go back to the pool afterwards.
	b.c.JSON(statusCode, resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data, "")
}

// Error sends an error response with the translated message for messageKey.
// Server errors are attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.write(statusCode, b.translate(messageKey), nil, err)
}

// ValidationError answers 400 for a failed request validation. A
// *dto.ValidationError contributes its field and translated message.
func (b *ResponseBuilder) ValidationError(err error) {
	var verr *dto.ValidationError
	if !errors.As(err, &verr) {
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	details := map[string]string{"field": verr.Field}
	if verr.Message != "" {
		details["reason"] = verr.Message
	}
	b.write(http.StatusBadRequest, b.translate(verr.Key), details, nil)
}

func (b *ResponseBuilder) write(statusCode int, message string, details map[string]string, err error) {
	resp := getErrorResponse()
	defer putErrorResponse(resp)

	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil && statusCode >= http.StatusInternalServerError {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)
}
