package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID set by the RequestID middleware
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// parseIDParam parses the :id path parameter
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with an explicit status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	requestID := getRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// ErrorWithCode sends an error response, deriving status code from error code
func (h *BaseHandler) ErrorWithCode(c *gin.Context, code, message string) {
	h.Error(c, dto.GetHTTPStatus(code), code, message)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleDomainError maps a domain error to its HTTP representation.
// Domain error codes double as API error codes; anything else is
// reported as an internal error.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.ErrorWithCode(c, domainErr.Code, domainErr.Message)
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
