package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yigit/student360/internal/app/models/dto"
	"github.com/yigit/student360/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to the standard error envelope
func HandleAPIError(c *gin.Context, err error) {
	var status int
	var detail *dto.ErrorDetail

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrInvalidArgument):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeBadRequest, err.Error())
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
		if gin.Mode() == gin.DebugMode {
			detail.WithDebugInfo("%v", err)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
		return
	}

	// client errors
	detail.WithSeverity(dto.ErrorSeverityWarning)
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && len(ce.Details) > 0 {
		if field, ok := ce.Details["field"].(string); ok {
			detail.WithField(field)
		}
		detail.WithDetails(ce.Details)
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// NotFoundHandler answers unknown routes with the standard error envelope
func NotFoundHandler(c *gin.Context) {
	detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found: "+c.Request.URL.Path).
		WithSeverity(dto.ErrorSeverityWarning)
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))
}
