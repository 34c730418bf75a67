package handler

import (
	"errors"
	"net/http"

	"chillgamer/pkg/logger"
	"chillgamer/reviews-service/internal/app/reviews/entity"
	"chillgamer/reviews-service/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// objectIDTag - формат идентификатора MongoDB в пути запроса
const objectIDTag = "required,len=24,hexadecimal"

// validateID проверяет :id до обращения к сервису
func validateID(v *validator.Validate, c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := v.Var(id, objectIDTag); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid identifier"})
		return "", false
	}
	return id, true
}

// respondError переводит ошибки сервиса в HTTP статусы
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidIdentifier):
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid identifier"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Not found"})
	case errors.Is(err, service.ErrStorageUnavailable):
		logger.Ctx(c.Request.Context()).Error().Err(err).Str("route", c.FullPath()).Msg("Storage unavailable")
		c.JSON(http.StatusServiceUnavailable, entity.ErrorResponse{Error: "Storage unavailable"})
	default:
		logger.Ctx(c.Request.Context()).Error().Err(err).Str("route", c.FullPath()).Msg(fallback)
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: fallback})
	}
}
