package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-calc/internal/api"
	"travel-calc/internal/errors"
	"travel-calc/internal/validation"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Code   string                  `json:"code"`
	Field  string                  `json:"field,omitempty"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

func (s *Server) getDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, s.calculator.Defaults())
}

func (s *Server) postAllocate(c *gin.Context) {
	var req api.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, errors.NewInvalidInputError("body", nil, "request body must be a JSON travel day: "+err.Error()))
		return
	}

	s.allocate(c, req)
}

func (s *Server) getAllocate(c *gin.Context) {
	req, err := api.RequestFromValues(c.Request.URL.Query())
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.allocate(c, req)
}

func (s *Server) allocate(c *gin.Context, req api.CalculationRequest) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.config.GetTimeout())
	defer cancel()

	calc, err := s.calculator.Calculate(ctx, req)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, calc)
}

func (s *Server) noRoute(c *gin.Context) {
	s.writeError(c, errors.NewNotFoundError("route", c.Request.Method+" "+c.Request.URL.Path))
}

func (s *Server) writeError(c *gin.Context, err error) {
	if !errors.IsAppError(err) {
		err = errors.NewInternalError(c.Request.Method+" "+c.FullPath(), err)
	}

	resp := ErrorResponse{
		Error: errors.GetUserMessage(err),
		Code:  errors.GetErrorCode(err),
	}
	if field, ok := errors.FieldOf(err); ok {
		resp.Field = field
	}
	if ve, ok := validation.AsValidationError(err); ok {
		resp.Fields = ve.Errors
	}

	if errors.ShouldLogError(err) {
		_ = c.Error(err)
	}

	c.JSON(statusFor(err), resp)
}

func statusFor(err error) int {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch appErr.Type {
	case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound
	case errors.ErrorTypeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
