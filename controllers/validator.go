package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Upper bound applied to every limit parameter.
const MaxLimit = 100

// RequestValidator parses and validates query parameters and request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// ParseLimitOffset reads limit/offset with an endpoint-specific default
// limit. Negative or malformed values fall back to the defaults.
func (rv *RequestValidator) ParseLimitOffset(c *gin.Context, defaultLimit int) (int, int) {
	limit := defaultLimit
	offset := 0

	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil && v > 0 {
		limit = v
		if limit > MaxLimit {
			limit = MaxLimit
		}
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "")); err == nil && v >= 0 {
		offset = v
	}

	return limit, offset
}

// ParseID reads an unsigned integer from the named query parameter.
func (rv *RequestValidator) ParseID(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.New(name + " is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}

// ParseParamID reads an unsigned integer from the named path parameter.
func (rv *RequestValidator) ParseParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}

// Struct runs validator tags against a bound request body.
func (rv *RequestValidator) Struct(v interface{}) error {
	return rv.validate.Struct(v)
}
