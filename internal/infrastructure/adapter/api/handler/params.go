package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
)

const maxListLimit = 100

// pathID parses a positive numeric path parameter
func pathID(c *gin.Context, name string, invalid error) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, invalid
	}
	return id, nil
}

// listLimit reads ?limit=; absent means the use case default
func listLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxListLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", domainerr.ErrInvalidRequest, maxListLimit)
	}
	return n, nil
}

// abortWith hands err to the error middleware
func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func invalidBody(err error) error {
	return fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error())
}
