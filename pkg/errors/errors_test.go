package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("Product", nil).Status)
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad", nil).Status)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("nope", nil).Status)
	assert.Equal(t, http.StatusForbidden, Forbidden("nope", nil).Status)
	assert.Equal(t, http.StatusConflict, Conflict("dup").Status)
	assert.Equal(t, http.StatusInternalServerError, Internal("boom", nil).Status)
	assert.Equal(t, http.StatusTooManyRequests, TooManyRequests("slow down").Status)
}

func TestIsMatchesCode(t *testing.T) {
	err := NotFound("Product", nil)
	assert.True(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(err, "CONFLICT"))
	assert.False(t, Is(fmt.Errorf("plain"), "NOT_FOUND"))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := fmt.Errorf("socket closed")
	err := Internal("upstream failed", cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusOf(Conflict("dup")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(fmt.Errorf("plain")))
}
