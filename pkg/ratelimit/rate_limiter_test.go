package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindowReply(t *testing.T) {
	// redis hands Lua integer replies back as int64
	allowed, remaining, err := parseWindowReply([]interface{}{int64(1), int64(4)})
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 4, remaining)

	// blocked branch: the script decided, no remaining budget
	allowed, remaining, err = parseWindowReply([]interface{}{int64(0), int64(0)})
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	// last request inside the budget is still allowed
	allowed, _, err = parseWindowReply([]interface{}{int64(1), int64(0)})
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestParseWindowReplyRejectsMalformed(t *testing.T) {
	cases := []interface{}{
		nil,
		"ok",
		[]interface{}{int64(1)},
		[]interface{}{"1", "4"},
		[]interface{}{int64(1), "4"},
	}
	for _, reply := range cases {
		_, _, err := parseWindowReply(reply)
		assert.Error(t, err)
	}
}

func TestGetRateLimitType(t *testing.T) {
	assert.Equal(t, RateLimitTypeHealth, getRateLimitType("/health"))
	assert.Equal(t, RateLimitTypeHealth, getRateLimitType("/ping"))
	assert.Equal(t, RateLimitTypeAuth, getRateLimitType("/api/v1/auth/login"))
	assert.Equal(t, RateLimitTypeSubmit, getRateLimitType("/api/v1/bookings/submit"))
	assert.Equal(t, RateLimitTypeDraft, getRateLimitType("/api/v1/bookings/draft"))
	assert.Equal(t, RateLimitTypeDraft, getRateLimitType("/api/v1/bookings/upcoming"))
	assert.Equal(t, RateLimitTypePublic, getRateLimitType("/api/v1/services"))
	assert.Equal(t, RateLimitTypeDefault, getRateLimitType("/api/v1/users/profile"))
}
