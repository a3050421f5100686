package sws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uw-it-aca/rttl-info-lti/pkg/model/config"
)

func TestCacheTimeoutUntilEndOfDay(t *testing.T) {
	client := NewTermClient(&config.SWSConfig{Url: "https://sws.test"}, nil)

	client.now = func() time.Time {
		return time.Date(2025, time.April, 15, 22, 0, 0, 0, time.UTC)
	}
	// 22:00:00 -> 23:59:59 is just under two hours
	assert.Equal(t, 2*time.Hour-time.Second, client.cacheTimeout())

	client.now = func() time.Time {
		return time.Date(2025, time.April, 15, 23, 59, 59, 0, time.UTC)
	}
	// already at the boundary, roll over to tomorrow
	assert.Equal(t, 24*time.Hour, client.cacheTimeout())
}
