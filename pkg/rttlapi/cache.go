package rttlapi

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v8"
	log "github.com/golang/glog"
)

// Cache is the key-value store used for cached API responses and repository
// entries. Keys are opaque strings produced by the hashing schemes in this
// package. A failing cache degrades to a miss, never to a request error.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, timeout time.Duration)
}

type RedisCache struct {
	cli *goredis.Client
}

func NewRedisCache(cli *goredis.Client) *RedisCache {
	return &RedisCache{cli: cli}
}

func (c *RedisCache) Get(key string) ([]byte, bool) {
	value, err := c.cli.Get(context.Background(), key).Bytes()
	if err == goredis.Nil {
		return nil, false
	}
	if err != nil {
		log.Warningf("Get cache key {%s} fail: %s", key, err.Error())
		return nil, false
	}
	return value, true
}

func (c *RedisCache) Set(key string, value []byte, timeout time.Duration) {
	if err := c.cli.Set(context.Background(), key, value, timeout).Err(); err != nil {
		log.Warningf("Set cache key {%s} fail: %s", key, err.Error())
	}
}
