// Package cache provides the Redis-backed read cache for entitlement lookups.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultEnabledModulesTTL bounds staleness when an invalidation is lost.
const DefaultEnabledModulesTTL = 5 * time.Minute

// EnabledModulesCache caches the enabled module id set per customer in
// Redis. A missing key is a miss, never an empty set; empty sets are stored
// explicitly as an empty JSON array.
type EnabledModulesCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewEnabledModulesCache creates a cache over the given Redis client.
// A zero ttl falls back to DefaultEnabledModulesTTL.
func NewEnabledModulesCache(client *redis.Client, prefix string, ttl time.Duration) *EnabledModulesCache {
	if ttl <= 0 {
		ttl = DefaultEnabledModulesTTL
	}
	return &EnabledModulesCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *EnabledModulesCache) key(customerID string) string {
	return c.prefix + customerID
}

// GetEnabledModules returns the cached module id set. The second return
// value reports a hit.
func (c *EnabledModulesCache) GetEnabledModules(ctx context.Context, customerID string) ([]string, bool, error) {
	data, err := c.client.Get(ctx, c.key(customerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read enabled modules cache: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal enabled modules cache: %w", err)
	}
	return ids, true, nil
}

// SetEnabledModules caches the module id set for the customer.
func (c *EnabledModulesCache) SetEnabledModules(ctx context.Context, customerID string, moduleIDs []string) error {
	if moduleIDs == nil {
		moduleIDs = []string{}
	}
	data, err := json.Marshal(moduleIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal enabled modules: %w", err)
	}
	if err := c.client.Set(ctx, c.key(customerID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write enabled modules cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached set for the customer.
func (c *EnabledModulesCache) Invalidate(ctx context.Context, customerID string) error {
	if err := c.client.Del(ctx, c.key(customerID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate enabled modules cache: %w", err)
	}
	return nil
}
