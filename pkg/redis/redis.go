package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/peaceseal/peaceseal-backend/config"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// BlacklistToken adds a token to the blacklist
func BlacklistToken(ctx context.Context, token string, expiry time.Duration) error {
	key := fmt.Sprintf("blacklist:%s", token)
	err := client.Set(ctx, key, "revoked", expiry).Err()
	if err != nil {
		logger.Error("Failed to blacklist token", err, nil)
		return err
	}
	return nil
}

// IsTokenBlacklisted checks if a token is in the blacklist
func IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", token)
	val, err := client.Get(ctx, key).Result()

	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed to check token blacklist", err, nil)
		return false, err
	}
	return val == "revoked", nil
}

const campaignTotalTTL = 5 * time.Minute

func campaignTotalKey(campaignID uint) string {
	return fmt.Sprintf("campaign:%d:raised_cents", campaignID)
}

// GetCampaignTotal returns the cached raised total for a campaign.
// The second return is false on a cache miss.
func GetCampaignTotal(ctx context.Context, campaignID uint) (int64, bool, error) {
	val, err := client.Get(ctx, campaignTotalKey(campaignID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	total, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return total, true, nil
}

// SetCampaignTotal caches a campaign's raised total
func SetCampaignTotal(ctx context.Context, campaignID uint, totalCents int64) error {
	return client.Set(ctx, campaignTotalKey(campaignID), strconv.FormatInt(totalCents, 10), campaignTotalTTL).Err()
}

// InvalidateCampaignTotal drops the cached total after a new donation lands
func InvalidateCampaignTotal(ctx context.Context, campaignID uint) error {
	return client.Del(ctx, campaignTotalKey(campaignID)).Err()
}
