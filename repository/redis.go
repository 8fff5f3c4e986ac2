// redis.go
package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects to addr and pings it once. Redis 地址在 Docker 里用服务名或内网IP
func InitRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       db,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis 连接失败 %s: %w", addr, err)
	}
	return rdb, nil
}
