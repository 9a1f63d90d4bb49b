package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"LearnHub/config"

	"github.com/redis/go-redis/v9"
)

// SessionStorage keeps the live session records in redis. The access
// token only proves identity; the session entry proves the login has
// not been revoked by a logout.
type SessionStorage struct {
	redis  *redis.Client
	config *config.Config
}

func NewSessionStorage(redis *redis.Client, config *config.Config) *SessionStorage {
	return &SessionStorage{redis: redis, config: config}
}

func (s *SessionStorage) key(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

func (s *SessionStorage) ttl() time.Duration {
	minutes := s.config.Session.TTLMinutes
	if minutes <= 0 {
		minutes = 60 * 24
	}
	return time.Duration(minutes) * time.Minute
}

// Bind 建立会话
func (s *SessionStorage) Bind(ctx context.Context, sid string, uid int64, name string) error {
	pipe := s.redis.Pipeline()
	pipe.HSet(ctx, s.key(sid), "uid", uid, "name", name)
	pipe.Expire(ctx, s.key(sid), s.ttl())
	_, err := pipe.Exec(ctx)
	return err
}

// UnBind 销毁会话
func (s *SessionStorage) UnBind(ctx context.Context, sid string) error {
	return s.redis.Del(ctx, s.key(sid)).Err()
}

// IsAlive 判断会话是否有效
func (s *SessionStorage) IsAlive(ctx context.Context, sid string) bool {
	val, err := s.redis.Exists(ctx, s.key(sid)).Result()
	return err == nil && val > 0
}

// GetUid 获取会话关联的用户ID
func (s *SessionStorage) GetUid(ctx context.Context, sid string) (int64, error) {
	val, err := s.redis.HGet(ctx, s.key(sid), "uid").Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// GetName 获取会话缓存的用户昵称
func (s *SessionStorage) GetName(ctx context.Context, sid string) (string, error) {
	return s.redis.HGet(ctx, s.key(sid), "name").Result()
}
