// Package session 基于 Redis 的会话与闪现消息存储
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"campusboard/internal/database"

	"github.com/google/uuid"
)

const (
	// Session Redis key 前缀
	SessionPrefix = "session:"
	// 用户的 Session 集合 key 前缀（用于查看用户的所有活跃会话）
	UserSessionsPrefix = "user_sessions:"
	// Flash Redis key 前缀
	FlashPrefix = "flash:"
	// Flash 有效期：下一次页面渲染前，给个宽松上限
	FlashExpiration = 10 * time.Minute
)

// Store 会话数据访问层
type Store struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewStore 创建会话仓库实例
func NewStore(redisClient *database.RedisClient, ttl time.Duration) *Store {
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Store{
		redis: redisClient,
		ttl:   ttl,
	}
}

// Data 会话数据结构
type Data struct {
	UserID   uint
	Name     string
	Email    string
	UserType string
}

// Flash 一次性消息，下一次渲染后即消失
type Flash struct {
	Kind    string `json:"kind"` // success, error
	Message string `json:"message"`
}

// Create 创建会话并存储到 Redis，返回不透明令牌
func (s *Store) Create(data Data) (string, error) {
	ctx := context.Background()
	token := uuid.New().String()
	key := SessionPrefix + token

	sessionData := map[string]interface{}{
		"user_id":  data.UserID,
		"name":     data.Name,
		"email":    data.Email,
		"usertype": data.UserType,
	}

	if err := s.redis.HSet(ctx, key, sessionData).Err(); err != nil {
		return "", fmt.Errorf("存储会话失败: %w", err)
	}

	// 设置过期时间
	if err := s.redis.Expire(ctx, key, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("设置会话过期时间失败: %w", err)
	}

	// 将 token 添加到用户的会话集合中（用于管理用户的所有会话）
	userSessionsKey := UserSessionsPrefix + strconv.FormatUint(uint64(data.UserID), 10)
	if err := s.redis.SAdd(ctx, userSessionsKey, token).Err(); err != nil {
		return "", fmt.Errorf("添加到用户会话集合失败: %w", err)
	}
	if err := s.redis.Expire(ctx, userSessionsKey, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("设置用户会话集合过期时间失败: %w", err)
	}

	return token, nil
}

// Get 获取会话信息
func (s *Store) Get(token string) (*Data, error) {
	ctx := context.Background()
	key := SessionPrefix + token

	sessionData, err := s.redis.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("获取会话信息失败: %w", err)
	}

	if len(sessionData) == 0 {
		return nil, fmt.Errorf("会话不存在或已过期")
	}

	userIDStr, ok := sessionData["user_id"]
	if !ok {
		return nil, fmt.Errorf("会话数据不完整")
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("用户 ID 格式错误: %w", err)
	}

	return &Data{
		UserID:   uint(userID),
		Name:     sessionData["name"],
		Email:    sessionData["email"],
		UserType: sessionData["usertype"],
	}, nil
}

// Refresh 更新已有会话中的用户信息（资料编辑后调用）
func (s *Store) Refresh(token string, data Data) error {
	ctx := context.Background()
	key := SessionPrefix + token

	sessionData := map[string]interface{}{
		"user_id":  data.UserID,
		"name":     data.Name,
		"email":    data.Email,
		"usertype": data.UserType,
	}
	if err := s.redis.HSet(ctx, key, sessionData).Err(); err != nil {
		return fmt.Errorf("更新会话失败: %w", err)
	}
	return nil
}

// Destroy 删除会话（用户登出）
func (s *Store) Destroy(token string) error {
	ctx := context.Background()
	key := SessionPrefix + token

	// 先获取用户 ID，以便从用户的会话集合中删除
	sessionData, err := s.redis.HGetAll(ctx, key).Result()
	if err == nil && len(sessionData) > 0 {
		if userIDStr, ok := sessionData["user_id"]; ok {
			userSessionsKey := UserSessionsPrefix + userIDStr
			s.redis.SRem(ctx, userSessionsKey, token)
		}
	}

	if err := s.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("删除会话失败: %w", err)
	}

	// 会话对应的闪现消息一并清理
	s.redis.Del(ctx, FlashPrefix+token)

	return nil
}

// DestroyAllByUserID 删除用户的所有会话（修改密码、强制登出等场景）
func (s *Store) DestroyAllByUserID(userID uint) error {
	ctx := context.Background()
	userSessionsKey := UserSessionsPrefix + strconv.FormatUint(uint64(userID), 10)

	tokens, err := s.redis.SMembers(ctx, userSessionsKey).Result()
	if err != nil {
		return fmt.Errorf("获取用户会话列表失败: %w", err)
	}

	for _, token := range tokens {
		s.redis.Del(ctx, SessionPrefix+token)
		s.redis.Del(ctx, FlashPrefix+token)
	}

	if err := s.redis.Del(ctx, userSessionsKey).Err(); err != nil {
		return fmt.Errorf("删除用户会话集合失败: %w", err)
	}

	return nil
}

// SetFlash 为下一次响应设置闪现消息
func (s *Store) SetFlash(token, kind, message string) error {
	ctx := context.Background()
	key := FlashPrefix + token

	if err := s.redis.HSet(ctx, key, map[string]interface{}{
		"kind":    kind,
		"message": message,
	}).Err(); err != nil {
		return err
	}
	return s.redis.Expire(ctx, key, FlashExpiration).Err()
}

// PopFlash 读取并删除闪现消息（读取后即失效，防止重复展示）
func (s *Store) PopFlash(token string) *Flash {
	ctx := context.Background()
	key := FlashPrefix + token

	data, err := s.redis.HGetAll(ctx, key).Result()
	if err != nil || len(data) == 0 {
		return nil
	}
	s.redis.Del(ctx, key)

	return &Flash{
		Kind:    data["kind"],
		Message: data["message"],
	}
}
