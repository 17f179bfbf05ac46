package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/internal/redis"
	"gitee.com/taoJie_1/fin-assistant/model/common"
	"gitee.com/taoJie_1/fin-assistant/model/enum"
	"gitee.com/taoJie_1/fin-assistant/utils"
)

// HistoryService 会话历史, 存储在Redis中; 未启用Redis时为空操作
type HistoryService interface {
	// Append 追加一问一答
	Append(ctx context.Context, sessionID, question, answer string) error
	// List 按时间顺序返回会话历史
	List(ctx context.Context, sessionID string) ([]common.HistoryItem, error)
	// Clear 删除会话历史
	Clear(ctx context.Context, sessionID string) error
}

type historyService struct {
	limit int64
	ttl   int64
	now   func() time.Time
}

func NewHistoryService() HistoryService {
	return &historyService{
		limit: global.Config.Ai.HistoryLimit,
		ttl:   global.Config.Redis.ConversationHistoryTTL,
		now:   time.Now,
	}
}

func historyKey(sessionID string) string {
	return global.Config.Redis.KeyPrefix + redis.KeyPrefixHistory + sessionID
}

func (h *historyService) Append(ctx context.Context, sessionID, question, answer string) error {
	if global.RedisClient == nil {
		return nil
	}

	ts := h.now().Unix()
	values := make([]interface{}, 0, 2)
	for _, item := range []common.HistoryItem{
		{Role: enum.RoleUser, Content: question, Time: ts},
		{Role: enum.RoleAssistant, Content: answer, Time: ts},
	} {
		b, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("序列化会话历史失败: %w", err)
		}
		values = append(values, string(b))
	}

	key := historyKey(sessionID)
	if err := global.RedisClient.RPush(ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("写入会话历史失败: %w", err)
	}
	if h.limit > 0 {
		if err := global.RedisClient.LTrim(ctx, key, -h.limit, -1).Err(); err != nil {
			return fmt.Errorf("裁剪会话历史失败: %w", err)
		}
	}
	if ttl := utils.GetTTLWithJitter(h.ttl); ttl > 0 {
		if err := global.RedisClient.Expire(ctx, key, ttl).Err(); err != nil {
			return fmt.Errorf("设置会话历史过期时间失败: %w", err)
		}
	}
	return nil
}

func (h *historyService) List(ctx context.Context, sessionID string) ([]common.HistoryItem, error) {
	items := make([]common.HistoryItem, 0)
	if global.RedisClient == nil {
		return items, nil
	}

	raw, err := global.RedisClient.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("读取会话历史失败: %w", err)
	}

	for _, s := range raw {
		var item common.HistoryItem
		if err := json.Unmarshal([]byte(s), &item); err != nil {
			global.Log.Warnf("[history]跳过无法解析的历史记录: %v", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (h *historyService) Clear(ctx context.Context, sessionID string) error {
	if global.RedisClient == nil {
		return nil
	}
	if err := global.RedisClient.Del(ctx, historyKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("删除会话历史失败: %w", err)
	}
	return nil
}
