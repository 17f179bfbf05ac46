package admin

import (
	"context"
	"time"

	"gitee.com/taoJie_1/fin-assistant/dao"
	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/model/dto"
)

const healthTimeout = 2 * time.Second

type SystemService struct{}

// Health 检查Redis与数据库连通性; 依赖不可用不影响服务本身
func (s *SystemService) Health(ctx context.Context) dto.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	status := dto.HealthStatus{
		Version:  global.Version,
		Time:     time.Now().In(global.Tz).Format(time.RFC3339),
		Redis:    dto.StatusDisabled,
		Database: dto.StatusDisabled,
	}

	if global.RedisClient != nil {
		status.Redis = dto.StatusOk
		if err := global.RedisClient.Ping(ctx).Err(); err != nil {
			global.Log.Warnf("[health]Redis不可用: %v", err)
			status.Redis = dto.StatusError
		}
	}

	if dao.DB != nil {
		status.Database = dto.StatusOk
		if err := dao.DB.PingContext(ctx); err != nil {
			global.Log.Warnf("[health]数据库不可用: %v", err)
			status.Database = dto.StatusError
		}
	}
	return status
}
