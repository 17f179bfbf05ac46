package initialize

import (
	"fmt"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/internal/llm"
	"gitee.com/taoJie_1/fin-assistant/internal/redis"
)

// initRedis 初始化Redis客户端, 未启用时会话历史为空操作
func (i *Initializer) initRedis() error {
	if !global.Config.Redis.Enable {
		global.RedisClient = nil
		return nil
	}

	client, err := redis.NewClient(
		global.Config.Redis.Addr,
		global.Config.Redis.Password,
		int(global.Config.Redis.DB),
	)
	if err != nil {
		global.Log.Warnf("初始化Redis客户端失败, 会话历史不可用: %v", err)
		return fmt.Errorf("初始化Redis客户端失败: %w", err)
	}
	global.RedisClient = client
	global.Log.Info("初始化Redis服务成功")
	return nil
}

// redisClose 关闭Redis客户端连接
func (i *Initializer) redisClose() error {
	if global.RedisClient != nil {
		err := global.RedisClient.Close()
		global.RedisClient = nil
		return err
	}
	return nil
}

func (i *Initializer) initLlm() error {
	if global.Config.Llm.Model == "" {
		global.LlmService = nil
		global.Log.Info("未配置LLM, 未命中规则时使用兜底回复")
		return nil
	}

	global.LlmService = llm.NewClient(global.Log, global.Config.Llm)
	global.Log.Infof("初始化LLM服务成功, 模型: %s", global.Config.Llm.Model)
	return nil
}
