package initialize

import (
	"context"
	"reflect"
	"strings"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/model/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// HandleConfigChange 检测配置变化并并发地重载相关服务
func (i *Initializer) HandleConfigChange(oldConfig, newConfig *config.Config) {
	i.reloadLock.Lock()
	defer i.reloadLock.Unlock()

	var restartNeeded []string

	// 不可热重载的配置
	if !reflect.DeepEqual(oldConfig.Database, newConfig.Database) {
		restartNeeded = append(restartNeeded, "database")
	}
	if oldConfig.GinAddr != newConfig.GinAddr {
		restartNeeded = append(restartNeeded, "gin_addr")
	}
	if oldConfig.GinLogPath != newConfig.GinLogPath || oldConfig.RunLogPath != newConfig.RunLogPath {
		restartNeeded = append(restartNeeded, "log_path")
	}
	if !reflect.DeepEqual(oldConfig.Cors, newConfig.Cors) {
		restartNeeded = append(restartNeeded, "cors")
	}
	if !reflect.DeepEqual(oldConfig.Mcp, newConfig.Mcp) {
		restartNeeded = append(restartNeeded, "mcp")
	}

	eg, _ := errgroup.WithContext(context.Background())

	if oldConfig.Tz != newConfig.Tz {
		eg.Go(func() error {
			if err := i.InitTz(); err != nil {
				global.Log.Errorf("热重载时区失败: %v", err)
				return err
			}
			return nil
		})
	}

	if !reflect.DeepEqual(oldConfig.Redis, newConfig.Redis) {
		eg.Go(func() error {
			if err := i.redisClose(); err != nil {
				global.Log.Warnf("关闭旧Redis客户端失败: %v", err)
			}
			return i.initRedis()
		})
	}

	if !reflect.DeepEqual(oldConfig.Llm, newConfig.Llm) {
		eg.Go(i.initLlm)
	}

	if err := eg.Wait(); err != nil {
		global.Log.Errorf("并发热重载过程中发生错误: %v", err)
	}

	// 业务服务在创建时读取 ai/redis 配置
	if i.taskManager != nil && (!reflect.DeepEqual(oldConfig.Ai, newConfig.Ai) || !reflect.DeepEqual(oldConfig.Redis, newConfig.Redis)) {
		InitServices(i.taskManager)
	}

	if oldConfig.Debug != newConfig.Debug {
		if newConfig.Debug {
			global.Log.SetLevel(logrus.DebugLevel)
		} else {
			global.Log.SetLevel(logrus.InfoLevel)
		}
	}

	if len(restartNeeded) > 0 {
		global.Log.Warnf("检测到存在需要 重启服务 才能生效的配置变更: [%s]。", strings.Join(restartNeeded, ", "))
	}

	global.Log.Info("配置变更处理完成")
}
