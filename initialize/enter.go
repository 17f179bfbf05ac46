package initialize

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/task"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Initializer 统一管理项目的所有初始化工作
type Initializer struct {
	cron           *cron.Cron
	server         *http.Server
	taskManager    *task.Manager
	logFileClosers []io.Closer
	logFiles       []string
	reloadLock     sync.Mutex
}

// Run 并发执行所有核心服务的初始化
func (i *Initializer) Run() error {
	eg, _ := errgroup.WithContext(context.Background())

	// 关键任务，失败会终止程序
	eg.Go(i.dbStart)

	// 非关键任务，失败只打印日志，不影响启动
	eg.Go(func() error {
		_ = i.initRedis()
		return nil
	})
	eg.Go(func() error {
		_ = i.initLlm()
		return nil
	})

	return eg.Wait()
}

// Close 优雅地关闭和释放所有资源
func (i *Initializer) Close() {
	if i.taskManager != nil {
		i.taskManager.StopDebounce()
	}
	i.timerStop()
	if err := i.dbClose(); err != nil {
		global.Log.Warnf("关闭数据库失败: %v", err)
	}
	if err := i.redisClose(); err != nil {
		global.Log.Warnf("关闭Redis失败: %v", err)
	}
	for _, c := range i.logFileClosers {
		_ = c.Close()
	}
	i.logFileClosers = nil
}

// StartSystem 启动系统级服务，如定时器和数据加载
func (i *Initializer) StartSystem(taskManager *task.Manager) error {
	i.taskManager = taskManager
	// 日志文件只在启动时按日期命名, 进程存活期间不能被清理掉
	taskManager.KeepLogFiles(i.logFiles...)
	if err := i.timerStart(taskManager); err != nil {
		return err
	}
	i.loadData(taskManager)
	return nil
}

func (i *Initializer) InitTz() error {
	location, err := time.LoadLocation(global.Config.Tz)
	if err != nil {
		return fmt.Errorf("时区配置失败[siortuj]: %w", err)
	}
	global.Tz = location
	return nil
}
