package initialize

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"syscall"
	"time"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/internal/metrics"
	"gitee.com/taoJie_1/fin-assistant/router"
	"gitee.com/taoJie_1/fin-assistant/service"
	"gitee.com/taoJie_1/fin-assistant/service/admin"
	"gitee.com/taoJie_1/fin-assistant/service/user"
	"gitee.com/taoJie_1/fin-assistant/task"
	"gitee.com/taoJie_1/fin-assistant/utils"
	"github.com/gin-gonic/gin"
)

// InitServices 创建业务服务, 配置变化后需要重新调用
func InitServices(taskManager *task.Manager) {
	service.Service.UserServiceGroup = user.NewServiceGroup()
	service.Service.AdminServiceGroup = admin.NewServiceGroup(taskManager)
}

// Start 启动HTTP服务, 阻塞直到ctx结束后平滑关闭
func (i *Initializer) Start(ctx context.Context, taskManager *task.Manager, startTime time.Time) error {
	if err := i.StartSystem(taskManager); err != nil {
		return err
	}

	InitServices(taskManager)
	metrics.Register()

	i.server = &http.Server{
		Addr:    global.Config.GinAddr,
		Handler: NewEngine(),
	}

	errCh := make(chan error, 1)
	//协程启动服务
	go func() {
		if err := i.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("服务出错[isjfio]: %w", err)
		}
		close(errCh)
	}()

	logStartupInfo(startTime)

	select {
	case <-ctx.Done(): //阻塞等待
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	global.Log.Infof("程序关闭中..., port: %s, pid: %d", global.Config.GinAddr, syscall.Getpid())
	return i.shutdownServer()
}

// NewEngine 创建已注册全部路由的gin实例
func NewEngine() *gin.Engine {
	mode := gin.ReleaseMode
	if global.Config.Debug {
		mode = gin.DebugMode
	}
	if gin.Mode() != gin.TestMode {
		gin.SetMode(mode)
	}

	ginServer := gin.New()
	ginServer.Use(gin.Logger(), gin.Recovery())
	ginServer.ForwardedByClientIP = true
	router.Start(ginServer)
	return ginServer
}

// 记录启动信息
func logStartupInfo(startTime time.Time) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	global.Log.Infof("服务已启动, 耗时: %v, Go: %s, 端口: %s, 模式: %s, PID: %d, 内存: %gMiB", time.Since(startTime), runtime.Version(), global.Config.GinAddr, gin.Mode(), syscall.Getpid(), utils.NumberFormat(float32(m.Alloc)/1024/1024))
}

// 平滑关闭服务器
func (i *Initializer) shutdownServer() error {
	//给程序最多5秒处理余下请求
	timeoutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := i.server.Shutdown(timeoutCtx); err != nil {
		return fmt.Errorf("服务关闭出错[oijojiud]: %w", err)
	}
	global.Log.Infoln("服务退出成功")
	return nil
}
