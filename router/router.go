package router

import (
	"gitee.com/taoJie_1/fin-assistant/controller"
	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/internal/mcp"
	"gitee.com/taoJie_1/fin-assistant/middleware"
	"gitee.com/taoJie_1/fin-assistant/model/common"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Start(ginServer *gin.Engine) {
	ginServer.Use(middleware.CorsHandle()) //全局中间件

	system := &controller.Api.AdminApiGroup.SystemApi
	ginServer.GET("/health", system.Health)
	ginServer.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if global.Config.Mcp.Enable {
		server := mcp.NewServer(global.Log, global.Config.ProjectName, global.Version, global.Selector.Get)
		ginServer.Any(global.Config.Mcp.Path, gin.WrapH(mcp.NewHTTPHandler(server)))
	}

	ginServer.NoRoute(common.FailNotFound)

	v1 := ginServer.Group("api/v1")
	{
		chat := &controller.Api.UserApiGroup.ChatApi
		v1.POST("/chat", chat.HandleChat)
		v1.GET("/chat/ws", chat.HandleWs)
		v1.GET("/chat/history/:session_id", chat.History)
		v1.DELETE("/chat/history/:session_id", chat.ClearHistory)

		catalog := &controller.Api.AdminApiGroup.CatalogApi
		v1.GET("/rules", catalog.ListRules)
		v1.POST("/rules", catalog.UpsertRule)
		v1.DELETE("/rules/:name", catalog.DeleteRule)
		v1.GET("/glossary", catalog.ListTerms)
		v1.POST("/glossary", catalog.UpsertTerm)
		v1.DELETE("/glossary/:name", catalog.DeleteTerm)
		v1.POST("/reload", catalog.Reload)
	}
}
