package middleware

import (
	"time"

	"gitee.com/taoJie_1/fin-assistant/global"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CorsHandle 跨域, 允许的域名来自配置 cors; 包含 "*" 时允许全部
func CorsHandle() gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range global.Config.Cors {
		if origin == "*" {
			conf.AllowAllOrigins = true
			conf.AllowOrigins = nil
			break
		}
		conf.AllowOrigins = append(conf.AllowOrigins, origin)
	}
	if len(conf.AllowOrigins) == 0 {
		conf.AllowAllOrigins = true
	}

	return cors.New(conf)
}
