package admin

import (
	"gitee.com/taoJie_1/fin-assistant/model/common"
	"gitee.com/taoJie_1/fin-assistant/service"
	"github.com/gin-gonic/gin"
)

type SystemApi struct{}

func (s *SystemApi) Health(c *gin.Context) {
	common.Success(c, service.Service.AdminServiceGroup.SystemService.Health(c.Request.Context()))
}
