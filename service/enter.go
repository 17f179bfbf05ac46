package service

import (
	"gitee.com/taoJie_1/fin-assistant/service/admin"
	"gitee.com/taoJie_1/fin-assistant/service/user"
)

type ServiceGroup struct {
	UserServiceGroup  user.ServiceGroup
	AdminServiceGroup admin.ServiceGroup
}

var Service = new(ServiceGroup)
