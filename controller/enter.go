package controller

import (
	"gitee.com/taoJie_1/fin-assistant/controller/admin"
	"gitee.com/taoJie_1/fin-assistant/controller/user"
)

var Api = new(ApiGroup)

type ApiGroup struct {
	UserApiGroup  user.ApiGroup
	AdminApiGroup admin.ApiGroup
}
