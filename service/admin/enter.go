package admin

import "gitee.com/taoJie_1/fin-assistant/task"

type ServiceGroup struct {
	CatalogService CatalogService
	SystemService  SystemService
}

func NewServiceGroup(taskManager *task.Manager) ServiceGroup {
	return ServiceGroup{
		CatalogService: NewCatalogService(taskManager),
	}
}
