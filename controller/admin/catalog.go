package admin

import (
	"errors"

	"gitee.com/taoJie_1/fin-assistant/model/common"
	"gitee.com/taoJie_1/fin-assistant/model/dto"
	"gitee.com/taoJie_1/fin-assistant/service"
	"gitee.com/taoJie_1/fin-assistant/service/admin"
	"github.com/gin-gonic/gin"
)

type CatalogApi struct{}

func (k *CatalogApi) ListRules(c *gin.Context) {
	items, err := service.Service.AdminServiceGroup.CatalogService.ListRules(c)
	if err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.Success(c, items)
}

func (k *CatalogApi) UpsertRule(c *gin.Context) {
	var req dto.RuleItem
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, err.Error())
		return
	}

	if err := service.Service.AdminServiceGroup.CatalogService.UpsertRule(c, &req); err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.SuccessOk(c, "规则已保存")
}

func (k *CatalogApi) DeleteRule(c *gin.Context) {
	err := service.Service.AdminServiceGroup.CatalogService.DeleteRule(c, c.Param("name"))
	if errors.Is(err, admin.ErrNotFound) {
		common.FailNotFoundMsg(c, "规则不存在")
		return
	}
	if err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.SuccessOk(c, "规则已删除")
}

func (k *CatalogApi) ListTerms(c *gin.Context) {
	items, err := service.Service.AdminServiceGroup.CatalogService.ListTerms(c)
	if err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.Success(c, items)
}

func (k *CatalogApi) UpsertTerm(c *gin.Context) {
	var req dto.TermItem
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, err.Error())
		return
	}

	if err := service.Service.AdminServiceGroup.CatalogService.UpsertTerm(c, &req); err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.SuccessOk(c, "术语已保存")
}

func (k *CatalogApi) DeleteTerm(c *gin.Context) {
	err := service.Service.AdminServiceGroup.CatalogService.DeleteTerm(c, c.Param("name"))
	if errors.Is(err, admin.ErrNotFound) {
		common.FailNotFoundMsg(c, "术语不存在")
		return
	}
	if err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.SuccessOk(c, "术语已删除")
}

func (k *CatalogApi) Reload(c *gin.Context) {
	if err := service.Service.AdminServiceGroup.CatalogService.ForceReload(c); err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.SuccessOk(c, "规则目录已重新加载")
}
