package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gitee.com/taoJie_1/fin-assistant/dao"
	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/model/db"
	"gitee.com/taoJie_1/fin-assistant/model/dto"
	"gitee.com/taoJie_1/fin-assistant/task"
	"github.com/jmoiron/sqlx"
)

const maxNameLength = 64

var (
	ErrNotFound = errors.New("条目不存在")
	ErrNoDb     = errors.New("数据库未启用, 规则目录只读")
)

// CatalogService 管理规则目录: 数据库中的规则覆盖或追加到内置目录上
type CatalogService interface {
	// ListRules 返回当前生效的通用规则, 按匹配顺序排列
	ListRules(ctx context.Context) ([]*dto.RuleItem, error)
	// UpsertRule 创建或按名称更新规则, 随后调度重载
	UpsertRule(ctx context.Context, req *dto.RuleItem) error
	// DeleteRule 删除数据库中的规则; 若同名内置规则存在, 重载后恢复为内置版本
	DeleteRule(ctx context.Context, name string) error
	ListTerms(ctx context.Context) ([]*dto.TermItem, error)
	UpsertTerm(ctx context.Context, req *dto.TermItem) error
	DeleteTerm(ctx context.Context, name string) error
	// ForceReload 立即重载, 取消尚未执行的防抖任务
	ForceReload(ctx context.Context) error
}

type catalogService struct {
	taskManager *task.Manager
}

func NewCatalogService(tm *task.Manager) CatalogService {
	return &catalogService{taskManager: tm}
}

func (s *catalogService) ListRules(ctx context.Context) ([]*dto.RuleItem, error) {
	stored := make(map[string]db.Rules)
	if dao.DB != nil {
		var list []db.Rules
		if err := dao.App.RulesDb.GetRuleList(&list); err != nil {
			return nil, fmt.Errorf("查询规则失败: %w", err)
		}
		for _, r := range list {
			stored[strings.ToLower(r.Name)] = r
		}
	}

	rules := global.Selector.Get().Rules()
	items := make([]*dto.RuleItem, 0, len(rules))
	for _, r := range rules {
		row, ok := stored[strings.ToLower(r.Name)]
		items = append(items, &dto.RuleItem{
			Name:     r.Name,
			Patterns: r.Patterns,
			Content:  r.Response,
			Priority: row.Priority,
			Builtin:  !ok,
		})
	}
	return items, nil
}

func (s *catalogService) UpsertRule(ctx context.Context, req *dto.RuleItem) error {
	if req == nil {
		return errors.New("参数错误[9sdfj3]")
	}
	name, err := checkName(req.Name)
	if err != nil {
		return err
	}

	patterns := make([]string, 0, len(req.Patterns))
	for _, p := range req.Patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if strings.Contains(p, ",") {
			return fmt.Errorf("关键词不能包含逗号: %s", p)
		}
		patterns = append(patterns, p)
	}
	if len(patterns) == 0 {
		return errors.New("至少需要一个关键词")
	}
	if strings.TrimSpace(req.Content) == "" {
		return errors.New("回复内容不能为空")
	}
	if dao.DB == nil {
		return ErrNoDb
	}

	err = dao.Tx(func(tx *sqlx.Tx) error {
		return dao.App.RulesDb.Upsert(&db.Rules{
			Name:     name,
			Patterns: task.JoinPatterns(patterns),
			Content:  req.Content,
			Priority: req.Priority,
		}, tx)
	})
	if err != nil {
		return fmt.Errorf("保存规则失败: %w", err)
	}

	global.Log.Infof("[catalog]规则 %s 已保存", name)
	return s.scheduleReload()
}

func (s *catalogService) DeleteRule(ctx context.Context, name string) error {
	if dao.DB == nil {
		return ErrNoDb
	}
	n, err := dao.App.RulesDb.Delete(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return fmt.Errorf("删除规则失败: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	global.Log.Infof("[catalog]规则 %s 已删除", name)
	return s.scheduleReload()
}

func (s *catalogService) ListTerms(ctx context.Context) ([]*dto.TermItem, error) {
	stored := make(map[string]db.GlossaryTerms)
	if dao.DB != nil {
		var list []db.GlossaryTerms
		if err := dao.App.GlossaryDb.GetTermList(&list); err != nil {
			return nil, fmt.Errorf("查询术语失败: %w", err)
		}
		for _, t := range list {
			stored[strings.ToLower(t.Name)] = t
		}
	}

	terms := global.Selector.Get().Terms()
	items := make([]*dto.TermItem, 0, len(terms))
	for _, t := range terms {
		row, ok := stored[t.Name]
		items = append(items, &dto.TermItem{
			Name:       t.Name,
			Definition: t.Definition,
			Priority:   row.Priority,
			Builtin:    !ok,
		})
	}
	return items, nil
}

func (s *catalogService) UpsertTerm(ctx context.Context, req *dto.TermItem) error {
	if req == nil {
		return errors.New("参数错误[kd8s2m]")
	}
	name, err := checkName(req.Name)
	if err != nil {
		return err
	}
	if strings.TrimSpace(req.Definition) == "" {
		return errors.New("术语解释不能为空")
	}
	if dao.DB == nil {
		return ErrNoDb
	}

	err = dao.Tx(func(tx *sqlx.Tx) error {
		return dao.App.GlossaryDb.Upsert(&db.GlossaryTerms{
			Name:       name,
			Definition: req.Definition,
			Priority:   req.Priority,
		}, tx)
	})
	if err != nil {
		return fmt.Errorf("保存术语失败: %w", err)
	}

	global.Log.Infof("[catalog]术语 %s 已保存", name)
	return s.scheduleReload()
}

func (s *catalogService) DeleteTerm(ctx context.Context, name string) error {
	if dao.DB == nil {
		return ErrNoDb
	}
	n, err := dao.App.GlossaryDb.Delete(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return fmt.Errorf("删除术语失败: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	global.Log.Infof("[catalog]术语 %s 已删除", name)
	return s.scheduleReload()
}

func (s *catalogService) ForceReload(ctx context.Context) error {
	s.taskManager.StopDebounce()
	return s.taskManager.RuleReloader()
}

// scheduleReload 防抖时间为0时同步重载
func (s *catalogService) scheduleReload() error {
	delay := time.Duration(global.Config.Ai.ReloadDebounce) * time.Second
	if delay <= 0 {
		return s.taskManager.RuleReloader()
	}
	s.taskManager.DebounceRuleReload(delay)
	return nil
}

func checkName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", errors.New("名称不能为空")
	}
	if len([]rune(name)) > maxNameLength {
		return "", fmt.Errorf("名称最多 %d 个字符", maxNameLength)
	}
	return name, nil
}
