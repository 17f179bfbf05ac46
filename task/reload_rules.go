package task

import (
	"fmt"
	"strings"

	"gitee.com/taoJie_1/fin-assistant/dao"
	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/internal/metrics"
	"gitee.com/taoJie_1/fin-assistant/internal/responder"
	"gitee.com/taoJie_1/fin-assistant/model/db"
)

// RuleReloader 从数据库加载规则和术语, 与内置目录合并后替换内存中的 Selector
func (m *Manager) RuleReloader() error {
	err := m.reloadRules()
	metrics.ObserveReload(err)
	return err
}

func (m *Manager) reloadRules() error {
	if dao.DB == nil {
		global.Selector.Set(responder.Default())
		global.Log.Info("数据库未启用, 使用内置规则目录")
		return nil
	}

	var (
		rules []db.Rules
		terms []db.GlossaryTerms
	)
	if err := dao.App.RulesDb.GetRuleList(&rules); err != nil {
		return fmt.Errorf("加载规则失败: %w", err)
	}
	if err := dao.App.GlossaryDb.GetTermList(&terms); err != nil {
		return fmt.Errorf("加载术语失败: %w", err)
	}

	global.Selector.Set(BuildSelector(rules, terms))
	global.Log.Infof("成功加载 %d 条自定义规则, %d 条自定义术语", len(rules), len(terms))
	return nil
}

// BuildSelector 将存储的规则覆盖到内置目录上
func BuildSelector(rules []db.Rules, terms []db.GlossaryTerms) *responder.Selector {
	overrideRules := make([]responder.Rule, 0, len(rules))
	for _, r := range rules {
		overrideRules = append(overrideRules, responder.Rule{
			Name:     r.Name,
			Patterns: SplitPatterns(r.Patterns),
			Response: r.Content,
		})
	}

	overrideTerms := make([]responder.Term, 0, len(terms))
	for _, t := range terms {
		overrideTerms = append(overrideTerms, responder.Term{Name: t.Name, Definition: t.Definition})
	}

	glossary := responder.DefaultGlossary()
	glossary.Terms = responder.MergeTerms(glossary.Terms, overrideTerms)

	return responder.New(
		responder.MergeRules(responder.DefaultRules(), overrideRules),
		glossary,
		responder.FallbackResponse,
	)
}

// SplitPatterns 解析逗号分隔的关键词
func SplitPatterns(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinPatterns 与 SplitPatterns 相反
func JoinPatterns(patterns []string) string {
	var out []string
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}
