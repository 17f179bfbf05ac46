package responder

import (
	"strings"

	"gitee.com/taoJie_1/fin-assistant/utils"
)

// Kind 表示一次匹配是通过哪条路径得出的回复
type Kind string

const (
	KindRule     Kind = "rule"     // 命中通用话题规则
	KindGlossary Kind = "glossary" // 命中术语表中的术语
	KindClarify  Kind = "clarify"  // 触发了术语解释但没有找到术语
	KindFallback Kind = "fallback" // 没有任何规则命中
)

// Rule 一条关键词规则: 任一 pattern 被查询包含即命中
type Rule struct {
	Name     string   `json:"name" yaml:"name"`
	Patterns []string `json:"patterns" yaml:"patterns"`
	Response string   `json:"response" yaml:"response"`
}

// Term 术语表中的一个词条.
// Patterns 为空时按术语名匹配; 较短的缩写可用带空格的 pattern 避免命中单词内部
type Term struct {
	Name       string   `json:"name" yaml:"name"`
	Definition string   `json:"definition" yaml:"definition"`
	Patterns   []string `json:"patterns,omitempty" yaml:"patterns,omitempty"`
}

// Glossary 术语解释子规则
type Glossary struct {
	Triggers []string `json:"triggers" yaml:"triggers"`
	Terms    []Term   `json:"terms" yaml:"terms"`
	// Clarify 命中触发词但没有找到术语时的回复
	Clarify string `json:"clarify" yaml:"clarify"`
}

// Result 一次匹配的完整结果
type Result struct {
	Response string `json:"response"`
	Kind     Kind   `json:"kind"`
	Rule     string `json:"rule,omitempty"`
	Term     string `json:"term,omitempty"`
}

// Selector 按固定顺序匹配规则; 创建后不可变, 可并发使用
type Selector struct {
	rules    []Rule
	glossary Glossary
	fallback string
}

// New 根据规则目录创建 Selector.
// pattern、触发词和术语名都会被转为小写, 空白项会被丢弃.
func New(rules []Rule, glossary Glossary, fallback string) *Selector {
	s := &Selector{
		rules:    make([]Rule, 0, len(rules)),
		fallback: fallback,
		glossary: Glossary{
			Triggers: normalize(glossary.Triggers),
			Terms:    make([]Term, 0, len(glossary.Terms)),
			Clarify:  glossary.Clarify,
		},
	}

	for _, r := range rules {
		patterns := normalize(r.Patterns)
		if len(patterns) == 0 {
			continue
		}
		s.rules = append(s.rules, Rule{Name: r.Name, Patterns: patterns, Response: r.Response})
	}

	for _, t := range glossary.Terms {
		name := strings.ToLower(strings.TrimSpace(t.Name))
		if name == "" {
			continue
		}
		patterns := lowerKeepSpace(t.Patterns)
		if len(patterns) == 0 {
			patterns = []string{name}
		}
		s.glossary.Terms = append(s.glossary.Terms, Term{Name: name, Definition: t.Definition, Patterns: patterns})
	}

	return s
}

// Match 返回查询对应的回复以及命中路径
func (s *Selector) Match(query string) Result {
	q := strings.ToLower(query)

	// 通用话题优先于术语解释
	for _, r := range s.rules {
		if utils.ContainsAny(q, r.Patterns) {
			return Result{Response: r.Response, Kind: KindRule, Rule: r.Name}
		}
	}

	if utils.ContainsAny(q, s.glossary.Triggers) {
		for _, t := range s.glossary.Terms {
			if utils.ContainsAny(q, t.Patterns) {
				return Result{Response: t.Definition, Kind: KindGlossary, Term: t.Name}
			}
		}
		return Result{Response: s.glossary.Clarify, Kind: KindClarify}
	}

	return Result{Response: s.fallback, Kind: KindFallback}
}

// SelectResponse 返回查询对应的回复文本
func (s *Selector) SelectResponse(query string) string {
	return s.Match(query).Response
}

// Rules 返回规则的副本, 按匹配顺序排列
func (s *Selector) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		out[i] = Rule{Name: r.Name, Patterns: append([]string(nil), r.Patterns...), Response: r.Response}
	}
	return out
}

// Terms 返回术语表的副本
func (s *Selector) Terms() []Term {
	out := make([]Term, len(s.glossary.Terms))
	for i, t := range s.glossary.Terms {
		out[i] = Term{Name: t.Name, Definition: t.Definition, Patterns: append([]string(nil), t.Patterns...)}
	}
	return out
}

// Fallback 返回兜底回复
func (s *Selector) Fallback() string {
	return s.fallback
}

func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// lowerKeepSpace 与 normalize 相同, 但保留首尾空格
func lowerKeepSpace(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.ToLower(v))
		}
	}
	return out
}
