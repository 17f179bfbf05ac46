package dto

// RuleItem 规则的对外表示
type RuleItem struct {
	Name     string   `json:"name" binding:"required"`
	Patterns []string `json:"patterns" binding:"required,min=1"`
	Content  string   `json:"content" binding:"required"`
	Priority int64    `json:"priority"`
	// Builtin 为true表示来自内置目录, 未被数据库覆盖
	Builtin bool `json:"builtin"`
}

// TermItem 术语的对外表示
type TermItem struct {
	Name       string `json:"name" binding:"required"`
	Definition string `json:"definition" binding:"required"`
	Priority   int64  `json:"priority"`
	Builtin    bool   `json:"builtin"`
}
