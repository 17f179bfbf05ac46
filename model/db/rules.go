package db

// 通用话题规则, 覆盖或追加到内置规则上
type Rules struct {
	BaseField
	Name     string `db:"name" json:"name" info:"规则名"`
	Patterns string `db:"patterns" json:"patterns" info:"关键词,逗号分隔"`
	Content  string `db:"content" json:"content" info:"回复内容"`
	Priority int64  `db:"priority" json:"priority" info:"排序,越小越靠前"`
}

func (Rules) TableName() string {
	return `rules`
}

// 术语表词条
type GlossaryTerms struct {
	BaseField
	Name       string `db:"name" json:"name" info:"术语"`
	Definition string `db:"definition" json:"definition" info:"解释"`
	Priority   int64  `db:"priority" json:"priority" info:"排序,越小越靠前"`
}

func (GlossaryTerms) TableName() string {
	return `glossary_terms`
}
