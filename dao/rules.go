package dao

import (
	"fmt"

	"gitee.com/taoJie_1/fin-assistant/model/db"
	"github.com/jmoiron/sqlx"
)

type RulesDb struct{}

// 获取所有规则, 按优先级排序
func (d *RulesDb) GetRuleList(list *[]db.Rules, tx ...*sqlx.Tx) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` ORDER BY `priority` ASC, `id` ASC", db.Rules{}.TableName())

	if len(tx) > 0 && tx[0] != nil {
		return tx[0].Select(list, sql)
	}
	return DB.Select(list, sql)
}

// 插入或更新
func (d *RulesDb) Upsert(rule *db.Rules, tx *sqlx.Tx) error {
	return utils.upsertByName(db.Rules{}, rule.Name, map[string]interface{}{
		"patterns": rule.Patterns,
		"content":  rule.Content,
		"priority": rule.Priority,
	}, tx)
}

// 删除
func (d *RulesDb) Delete(name string, tx ...*sqlx.Tx) (int64, error) {
	return utils.deleteByName(db.Rules{}, name, tx...)
}
