package dao

import (
	"fmt"

	"gitee.com/taoJie_1/fin-assistant/model/db"
	"github.com/jmoiron/sqlx"
)

type GlossaryDb struct{}

// 获取所有术语, 按优先级排序
func (d *GlossaryDb) GetTermList(list *[]db.GlossaryTerms, tx ...*sqlx.Tx) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` ORDER BY `priority` ASC, `id` ASC", db.GlossaryTerms{}.TableName())

	if len(tx) > 0 && tx[0] != nil {
		return tx[0].Select(list, sql)
	}
	return DB.Select(list, sql)
}

func (d *GlossaryDb) Upsert(term *db.GlossaryTerms, tx *sqlx.Tx) error {
	return utils.upsertByName(db.GlossaryTerms{}, term.Name, map[string]interface{}{
		"definition": term.Definition,
		"priority":   term.Priority,
	}, tx)
}

func (d *GlossaryDb) Delete(name string, tx ...*sqlx.Tx) (int64, error) {
	return utils.deleteByName(db.GlossaryTerms{}, name, tx...)
}
