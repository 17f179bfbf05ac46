package dao

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	DB    *sqlx.DB
	App   = new(DbGroup)
	utils = new(dbUtils)
)

type DbGroup struct {
	RulesDb    RulesDb
	GlossaryDb GlossaryDb
}

// Tx 在事务中执行fc, 出错或panic时回滚
func Tx(fc func(tx *sqlx.Tx) error) (err error) {
	if DB == nil {
		return fmt.Errorf("数据库未初始化[9dkfjs]")
	}

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("开启事务失败[ndsy8]: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("事务panic[sdf7d]: %v", p)
		}
	}()

	if err = fc(tx); err != nil {
		if e := tx.Rollback(); e != nil {
			return fmt.Errorf("回滚失败: %v; 原错误: %w", e, err)
		}
		return err
	}

	return tx.Commit()
}
