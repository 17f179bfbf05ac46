package dao

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gitee.com/taoJie_1/fin-assistant/model/db"
	"github.com/jmoiron/sqlx"
)

type dbUtils struct{}

func (u *dbUtils) getBatchInsertSql(d db.Dbfunc, data []map[string]interface{}) (string, []interface{}, error) {
	if len(data) == 0 {
		return "", nil, nil
	}

	// 先补充时间字段, 保证所有行的字段一致
	tags := db.GetBaseFieldDbTags()
	now := time.Now().Unix()
	for _, row := range data {
		if tags.CreatedAtDbTag != "" {
			if _, exists := row[tags.CreatedAtDbTag]; !exists {
				row[tags.CreatedAtDbTag] = now
			}
		}
		if tags.UpdatedAtDbTag != "" {
			if _, exists := row[tags.UpdatedAtDbTag]; !exists {
				row[tags.UpdatedAtDbTag] = now
			}
		}
	}

	// 顺序
	keys := make([]string, 0, len(data[0]))
	for k := range data[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// 构建字段
	var fields strings.Builder
	fields.WriteByte('(')
	for i, k := range keys {
		if i > 0 {
			fields.WriteString(", ")
		}
		fields.WriteByte('`')
		fields.WriteString(k)
		fields.WriteByte('`')
	}
	fields.WriteByte(')')

	valueStrings := make([]string, 0, len(data))
	valueArgs := make([]interface{}, 0, len(data)*len(keys))

	for _, row := range data {
		if len(row) != len(keys) {
			return "", nil, fmt.Errorf("批量插入失败：数据行的字段数量不一致")
		}

		// 构建 VALUES 子句中的单行占位符, e.g., "(?, ?, ?)"
		valueStrings = append(valueStrings, "(?"+strings.Repeat(", ?", len(keys)-1)+")")

		// 按照排序后的字段顺序，添加参数到 valueArgs
		for _, k := range keys {
			val, ok := row[k]
			if !ok {
				return "", nil, fmt.Errorf("批量插入失败：数据行缺少字段 '%s'", k)
			}
			valueArgs = append(valueArgs, val)
		}
	}

	var sql strings.Builder
	sql.WriteString("INSERT INTO `")
	sql.WriteString(d.TableName())
	sql.WriteString("` ")
	sql.WriteString(fields.String())
	sql.WriteString(" VALUES ")
	sql.WriteString(strings.Join(valueStrings, ", "))

	return sql.String(), valueArgs, nil
}

func (u *dbUtils) getUpdateSql(d db.Dbfunc, id uint, data map[string]interface{}) (string, []interface{}) {
	if len(data) < 1 {
		return ``, []interface{}{}
	}

	if tag := db.GetBaseFieldDbTags().UpdatedAtDbTag; tag != "" {
		if _, exists := data[tag]; !exists {
			data[tag] = time.Now().Unix()
		}
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var (
		fields strings.Builder
		sql    strings.Builder
		args   []interface{} = make([]interface{}, 0, len(data)+1)
	)

	for _, k := range keys {
		fields.WriteString(" `")
		fields.WriteString(k)
		fields.WriteString("` = ?,")
		args = append(args, data[k])
	}

	sql.WriteString("UPDATE `")
	sql.WriteString(d.TableName())
	sql.WriteString("` SET")
	sql.WriteString(strings.TrimRight(fields.String(), ","))
	sql.WriteString(" WHERE `id` = ?")
	args = append(args, id)

	return sql.String(), args
}

// upsertByName 按唯一的 name 字段插入或更新一行
func (u *dbUtils) upsertByName(d db.Dbfunc, name string, data map[string]interface{}, tx *sqlx.Tx) error {
	if tx == nil {
		return errors.New("请使用事务[ioddfsaa]")
	}

	var id uint
	query := fmt.Sprintf("SELECT `id` FROM `%s` WHERE `name` = ? LIMIT 1", d.TableName())
	err := tx.Get(&id, tx.Rebind(query), name)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("查询 %s 失败: %w", d.TableName(), err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		data["name"] = name
		insertSql, args, err := u.getBatchInsertSql(d, []map[string]interface{}{data})
		if err != nil {
			return fmt.Errorf("构建插入SQL失败: %w", err)
		}
		if _, err = tx.Exec(tx.Rebind(insertSql), args...); err != nil {
			return fmt.Errorf("插入 %s 失败: %w", d.TableName(), err)
		}
		return nil
	}

	updateSql, args := u.getUpdateSql(d, id, data)
	if _, err = tx.Exec(tx.Rebind(updateSql), args...); err != nil {
		return fmt.Errorf("更新 %s 失败: %w", d.TableName(), err)
	}
	return nil
}

// deleteByName 删除指定 name 的行, 返回删除的行数
func (u *dbUtils) deleteByName(d db.Dbfunc, name string, tx ...*sqlx.Tx) (int64, error) {
	query := fmt.Sprintf("DELETE FROM `%s` WHERE `name` = ?", d.TableName())

	var (
		res sql.Result
		err error
	)
	if len(tx) > 0 && tx[0] != nil {
		res, err = tx[0].Exec(tx[0].Rebind(query), name)
	} else {
		res, err = DB.Exec(DB.Rebind(query), name)
	}
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
