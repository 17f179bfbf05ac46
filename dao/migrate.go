package dao

import (
	"fmt"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/model/enum"
)

var sqliteSchema = []string{
	"CREATE TABLE IF NOT EXISTS `rules` (" +
		"`id` INTEGER PRIMARY KEY AUTOINCREMENT, " +
		"`name` VARCHAR(64) NOT NULL UNIQUE, " +
		"`patterns` TEXT NOT NULL, " +
		"`content` TEXT NOT NULL, " +
		"`priority` INTEGER NOT NULL DEFAULT 0, " +
		"`created_at` INTEGER NOT NULL DEFAULT 0, " +
		"`updated_at` INTEGER NOT NULL DEFAULT 0)",
	"CREATE TABLE IF NOT EXISTS `glossary_terms` (" +
		"`id` INTEGER PRIMARY KEY AUTOINCREMENT, " +
		"`name` VARCHAR(64) NOT NULL UNIQUE, " +
		"`definition` TEXT NOT NULL, " +
		"`priority` INTEGER NOT NULL DEFAULT 0, " +
		"`created_at` INTEGER NOT NULL DEFAULT 0, " +
		"`updated_at` INTEGER NOT NULL DEFAULT 0)",
}

var mysqlSchema = []string{
	"CREATE TABLE IF NOT EXISTS `rules` (" +
		"`id` INT UNSIGNED NOT NULL AUTO_INCREMENT, " +
		"`name` VARCHAR(64) NOT NULL, " +
		"`patterns` TEXT NOT NULL, " +
		"`content` TEXT NOT NULL, " +
		"`priority` BIGINT NOT NULL DEFAULT 0, " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0, " +
		"PRIMARY KEY (`id`), UNIQUE KEY `uk_name` (`name`)" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
	"CREATE TABLE IF NOT EXISTS `glossary_terms` (" +
		"`id` INT UNSIGNED NOT NULL AUTO_INCREMENT, " +
		"`name` VARCHAR(64) NOT NULL, " +
		"`definition` TEXT NOT NULL, " +
		"`priority` BIGINT NOT NULL DEFAULT 0, " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0, " +
		"PRIMARY KEY (`id`), UNIQUE KEY `uk_name` (`name`)" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
}

// Migrate 建表, 已存在则跳过
func Migrate() error {
	if DB == nil {
		return fmt.Errorf("数据库未初始化[9dkfjs]")
	}

	schema := sqliteSchema
	if global.Config.Database.Type == string(enum.MYSQL) {
		schema = mysqlSchema
	}

	for _, stmt := range schema {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("建表失败[m8fjd]: %w", err)
		}
	}
	return nil
}
