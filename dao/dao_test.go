package dao

import (
	"testing"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/model/db"
	"gitee.com/taoJie_1/fin-assistant/model/enum"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) {
	t.Helper()
	global.Config.Database.Type = string(enum.SQLITE)

	var err error
	DB, err = sqlx.Open(string(enum.SQLITE), ":memory:")
	require.NoError(t, err)
	// 内存库每个连接独立, 只保留一个连接
	DB.SetMaxOpenConns(1)
	require.NoError(t, Migrate())

	t.Cleanup(func() {
		_ = DB.Close()
		DB = nil
	})
}

func TestMigrateIdempotent(t *testing.T) {
	setupDB(t)
	assert.NoError(t, Migrate())
}

func TestRulesUpsertAndList(t *testing.T) {
	setupDB(t)

	err := Tx(func(tx *sqlx.Tx) error {
		if err := App.RulesDb.Upsert(&db.Rules{Name: "earnings", Patterns: "earnings,eps", Content: "v1", Priority: 2}, tx); err != nil {
			return err
		}
		return App.RulesDb.Upsert(&db.Rules{Name: "ipo", Patterns: "ipo", Content: "ipo text", Priority: 1}, tx)
	})
	require.NoError(t, err)

	var list []db.Rules
	require.NoError(t, App.RulesDb.GetRuleList(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "ipo", list[0].Name)
	assert.Equal(t, "earnings", list[1].Name)
	assert.NotZero(t, list[1].CreatedAt)

	// 同名更新而不是新增
	require.NoError(t, Tx(func(tx *sqlx.Tx) error {
		return App.RulesDb.Upsert(&db.Rules{Name: "earnings", Patterns: "earnings", Content: "v2", Priority: 0}, tx)
	}))

	list = nil
	require.NoError(t, App.RulesDb.GetRuleList(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "earnings", list[0].Name)
	assert.Equal(t, "v2", list[0].Content)
	assert.Equal(t, "earnings", list[0].Patterns)
}

func TestRulesDelete(t *testing.T) {
	setupDB(t)
	require.NoError(t, Tx(func(tx *sqlx.Tx) error {
		return App.RulesDb.Upsert(&db.Rules{Name: "ipo", Patterns: "ipo", Content: "x"}, tx)
	}))

	n, err := App.RulesDb.Delete("ipo")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = App.RulesDb.Delete("ipo")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestGlossaryUpsertListDelete(t *testing.T) {
	setupDB(t)
	require.NoError(t, Tx(func(tx *sqlx.Tx) error {
		return App.GlossaryDb.Upsert(&db.GlossaryTerms{Name: "yield curve", Definition: "curve"}, tx)
	}))

	var list []db.GlossaryTerms
	require.NoError(t, App.GlossaryDb.GetTermList(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "curve", list[0].Definition)

	n, err := App.GlossaryDb.Delete("yield curve")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestTxRollback(t *testing.T) {
	setupDB(t)
	err := Tx(func(tx *sqlx.Tx) error {
		if err := App.RulesDb.Upsert(&db.Rules{Name: "ipo", Patterns: "ipo", Content: "x"}, tx); err != nil {
			return err
		}
		panic("boom")
	})
	assert.Error(t, err)

	var list []db.Rules
	require.NoError(t, App.RulesDb.GetRuleList(&list))
	assert.Empty(t, list)
}

func TestUpsertRequiresTx(t *testing.T) {
	setupDB(t)
	assert.Error(t, App.RulesDb.Upsert(&db.Rules{Name: "x"}, nil))
}

func TestGetBatchInsertSql(t *testing.T) {
	sql, args, err := utils.getBatchInsertSql(db.Rules{}, []map[string]interface{}{
		{"name": "a", "content": "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO `rules` (`content`, `created_at`, `name`, `updated_at`) VALUES (?, ?, ?, ?)", sql)
	assert.Len(t, args, 4)
}
