package database

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

func TestGetTableColumns(t *testing.T) {
	t.Run("SQLite", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)

		err = db.Exec("CREATE TABLE pokemon_search (id TEXT NOT NULL, lang TEXT NOT NULL, dex_num INTEGER, PRIMARY KEY (id, lang))").Error
		require.NoError(t, err)

		columns, err := GetTableColumns(db, "pokemon_search")
		require.NoError(t, err)
		require.Len(t, columns, 3)

		byName := make(map[string]ColumnInfo)
		for _, col := range columns {
			byName[col.Field] = col
		}
		assert.Equal(t, "text", byName["id"].Type)
		assert.True(t, byName["id"].IsPrimary())
		assert.True(t, byName["lang"].IsPrimary())
		assert.Equal(t, "integer", byName["dex_num"].Type)
		assert.False(t, byName["dex_num"].IsPrimary())
		assert.Equal(t, "NO", byName["id"].Null)

		cols, err := GetTableColumns(db, "non_existent")
		assert.NoError(t, err)
		assert.Empty(t, cols)
	})

	t.Run("MySQL", func(t *testing.T) {
		sqlDB, smock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		db, err := Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), time.Second)
		require.NoError(t, err)

		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("ID", "VARCHAR(64)", "NO", "PRI", nil, "").
			AddRow("Name", "varchar(255)", "YES", "", nil, "")
		smock.ExpectQuery("SHOW COLUMNS FROM `pokemon_search`").WillReturnRows(rows)

		columns, err := GetTableColumns(db, "pokemon_search")
		require.NoError(t, err)
		require.Len(t, columns, 2)
		assert.Equal(t, "id", columns[0].Field)
		assert.Equal(t, "varchar(64)", columns[0].Type)
		assert.True(t, columns[0].IsPrimary())
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("MySQLError", func(t *testing.T) {
		sqlDB, smock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		db, err := Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), time.Second)
		require.NoError(t, err)

		smock.ExpectQuery("SHOW COLUMNS").WillReturnError(errors.New("table missing"))
		_, err = GetTableColumns(db, "pokemon_search")
		assert.ErrorContains(t, err, "failed to get columns for table pokemon_search")
	})
}
