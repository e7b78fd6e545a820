package tenant_test

import (
	"regexp"
	"testing"

	"talentflow/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type row struct {
	ID        string
	CompanyID string
}

func setupDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm: %v", err)
	}
	return gormDB, mock
}

func TestScope(t *testing.T) {
	t.Run("filters by company", func(t *testing.T) {
		db, mock := setupDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE company_id = $1`)).
			WithArgs("c-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "company_id"}).AddRow("r-1", "c-1"))

		var rows []row
		err := db.Table("rows").Scopes(tenant.Scope("c-1")).Find(&rows).Error

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("blank company matches nothing", func(t *testing.T) {
		db, mock := setupDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE 1 = 0`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "company_id"}))

		var rows []row
		err := db.Table("rows").Scopes(tenant.Scope("")).Find(&rows).Error

		assert.NoError(t, err)
		assert.Empty(t, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
