package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// Stache deletion has to clear task references, drop items, drop
// context projects with their tasks, and drop the stache, all inside
// one transaction.
func TestGormStacheRepository_DeleteCascadeOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStacheRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `project_tasks` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `items`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `project_tasks`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `projects`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `staches`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(42))
	require.NoError(t, mock.ExpectationsWereMet())
}

// A failure partway through rolls the whole cascade back.
func TestGormStacheRepository_DeleteRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStacheRepository(db)

	boom := errors.New("lock wait timeout")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `project_tasks` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `items`").
		WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.Delete(42)
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
