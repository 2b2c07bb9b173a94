package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockRepository(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewUserRepository(db), mock
}

func TestGormUserRepository_FindByUsername(t *testing.T) {
	repo, mock := setupMockRepository(t)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "username", "password_hash", "created_at"}).
		AddRow(id.String(), "Pablo", "pablo", "hashedpassword", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WillReturnRows(rows)

	user, err := repo.FindByUsername("pablo")
	require.NoError(t, err)
	require.Equal(t, id, user.ID)
	require.Equal(t, "pablo", user.Username)
	require.Equal(t, "hashedpassword", user.PasswordHash)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByUsername_NotFound(t *testing.T) {
	repo, mock := setupMockRepository(t)

	rows := sqlmock.NewRows([]string{"id", "name", "username", "password_hash", "created_at"})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WillReturnRows(rows)

	_, err := repo.FindByUsername("ghost")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
