package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"employee_web/internal/models"
	"employee_web/internal/repository"
	"employee_web/internal/storage"
)

// ---- helpers ----

func setupDB(t *testing.T) *storage.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := storage.NewDB("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.AutoMigrate(&models.Account{}, &models.Employee{}))
	return db
}

func countAccounts(t *testing.T, db *storage.DB, username string) int64 {
	t.Helper()
	var count int64
	err := db.Model(&models.Account{}).Where("username = ?", username).Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestRegister(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(repository.NewAccountRepository(db))

	result, err := svc.Register("alice", "pw1")
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, result.Status)
	require.Equal(t, int64(1), countAccounts(t, db, "alice"))

	// 密碼只能以雜湊形式儲存
	account, err := repository.NewAccountRepository(db).FindByUsername("alice")
	require.NoError(t, err)
	require.NotEqual(t, "pw1", account.Password)
	require.NotEmpty(t, account.Password)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(repository.NewAccountRepository(db))

	result, err := svc.Register("alice", "pw1")
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, result.Status)

	// 第二次註冊同名帳號只會得到警告，不會新增第二筆資料
	result, err = svc.Register("alice", "pw2")
	require.NoError(t, err)
	require.Equal(t, StatusWarning, result.Status)
	require.Equal(t, int64(1), countAccounts(t, db, "alice"))
}

func TestLogin(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(repository.NewAccountRepository(db))

	_, err := svc.Register("alice", "pw1")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		account, result, err := svc.Login("alice", "pw1")
		require.NoError(t, err)
		require.NotNil(t, account)
		require.Equal(t, StatusSuccess, result.Status)
		require.Equal(t, "alice", account.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		account, result, err := svc.Login("alice", "pw2")
		require.NoError(t, err)
		require.Nil(t, account)
		require.Equal(t, StatusDanger, result.Status)
	})

	t.Run("unknown user", func(t *testing.T) {
		account, result, err := svc.Login("bob", "pw1")
		require.NoError(t, err)
		require.Nil(t, account)
		// 與密碼錯誤回傳相同的訊息
		require.Equal(t, StatusDanger, result.Status)
		require.Equal(t, "❌ Invalid username or password", result.Message)
	})
}
