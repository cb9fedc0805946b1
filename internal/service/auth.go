package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"employee_web/internal/models"
	"employee_web/internal/repository"
)

type AuthService struct {
	accountRepo repository.AccountRepository
}

func NewAuthService(accountRepo repository.AccountRepository) *AuthService {
	return &AuthService{accountRepo: accountRepo}
}

// Register 註冊新帳號
// 帳號已存在時回傳警告訊息，不會寫入第二筆資料
func (s *AuthService) Register(username, password string) (Result, error) {
	_, err := s.accountRepo.FindByUsername(username)
	if err == nil {
		return Result{Status: StatusWarning, Message: "⚠️ 使用者已存在"}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return Result{}, err
	}

	// 對密碼進行加密，只儲存雜湊值
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, err
	}

	account := models.Account{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := s.accountRepo.Create(&account); err != nil {
		return Result{}, err
	}

	return Result{Status: StatusSuccess, Message: "✅ 註冊成功，請登入"}, nil
}

// Login 驗證帳號密碼
// 帳號不存在與密碼錯誤回傳相同的訊息，不區分兩種情況
func (s *AuthService) Login(username, password string) (*models.Account, Result, error) {
	account, err := s.accountRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Result{Status: StatusDanger, Message: "❌ Invalid username or password"}, nil
		}
		return nil, Result{}, err
	}

	// bcrypt 的比對本身是常數時間
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, Result{Status: StatusDanger, Message: "❌ Invalid username or password"}, nil
	}

	return account, Result{Status: StatusSuccess, Message: "✅ 登入成功"}, nil
}
