package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type Claims struct {
	AccountID uint `json:"account_id"`
	jwt.StandardClaims
}

// TokenManager 負責產生與驗證 session token
// 密鑰由配置注入，不使用套件層級的全域變數
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL 回傳 token 的有效期間，cookie 的存活時間以此為準
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Generate 為指定帳號產生一個新的 session token
func (m *TokenManager) Generate(accountID uint) (string, error) {
	nowTime := time.Now()
	expireTime := nowTime.Add(m.ttl)

	claims := Claims{
		AccountID: accountID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expireTime.Unix(),
			IssuedAt:  nowTime.Unix(),
		},
	}

	tokenClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenClaims.SignedString(m.secret)
}

// Parse 解析和驗證 session token
func (m *TokenManager) Parse(token string) (*Claims, error) {
	tokenClaims, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})

	if tokenClaims != nil {
		if claims, ok := tokenClaims.Claims.(*Claims); ok && tokenClaims.Valid {
			return claims, nil
		}
	}

	return nil, err
}
