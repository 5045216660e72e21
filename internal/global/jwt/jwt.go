package jwt

import (
	"time"

	"pomelox-server/config"
	"pomelox-server/internal/global/permission"

	"github.com/golang-jwt/jwt"
)

// Payload 写入令牌的用户信息
type Payload struct {
	UserID    uint            `json:"user_id"`
	DeptID    uint            `json:"dept_id"`
	LegalName string          `json:"legal_name"`
	Role      permission.Role `json:"role"`
}

type Claims struct {
	Payload
	jwt.StandardClaims
}

// Actor 转换为权限判定用的 Actor
func (c *Claims) Actor() permission.Actor {
	return permission.Actor{UserID: c.UserID, DeptID: c.DeptID, Role: c.Role}
}

// CreateToken 签发访问令牌，过期时间取配置 AccessExpire（秒）
func CreateToken(payload Payload) string {
	cfg := config.Get()
	now := time.Now()
	claims := Claims{
		Payload: payload,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(cfg.JWT.AccessExpire) * time.Second).Unix(),
			Issuer:    "pomelox-server",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWT.AccessSecret))
	if err != nil {
		// 密钥配置缺失属于启动期错误
		panic(err)
	}
	return signed
}

// ParseToken 解析并校验令牌，返回 payload 与有效性
func ParseToken(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
