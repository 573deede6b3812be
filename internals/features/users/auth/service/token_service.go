package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"desaku_backend/internals/configs"
	"desaku_backend/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

// IssueAccessToken menerbitkan JWT HS256 berisi identitas user.
func IssueAccessToken(u *model.UserModel) (string, time.Time, error) {
	expiresAt := time.Now().Add(accessTTLDefault)

	claims := jwt.MapClaims{
		"user_id":   u.ID,
		"user_name": u.Username,
		"role":      u.Role,
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
