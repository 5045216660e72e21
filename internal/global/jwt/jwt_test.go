package jwt

import (
	"testing"

	"pomelox-server/internal/global/permission"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	payload := Payload{
		UserID:    42,
		DeptID:    7,
		LegalName: "张三",
		Role:      permission.RolePartManage,
	}

	token := CreateToken(payload)
	require.NotEmpty(t, token)

	claims, valid := ParseToken(token)
	require.True(t, valid)
	require.Equal(t, payload, claims.Payload)

	actor := claims.Actor()
	require.Equal(t, uint(42), actor.UserID)
	require.Equal(t, uint(7), actor.DeptID)
	require.Equal(t, permission.RolePartManage, actor.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, valid := ParseToken("not-a-token")
	require.False(t, valid)

	_, valid = ParseToken("")
	require.False(t, valid)
}

func TestParseTokenRejectsTampered(t *testing.T) {
	token := CreateToken(Payload{UserID: 1, Role: permission.RoleStaff})
	tampered := token[:len(token)-2] + "xx"
	_, valid := ParseToken(tampered)
	require.False(t, valid)
}
