//go:build unit || e2e

package builder

import (
	"github.com/javier-f-ramos/clasifica2/internal/domain/auth"
	reqdto "github.com/javier-f-ramos/clasifica2/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildDomain() (auth.Credentials, error) {
	return auth.NewCredentials(a.Email, a.Password)
}
