package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/treko-inventory/internal/service"
)

// Authenticator verifies employee credentials.
type Authenticator interface {
	Login(ctx context.Context, code, name, password string) (*service.Session, error)
}

// AuthController handles employee login.
type AuthController struct {
	auth Authenticator
}

func NewAuthController(auth Authenticator) *AuthController {
	return &AuthController{auth: auth}
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Code     string `json:"codigo"`
	Name     string `json:"nome"`
	Password string `json:"password"`
}

// EmployeeResponse identifies the logged-in employee.
type EmployeeResponse struct {
	Code string `json:"codigo"`
	Name string `json:"nome"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Message  string           `json:"message"`
	Token    string           `json:"token"`
	Employee EmployeeResponse `json:"funcionario"`
}

// Login handles POST /login. Failures carry a user-facing "message".
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Requisição inválida."})
		return
	}

	session, err := ac.auth.Login(c.Request.Context(), req.Code, req.Name, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Por favor, preencha todos os campos."})
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciais inválidas."})
		return
	case err != nil:
		slog.Error("login failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro interno do servidor."})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login realizado com sucesso!",
		Token:   session.Token,
		Employee: EmployeeResponse{
			Code: session.Employee.Code,
			Name: session.Employee.Name,
		},
	})
}
