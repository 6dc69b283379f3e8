package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkrasnov/authapi/internal/common"
)

type credentials struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"Token"`
}

func (s *Server) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (s *Server) registerUser(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.UserName, req.Password)

	switch {
	case err == nil:
		s.logger.Info(c.Request.Context(), "User registered", "username", user.UserName)
		c.String(http.StatusOK, "User registered successfully")
	case errors.Is(err, common.ErrorLoginAlreadyExists):
		c.String(http.StatusBadRequest, "Username already exists")
	case errors.Is(err, common.ErrorValidation):
		c.String(http.StatusBadRequest, "Username and password are required")
	default:
		s.logger.Error(c.Request.Context(), "registration failed", "error", err)
		c.String(http.StatusInternalServerError, "Internal error")
	}
}

func (s *Server) login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.UserName, req.Password)

	switch {
	case err == nil:
		c.JSON(http.StatusOK, loginResponse{Token: token})
	case errors.Is(err, common.ErrorUnauthorized):
		c.String(http.StatusUnauthorized, "Invalid username or password")
	default:
		s.logger.Error(c.Request.Context(), "login failed", "error", err)
		c.String(http.StatusInternalServerError, "Internal error")
	}
}
