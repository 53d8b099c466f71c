package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/badriyvp/musegen/internal/common"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request"})
	}

	s.logger.Info(ctx, "Registration request", "email", req.Email)

	_, err := s.users.Register(ctx, req.Name, req.Email, []byte(req.Password))
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "User already exists"})
		}
		s.logger.Error(ctx, err.Error())
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal Server Error"})
	}

	s.logger.Info(ctx, "Registered", "email", req.Email)
	return c.JSON(http.StatusCreated, map[string]bool{"success": true})
}

func (s *Server) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request"})
	}

	token, err := s.users.Login(ctx, req.Email, []byte(req.Password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "User not found"})
		case errors.Is(err, common.ErrorInvalidCredentials):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid password"})
		default:
			s.logger.Error(ctx, err.Error())
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal Server Error"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

func (s *Server) CurrentUser(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := s.users.GetCurrentUser(ctx, currentUserID(c))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "User not found"})
		}
		s.logger.Error(ctx, err.Error())
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, user)
}

func (s *Server) GenerateImage(c echo.Context) error {
	ctx := c.Request().Context()

	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request"})
	}
	if req.Prompt == "" {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Prompt is required"})
	}

	gen, err := s.images.Generate(ctx, currentUserID(c), req.Prompt)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal Server Error"})
	}

	// response shape matches the upstream provider: a data array of results
	return c.JSON(http.StatusOK, map[string]any{
		"data": []map[string]string{
			{"url": gen.URL, "revised_prompt": gen.RevisedPrompt},
		},
	})
}

func (s *Server) GenerationHistory(c echo.Context) error {
	ctx := c.Request().Context()

	gens, err := s.images.History(ctx, currentUserID(c))
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, map[string]any{"data": gens})
}
