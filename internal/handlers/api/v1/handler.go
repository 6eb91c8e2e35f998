// Package apiv1 serves the versioned JSON API over the game services.
package apiv1

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ocarena/oc-api/internal/errors"
	battlesvc "github.com/ocarena/oc-api/internal/services/battle"
	charsvc "github.com/ocarena/oc-api/internal/services/character"
)

// PlayerIDHeader carries the caller's identity. Identity is an opaque ID
// supplied by the fronting layer; this service does not authenticate it.
const PlayerIDHeader = "X-Player-ID"

// Config holds the dependencies for the API handler
type Config struct {
	CharacterService charsvc.Service
	BattleService    battlesvc.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}

	return vb.Build()
}

// Handler exposes the game services as JSON endpoints
type Handler struct {
	characters charsvc.Service
	battles    battlesvc.Service
	validate   *validator.Validate
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		characters: cfg.CharacterService,
		battles:    cfg.BattleService,
		validate:   validator.New(),
	}, nil
}

// Register mounts the versioned routes on the echo instance
func (h *Handler) Register(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/characters", h.CreateCharacter)
	v1.GET("/characters/:playerID", h.GetCharacter)
	v1.PATCH("/characters/me", h.UpdateProfile)
	v1.GET("/characters/:playerID/comments", h.ListComments)
	v1.POST("/characters/:playerID/comments", h.AddComment)

	v1.GET("/powers", h.ListPowers)
	v1.POST("/powers/custom", h.CreateCustomPower)

	v1.GET("/leaderboard", h.Leaderboard)

	v1.GET("/battles/requests", h.ListRequests)
	v1.POST("/battles/requests", h.SendRequest)
	v1.POST("/battles/requests/:challengerID/accept", h.AcceptRequest)
	v1.POST("/battles/requests/:challengerID/reject", h.RejectRequest)
	v1.POST("/battles/fight", h.Fight)

	v1.GET("/hall", h.ListDestroyed)
	v1.GET("/hall/:playerID", h.GetDestroyed)
}

// playerID extracts the caller's identity from the request header
func playerID(c echo.Context) (string, error) {
	id := c.Request().Header.Get(PlayerIDHeader)
	if id == "" {
		return "", errors.Unauthenticated("missing " + PlayerIDHeader + " header")
	}
	return id, nil
}

// writeError maps a service error onto an HTTP status and JSON body
func writeError(c echo.Context, err error) error {
	code := errors.GetCode(err)
	return c.JSON(code.HTTPStatus(), errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
	})
}

// bindAndValidate decodes the JSON body and runs struct validation
func (h *Handler) bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "request validation failed")
	}
	return nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Healthz reports liveness
func Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
