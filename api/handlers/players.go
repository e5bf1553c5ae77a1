// Package handlers serves the /players routes.
package handlers

import (
	"github.com/Aidin1998/rosterhub/api/responses"
	"github.com/Aidin1998/rosterhub/internal/players"
	"github.com/Aidin1998/rosterhub/pkg/errors"
	"github.com/Aidin1998/rosterhub/pkg/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlayerData wraps a single player in a response
type PlayerData struct {
	Player *models.Player `json:"player"`
}

// PlayerListData wraps the player list in a response
type PlayerListData struct {
	Players []models.Player `json:"players"`
}

// PlayerHandler serves the /players endpoints
type PlayerHandler struct {
	players *players.Service
	logger  *zap.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(svc *players.Service, logger *zap.Logger) *PlayerHandler {
	return &PlayerHandler{players: svc, logger: logger}
}

// Register mounts the player routes on r
func (h *PlayerHandler) Register(r gin.IRouter) {
	group := r.Group("/players")
	{
		group.GET("", h.ListPlayers)
		group.POST("", h.CreatePlayer)
		group.GET("/:id", h.GetPlayer)
		group.PUT("/:id", h.UpdatePlayer)
		group.DELETE("/:id", h.DeletePlayer)
	}
}

// ListPlayers godoc
// @Summary List players
// @Description Returns every player ordered by name ascending
// @Tags Players
// @Produce json
// @Success 200 {object} responses.StandardResponse{data=PlayerListData}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	list, err := h.players.ListPlayers(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, PlayerListData{Players: list})
}

// GetPlayer godoc
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} responses.StandardResponse{data=PlayerData}
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	player, err := h.players.GetPlayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, PlayerData{Player: player})
}

// CreatePlayer godoc
// @Summary Add a player
// @Tags Players
// @Accept json
// @Produce json
// @Param request body object{name=string,age=int,marketValue=number} true "Player"
// @Success 201 {object} responses.StandardResponse{data=PlayerData}
// @Failure 400 {object} responses.ErrorResponse "First validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	player, err := h.players.CreatePlayer(c.Request.Context(), c.Request.Body)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Created(c, PlayerData{Player: player}, "Player added")
}

// UpdatePlayer godoc
// @Summary Update a player
// @Description Replaces the supplied fields only; at least one of name, age, marketValue is required
// @Tags Players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param request body object{name=string,age=int,marketValue=number} true "Fields to change"
// @Success 200 {object} responses.StandardResponse{data=PlayerData}
// @Failure 400 {object} responses.ErrorResponse "First validation error"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	player, err := h.players.UpdatePlayer(c.Request.Context(), c.Param("id"), c.Request.Body)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, PlayerData{Player: player}, "Player updated")
}

// DeletePlayer godoc
// @Summary Remove a player
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} responses.StandardResponse
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	if err := h.players.DeletePlayer(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, nil, "Player removed")
}

func (h *PlayerHandler) fail(c *gin.Context, err error) {
	if errors.KindOf(err) == errors.KindInternal {
		h.logger.Error("Player request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("player_id", c.Param("id")),
			zap.Error(err))
	}
	responses.Error(c, err)
}
