package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/middleware"
	"go-splendor/service"
)

type GameController struct {
	games  *service.GameService
	logger *zap.Logger
}

func NewGameController(games *service.GameService, logger *zap.Logger) *GameController {
	return &GameController{games: games, logger: logger}
}

// Play runs the request's command against the game named in the path. Engine
// rejections come back as 200 with errors filled in.
func (gc *GameController) Play(c *gin.Context) {
	var req dto.PlayRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad command payload"})
		return
	}
	res := gc.games.Play(c.Request.Context(), c.Param("gameID"), middleware.Identity(c), req.Command)
	c.JSON(http.StatusOK, res)
}

func (gc *GameController) CreateGame(c *gin.Context) {
	var settings *engine.Settings
	if c.Request.ContentLength > 0 {
		var req dto.CreateGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s := engine.DefaultSettings()
		if req.MinPlayers != 0 {
			s.MinPlayers = req.MinPlayers
		}
		if req.Nobles != 0 {
			s.Nobles = req.Nobles
		}
		settings = &s
	}

	gameID, seat := gc.games.CreateGame(middleware.Identity(c), settings)
	gc.logger.Info("✅ game opened", zap.String("gameID", gameID))
	c.JSON(http.StatusCreated, dto.CreateGameResponse{GameID: gameID, Seat: string(seat)})
}

func (gc *GameController) ListGames(c *gin.Context) {
	c.JSON(http.StatusOK, dto.GameList{Games: gc.games.ListGames()})
}

func (gc *GameController) GetGame(c *gin.Context) {
	summary, err := gc.games.GetGame(c.Param("gameID"))
	if err != nil {
		gc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (gc *GameController) Journal(c *gin.Context) {
	gameID := c.Param("gameID")
	entries, err := gc.games.Journal(c.Request.Context(), gameID)
	if err != nil {
		gc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.JournalResponse{GameID: gameID, Entries: entries})
}

func (gc *GameController) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	gc.logger.Error("❌ request failed", zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
