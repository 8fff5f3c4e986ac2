package router

import (
	"github.com/gin-gonic/gin"

	"go-splendor/controller"
)

func InitRouter(r *gin.Engine, games *controller.GameController, identity gin.HandlerFunc) {
	api := r.Group("/api/games")
	{
		api.POST("", identity, games.CreateGame)
		api.GET("", games.ListGames)
		api.GET("/:gameID", games.GetGame)
		api.GET("/:gameID/journal", games.Journal)
	}

	// 游戏接口路由
	play := r.Group("/", identity)
	{
		play.GET("/:gameID", games.Play)
		play.POST("/:gameID", games.Play)
	}
}
