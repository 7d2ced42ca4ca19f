package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Jared-RS3/food-app-sub002/services"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	Game        *services.GamificationService
	Leaderboard *services.LeaderboardService
}

func NewGamificationController(g *services.GamificationService, lb *services.LeaderboardService) *GamificationController {
	return &GamificationController{Game: g, Leaderboard: lb}
}

func (gc *GamificationController) Summary(c *gin.Context) {
	uid := c.GetUint("userID")
	s, err := gc.Game.Summary(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s)
}

type awardReq struct {
	Action string `json:"action" binding:"required"`
}

func (gc *GamificationController) Award(c *gin.Context) {
	uid := c.GetUint("userID")

	var req awardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := gc.Game.AwardPoints(uid, req.Action)
	if err != nil {
		if errors.Is(err, services.ErrUnknownAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (gc *GamificationController) TopUsers(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	entries, err := gc.Leaderboard.Top(c.Request.Context(), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (gc *GamificationController) MyRank(c *gin.Context) {
	uid := c.GetUint("userID")
	rank, err := gc.Leaderboard.RankFor(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rank)
}
