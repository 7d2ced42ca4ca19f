package controllers

import (
	"net/http"
	"strconv"

	"github.com/Jared-RS3/food-app-sub002/services"

	"github.com/gin-gonic/gin"
)

type FeedController struct {
	Feed *services.FeedService
}

func NewFeedController(fs *services.FeedService) *FeedController {
	return &FeedController{Feed: fs}
}

func (fc *FeedController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	activities, err := fc.Feed.List(uid, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities, "page": page})
}
