package controllers

import (
	"net/http"

	"github.com/Jared-RS3/food-app-sub002/config"
	"github.com/Jared-RS3/food-app-sub002/models"
	"github.com/Jared-RS3/food-app-sub002/services"
	"github.com/gin-gonic/gin"
)

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// POST /user/notifications/toggle
func ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	// update all devices for this user
	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}

// GET /user/notifications
func ListNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	out, err := services.ListNotifications(config.DB, uid, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": out})
}

// POST /user/notifications/read
func MarkNotificationsRead(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.MarkNotificationsRead(config.DB, uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
