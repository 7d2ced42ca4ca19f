package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Jared-RS3/food-app-sub002/services"

	"github.com/gin-gonic/gin"
)

type CheckInController struct {
	CheckIns *services.CheckInService
}

func NewCheckInController(cs *services.CheckInService) *CheckInController {
	return &CheckInController{CheckIns: cs}
}

type checkInReq struct {
	Note string `json:"note"`
}

func (cc *CheckInController) CheckIn(c *gin.Context) {
	uid := c.GetUint("userID")
	restID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var req checkInReq
	_ = c.ShouldBindJSON(&req) // note is optional

	ci, err := cc.CheckIns.CheckIn(uid, uint(restID), req.Note)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyCheckedIn) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ci)
}

type reviewReq struct {
	Rating int    `json:"rating" binding:"required"`
	Text   string `json:"text"`
}

func (cc *CheckInController) Review(c *gin.Context) {
	uid := c.GetUint("userID")
	restID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var req reviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rev, err := cc.CheckIns.Review(uid, uint(restID), req.Rating, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, rev)
}
