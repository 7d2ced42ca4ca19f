package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Jared-RS3/food-app-sub002/services"

	"github.com/gin-gonic/gin"
)

type CollectionController struct {
	Collections *services.CollectionService
}

func NewCollectionController(cs *services.CollectionService) *CollectionController {
	return &CollectionController{Collections: cs}
}

type createCollectionReq struct {
	Name  string `json:"name" binding:"required"`
	Emoji string `json:"emoji"`
}

func (cc *CollectionController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var req createCollectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coll, err := cc.Collections.Create(uid, req.Name, req.Emoji)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, coll)
}

func (cc *CollectionController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	out, err := cc.Collections.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": out})
}

type collectionItemReq struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

func (cc *CollectionController) AddItem(c *gin.Context) {
	uid := c.GetUint("userID")
	collID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collection id"})
		return
	}

	var req collectionItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.Collections.AddItem(uid, uint(collID), req.RestaurantID); err != nil {
		if errors.Is(err, services.ErrCollectionFull) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (cc *CollectionController) RemoveItem(c *gin.Context) {
	uid := c.GetUint("userID")
	collID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collection id"})
		return
	}

	var req collectionItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.Collections.RemoveItem(uid, uint(collID), req.RestaurantID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Shared is public: the share token is the capability.
func (cc *CollectionController) Shared(c *gin.Context) {
	coll, restaurants, err := cc.Collections.ByShareToken(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": coll, "restaurants": restaurants})
}
