package controllers

import (
	"net/http"
	"strconv"

	"github.com/Jared-RS3/food-app-sub002/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Restaurants *services.RestaurantService
}

func NewRestaurantController(rs *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Restaurants: rs}
}

func (rc *RestaurantController) Discover(c *gin.Context) {
	f := services.DiscoverFilter{
		Category: c.Query("category"),
		City:     c.Query("city"),
		Mood:     c.Query("mood"),
	}

	out, err := rc.Restaurants.Discover(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": out})
}

func (rc *RestaurantController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.AddRestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rest, err := rc.Restaurants.Add(c.Request.Context(), uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rest)
}

func (rc *RestaurantController) ToggleFavorite(c *gin.Context) {
	uid := c.GetUint("userID")
	restID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	favorited, err := rc.Restaurants.ToggleFavorite(uid, uint(restID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

type mustTryReq struct {
	MustTry bool `json:"must_try"`
}

func (rc *RestaurantController) SetMustTry(c *gin.Context) {
	uid := c.GetUint("userID")
	restID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var req mustTryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := rc.Restaurants.SetMustTry(uid, uint(restID), req.MustTry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (rc *RestaurantController) Favorites(c *gin.Context) {
	uid := c.GetUint("userID")

	favs, err := rc.Restaurants.Favorites(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}
