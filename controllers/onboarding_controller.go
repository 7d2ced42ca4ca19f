package controllers

import (
	"net/http"

	"github.com/Jared-RS3/food-app-sub002/services"

	"github.com/gin-gonic/gin"
)

type OnboardingController struct {
	Onboarding *services.OnboardingService
	Geocode    *services.GeocodeService
}

func NewOnboardingController(ob *services.OnboardingService, geo *services.GeocodeService) *OnboardingController {
	return &OnboardingController{Onboarding: ob, Geocode: geo}
}

type advanceReq struct {
	State  services.OnboardingState `json:"state"`
	Answer services.StepAnswer      `json:"answer" binding:"required"`
}

// Advance merges one screen's answer and hands back the forwarded state with
// the next step. Nothing is persisted here.
func (oc *OnboardingController) Advance(c *gin.Context) {
	var req advanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the location screen sends raw coordinates; resolve city/country here
	if req.Answer.Step == services.StepLocation && req.Answer.City == "" {
		if city, country, err := oc.Geocode.Reverse(req.Answer.Latitude, req.Answer.Longitude); err == nil {
			req.Answer.City = city
			req.Answer.Country = country
		}
	}

	state, next, err := services.Advance(req.State, req.Answer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state, "next_step": next})
}

type completeReq struct {
	State services.OnboardingState `json:"state"`
}

// Complete performs the one aggregate preferences write. The response is
// always 200: a failed write is logged server-side and the client proceeds.
func (oc *OnboardingController) Complete(c *gin.Context) {
	uid := c.GetUint("userID")

	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := oc.Onboarding.Complete(uid, req.State)
	c.JSON(http.StatusOK, res)
}

func (oc *OnboardingController) Skip(c *gin.Context) {
	uid := c.GetUint("userID")
	route := oc.Onboarding.Skip(uid)
	c.JSON(http.StatusOK, gin.H{"route": route})
}

// Route is the launch gate: the app calls it on every start to decide where
// to send the user.
func (oc *OnboardingController) Route(c *gin.Context) {
	uid := c.GetUint("userID")
	c.JSON(http.StatusOK, gin.H{"route": oc.Onboarding.RouteForUser(uid)})
}

func (oc *OnboardingController) CompleteFeatureTour(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := oc.Onboarding.CompleteFeatureTour(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": services.RouteMain})
}
