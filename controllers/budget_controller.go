package controllers

import (
	"net/http"

	"github.com/Jared-RS3/food-app-sub002/services"

	"github.com/gin-gonic/gin"
)

type BudgetController struct {
	Budget *services.BudgetService
}

func NewBudgetController(b *services.BudgetService) *BudgetController {
	return &BudgetController{Budget: b}
}

type upsertLimitReq struct {
	Category string  `json:"category" binding:"required"`
	Limit    float64 `json:"limit"`
}

func (bc *BudgetController) UpsertLimit(c *gin.Context) {
	uid := c.GetUint("userID")

	var req upsertLimitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := bc.Budget.UpsertLimit(uid, req.Category, req.Limit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type addExpenseReq struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Note     string  `json:"note"`
}

func (bc *BudgetController) AddExpense(c *gin.Context) {
	uid := c.GetUint("userID")

	var req addExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := bc.Budget.AddExpense(uid, req.Category, req.Amount, req.Note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (bc *BudgetController) Summary(c *gin.Context) {
	uid := c.GetUint("userID")

	reports, err := bc.Budget.MonthlySummary(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"budgets": reports})
}
