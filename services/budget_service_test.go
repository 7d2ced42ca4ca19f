package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBudget(t *testing.T) {
	r := ClassifyBudget(1000, 1200)
	assert.Equal(t, BudgetOver, r.Status)
	assert.InDelta(t, 120, r.Percentage, 0.001)
	assert.InDelta(t, -200, r.Remaining, 0.001)

	r = ClassifyBudget(1000, 850)
	assert.Equal(t, BudgetWarning, r.Status)
	assert.InDelta(t, 85, r.Percentage, 0.001)

	r = ClassifyBudget(1000, 500)
	assert.Equal(t, BudgetOK, r.Status)
	assert.InDelta(t, 500, r.Remaining, 0.001)
}

func TestClassifyBudgetBoundaries(t *testing.T) {
	// warning starts exactly at the threshold
	assert.Equal(t, BudgetOK, ClassifyBudget(1000, 799.99).Status)
	assert.Equal(t, BudgetWarning, ClassifyBudget(1000, 800).Status)

	// spent == limit is still a warning, not over
	assert.Equal(t, BudgetWarning, ClassifyBudget(1000, 1000).Status)
	assert.Equal(t, BudgetOver, ClassifyBudget(1000, 1000.01).Status)
}

func TestClassifyBudgetNoLimit(t *testing.T) {
	// zero limit means "no limit set" and must not divide by zero
	r := ClassifyBudget(0, 0)
	assert.Equal(t, BudgetOK, r.Status)
	assert.Zero(t, r.Percentage)

	r = ClassifyBudget(0, 350)
	assert.Equal(t, BudgetOK, r.Status)
	assert.Zero(t, r.Percentage)

	r = ClassifyBudget(-10, 50)
	assert.Equal(t, BudgetOK, r.Status)
}
