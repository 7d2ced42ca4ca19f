package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Jared-RS3/food-app-sub002/models"
	"gorm.io/gorm"
)

type BudgetStatus string

const (
	BudgetOK      BudgetStatus = "ok"
	BudgetWarning BudgetStatus = "warning"
	BudgetOver    BudgetStatus = "over"
)

// WarningPercent is the canonical warning boundary; status is warning in
// [WarningPercent, 100) and over above the limit.
const WarningPercent = 80.0

type BudgetReport struct {
	Category   string       `json:"category"`
	Limit      float64      `json:"limit"`
	Spent      float64      `json:"spent"`
	Percentage float64      `json:"percentage"`
	Remaining  float64      `json:"remaining"`
	Status     BudgetStatus `json:"status"`
}

// ClassifyBudget derives the display metrics for one category. A zero or
// negative limit means "no limit set": ok, percentage 0.
func ClassifyBudget(limit, spent float64) BudgetReport {
	r := BudgetReport{Limit: limit, Spent: spent}
	if limit <= 0 {
		r.Status = BudgetOK
		r.Remaining = -spent
		return r
	}
	r.Percentage = spent / limit * 100
	r.Remaining = limit - spent
	switch {
	case spent > limit:
		r.Status = BudgetOver
	case r.Percentage >= WarningPercent:
		r.Status = BudgetWarning
	default:
		r.Status = BudgetOK
	}
	return r
}

type BudgetService struct {
	db *gorm.DB
}

func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{db: db}
}

// UpsertLimit sets the monthly ceiling for one category, one row per
// (user, category).
func (b *BudgetService) UpsertLimit(userID uint, category string, limit float64) error {
	if category == "" {
		return errors.New("category required")
	}
	if limit < 0 {
		return errors.New("limit must not be negative")
	}

	var row models.BudgetLimit
	err := b.db.Where("user_id = ? AND category = ?", userID, category).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.BudgetLimit{UserID: userID, Category: category, Limit: limit}
		return b.db.Create(&row).Error
	}
	if err != nil {
		return err
	}
	row.Limit = limit
	return b.db.Save(&row).Error
}

func monthWindow(at time.Time) (time.Time, time.Time) {
	start := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
	return start, start.AddDate(0, 1, 0)
}

func (b *BudgetService) monthlySpend(userID uint, category string, at time.Time) (float64, error) {
	start, end := monthWindow(at)
	var total float64
	err := b.db.Model(&models.Expense{}).
		Where("user_id = ? AND category = ? AND spent_at >= ? AND spent_at < ?", userID, category, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// AddExpense records a spend entry and emits a notification the moment the
// category crosses into warning or over for the month. The notification is
// best-effort; the expense write is not.
func (b *BudgetService) AddExpense(userID uint, category string, amount float64, note string) (*BudgetReport, error) {
	if category == "" {
		return nil, errors.New("category required")
	}
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	now := time.Now()

	var limitRow models.BudgetLimit
	limit := 0.0
	if err := b.db.Where("user_id = ? AND category = ?", userID, category).First(&limitRow).Error; err == nil {
		limit = limitRow.Limit
	}

	before, err := b.monthlySpend(userID, category, now)
	if err != nil {
		return nil, err
	}

	exp := models.Expense{UserID: userID, Category: category, Amount: amount, SpentAt: now, Note: note}
	if err := b.db.Create(&exp).Error; err != nil {
		return nil, err
	}

	prev := ClassifyBudget(limit, before)
	cur := ClassifyBudget(limit, before+amount)

	if cur.Status != prev.Status {
		switch cur.Status {
		case BudgetWarning:
			EmitNotification(userID, "budget_warning",
				fmt.Sprintf("You've used %.0f%% of your %s budget this month.", cur.Percentage, category))
		case BudgetOver:
			EmitNotification(userID, "budget_over",
				fmt.Sprintf("You're over your %s budget by %.2f.", category, -cur.Remaining))
		}
	}

	cur.Category = category
	return &cur, nil
}

// MonthlySummary classifies every category the user has a limit or spend for
// in the current month.
func (b *BudgetService) MonthlySummary(userID uint) ([]BudgetReport, error) {
	start, end := monthWindow(time.Now())

	var limits []models.BudgetLimit
	if err := b.db.Where("user_id = ?", userID).Find(&limits).Error; err != nil {
		return nil, err
	}

	type catSum struct {
		Category string
		Total    float64
	}
	var sums []catSum
	err := b.db.Model(&models.Expense{}).
		Where("user_id = ? AND spent_at >= ? AND spent_at < ?", userID, start, end).
		Select("category, COALESCE(SUM(amount), 0) as total").
		Group("category").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}

	spentByCat := make(map[string]float64, len(sums))
	for _, s := range sums {
		spentByCat[s.Category] = s.Total
	}

	seen := make(map[string]bool)
	reports := make([]BudgetReport, 0, len(limits))
	for _, l := range limits {
		r := ClassifyBudget(l.Limit, spentByCat[l.Category])
		r.Category = l.Category
		reports = append(reports, r)
		seen[l.Category] = true
	}
	// spend in categories with no limit set still shows up, as "no limit"
	for _, s := range sums {
		if seen[s.Category] {
			continue
		}
		r := ClassifyBudget(0, s.Total)
		r.Category = s.Category
		reports = append(reports, r)
	}
	return reports, nil
}
