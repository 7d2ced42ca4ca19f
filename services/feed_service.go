package services

import (
	"github.com/Jared-RS3/food-app-sub002/logger"
	"github.com/Jared-RS3/food-app-sub002/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FeedService struct {
	db *gorm.DB
	rt *RealtimeHub
}

func NewFeedService(db *gorm.DB, rt *RealtimeHub) *FeedService {
	return &FeedService{db: db, rt: rt}
}

// Record persists a feed activity and pushes it to the user's open
// connections. Best-effort; feed writes never fail the triggering action.
func (f *FeedService) Record(a models.FeedActivity) {
	if err := f.db.Create(&a).Error; err != nil {
		logger.Warn("feed activity not recorded", zap.Uint("user", a.UserID), zap.Error(err))
		return
	}
	if f.rt != nil {
		f.rt.Broadcast(a.UserID, map[string]any{
			"kind":     "feed.activity",
			"activity": a,
		})
	}
}

// List pages a user's feed, newest first.
func (f *FeedService) List(userID uint, page, pageSize int) ([]models.FeedActivity, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}
	var out []models.FeedActivity
	err := f.db.Where("user_id = ?", userID).
		Order("occurred_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out).Error
	return out, err
}
