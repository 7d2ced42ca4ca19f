package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Jared-RS3/food-app-sub002/models"
	"gorm.io/gorm"
)

type LeaderboardEntry struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	Rank     int    `json:"rank"`
	TotalXP  int    `json:"total_xp"`
	Level    int    `json:"level"`
	Tier     Tier   `json:"tier"`
}

type UserRank struct {
	UserID     uint    `json:"user_id"`
	Rank       int     `json:"rank"`
	TotalXP    int     `json:"total_xp"`
	TotalUsers int     `json:"total_users"`
	Percentile float64 `json:"percentile"` // top X%
}

const leaderboardCacheTTL = 120 * time.Second

type LeaderboardService struct {
	db    *gorm.DB
	cache *CacheService
}

func NewLeaderboardService(db *gorm.DB, cache *CacheService) *LeaderboardService {
	return &LeaderboardService{db: db, cache: cache}
}

// Top returns the N highest-XP users, served from Redis when warm.
func (l *LeaderboardService) Top(ctx context.Context, n int) ([]LeaderboardEntry, error) {
	if n < 1 || n > 100 {
		n = 25
	}
	key := fmt.Sprintf("leaderboard:top:%d", n)

	var cached []LeaderboardEntry
	if l.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	var users []models.User
	err := l.db.Where("disabled = ?", false).
		Order("total_xp desc, id asc").
		Limit(n).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	out := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		out = append(out, LeaderboardEntry{
			UserID:   u.ID,
			Username: u.Username,
			Avatar:   u.Avatar,
			Rank:     i + 1,
			TotalXP:  u.TotalXP,
			Level:    LevelForXP(u.TotalXP),
			Tier:     TierForXP(u.TotalXP),
		})
	}

	l.cache.SetJSON(ctx, key, out, leaderboardCacheTTL)
	return out, nil
}

// RankFor computes one user's rank and percentile.
func (l *LeaderboardService) RankFor(userID uint) (*UserRank, error) {
	var u models.User
	if err := l.db.First(&u, userID).Error; err != nil {
		return nil, err
	}

	var ahead int64
	if err := l.db.Model(&models.User{}).
		Where("disabled = ? AND total_xp > ?", false, u.TotalXP).
		Count(&ahead).Error; err != nil {
		return nil, err
	}

	var total int64
	if err := l.db.Model(&models.User{}).Where("disabled = ?", false).Count(&total).Error; err != nil {
		return nil, err
	}
	if total == 0 {
		total = 1
	}

	rank := int(ahead) + 1
	return &UserRank{
		UserID:     userID,
		Rank:       rank,
		TotalXP:    u.TotalXP,
		TotalUsers: int(total),
		Percentile: float64(rank) / float64(total) * 100,
	}, nil
}
