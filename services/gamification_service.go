package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Jared-RS3/food-app-sub002/logger"
	"github.com/Jared-RS3/food-app-sub002/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LevelUpPoints is the XP span of one level on the canonical linear curve.
const LevelUpPoints = 100

type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
	TierDiamond  Tier = "Diamond"
)

// Ordered ascending; highest threshold at or below totalXP wins.
var tierThresholds = []struct {
	Tier  Tier
	MinXP int
}{
	{TierBronze, 0},
	{TierSilver, 500},
	{TierGold, 1500},
	{TierPlatinum, 3000},
	{TierDiamond, 6000},
}

// XP awarded per user action.
var xpForAction = map[string]int{
	"add_restaurant": 10,
	"checkin":        25,
	"review":         15,
	"photo":          10,
	"collection_add": 5,
}

var ErrUnknownAction = errors.New("unknown XP action")

// LevelForXP maps total XP onto the canonical linear curve. Level 1 starts
// at 0 XP.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/LevelUpPoints + 1
}

// TierForXP does an ordered threshold lookup over total XP.
func TierForXP(totalXP int) Tier {
	tier := TierBronze
	for _, t := range tierThresholds {
		if totalXP >= t.MinXP {
			tier = t.Tier
		}
	}
	return tier
}

// ProgressWithinLevel is the XP earned inside the current level, always in
// [0, LevelUpPoints).
func ProgressWithinLevel(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP - (LevelForXP(totalXP)-1)*LevelUpPoints
}

// XPForLevelQuadratic is the legacy display curve (level² × 100) still used
// by the old progress-bar widget. It disagrees with the linear curve above;
// the linear one is canonical and this never feeds awards.
func XPForLevelQuadratic(level int) int {
	if level < 1 {
		level = 1
	}
	return level * level * 100
}

// NextTierThreshold returns the next tier up and the XP needed to reach it.
// ok is false at Diamond.
func NextTierThreshold(totalXP int) (next Tier, minXP int, ok bool) {
	for _, t := range tierThresholds {
		if totalXP < t.MinXP {
			return t.Tier, t.MinXP, true
		}
	}
	return "", 0, false
}

// ProfileStore is the persistence the progression model needs. Backed by
// gorm in production, by an in-memory fake in tests.
type ProfileStore interface {
	GetUser(id uint) (*models.User, error)
	SaveUser(u *models.User) error
	RecordActivity(a *models.FeedActivity) error
}

type ProfileSummary struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	TotalXP      int    `json:"total_xp"`
	Level        int    `json:"level"`
	Points       int    `json:"points"` // progress within current level
	Tier         Tier   `json:"tier"`
	Streak       int    `json:"streak"`
	NextTier     Tier   `json:"next_tier,omitempty"`
	XPToNextTier int    `json:"xp_to_next_tier,omitempty"`
}

type GamificationService struct {
	store ProfileStore
}

func NewGamificationService(store ProfileStore) *GamificationService {
	return &GamificationService{store: store}
}

func summarize(u *models.User) *ProfileSummary {
	s := &ProfileSummary{
		UserID:   u.ID,
		Username: u.Username,
		TotalXP:  u.TotalXP,
		Level:    LevelForXP(u.TotalXP),
		Points:   ProgressWithinLevel(u.TotalXP),
		Tier:     TierForXP(u.TotalXP),
		Streak:   u.Streak,
	}
	if next, min, ok := NextTierThreshold(u.TotalXP); ok {
		s.NextTier = next
		s.XPToNextTier = min - u.TotalXP
	}
	return s
}

// Summary recomputes level/tier/progress from the stored XP total.
func (g *GamificationService) Summary(userID uint) (*ProfileSummary, error) {
	u, err := g.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	return summarize(u), nil
}

// AwardPoints applies the XP for one action as a read-modify-write. There is
// no version guard: two rapid duplicate awards can collapse into one
// (last write wins). Persistence errors propagate; the caller surfaces them
// and XP stays unchanged from its point of view.
func (g *GamificationService) AwardPoints(userID uint, action string) (*ProfileSummary, error) {
	delta, ok := xpForAction[action]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	u, err := g.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	prevLevel := LevelForXP(u.TotalXP)
	prevTier := TierForXP(u.TotalXP)

	u.TotalXP += delta
	if err := g.store.SaveUser(u); err != nil {
		return nil, err
	}

	newLevel := LevelForXP(u.TotalXP)
	newTier := TierForXP(u.TotalXP)

	// everything past the write is best-effort
	if newLevel > prevLevel {
		EmitNotification(u.ID, "level_up", fmt.Sprintf("You reached level %d!", newLevel))
		act := &models.FeedActivity{
			UserID:     u.ID,
			Type:       "level_up",
			Message:    fmt.Sprintf("%s reached level %d", u.Username, newLevel),
			OccurredAt: time.Now(),
		}
		if err := g.store.RecordActivity(act); err != nil {
			logger.Warn("level-up activity not recorded", zap.Uint("user", u.ID), zap.Error(err))
		}
	}
	if newTier != prevTier {
		EmitNotification(u.ID, "tier_up", fmt.Sprintf("Welcome to %s tier!", newTier))
	}

	return summarize(u), nil
}

// gormProfileStore backs ProfileStore with the shared database.
type gormProfileStore struct {
	db *gorm.DB
}

func NewGormProfileStore(db *gorm.DB) ProfileStore {
	return &gormProfileStore{db: db}
}

func (s *gormProfileStore) GetUser(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.Where("id = ? AND disabled = ?", id, false).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormProfileStore) SaveUser(u *models.User) error {
	return s.db.Save(u).Error
}

func (s *gormProfileStore) RecordActivity(a *models.FeedActivity) error {
	return s.db.Create(a).Error
}
