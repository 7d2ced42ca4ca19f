package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Jared-RS3/food-app-sub002/models"
	"gorm.io/gorm"
)

var (
	ErrAlreadyCheckedIn = errors.New("already checked in here today")
	ErrAlreadyReviewed  = errors.New("restaurant already reviewed")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

type CheckInService struct {
	db   *gorm.DB
	game *GamificationService
	feed *FeedService
}

func NewCheckInService(db *gorm.DB, game *GamificationService, feed *FeedService) *CheckInService {
	return &CheckInService{db: db, game: game, feed: feed}
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// NextStreak applies the consecutive-day rule: same day keeps the streak,
// the day after extends it, anything longer resets to 1.
func NextStreak(current int, lastCheckIn, now time.Time) int {
	if current <= 0 || lastCheckIn.IsZero() {
		return 1
	}
	last := dayStartLocal(lastCheckIn)
	today := dayStartLocal(now)
	switch today.Sub(last) {
	case 0:
		return current
	case 24 * time.Hour:
		return current + 1
	default:
		return 1
	}
}

// CheckIn records a visit: one per restaurant per day. It bumps the streak,
// clears the must-try flag, awards XP and writes a feed entry. Streak and
// XP run after the check-in write; their failures are logged by the callee
// and don't undo the visit.
func (s *CheckInService) CheckIn(userID, restaurantID uint, note string) (*models.CheckIn, error) {
	var rest models.Restaurant
	if err := s.db.First(&rest, restaurantID).Error; err != nil {
		return nil, errors.New("restaurant not found")
	}

	now := time.Now()
	start := dayStartLocal(now)

	var existing models.CheckIn
	err := s.db.Where("user_id = ? AND restaurant_id = ? AND checked_in_at >= ?", userID, restaurantID, start).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyCheckedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ci := models.CheckIn{UserID: userID, RestaurantID: restaurantID, CheckedInAt: now, Note: note}
	if err := s.db.Create(&ci).Error; err != nil {
		return nil, err
	}

	// streak update rides on the user row
	var user models.User
	if err := s.db.First(&user, userID).Error; err == nil {
		user.Streak = NextStreak(user.Streak, user.LastCheckIn, now)
		user.LastCheckIn = now
		_ = s.db.Save(&user).Error
	}

	// a qualifying visit clears must-try
	_ = s.db.Model(&models.Favorite{}).
		Where("user_id = ? AND restaurant_id = ? AND must_try = ?", userID, restaurantID, true).
		Update("must_try", false).Error

	if s.game != nil {
		_, _ = s.game.AwardPoints(userID, "checkin")
	}
	if s.feed != nil {
		s.feed.Record(models.FeedActivity{
			UserID:       userID,
			Type:         "checkin",
			RestaurantID: restaurantID,
			Message:      fmt.Sprintf("checked in at %s", rest.Name),
			OccurredAt:   now,
		})
	}

	return &ci, nil
}

// Review stores a rating once per (user, restaurant) and awards XP.
func (s *CheckInService) Review(userID, restaurantID uint, rating int, text string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	var rest models.Restaurant
	if err := s.db.First(&rest, restaurantID).Error; err != nil {
		return nil, errors.New("restaurant not found")
	}

	var existing models.Review
	if err := s.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&existing).Error; err == nil {
		return nil, ErrAlreadyReviewed
	}

	rev := models.Review{UserID: userID, RestaurantID: restaurantID, Rating: rating, Text: text}
	if err := s.db.Create(&rev).Error; err != nil {
		return nil, err
	}

	if s.game != nil {
		_, _ = s.game.AwardPoints(userID, "review")
	}
	if s.feed != nil {
		s.feed.Record(models.FeedActivity{
			UserID:       userID,
			Type:         "review",
			RestaurantID: restaurantID,
			Message:      fmt.Sprintf("rated %s %d/5", rest.Name, rating),
			OccurredAt:   time.Now(),
		})
	}

	return &rev, nil
}
