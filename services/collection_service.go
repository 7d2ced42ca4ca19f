package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Jared-RS3/food-app-sub002/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxCollectionItems caps how many restaurants one collection can hold.
const MaxCollectionItems = 50

var ErrCollectionFull = fmt.Errorf("collection holds at most %d restaurants", MaxCollectionItems)

type CollectionService struct {
	db   *gorm.DB
	game *GamificationService
	feed *FeedService
}

func NewCollectionService(db *gorm.DB, game *GamificationService, feed *FeedService) *CollectionService {
	return &CollectionService{db: db, game: game, feed: feed}
}

func (s *CollectionService) Create(userID uint, name, emoji string) (*models.Collection, error) {
	if name == "" {
		return nil, errors.New("name required")
	}
	coll := models.Collection{
		UserID:     userID,
		Name:       name,
		Emoji:      emoji,
		ShareToken: uuid.NewString(),
	}
	if err := s.db.Create(&coll).Error; err != nil {
		return nil, err
	}
	return &coll, nil
}

func (s *CollectionService) List(userID uint) ([]map[string]any, error) {
	var colls []models.Collection
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&colls).Error; err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(colls))
	for _, c := range colls {
		var count int64
		s.db.Model(&models.CollectionItem{}).Where("collection_id = ?", c.ID).Count(&count)
		out = append(out, map[string]any{
			"collection": c,
			"item_count": count,
		})
	}
	return out, nil
}

// AddItem puts a restaurant into a collection the user owns, awards XP and
// writes a feed entry (both best-effort).
func (s *CollectionService) AddItem(userID, collectionID, restaurantID uint) error {
	var coll models.Collection
	if err := s.db.Where("id = ? AND user_id = ?", collectionID, userID).First(&coll).Error; err != nil {
		return errors.New("collection not found")
	}

	var count int64
	if err := s.db.Model(&models.CollectionItem{}).Where("collection_id = ?", collectionID).Count(&count).Error; err != nil {
		return err
	}
	if count >= MaxCollectionItems {
		return ErrCollectionFull
	}

	var existing models.CollectionItem
	if err := s.db.Where("collection_id = ? AND restaurant_id = ?", collectionID, restaurantID).First(&existing).Error; err == nil {
		return nil // already in the collection
	}

	item := models.CollectionItem{CollectionID: collectionID, RestaurantID: restaurantID}
	if err := s.db.Create(&item).Error; err != nil {
		return err
	}

	if s.game != nil {
		_, _ = s.game.AwardPoints(userID, "collection_add")
	}
	if s.feed != nil {
		var rest models.Restaurant
		if err := s.db.First(&rest, restaurantID).Error; err == nil {
			s.feed.Record(models.FeedActivity{
				UserID:       userID,
				Type:         "collection_add",
				RestaurantID: restaurantID,
				Message:      fmt.Sprintf("added %s to %s", rest.Name, coll.Name),
				OccurredAt:   time.Now(),
			})
		}
	}
	return nil
}

func (s *CollectionService) RemoveItem(userID, collectionID, restaurantID uint) error {
	var coll models.Collection
	if err := s.db.Where("id = ? AND user_id = ?", collectionID, userID).First(&coll).Error; err != nil {
		return errors.New("collection not found")
	}
	return s.db.Unscoped().
		Where("collection_id = ? AND restaurant_id = ?", collectionID, restaurantID).
		Delete(&models.CollectionItem{}).Error
}

// ByShareToken resolves a shared collection with its restaurants. Read-only,
// no auth; the token is the capability.
func (s *CollectionService) ByShareToken(token string) (*models.Collection, []models.Restaurant, error) {
	var coll models.Collection
	if err := s.db.Where("share_token = ?", token).First(&coll).Error; err != nil {
		return nil, nil, errors.New("collection not found")
	}

	var items []models.CollectionItem
	if err := s.db.Where("collection_id = ?", coll.ID).Find(&items).Error; err != nil {
		return nil, nil, err
	}

	restaurants := make([]models.Restaurant, 0, len(items))
	for _, it := range items {
		var rest models.Restaurant
		if err := s.db.First(&rest, it.RestaurantID).Error; err == nil {
			restaurants = append(restaurants, rest)
		}
	}
	return &coll, restaurants, nil
}
