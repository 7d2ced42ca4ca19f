package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jared-RS3/food-app-sub002/models"
	"github.com/Jared-RS3/food-app-sub002/utils"
	"gorm.io/gorm"
)

type RestaurantService struct {
	db    *gorm.DB
	cache *CacheService
	game  *GamificationService
}

func NewRestaurantService(db *gorm.DB, cache *CacheService, game *GamificationService) *RestaurantService {
	return &RestaurantService{db: db, cache: cache, game: game}
}

type RestaurantView struct {
	models.Restaurant
	Meta utils.CategoryMeta `json:"meta"`
}

type DiscoverFilter struct {
	Category string
	City     string
	Mood     string
}

const discoverCacheTTL = 60 * time.Second

func discoverCacheKey(f DiscoverFilter) string {
	return fmt.Sprintf("discover:%s:%s:%s", f.Category, f.City, f.Mood)
}

// moodCategories maps a food mood onto the categories the discovery list
// favors for it.
var moodCategories = map[string][]string{
	"comfort":   {"burgers", "pizza", "italian"},
	"spicy":     {"korean", "indian", "mexican"},
	"aesthetic": {"cafe", "dessert", "japanese"},
	"quick":     {"burgers", "pizza", "cafe"},
	"healthy":   {"vegan", "seafood", "breakfast"},
	"indulgent": {"dessert", "burgers", "italian"},
}

// Discover lists restaurants for the filter, served from Redis when warm.
func (r *RestaurantService) Discover(ctx context.Context, f DiscoverFilter) ([]RestaurantView, error) {
	key := discoverCacheKey(f)
	var cached []RestaurantView
	if r.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	q := r.db.Model(&models.Restaurant{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	} else if f.Mood != "" {
		if cats, ok := moodCategories[f.Mood]; ok {
			q = q.Where("category IN ?", cats)
		}
	}
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}

	var rows []models.Restaurant
	if err := q.Order("created_at desc").Limit(100).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]RestaurantView, 0, len(rows))
	for _, row := range rows {
		out = append(out, RestaurantView{Restaurant: row, Meta: utils.MetaForCategory(row.Category)})
	}

	r.cache.SetJSON(ctx, key, out, discoverCacheTTL)
	return out, nil
}

type AddRestaurantInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	PriceLevel  int     `json:"price_level"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PhotoBase64 string  `json:"photo"` // optional data-URI image
}

// Add creates a user-submitted restaurant and awards XP for the
// contribution. The XP award failing does not undo the restaurant.
func (r *RestaurantService) Add(ctx context.Context, userID uint, in AddRestaurantInput) (*models.Restaurant, error) {
	rest := models.Restaurant{
		Name:       in.Name,
		Category:   in.Category,
		PriceLevel: in.PriceLevel,
		City:       in.City,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
		AddedByID:  userID,
	}

	if in.PhotoBase64 != "" {
		url, err := utils.UploadBase64Image(in.PhotoBase64, "restaurant-photos", in.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to upload photo: %w", err)
		}
		rest.Photo = url
	}

	if err := r.db.Create(&rest).Error; err != nil {
		return nil, err
	}

	if r.game != nil {
		_, _ = r.game.AwardPoints(userID, "add_restaurant")
	}

	// new entries should show up in discovery right away
	r.cache.Invalidate(ctx,
		discoverCacheKey(DiscoverFilter{}),
		discoverCacheKey(DiscoverFilter{Category: rest.Category}),
		discoverCacheKey(DiscoverFilter{City: rest.City}),
	)

	return &rest, nil
}

// ToggleFavorite flips the favorite row for (user, restaurant) and reports
// the new state.
func (r *RestaurantService) ToggleFavorite(userID, restaurantID uint) (bool, error) {
	var fav models.Favorite
	err := r.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fav = models.Favorite{UserID: userID, RestaurantID: restaurantID}
		return true, r.db.Create(&fav).Error
	}
	if err != nil {
		return false, err
	}
	return false, r.db.Unscoped().Delete(&fav).Error
}

// SetMustTry flags a favorite as must-try, creating the favorite if needed.
func (r *RestaurantService) SetMustTry(userID, restaurantID uint, mustTry bool) error {
	var fav models.Favorite
	err := r.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fav = models.Favorite{UserID: userID, RestaurantID: restaurantID, MustTry: mustTry}
		return r.db.Create(&fav).Error
	}
	if err != nil {
		return err
	}
	fav.MustTry = mustTry
	return r.db.Save(&fav).Error
}

// Favorites lists a user's favorites with restaurant details, must-try first.
func (r *RestaurantService) Favorites(userID uint) ([]map[string]any, error) {
	var favs []models.Favorite
	if err := r.db.Where("user_id = ?", userID).Order("must_try desc, created_at desc").Find(&favs).Error; err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(favs))
	for _, f := range favs {
		var rest models.Restaurant
		if err := r.db.First(&rest, f.RestaurantID).Error; err != nil {
			continue
		}
		out = append(out, map[string]any{
			"restaurant": rest,
			"meta":       utils.MetaForCategory(rest.Category),
			"must_try":   f.MustTry,
		})
	}
	return out, nil
}
