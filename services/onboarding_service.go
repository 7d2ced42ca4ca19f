package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Jared-RS3/food-app-sub002/logger"
	"github.com/Jared-RS3/food-app-sub002/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Onboarding walks a fixed linear sequence of selection screens. Answers are
// carried forward client-side and written exactly once at the celebration
// step.
type OnboardingStep string

const (
	StepWelcome     OnboardingStep = "welcome"
	StepEatingStyle OnboardingStep = "eating_style"
	StepFoodMood    OnboardingStep = "food_mood"
	StepCategories  OnboardingStep = "categories"
	StepLocation    OnboardingStep = "location"
	StepCelebration OnboardingStep = "celebration"
	StepDone        OnboardingStep = "done"
)

var stepOrder = []OnboardingStep{
	StepWelcome, StepEatingStyle, StepFoodMood,
	StepCategories, StepLocation, StepCelebration, StepDone,
}

// MaxFavoriteCategories caps the categories screen. The app copy asks for at
// least 3, but no minimum was ever enforced and we keep it that way.
const MaxFavoriteCategories = 5

// CelebrationDelayMS is the pacing pause the client holds on the celebration
// screen before moving on. Returned to the client, never awaited server-side.
const CelebrationDelayMS = 2500

var foodMoods = map[string]bool{
	"comfort": true, "spicy": true, "aesthetic": true,
	"quick": true, "healthy": true, "indulgent": true,
}

// NextStep returns the step after cur. Done is terminal.
func NextStep(cur OnboardingStep) OnboardingStep {
	for i, s := range stepOrder {
		if s == cur && i+1 < len(stepOrder) {
			return stepOrder[i+1]
		}
	}
	return StepDone
}

// OnboardingState is the answers accumulated so far, forwarded between
// screens.
type OnboardingState struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	FoodMood            string   `json:"food_mood"`
	FavoriteCategories  []string `json:"favorite_categories"`
	Latitude            float64  `json:"latitude"`
	Longitude           float64  `json:"longitude"`
	City                string   `json:"city"`
	Country             string   `json:"country"`
}

// StepAnswer is the selection made on one screen.
type StepAnswer struct {
	Step       OnboardingStep `json:"step"`
	Selections []string       `json:"selections,omitempty"`
	Mood       string         `json:"mood,omitempty"`
	Latitude   float64        `json:"latitude,omitempty"`
	Longitude  float64        `json:"longitude,omitempty"`
	City       string         `json:"city,omitempty"`
	Country    string         `json:"country,omitempty"`
}

var (
	ErrEmptySelection    = errors.New("at least one selection required")
	ErrInvalidFoodMood   = errors.New("unknown food mood")
	ErrTooManyCategories = fmt.Errorf("at most %d favorite categories", MaxFavoriteCategories)
)

// Advance merges one screen's answer into the forwarded state. Pure; the
// caller carries the returned state to the next screen.
func Advance(state OnboardingState, answer StepAnswer) (OnboardingState, OnboardingStep, error) {
	switch answer.Step {
	case StepWelcome:
		// nothing collected here
	case StepEatingStyle:
		if len(answer.Selections) == 0 {
			return state, answer.Step, ErrEmptySelection
		}
		state.DietaryRestrictions = dedupe(answer.Selections)
	case StepFoodMood:
		if answer.Mood == "" {
			return state, answer.Step, ErrEmptySelection
		}
		if !foodMoods[answer.Mood] {
			return state, answer.Step, ErrInvalidFoodMood
		}
		state.FoodMood = answer.Mood
	case StepCategories:
		if len(answer.Selections) > MaxFavoriteCategories {
			return state, answer.Step, ErrTooManyCategories
		}
		state.FavoriteCategories = answer.Selections // order matters, no minimum
	case StepLocation:
		state.Latitude = answer.Latitude
		state.Longitude = answer.Longitude
		state.City = answer.City
		state.Country = answer.Country
	default:
		return state, answer.Step, fmt.Errorf("unexpected step %q", answer.Step)
	}
	return state, NextStep(answer.Step), nil
}

// Route is where the launch gate sends the user.
type Route string

const (
	RouteOnboarding  Route = "onboarding"
	RouteFeatureTour Route = "feature_tour"
	RouteMain        Route = "main"
)

// DecideRoute picks the launch destination from the two persisted flags.
// Any flag-read error fails open to the main app rather than re-prompting.
func DecideRoute(onboardingComplete, featureTourComplete bool, readErr error) Route {
	if readErr != nil {
		return RouteMain
	}
	if !onboardingComplete {
		return RouteOnboarding
	}
	if !featureTourComplete {
		return RouteFeatureTour
	}
	return RouteMain
}

// PreferencesStore is what Complete and the gate need from persistence.
type PreferencesStore interface {
	GetUser(id uint) (*models.User, error)
	GetPreferences(userID uint) (*models.OnboardingPreferences, error)
	SavePreferences(p *models.OnboardingPreferences) error
	SaveUser(u *models.User) error
}

type OnboardingService struct {
	store PreferencesStore
}

func NewOnboardingService(store PreferencesStore) *OnboardingService {
	return &OnboardingService{store: store}
}

type CompleteResult struct {
	Persisted     bool  `json:"persisted"`
	CelebrationMS int   `json:"celebration_ms"`
	Route         Route `json:"route"`
}

// Complete writes the full preferences record in one call and flips the
// onboarding flag. Persistence failure is logged and the user is moved
// forward regardless; this "succeed the UX" behavior is deliberate.
// Calling it twice with the same state stores the same record.
func (s *OnboardingService) Complete(userID uint, state OnboardingState) CompleteResult {
	res := CompleteResult{Persisted: true, CelebrationMS: CelebrationDelayMS, Route: RouteFeatureTour}

	prefs := &models.OnboardingPreferences{
		UserID:              userID,
		DietaryRestrictions: strings.Join(state.DietaryRestrictions, ","),
		FoodMood:            state.FoodMood,
		FavoriteCategories:  strings.Join(capCategories(state.FavoriteCategories), ","),
		Latitude:            state.Latitude,
		Longitude:           state.Longitude,
		City:                state.City,
		Country:             state.Country,
	}

	existing, err := s.store.GetPreferences(userID)
	if err == nil && existing != nil {
		// keep the original completion timestamp; everything else is replaced
		prefs.ID = existing.ID
		prefs.CreatedAt = existing.CreatedAt
		prefs.CompletedAt = existing.CompletedAt
	} else {
		prefs.CompletedAt = time.Now()
	}

	if err := s.store.SavePreferences(prefs); err != nil {
		logger.Error("onboarding preferences write failed", zap.Uint("user", userID), zap.Error(err))
		res.Persisted = false
	}

	if u, err := s.store.GetUser(userID); err == nil {
		if !u.OnboardingComplete {
			u.OnboardingComplete = true
			if err := s.store.SaveUser(u); err != nil {
				logger.Error("onboarding flag write failed", zap.Uint("user", userID), zap.Error(err))
				res.Persisted = false
			}
		}
	} else {
		logger.Error("onboarding user read failed", zap.Uint("user", userID), zap.Error(err))
		res.Persisted = false
	}

	return res
}

// Skip bypasses the remaining steps. Nothing is written; partial answers are
// simply dropped.
func (s *OnboardingService) Skip(userID uint) Route {
	u, err := s.store.GetUser(userID)
	if err != nil {
		return RouteMain
	}
	if !u.OnboardingComplete {
		u.OnboardingComplete = true
		if err := s.store.SaveUser(u); err != nil {
			logger.Warn("onboarding skip flag write failed", zap.Uint("user", userID), zap.Error(err))
		}
	}
	return RouteMain
}

// RouteForUser runs the launch gate against the stored flags.
func (s *OnboardingService) RouteForUser(userID uint) Route {
	u, err := s.store.GetUser(userID)
	if err != nil {
		return DecideRoute(false, false, err)
	}
	return DecideRoute(u.OnboardingComplete, u.FeatureTourComplete, nil)
}

// CompleteFeatureTour flips the second gate flag.
func (s *OnboardingService) CompleteFeatureTour(userID uint) error {
	u, err := s.store.GetUser(userID)
	if err != nil {
		return err
	}
	u.FeatureTourComplete = true
	return s.store.SaveUser(u)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func capCategories(in []string) []string {
	if len(in) > MaxFavoriteCategories {
		return in[:MaxFavoriteCategories]
	}
	return in
}

// gormPreferencesStore backs PreferencesStore with the shared database.
type gormPreferencesStore struct {
	db *gorm.DB
}

func NewGormPreferencesStore(db *gorm.DB) PreferencesStore {
	return &gormPreferencesStore{db: db}
}

func (s *gormPreferencesStore) GetUser(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.Where("id = ? AND disabled = ?", id, false).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormPreferencesStore) GetPreferences(userID uint) (*models.OnboardingPreferences, error) {
	var p models.OnboardingPreferences
	if err := s.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *gormPreferencesStore) SavePreferences(p *models.OnboardingPreferences) error {
	return s.db.Save(p).Error
}

func (s *gormPreferencesStore) SaveUser(u *models.User) error {
	return s.db.Save(u).Error
}
