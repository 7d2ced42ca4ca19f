package services

import (
	"errors"
	"testing"

	"github.com/Jared-RS3/food-app-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrefsStore struct {
	user      models.User
	prefs     *models.OnboardingPreferences
	failPrefs bool
	failUser  bool
	saves     int
}

func (f *fakePrefsStore) GetUser(id uint) (*models.User, error) {
	if f.failUser {
		return nil, errors.New("connection refused")
	}
	if id != f.user.ID {
		return nil, errors.New("record not found")
	}
	u := f.user
	return &u, nil
}

func (f *fakePrefsStore) GetPreferences(userID uint) (*models.OnboardingPreferences, error) {
	if f.prefs == nil || f.prefs.UserID != userID {
		return nil, errors.New("record not found")
	}
	p := *f.prefs
	return &p, nil
}

func (f *fakePrefsStore) SavePreferences(p *models.OnboardingPreferences) error {
	if f.failPrefs {
		return errors.New("connection refused")
	}
	f.saves++
	cp := *p
	if cp.ID == 0 {
		cp.ID = 1
	}
	f.prefs = &cp
	return nil
}

func (f *fakePrefsStore) SaveUser(u *models.User) error {
	if f.failUser {
		return errors.New("connection refused")
	}
	f.user = *u
	return nil
}

func TestNextStep(t *testing.T) {
	assert.Equal(t, StepEatingStyle, NextStep(StepWelcome))
	assert.Equal(t, StepFoodMood, NextStep(StepEatingStyle))
	assert.Equal(t, StepCategories, NextStep(StepFoodMood))
	assert.Equal(t, StepLocation, NextStep(StepCategories))
	assert.Equal(t, StepCelebration, NextStep(StepLocation))
	assert.Equal(t, StepDone, NextStep(StepCelebration))
	assert.Equal(t, StepDone, NextStep(StepDone), "done is terminal")
}

func TestAdvanceAccumulatesState(t *testing.T) {
	state := OnboardingState{}

	state, next, err := Advance(state, StepAnswer{Step: StepWelcome})
	require.NoError(t, err)
	assert.Equal(t, StepEatingStyle, next)

	state, next, err = Advance(state, StepAnswer{Step: StepEatingStyle, Selections: []string{"vegan", "halal", "vegan"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"vegan", "halal"}, state.DietaryRestrictions, "duplicates dropped")
	assert.Equal(t, StepFoodMood, next)

	state, next, err = Advance(state, StepAnswer{Step: StepFoodMood, Mood: "spicy"})
	require.NoError(t, err)
	assert.Equal(t, "spicy", state.FoodMood)
	assert.Equal(t, StepCategories, next)

	state, next, err = Advance(state, StepAnswer{Step: StepCategories, Selections: []string{"korean", "mexican"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"korean", "mexican"}, state.FavoriteCategories)
	assert.Equal(t, StepLocation, next)

	state, next, err = Advance(state, StepAnswer{Step: StepLocation, Latitude: -33.92, Longitude: 18.42, City: "Cape Town", Country: "South Africa"})
	require.NoError(t, err)
	assert.Equal(t, "Cape Town", state.City)
	assert.Equal(t, StepCelebration, next)

	// earlier answers survive every merge
	assert.Equal(t, []string{"vegan", "halal"}, state.DietaryRestrictions)
	assert.Equal(t, "spicy", state.FoodMood)
}

func TestAdvanceValidation(t *testing.T) {
	_, _, err := Advance(OnboardingState{}, StepAnswer{Step: StepEatingStyle})
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, _, err = Advance(OnboardingState{}, StepAnswer{Step: StepFoodMood})
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, _, err = Advance(OnboardingState{}, StepAnswer{Step: StepFoodMood, Mood: "hangry"})
	assert.ErrorIs(t, err, ErrInvalidFoodMood)

	_, _, err = Advance(OnboardingState{}, StepAnswer{
		Step:       StepCategories,
		Selections: []string{"a", "b", "c", "d", "e", "f"},
	})
	assert.ErrorIs(t, err, ErrTooManyCategories)

	// no minimum on categories: empty selection advances
	_, next, err := Advance(OnboardingState{}, StepAnswer{Step: StepCategories})
	assert.NoError(t, err)
	assert.Equal(t, StepLocation, next)
}

func TestDecideRoute(t *testing.T) {
	assert.Equal(t, RouteOnboarding, DecideRoute(false, false, nil))
	assert.Equal(t, RouteOnboarding, DecideRoute(false, true, nil))
	assert.Equal(t, RouteFeatureTour, DecideRoute(true, false, nil))
	assert.Equal(t, RouteMain, DecideRoute(true, true, nil))

	// fail-open: a storage error never blocks the user
	assert.Equal(t, RouteMain, DecideRoute(false, false, errors.New("read timeout")))
}

func TestCompleteWritesFullRecordOnce(t *testing.T) {
	store := &fakePrefsStore{user: models.User{Model: userModel(3)}}
	svc := NewOnboardingService(store)

	state := OnboardingState{
		DietaryRestrictions: []string{"vegan", "gluten-free"},
		FoodMood:            "healthy",
		FavoriteCategories:  []string{"vegan", "cafe", "japanese"},
		Latitude:            -33.92,
		Longitude:           18.42,
		City:                "Cape Town",
		Country:             "South Africa",
	}

	res := svc.Complete(3, state)
	assert.True(t, res.Persisted)
	assert.Equal(t, CelebrationDelayMS, res.CelebrationMS)

	require.NotNil(t, store.prefs)
	assert.Equal(t, "vegan,gluten-free", store.prefs.DietaryRestrictions)
	assert.Equal(t, "healthy", store.prefs.FoodMood)
	assert.Equal(t, "vegan,cafe,japanese", store.prefs.FavoriteCategories)
	assert.Equal(t, "Cape Town", store.prefs.City)
	assert.False(t, store.prefs.CompletedAt.IsZero())
	assert.True(t, store.user.OnboardingComplete)

	// second call with the same inputs: same record, original timestamp kept
	first := *store.prefs
	res = svc.Complete(3, state)
	assert.True(t, res.Persisted)
	assert.Equal(t, first.DietaryRestrictions, store.prefs.DietaryRestrictions)
	assert.Equal(t, first.CompletedAt, store.prefs.CompletedAt)
	assert.Equal(t, first.ID, store.prefs.ID, "no duplicate row")
}

func TestCompleteFireAndForget(t *testing.T) {
	store := &fakePrefsStore{user: models.User{Model: userModel(3)}, failPrefs: true}
	svc := NewOnboardingService(store)

	res := svc.Complete(3, OnboardingState{FoodMood: "comfort"})

	// the write failed but the user still moves forward
	assert.False(t, res.Persisted)
	assert.Equal(t, RouteFeatureTour, res.Route)
	assert.Equal(t, CelebrationDelayMS, res.CelebrationMS)
}

func TestSkipWritesNoPreferences(t *testing.T) {
	store := &fakePrefsStore{user: models.User{Model: userModel(4)}}
	svc := NewOnboardingService(store)

	route := svc.Skip(4)
	assert.Equal(t, RouteMain, route)
	assert.Nil(t, store.prefs, "partial answers are never persisted on skip")
	assert.True(t, store.user.OnboardingComplete)
}

func TestRouteForUser(t *testing.T) {
	store := &fakePrefsStore{user: models.User{Model: userModel(5)}}
	svc := NewOnboardingService(store)

	assert.Equal(t, RouteOnboarding, svc.RouteForUser(5))

	store.user.OnboardingComplete = true
	assert.Equal(t, RouteFeatureTour, svc.RouteForUser(5))

	require.NoError(t, svc.CompleteFeatureTour(5))
	assert.Equal(t, RouteMain, svc.RouteForUser(5))

	// flag read failure falls open to main
	store.failUser = true
	assert.Equal(t, RouteMain, svc.RouteForUser(5))
}

func TestCapCategories(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f", "g"}
	assert.Len(t, capCategories(in), MaxFavoriteCategories)
	assert.Equal(t, []string{"a", "b"}, capCategories([]string{"a", "b"}))
}
