package services

import (
	"errors"
	"testing"

	"github.com/Jared-RS3/food-app-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func userModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

// fakeProfileStore is an in-memory ProfileStore. staleReads > 0 makes the
// next N GetUser calls return a snapshot from before any writes, simulating
// two clients racing on the same base XP.
type fakeProfileStore struct {
	user       models.User
	snapshot   models.User
	staleReads int
	failSave   bool
	activities []models.FeedActivity
}

func newFakeProfileStore(u models.User) *fakeProfileStore {
	return &fakeProfileStore{user: u, snapshot: u}
}

func (f *fakeProfileStore) GetUser(id uint) (*models.User, error) {
	if id != f.user.ID {
		return nil, errors.New("record not found")
	}
	if f.staleReads > 0 {
		f.staleReads--
		u := f.snapshot
		return &u, nil
	}
	u := f.user
	return &u, nil
}

func (f *fakeProfileStore) SaveUser(u *models.User) error {
	if f.failSave {
		return errors.New("connection refused")
	}
	f.user = *u
	return nil
}

func (f *fakeProfileStore) RecordActivity(a *models.FeedActivity) error {
	f.activities = append(f.activities, *a)
	return nil
}

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 1, LevelForXP(99))
	assert.Equal(t, 2, LevelForXP(100))
	assert.Equal(t, 11, LevelForXP(1000))
	assert.Equal(t, 1, LevelForXP(-50), "negative XP clamps to level 1")

	// non-decreasing, always >= 1
	prev := 0
	for xp := 0; xp <= 5000; xp += 7 {
		lvl := LevelForXP(xp)
		assert.GreaterOrEqual(t, lvl, 1)
		assert.GreaterOrEqual(t, lvl, prev)
		prev = lvl
	}
}

func TestTierForXP(t *testing.T) {
	assert.Equal(t, TierBronze, TierForXP(0))
	assert.Equal(t, TierBronze, TierForXP(499))
	assert.Equal(t, TierSilver, TierForXP(500))
	assert.Equal(t, TierGold, TierForXP(1500))
	assert.Equal(t, TierPlatinum, TierForXP(3000))
	assert.Equal(t, TierDiamond, TierForXP(6000))
	assert.Equal(t, TierDiamond, TierForXP(1_000_000))

	// pure: same input, same output
	assert.Equal(t, TierForXP(1234), TierForXP(1234))

	// non-decreasing as XP grows
	order := map[Tier]int{TierBronze: 0, TierSilver: 1, TierGold: 2, TierPlatinum: 3, TierDiamond: 4}
	prev := 0
	for xp := 0; xp <= 10000; xp += 13 {
		cur := order[TierForXP(xp)]
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestProgressWithinLevel(t *testing.T) {
	for xp := 0; xp <= 3000; xp += 11 {
		p := ProgressWithinLevel(xp)
		assert.GreaterOrEqual(t, p, 0, "xp=%d", xp)
		assert.Less(t, p, LevelUpPoints, "xp=%d", xp)
	}
	assert.Equal(t, 0, ProgressWithinLevel(0))
	assert.Equal(t, 99, ProgressWithinLevel(199))
	assert.Equal(t, 0, ProgressWithinLevel(200))
}

func TestXPForLevelQuadratic(t *testing.T) {
	// legacy display curve; deliberately different from the linear one
	assert.Equal(t, 100, XPForLevelQuadratic(1))
	assert.Equal(t, 400, XPForLevelQuadratic(2))
	assert.Equal(t, 2500, XPForLevelQuadratic(5))
	assert.Equal(t, 100, XPForLevelQuadratic(0), "levels below 1 clamp")
}

func TestNextTierThreshold(t *testing.T) {
	next, min, ok := NextTierThreshold(0)
	require.True(t, ok)
	assert.Equal(t, TierSilver, next)
	assert.Equal(t, 500, min)

	next, min, ok = NextTierThreshold(2999)
	require.True(t, ok)
	assert.Equal(t, TierPlatinum, next)
	assert.Equal(t, 3000, min)

	_, _, ok = NextTierThreshold(6000)
	assert.False(t, ok, "nothing above Diamond")
}

func TestAwardPoints(t *testing.T) {
	store := newFakeProfileStore(models.User{Model: userModel(1), Username: "sam", TotalXP: 90})
	g := NewGamificationService(store)

	s, err := g.AwardPoints(1, "checkin")
	require.NoError(t, err)
	assert.Equal(t, 115, s.TotalXP)
	assert.Equal(t, 2, s.Level, "checkin from 90 XP crosses the level boundary")
	assert.Equal(t, 15, s.Points)

	// level-up recorded on the feed
	require.Len(t, store.activities, 1)
	assert.Equal(t, "level_up", store.activities[0].Type)
}

func TestAwardPointsUnknownAction(t *testing.T) {
	store := newFakeProfileStore(models.User{Model: userModel(1), TotalXP: 0})
	g := NewGamificationService(store)

	_, err := g.AwardPoints(1, "teleport")
	require.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, 0, store.user.TotalXP, "nothing persisted")
}

func TestAwardPointsPersistenceErrorPropagates(t *testing.T) {
	store := newFakeProfileStore(models.User{Model: userModel(1), TotalXP: 200})
	store.failSave = true
	g := NewGamificationService(store)

	_, err := g.AwardPoints(1, "review")
	require.Error(t, err)
	assert.Equal(t, 200, store.user.TotalXP, "store unchanged from the caller's view")
}

// Two awards reading the same base XP collapse into one: last write wins.
// Accepted behavior with no version guard, documented here rather than fixed.
func TestAwardPointsLastWriteWins(t *testing.T) {
	store := newFakeProfileStore(models.User{Model: userModel(1), TotalXP: 100})
	store.staleReads = 2 // both awards read the pre-write snapshot
	g := NewGamificationService(store)

	_, err := g.AwardPoints(1, "checkin")
	require.NoError(t, err)
	_, err = g.AwardPoints(1, "checkin")
	require.NoError(t, err)

	assert.Equal(t, 125, store.user.TotalXP, "one of the two increments is lost")
}

func TestSummaryRecomputesFromXP(t *testing.T) {
	store := newFakeProfileStore(models.User{Model: userModel(7), Username: "lee", TotalXP: 1725, Streak: 4})
	g := NewGamificationService(store)

	s, err := g.Summary(7)
	require.NoError(t, err)
	assert.Equal(t, 18, s.Level)
	assert.Equal(t, 25, s.Points)
	assert.Equal(t, TierGold, s.Tier)
	assert.Equal(t, TierPlatinum, s.NextTier)
	assert.Equal(t, 1275, s.XPToNextTier)
	assert.Equal(t, 4, s.Streak)
}
