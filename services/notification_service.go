package services

import (
	"fmt"
	"time"

	"github.com/Jared-RS3/food-app-sub002/models"
	"gorm.io/gorm"
)

type notifDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _notif notifDeps

func InitNotificationDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_notif = notifDeps{db: db, rt: rt, ps: ps}
}

// EmitNotification persists a notification and fans it out over websocket and
// push. Safe to call from anywhere; every step is best-effort.
func EmitNotification(userID uint, typ, message string) {
	if _notif.db == nil {
		return // not initialized
	}
	n := &models.Notification{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _notif.db.Create(n).Error

	if _notif.rt != nil {
		_notif.rt.Broadcast(userID, map[string]any{
			"kind":         "notification.created",
			"notification": n,
		})
	}
	if _notif.ps != nil {
		_notif.ps.PushToUser(userID, notificationTitle(typ), message, map[string]string{
			"type": typ, "notificationId": fmt.Sprintf("%d", n.ID),
		})
	}
}

func notificationTitle(typ string) string {
	switch typ {
	case "level_up":
		return "Level up!"
	case "tier_up":
		return "New tier unlocked"
	case "budget_warning":
		return "Budget heads-up"
	case "budget_over":
		return "Budget exceeded"
	default:
		return "New activity"
	}
}

// ListNotifications returns the most recent notifications for a user.
func ListNotifications(db *gorm.DB, userID uint, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var out []models.Notification
	err := db.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// MarkNotificationsRead flags all unread notifications for a user.
func MarkNotificationsRead(db *gorm.DB, userID uint) error {
	return db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
