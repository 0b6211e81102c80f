package utils

import (
	"log"

	"topclass/database"
	"topclass/models"

	"github.com/robfig/cron/v3"
)

// InitializeCounterScheduler refreshes derived course counters on a
// schedule so the storefront never serves stale student counts.
func InitializeCounterScheduler() *cron.Cron {
	log.Println("[COUNTER-SCHEDULER] Initializing counter scheduler...")

	c := cron.New()

	c.AddFunc("@hourly", func() {
		log.Println("[COUNTER-SCHEDULER] Refreshing course counters...")
		RefreshCourseCounters()
	})

	c.Start()
	log.Println("[COUNTER-SCHEDULER] Counter scheduler started - runs hourly")
	return c
}

// RefreshCourseCounters recomputes student_count from completed purchases
func RefreshCourseCounters() {
	db := database.Database.Db

	err := db.Exec(`
		UPDATE courses
		SET student_count = (
			SELECT COUNT(*) FROM purchases
			WHERE purchases.course_id = courses.id
			  AND purchases.status = ?
			  AND purchases.is_deleted = ?
		)
		WHERE courses.is_deleted = ?`,
		models.PurchaseCompleted, false, false,
	).Error
	if err != nil {
		log.Printf("[COUNTER-SCHEDULER] Error refreshing course counters: %v", err)
		return
	}

	log.Println("[COUNTER-SCHEDULER] Course counters refreshed")
}
