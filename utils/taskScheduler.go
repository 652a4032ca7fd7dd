package utils

import (
	"log"
	"time"

	"ojt/database"
	"ojt/models"

	"github.com/robfig/cron/v3"
)

// InitializeTaskScheduler sets up the daily overdue-task sweep
func InitializeTaskScheduler() {
	log.Println("[TASK-SCHEDULER] Initializing task scheduler...")

	c := cron.New()

	// Run daily at 1 AM to flag tasks past their due date
	c.AddFunc("0 1 * * *", func() {
		log.Println("[TASK-SCHEDULER] Running daily overdue sweep...")
		SweepOverdueTasks()
	})

	c.Start()
	log.Println("[TASK-SCHEDULER] Task scheduler started - runs daily at 1 AM")
}

// SweepOverdueTasks moves pending and in-progress tasks past their due date
// to OVERDUE. Completed tasks are never touched.
func SweepOverdueTasks() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Task{}).
		Where("due_date < ? AND status IN ?", now, []string{models.TaskPending, models.TaskInProgress}).
		Update("status", models.TaskOverdue)
	if result.Error != nil {
		log.Printf("[TASK-SCHEDULER] Overdue sweep failed: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[TASK-SCHEDULER] Flagged %d tasks as overdue", result.RowsAffected)
	}
}
