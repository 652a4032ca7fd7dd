package utils

import (
	"log"

	"ojt/config"
	"ojt/database"
	"ojt/models"

	"github.com/go-resty/resty/v2"
)

// LogActivity appends a human-readable action to the activity log and, when a
// webhook is configured, forwards it to the notification sink. Best-effort:
// runs in the background and never fails the mutation that produced it.
func LogActivity(userID, classroomID uint, action string) {
	go func() {
		entry := models.Activity{
			UserID:      userID,
			ClassroomID: classroomID,
			Action:      action,
		}
		if err := database.Database.Db.Create(&entry).Error; err != nil {
			log.Printf("[ACTIVITY] Failed to record activity: %v", err)
		}

		webhookURL := config.AppConfig.NotifyWebhookURL
		if webhookURL == "" {
			return
		}

		client := resty.New()
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]interface{}{
				"user_id":      userID,
				"classroom_id": classroomID,
				"action":       action,
			}).
			Post(webhookURL)
		if err != nil {
			log.Printf("[ACTIVITY] Webhook delivery failed: %v", err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("[ACTIVITY] Webhook responded %d: %s", resp.StatusCode(), resp.String())
		}
	}()
}
