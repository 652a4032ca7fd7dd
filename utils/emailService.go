package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"ojt/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: OJT Tracker <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("[EMAIL] Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3A57; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A57; line-height: 1.6; }
			.content h2 { color: #1B3A57; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2E86AB; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #2E86AB; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>OJT TRACKER</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 OJT Tracker. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your account is ready. Join a classroom with an invite code from your
		professor and start logging your training hours.</p>
	`, name)

	go SendEmail([]string{email}, "Welcome to OJT Tracker", getEmailTemplate("Welcome Aboard", body))
}

// 2. Admin invite with token
func SendInviteEmail(email, inviteToken string) {
	acceptURL := fmt.Sprintf("%s/auth/accept-invite?token=%s", config.AppConfig.AppBaseURL, inviteToken)
	body := fmt.Sprintf(`
		<p>You have been invited to OJT Tracker.</p>
		<div class="info-box">Use the button below to set your password and activate your account.</div>
		<a class="btn" href="%s">Accept Invitation</a>
	`, acceptURL)

	go SendEmail([]string{email}, "You're invited to OJT Tracker", getEmailTemplate("Your Invitation", body))
}

// 3. Report reviewed
func SendReportReviewedEmail(email, name, reportTitle, decision string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your report <strong>%s</strong> has been reviewed.</p>
		<div class="info-box">Decision: <strong>%s</strong></div>
		<p>Log in to see the full feedback.</p>
	`, name, reportTitle, decision)

	go SendEmail([]string{email}, "Your report has been reviewed", getEmailTemplate("Report Reviewed", body))
}
