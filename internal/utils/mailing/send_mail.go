package mailing

import (
	"regexp"
	"strconv"
	"strings"

	"HomeStock-Backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripTags flattens an HTML body into the plain-text alternative part.
func stripTags(html string) string {
	return strings.Join(strings.Fields(tagPattern.ReplaceAllString(html, " ")), " ")
}

// SendMail delivers an HTML mail with a plain-text fallback part. The sender
// name comes from SMTP_SENDER_NAME and defaults to HomeStock.
func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	sender := emailConfig.SMTPSender
	if sender == "" {
		sender = "HomeStock"
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", mailer.FormatAddress(emailConfig.SMTPEmail, sender))
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/plain", stripTags(body))
	mailer.AddAlternative("text/html", body)

	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}
