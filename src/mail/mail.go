package mail

import (
	"fmt"

	"license-manager/src/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Email struct {
	Name    string
	To      string
	Subject string
	Plain   string
	Html    string
}

func SendMail(email Email) error {
	from := mail.NewEmail(config.EmailName, config.EmailFrom)
	to := mail.NewEmail(email.Name, email.To)
	message := mail.NewSingleEmail(from, email.Subject, to, email.Plain, email.Html)
	client := sendgrid.NewSendClient(config.SendgridAPIKey)

	_, err := client.Send(message)
	if err != nil {
		return err
	}

	return nil
}

// SendLicenseMail delivers a newly added license key to its owner.
func SendLicenseMail(emailTo string, licenseKey string) error {
	email := Email{
		Name:    emailTo,
		To:      emailTo,
		Subject: "Your License Key is Here!",
		Plain:   fmt.Sprintf("Your License Key: %s\n", licenseKey),
		Html:    fmt.Sprintf("<h1>Your License Key</h1><p>%s</p>", licenseKey),
	}

	if err := SendMail(email); err != nil {
		return err
	}

	return nil
}
