package utils

import (
	"fmt"
	"log"

	"topclass/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendPurchaseConfirmation sends an order confirmation email after a
// successful purchase. A missing API key disables sending silently so
// local installs work without Sendgrid.
func SendPurchaseConfirmation(email, userName, courseTitle string) error {
	if config.AppConfig.SendgridKey == "" {
		return nil
	}

	from := mail.NewEmail("TopClass", config.AppConfig.EmailSender)
	to := mail.NewEmail(userName, email)
	subject := "Your TopClass purchase is confirmed"

	plainText := fmt.Sprintf("Hi %s, your purchase of %q is confirmed. The course is now available in your library.", userName, courseTitle)
	htmlBody := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Purchase confirmed</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 16px; color: #555555;">Your purchase of <strong>%s</strong> is confirmed. The course is now available in your library.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Thank you for learning with TopClass.</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle)

	message := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending purchase confirmation to %s: %v", email, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Purchase confirmation to %s rejected with status %d", email, resp.StatusCode)
		return fmt.Errorf("sendgrid rejected message: %d", resp.StatusCode)
	}

	return nil
}
