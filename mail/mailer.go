package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer delivers contact-form messages to the shop inbox over SMTP.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	inbox    string
}

func NewMailer(host string, port int, user, password, inbox string) *Mailer {
	return &Mailer{host: host, port: port, user: user, password: password, inbox: inbox}
}

// SendContactMessage forwards a visitor's message. Unlike SMS notifications
// this is the primary effect of its endpoint, so failures propagate.
func (m *Mailer) SendContactMessage(name, email, phone, message string) error {
	if phone == "" {
		phone = "N/A"
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.user, "Divine Sounds Website")
	msg.SetHeader("To", m.inbox)
	msg.SetHeader("Subject", fmt.Sprintf("New Message from %s", name))
	msg.SetBody("text/html", fmt.Sprintf(
		`<h2>New Contact Message from Divine Sounds Website</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		name, email, phone, message,
	))

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.password)
	return dialer.DialAndSend(msg)
}
