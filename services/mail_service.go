package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/blogify-backend/config"
	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
)

// MailService sends transactional email over SMTP
type MailService struct {
	from      string
	adminAddr string
	siteName  string
	siteURL   string
}

// NewMailService creates a new mail service instance
func NewMailService() *MailService {
	return &MailService{
		from:      config.GetEnv("SMTP_FROM", "no-reply@blogify.local"),
		adminAddr: config.GetEnv("ADMIN_EMAIL", "admin@blogify.local"),
		siteName:  config.GetEnv("SITE_NAME", "Blogify"),
		siteURL:   config.GetEnv("SITE_URL", "https://blogify.local"),
	}
}

func (s *MailService) dialer() (*gomail.Dialer, error) {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil, fmt.Errorf("SMTP_HOST not set in environment")
	}
	port := config.GetEnvInt("SMTP_PORT", 587)
	user := config.GetEnv("SMTP_USER", "")
	pass := config.GetEnv("SMTP_PASSWORD", "")
	return gomail.NewDialer(host, port, user, pass), nil
}

func (s *MailService) send(to, subject, htmlBody string) error {
	d, err := s.dialer()
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return d.DialAndSend(m)
}

// SendWelcomeEmail greets a new newsletter subscriber
func (s *MailService) SendWelcomeEmail(to string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to the %s newsletter!</h2>
		<p>Thanks for subscribing. You will receive our latest articles and updates.</p>
		<p>If this wasn't you, you can unsubscribe at any time from <a href="%s">%s</a>.</p>`,
		s.siteName, s.siteURL, s.siteURL)
	return s.send(to, "Welcome to "+s.siteName, body)
}

// SendSubscriberNotification tells the admin about a new signup
func (s *MailService) SendSubscriberNotification(subscriberEmail string) error {
	body := fmt.Sprintf(`
		<h3>New newsletter subscriber</h3>
		<p><strong>Email:</strong> %s</p>`, subscriberEmail)
	return s.send(s.adminAddr, "New newsletter subscriber", body)
}

// SendContactEmail forwards a contact-form submission to the admin inbox.
// Unlike the newsletter mails this one is the operation itself, so failures
// propagate to the caller.
func (s *MailService) SendContactEmail(req dto.ContactRequest) error {
	body := fmt.Sprintf(`
		<h3>New contact form submission</h3>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Company:</strong> %s</p>
		<p><strong>Type:</strong> %s</p>
		<p><strong>Subject:</strong> %s</p>
		<hr>
		<p>%s</p>`,
		req.Name, req.Email, req.Company, req.ContactType, req.Subject, req.Message)
	return s.send(s.adminAddr, "[Contact] "+req.Subject, body)
}

// SendBlogDecisionEmail tells an author their blog was published or rejected
func (s *MailService) SendBlogDecisionEmail(author models.User, blog models.Blog) error {
	var subject, body string
	switch blog.Status {
	case models.BlogPublished:
		subject = "Your blog has been published"
		body = fmt.Sprintf(`
			<h3>Congratulations %s!</h3>
			<p>Your blog <strong>%s</strong> is now live at
			<a href="%s/blogs/%s">%s/blogs/%s</a>.</p>`,
			author.DisplayName(), blog.Title, s.siteURL, blog.Slug, s.siteURL, blog.Slug)
	case models.BlogRejected:
		subject = "Your blog needs changes"
		body = fmt.Sprintf(`
			<h3>Hi %s,</h3>
			<p>Your blog <strong>%s</strong> was not approved.</p>
			<p><strong>Reason:</strong> %s</p>
			<p>You can edit and resubmit it from your dashboard.</p>`,
			author.DisplayName(), blog.Title, blog.RejectionReason)
	default:
		return nil
	}
	return s.send(author.Email, subject, body)
}
