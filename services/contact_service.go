package services

import (
	"github.com/blogify-backend/config"
	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/utils"
)

// ContactService handles contact-form submissions
type ContactService struct {
	mailService *MailService
}

// NewContactService creates a new contact service instance
func NewContactService() *ContactService {
	return &ContactService{
		mailService: NewMailService(),
	}
}

// Send forwards a submission to the admin inbox. Delivering the email IS
// the operation, so a mailer failure fails the request.
func (s *ContactService) Send(req dto.ContactRequest) error {
	if err := s.mailService.SendContactEmail(req); err != nil {
		return utils.NewDependencyError("Failed to send message, please try again later", err)
	}
	return nil
}

// Info returns the static contact directory shown next to the form
func (s *ContactService) Info() dto.ContactInfo {
	base := config.GetEnv("CONTACT_EMAIL_DOMAIN", "blogify.local")
	return dto.ContactInfo{
		Email:        "hello@" + base,
		Phone:        config.GetEnv("CONTACT_PHONE", "+1 (555) 010-0000"),
		Address:      config.GetEnv("CONTACT_ADDRESS", ""),
		WorkingHours: "Mon-Fri, 9:00-17:00",
		ResponseTime: "Within 2 business days",
		Departments: []dto.Department{
			{Name: "Editorial", Email: "editorial@" + base},
			{Name: "Advertising", Email: "ads@" + base},
			{Name: "Partnerships", Email: "partners@" + base},
			{Name: "Technical support", Email: "support@" + base},
		},
	}
}
