package services

import (
	"log"
	"time"

	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
	"github.com/blogify-backend/repositories"
	"github.com/blogify-backend/utils"
)

// NewsletterService handles newsletter subscriptions
type NewsletterService struct {
	subscriberRepo *repositories.SubscriberRepository
	mailService    *MailService
}

// NewNewsletterService creates a new newsletter service instance
func NewNewsletterService() *NewsletterService {
	return &NewsletterService{
		subscriberRepo: repositories.NewSubscriberRepository(),
		mailService:    NewMailService(),
	}
}

// Subscribe signs an address up. Subscribing an already active address is
// an idempotent success with no repeated emails; an address that opted out
// stays out until it is removed by hand. The welcome and admin notification
// mails are best-effort: the subscription has committed by the time they go
// out, and the response just reports which ones succeeded.
func (s *NewsletterService) Subscribe(req dto.SubscribeRequest, source, ipAddress, userAgent string) (dto.SubscribeResponse, error) {
	existing, err := s.subscriberRepo.FindByEmail(req.Email)
	if err == nil {
		if existing.Unsubscribed {
			return dto.SubscribeResponse{}, utils.NewValidationError("This email has unsubscribed from the newsletter")
		}
		return dto.SubscribeResponse{
			Email:        existing.Email,
			SubscribedAt: existing.CreatedAt.Format(time.RFC3339),
			EmailsSent:   dto.EmailsSent{},
		}, nil
	}

	subscriber := models.Subscriber{
		Email:     req.Email,
		Source:    source,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := s.subscriberRepo.Create(&subscriber); err != nil {
		return dto.SubscribeResponse{}, utils.TranslateDBError(err,
			"Subscriber not found", "Email is already subscribed")
	}

	sent := dto.EmailsSent{Welcome: true, Notification: true}
	if err := s.mailService.SendWelcomeEmail(subscriber.Email); err != nil {
		log.Printf("Warning: welcome email to %s failed: %v", subscriber.Email, err)
		sent.Welcome = false
	}
	if err := s.mailService.SendSubscriberNotification(subscriber.Email); err != nil {
		log.Printf("Warning: subscriber notification failed: %v", err)
		sent.Notification = false
	}

	return dto.SubscribeResponse{
		Email:        subscriber.Email,
		SubscribedAt: subscriber.CreatedAt.Format(time.RFC3339),
		EmailsSent:   sent,
	}, nil
}

// Unsubscribe flags an address as unsubscribed; the row is kept so the
// address cannot be greeted as new again
func (s *NewsletterService) Unsubscribe(req dto.UnsubscribeRequest) error {
	subscriber, err := s.subscriberRepo.FindByEmail(req.Email)
	if err != nil {
		return utils.TranslateDBError(err, "Email is not subscribed", "")
	}
	if subscriber.Unsubscribed {
		return utils.NewValidationError("Email is already unsubscribed")
	}

	subscriber.Unsubscribed = true
	return s.subscriberRepo.Save(&subscriber)
}

// GetCount returns the public subscriber counters
func (s *NewsletterService) GetCount() (dto.SubscriberCount, error) {
	total, err := s.subscriberRepo.Count()
	if err != nil {
		return dto.SubscriberCount{}, err
	}
	active, err := s.subscriberRepo.CountActive()
	if err != nil {
		return dto.SubscriberCount{}, err
	}
	return dto.SubscriberCount{Total: total, Active: active}, nil
}

// ListSubscribers retrieves subscribers for the admin screen
func (s *NewsletterService) ListSubscribers(filter dto.SubscriberFilter) ([]models.Subscriber, utils.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	subscribers, total, err := s.subscriberRepo.FindWithPagination(filter)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return subscribers, utils.NewPagination(filter.Page, filter.Limit, total), nil
}
