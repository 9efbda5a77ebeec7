package service

import (
	"context"
	"net/http"
	"strings"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/mailer"
)

const DefaultContactSubject = "General Inquiry"

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) error
}

type contactService struct {
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewContactService(emailService mailer.IEmailService, log logger.ILogger) IContactService {
	return &contactService{
		emailService: emailService,
		logger:       log,
	}
}

func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) error {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = DefaultContactSubject
	}

	inquiry := mailer.ContactInquiry{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: subject,
		Message: req.Message,
	}
	if err := s.emailService.SendContactInquiry(inquiry); err != nil {
		s.logger.Error("CONTACT", "Failed to send contact inquiry", map[string]interface{}{
			"from":  inquiry.Email,
			"error": err.Error(),
		})
		return apperror.Wrap(http.StatusBadGateway, "failed to send message, please try again later", err)
	}

	s.logger.Info("CONTACT", "Contact inquiry sent", map[string]interface{}{
		"from":    inquiry.Email,
		"subject": inquiry.Subject,
	})
	return nil
}
