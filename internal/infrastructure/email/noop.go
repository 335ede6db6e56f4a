package email

import "github.com/garagehq/shopapi/internal/shared/logger"

// NoopEmailService logs instead of sending. Used when mail is disabled.
type NoopEmailService struct {
	logger logger.Interface
}

func NewNoopEmailService(log logger.Interface) *NoopEmailService {
	return &NoopEmailService{logger: log}
}

func (s *NoopEmailService) SendWelcomeEmail(to, name string) error {
	s.logger.Debugw("email disabled, skipping welcome email", "name", name)
	return nil
}

func (s *NoopEmailService) SendTicketStatusEmail(to, name string, ticketID uint, status string) error {
	s.logger.Debugw("email disabled, skipping ticket status email", "ticket_id", ticketID, "status", status)
	return nil
}
