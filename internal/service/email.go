package service

import (
	"log"
)

// EmailService 邮件发送接口
type EmailService interface {
	Send(toEmail, subject, message string) error
}

// MockEmailService 模拟邮件发送：仅打印到日志，不做真实投递
type MockEmailService struct{}

func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// Send 打印邮件内容
func (s *MockEmailService) Send(toEmail, subject, message string) error {
	log.Println("--- MOCK EMAIL SENDER ---")
	log.Printf("To: %s", toEmail)
	log.Printf("Subject: %s", subject)
	log.Printf("Message: %s", message)
	log.Println("-------------------------")
	return nil
}
