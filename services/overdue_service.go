// services/overdue_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"carwash-backend/models"
	"carwash-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// OverdueReminderService nudges 30-day-account customers whose entries are
// past their due date.
type OverdueReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewOverdueReminderService(db *gorm.DB) *OverdueReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &OverdueReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *OverdueReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendOverdueReminders)

	c.Start()
	log.Println("Overdue reminder scheduler started")
}

func (s *OverdueReminderService) SendOverdueReminders() {
	log.Println("Starting overdue account processing...")

	accounts, err := s.getOverdueAccounts()
	if err != nil {
		log.Printf("Failed to fetch overdue accounts: %v", err)
		return
	}

	for _, account := range accounts {
		s.sendReminder(account)
	}

	log.Println("Overdue account processing completed")
}

func (s *OverdueReminderService) getOverdueAccounts() ([]models.Account, error) {
	today := utils.TodayStr()

	var accounts []models.Account
	err := s.db.Preload("Customer").
		Where("is_paid = ? AND due_date <> '' AND due_date < ?", false, today).
		Order("due_date").
		Find(&accounts).Error
	return accounts, err
}

func (s *OverdueReminderService) sendReminder(account models.Account) {
	if account.Customer == nil || account.Customer.Phone == "" {
		return
	}
	customer := account.Customer

	message := fmt.Sprintf(
		"Hi %s, a friendly reminder from the car wash: R%s is still outstanding on your 30-day account (due %s). Thank you!",
		customer.Name, account.Outstanding().StringFixed(2), account.DueDate)

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(customer.Phone, "+") {
		to = "whatsapp:" + customer.Phone
		channel = "whatsapp"
	} else {
		to = customer.Phone
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", customer.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", customer.Phone)
	}

	reminderLog := models.PaymentReminderLog{
		CustomerID:   customer.ID,
		AccountID:    account.ID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for customer %s: %v", customer.ID, err)
	}
}
