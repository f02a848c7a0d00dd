// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	"tradepro-backend/billing"
	"tradepro-backend/models"
	"tradepro-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.ProcessOverdueInvoices)

	c.Start()
	log.Println("Overdue invoice scheduler started")
}

// ProcessOverdueInvoices walks every company, flags past-due invoices as
// overdue and sends the customer a payment reminder.
func (s *ReminderService) ProcessOverdueInvoices() {
	log.Println("Starting overdue invoice processing...")

	var companies []models.Company
	if err := s.db.Find(&companies).Error; err != nil {
		log.Printf("Failed to fetch companies: %v", err)
		return
	}

	for _, company := range companies {
		s.ProcessCompanyOverdue(company.ID)
	}

	log.Println("Overdue invoice processing completed")
}

func (s *ReminderService) ProcessCompanyOverdue(companyID uuid.UUID) {
	invoices, err := s.getPastDueInvoices(companyID)
	if err != nil {
		log.Printf("Company %s: Failed to get past due invoices: %v", companyID, err)
		return
	}

	for _, invoice := range invoices {
		if err := s.db.Model(&models.Invoice{}).Where("id = ?", invoice.ID).
			Update("status", models.InvoiceStatusOverdue).Error; err != nil {
			log.Printf("Company %s: Failed to flag invoice %s overdue: %v", companyID, invoice.InvoiceNumber, err)
			continue
		}
		invoice.Status = models.InvoiceStatusOverdue
		invoices = billing.ReplaceByID(invoices, invoice, func(i models.Invoice) bool {
			return i.ID == invoice.ID
		})
		s.sendPaymentReminder(companyID, invoice)
	}

	// The patched slice carries the post-run state: rows still marked sent
	// are the ones whose status update failed above
	flagged := 0
	for _, invoice := range invoices {
		if invoice.Status == models.InvoiceStatusOverdue {
			flagged++
		}
	}
	if len(invoices) > 0 {
		log.Printf("Company %s: flagged %d of %d past due invoices overdue", companyID, flagged, len(invoices))
	}
}

func (s *ReminderService) getPastDueInvoices(companyID uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.Where("company_id = ? AND status = ? AND due_date IS NOT NULL AND due_date < ?",
		companyID, models.InvoiceStatusSent, time.Now()).
		Find(&invoices).Error
	return invoices, err
}

func (s *ReminderService) sendPaymentReminder(companyID uuid.UUID, invoice models.Invoice) {
	if invoice.CustomerPhone == "" {
		return
	}

	balance := invoice.Total - invoice.PaidAmount
	daysLate := 0
	if invoice.DueDate != nil {
		daysLate = utils.DaysBetween(*invoice.DueDate, time.Now())
	}
	message := fmt.Sprintf("Reminder: invoice %s for $%.2f is %d day(s) past due. Please arrange payment at your earliest convenience.",
		invoice.InvoiceNumber, balance, daysLate)

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string
	if strings.HasPrefix(invoice.CustomerPhone, "+") {
		to = "whatsapp:" + invoice.CustomerPhone
		channel = "whatsapp"
	} else {
		to = invoice.CustomerPhone
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
		log.Printf("Failed to send reminder to %s: %v", invoice.CustomerPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", invoice.CustomerPhone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", invoice.CustomerPhone)
	}

	invoiceID := invoice.ID
	notification := models.NotificationLog{
		CompanyID:    companyID,
		CustomerID:   invoice.CustomerID,
		InvoiceID:    &invoiceID,
		Channel:      channel,
		Recipient:    invoice.CustomerPhone,
		Subject:      "Payment reminder",
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&notification).Error; err != nil {
		log.Printf("Failed to log reminder for invoice %s: %v", invoice.InvoiceNumber, err)
	}
}
