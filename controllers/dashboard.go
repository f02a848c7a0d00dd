// controllers/dashboard.go
package controllers

import (
	"fmt"
	"net/http"
	"time"
	"tradepro-backend/config"
	"tradepro-backend/models"

	"github.com/gin-gonic/gin"
)

type RecentActivity struct {
	Kind   string  `json:"kind"` // "invoice" or "estimate"
	Number string  `json:"number"`
	Name   string  `json:"customer_name"`
	Total  float64 `json:"total"`
	When   string  `json:"when"` // e.g. "Today", "Yesterday", "3 days ago"
}

type OverdueSummary struct {
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// GetDashboardOverview aggregates the headline numbers for the company:
// customer count, this month's collected revenue, document counts, the
// overdue balance and the most recent billing activity.
func GetDashboardOverview(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	// Total Customers
	var totalCustomers int64
	config.DB.Model(&models.Customer{}).
		Where("company_id = ? AND deleted_at IS NULL", companyUUID).
		Count(&totalCustomers)

	// This Month's Revenue (paid invoices only)
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var monthlyRevenue float64
	config.DB.Model(&models.Invoice{}).
		Where("company_id = ? AND status = ? AND paid_at >= ?",
			companyUUID, models.InvoiceStatusPaid, firstOfMonth).
		Select("COALESCE(SUM(paid_amount), 0)").Scan(&monthlyRevenue)

	// Document counts
	var totalInvoices int64
	config.DB.Model(&models.Invoice{}).
		Where("company_id = ?", companyUUID).
		Count(&totalInvoices)

	var totalEstimates int64
	config.DB.Model(&models.Estimate{}).
		Where("company_id = ?", companyUUID).
		Count(&totalEstimates)

	var pendingEstimates int64
	config.DB.Model(&models.Estimate{}).
		Where("company_id = ? AND status IN ?",
			companyUUID, []string{string(models.EstimateStatusDraft), string(models.EstimateStatusSent)}).
		Count(&pendingEstimates)

	var activeProjects int64
	config.DB.Model(&models.Project{}).
		Where("company_id = ? AND status = ? AND deleted_at IS NULL", companyUUID, "active").
		Count(&activeProjects)

	var openServiceCalls int64
	config.DB.Model(&models.ServiceCall{}).
		Where("company_id = ? AND status IN ? AND deleted_at IS NULL",
			companyUUID, []string{"open", "scheduled"}).
		Count(&openServiceCalls)

	// Overdue balance: sent invoices past due plus anything already flagged
	var overdue OverdueSummary
	config.DB.Model(&models.Invoice{}).
		Where("company_id = ?", companyUUID).
		Where("status = ? OR (status = ? AND due_date < ?)",
			models.InvoiceStatusOverdue, models.InvoiceStatusSent, now).
		Select("COUNT(*) as count, COALESCE(SUM(total - paid_amount), 0) as amount").
		Scan(&overdue)

	// Recent Activity (last 5 documents across invoices and estimates)
	var recentActivity []RecentActivity
	rows, err := config.DB.Raw(`
        SELECT 'invoice' as kind, invoice_number as number, customer_name, total, created_at
        FROM invoices
        WHERE company_id = ?
        UNION ALL
        SELECT 'estimate' as kind, estimate_number as number, customer_name, total_amount, created_at
        FROM estimates
        WHERE company_id = ?
        ORDER BY created_at DESC
        LIMIT 5
    `, companyUUID, companyUUID).Rows()
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var kind, number, name string
			var total float64
			var createdAt time.Time
			rows.Scan(&kind, &number, &name, &total, &createdAt)
			daysAgo := int(time.Since(createdAt).Hours() / 24)
			var when string
			switch daysAgo {
			case 0:
				when = "Today"
			case 1:
				when = "Yesterday"
			default:
				when = fmt.Sprintf("%d days ago", daysAgo)
			}
			recentActivity = append(recentActivity, RecentActivity{
				Kind:   kind,
				Number: number,
				Name:   name,
				Total:  total,
				When:   when,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":   totalCustomers,
		"monthlyRevenue":   monthlyRevenue,
		"totalInvoices":    totalInvoices,
		"totalEstimates":   totalEstimates,
		"pendingEstimates": pendingEstimates,
		"activeProjects":   activeProjects,
		"openServiceCalls": openServiceCalls,
		"overdueInvoices":  overdue,
		"recentActivity":   recentActivity,
	})
}

// GetRevenueByMonth reports collected revenue per month for the current year.
func GetRevenueByMonth(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	type monthRow struct {
		Month   int     `json:"month"`
		Revenue float64 `json:"revenue"`
	}
	var months []monthRow

	now := time.Now()
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	config.DB.Raw(`
        SELECT EXTRACT(MONTH FROM paid_at)::int as month, COALESCE(SUM(paid_amount), 0) as revenue
        FROM invoices
        WHERE company_id = ? AND status = ? AND paid_at >= ?
        GROUP BY month
        ORDER BY month
    `, companyUUID, models.InvoiceStatusPaid, startOfYear).Scan(&months)

	// Fill gaps so the chart always gets twelve buckets
	revenue := make([]float64, 12)
	for _, m := range months {
		if m.Month >= 1 && m.Month <= 12 {
			revenue[m.Month-1] = m.Revenue
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"year":    now.Year(),
		"revenue": revenue,
	})
}
