// controllers/invoice_pdf.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"tradepro-backend/config"
	"tradepro-backend/models"
	"tradepro-backend/services"
	"tradepro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var pdfService = services.NewPDFService()

func loadInvoiceWithCompany(c *gin.Context) (*models.Invoice, *models.Company, bool) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return nil, nil, false
	}
	invoiceUUID, ok := parseIDParam(c, "id")
	if !ok {
		return nil, nil, false
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Items").
		Where("company_id = ? AND id = ?", companyUUID, invoiceUUID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, nil, false
	}

	var company models.Company
	if err := config.DB.First(&company, "id = ?", companyUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return nil, nil, false
	}

	return &invoice, &company, true
}

// ViewInvoicePDF streams the rendered PDF inline
func ViewInvoicePDF(c *gin.Context) {
	invoice, company, ok := loadInvoiceWithCompany(c)
	if !ok {
		return
	}

	data, err := pdfService.RenderInvoice(invoice, company)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	c.Header("Content-Disposition", "inline; filename="+invoice.InvoiceNumber+".pdf")
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, "application/pdf", data)
}

// DownloadInvoicePDF streams the rendered PDF as an attachment
func DownloadInvoicePDF(c *gin.Context) {
	invoice, company, ok := loadInvoiceWithCompany(c)
	if !ok {
		return
	}

	data, err := pdfService.RenderInvoice(invoice, company)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+invoice.InvoiceNumber+".pdf")
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, "application/pdf", data)
}

// RegenerateInvoicePDF re-renders the stored PDF and updates the path
func RegenerateInvoicePDF(c *gin.Context) {
	invoice, company, ok := loadInvoiceWithCompany(c)
	if !ok {
		return
	}

	path, err := pdfService.SaveInvoicePDF(invoice, company)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to regenerate PDF")
		return
	}

	if err := config.DB.Model(&models.Invoice{}).Where("id = ?", invoice.ID).
		Update("pdf_path", path).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "PDF regenerated", "pdf_path": path})
}
