package mapping

import (
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		ID:          d.ID,
		TruckID:     d.TruckID,
		TruckNumber: d.TruckNumber,
		Month:       d.Month,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:          m.ID,
		TruckID:     m.TruckID,
		TruckNumber: m.TruckNumber,
		Month:       m.Month,
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

// ToModelInvoiceDetail converts a domain InvoiceDetail to a model InvoiceDetail
func ToModelInvoiceDetail(d domain.InvoiceDetail) models.InvoiceDetail {
	return models.InvoiceDetail{
		ID:            d.ID,
		InvoiceID:     d.InvoiceID,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		Date:          d.Date,
		Order:         d.Order,
		Loading:       d.Loading,
		Returning:     d.Returning,
		Destination:   d.Destination,
		Freight:       d.Freight,
		Toll:          d.Toll,
		Gas:           d.Gas,
		ExtraExpense:  d.ExtraExpense,
		DriverAdvance: d.DriverAdvance,
		Remark:        d.Remark,
	}
}

// ToDomainInvoiceDetail converts a model InvoiceDetail to a domain InvoiceDetail
func ToDomainInvoiceDetail(m models.InvoiceDetail) domain.InvoiceDetail {
	return domain.InvoiceDetail{
		ID:            m.ID,
		InvoiceID:     m.InvoiceID,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		Date:          m.Date,
		Order:         m.Order,
		Loading:       m.Loading,
		Returning:     m.Returning,
		Destination:   m.Destination,
		Freight:       m.Freight,
		Toll:          m.Toll,
		Gas:           m.Gas,
		ExtraExpense:  m.ExtraExpense,
		DriverAdvance: m.DriverAdvance,
		Remark:        m.Remark,
	}
}

// ToDomainInvoiceDetailSlice converts a slice of model InvoiceDetails to domain InvoiceDetails
func ToDomainInvoiceDetailSlice(ms []models.InvoiceDetail) []domain.InvoiceDetail {
	ds := make([]domain.InvoiceDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceDetail(m)
	}
	return ds
}

// ToDomainLineItem converts a joined model LineItem to a domain InvoiceLineItem
func ToDomainLineItem(m models.LineItem) domain.InvoiceLineItem {
	return domain.InvoiceLineItem{
		ID:            m.ID,
		InvoiceID:     m.InvoiceID,
		Date:          m.Date,
		TruckID:       m.TruckID,
		TruckNumber:   m.TruckNumber,
		CustomerName:  m.CustomerName,
		Order:         m.Order,
		Loading:       m.Loading,
		Returning:     m.Returning,
		Destination:   m.Destination,
		Freight:       m.Freight,
		Toll:          m.Toll,
		Gas:           m.Gas,
		ExtraExpense:  m.ExtraExpense,
		DriverAdvance: m.DriverAdvance,
		Remark:        m.Remark,
	}
}

// ToDomainLineItemSlice converts a slice of model LineItems to domain InvoiceLineItems
func ToDomainLineItemSlice(ms []models.LineItem) []domain.InvoiceLineItem {
	ds := make([]domain.InvoiceLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
