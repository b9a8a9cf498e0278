package services

import (
	"fmt"

	"github.com/SscSPs/truck_invoice_app/internal/adapters/pdf"
	"github.com/SscSPs/truck_invoice_app/internal/adapters/spreadsheet"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/truck_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/platform/config"
	"github.com/SscSPs/truck_invoice_app/internal/utils/accounting"
)

// RulesFromConfig builds the wage and advance classification rules once at startup.
func RulesFromConfig(cfg *config.Config) accounting.Rules {
	return accounting.NewRules(cfg.WageRate, cfg.FlatWageTruckIDs, cfg.FlatWageKeywords,
		accounting.KeywordRule{Bucket: domain.BucketRepair, Keywords: cfg.RepairKeywords},
		accounting.KeywordRule{Bucket: domain.BucketParking, Keywords: cfg.ParkingKeywords},
	)
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	rules := RulesFromConfig(cfg)

	statements, err := pdf.NewRenderer(rules.WageRate, cfg.PDFFontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise pdf renderer: %w", err)
	}

	container := &portssvc.ServiceContainer{}
	container.Truck = NewTruckService(repos.TruckRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.TruckRepo)
	container.InvoiceDetail = NewInvoiceDetailService(repos.InvoiceDetailRepo, repos.InvoiceRepo, repos.LineItemRepo)
	container.Reporting = NewReportingService(repos.LineItemRepo, repos.InvoiceRepo, WithRules(rules))
	container.Export = NewExportService(
		container.Reporting,
		repos.TruckRepo,
		spreadsheet.NewRenderer(rules.WageRate),
		statements,
	)

	return container, nil
}
