package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"companyexport/internal/config"
	"companyexport/internal/domain/models"
	"companyexport/internal/exporter"
	"companyexport/internal/logger"
	"companyexport/internal/services"
	"companyexport/internal/storage"
)

// ExampleController_LookupCompany demonstrates the inline lookup endpoint.
func ExampleController_LookupCompany() {
	c := config.NewConfig()
	s := storage.NewStorageMemory()
	s.AddCompany(models.Company{Name: "Denso Corp (NBB: DNZO Y)", Country: "Japan"})

	exp, _ := exporter.New(c.ExportDir)
	sugarLogger, _ := logger.NewLogger()
	companyService := services.NewCompanyService(c, s, exp)
	controller := NewController(c, companyService, exp, sugarLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, "GET", "/company?name=denso", nil)
	rr := httptest.NewRecorder()

	handler := controller.LookupCompany()
	handler.ServeHTTP(rr, req)

	resp := rr.Result()
	defer func() {
		if err := resp.Body.Close(); err != nil {
			sugarLogger.Errorf("resp.Body.Close() error")
		}
	}()

	fmt.Println("Status Code:", resp.Status)

	// Output:
	// Status Code: 200 OK
}

// ExampleController_ShortcutsHandler demonstrates the alias table endpoint.
func ExampleController_ShortcutsHandler() {
	c := config.NewConfig()
	s := storage.NewStorageMemory()

	exp, _ := exporter.New(c.ExportDir)
	sugarLogger, _ := logger.NewLogger()
	companyService := services.NewCompanyService(c, s, exp)
	controller := NewController(c, companyService, exp, sugarLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, "GET", "/shortcuts", nil)
	rr := httptest.NewRecorder()

	handler := controller.ShortcutsHandler()
	handler.ServeHTTP(rr, req)

	resp := rr.Result()
	defer func() {
		if err := resp.Body.Close(); err != nil {
			sugarLogger.Errorf("resp.Body.Close() error")
		}
	}()

	fmt.Println("Status Code:", resp.Status)

	// Output:
	// Status Code: 200 OK
}
