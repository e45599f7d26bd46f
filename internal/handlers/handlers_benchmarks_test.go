package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"companyexport/internal/config"
	"companyexport/internal/domain/models"
	"companyexport/internal/exporter"
	"companyexport/internal/logger"
	"companyexport/internal/services"
	"companyexport/internal/storage"
)

func prepare(b *testing.B) *Controller {
	b.Helper()

	c := config.NewConfig()
	s := storage.NewStorageMemory()
	s.AddCompany(models.Company{Name: "Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)", Country: "Germany"})

	exp, err := exporter.New(b.TempDir())
	if err != nil {
		b.Fatalf("exporter.New: %v", err)
	}
	sugarLogger, _ := logger.NewLogger()
	companyService := services.NewCompanyService(c, s, exp)

	return NewController(c, companyService, exp, sugarLogger)
}

func BenchmarkLookupCompany(b *testing.B) {
	controller := prepare(b)
	handler := controller.LookupCompany()

	r := httptest.NewRequest(http.MethodGet, "/company?name=conti", nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
	}
}

func BenchmarkExportCompany(b *testing.B) {
	controller := prepare(b)
	handler := controller.ExportCompany()

	r := httptest.NewRequest(http.MethodGet, "/?export=c&mode=link", nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
	}
}
