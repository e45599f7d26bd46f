package app

import (
	"net/http"
	"time"

	"companyexport/internal/config"

	"go.uber.org/zap"
)

// CreateServer creates and configures an HTTP server.
func CreateServer(c *config.Config, handler http.Handler, logger *zap.SugaredLogger) *http.Server {
	logger.Infof("Company export at %s, db %s.%s, exports in %s\n",
		c.Addr, c.DBName, c.CompaniesColl, c.ExportDir)

	return &http.Server{
		Addr:              c.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 20 * time.Second,
	}
}
