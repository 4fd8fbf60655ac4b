// Package logging builds the process logger and the HTTP access log middleware.
package logging

import (
	"net"
	"os"
	"time"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"

	"dailyfood/internal/config"
)

const appName = "dailyfood"

// New returns a logger configured from cfg. Shipping hooks that cannot be set up
// are reported on the logger and skipped.
func New(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stdout

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if cfg.ElasticURL != "" {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{cfg.ElasticURL},
		})
		if err != nil {
			logger.WithError(err).Warn("elasticsearch client")
		} else if hook, err := elogrus.NewAsyncElasticHook(client, appName, level, cfg.ElasticIndex); err != nil {
			logger.WithError(err).Warn("elasticsearch log hook")
		} else {
			logger.AddHook(hook)
		}
	}

	if cfg.LogstashAddr != "" {
		conn, err := net.Dial("udp", cfg.LogstashAddr)
		if err != nil {
			logger.WithError(err).Warn("logstash log hook")
		} else {
			logger.AddHook(logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": appName})))
		}
	}

	return logger
}

// RequestLogger logs one line per request through logger.
func RequestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			switch {
			case v.Status >= 500:
				entry.WithError(v.Error).Error("request")
			case v.Status >= 400:
				entry.Warn("request")
			default:
				entry.Info("request")
			}
			return nil
		},
	})
}
