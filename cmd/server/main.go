package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/db"
	"pondlink.io/starterbox-settings-service/pkg/engine"
	sbxHttp "pondlink.io/starterbox-settings-service/pkg/http"
	"pondlink.io/starterbox-settings-service/pkg/mqtt"
	"pondlink.io/starterbox-settings-service/pkg/store"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	sbxDbType := os.Getenv(common.EnvKeySBXDBType)
	switch sbxDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown SBX_DB_TYPE: " + sbxDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeySBXHttpHostPort))
	brokerURL := strings.TrimSpace(os.Getenv(common.EnvKeySBXMqttBrokerURL))
	defaultGatewayTitle := strings.TrimSpace(os.Getenv(common.EnvKeySBXDefaultGatewayTitle))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeySBXDefaultRate), 64); err != nil {
		log.Fatal("Invalid SBX_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeySBXDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid SBX_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	connectTimeout := envMillis(common.EnvKeySBXMqttConnectTimeoutMs, 5000)
	reconnectBackoff := envMillis(common.EnvKeySBXMqttReconnectBackoffMs, 10000)

	logger := common.GetLogger()

	storeCore := store.Store{
		Db: *dbInstance,
	}
	storeCore.WithServices(store.ServiceOpts{
		Settings: storeCore.GetISettings(),
		Limits:   storeCore.GetILimits(),
		History:  storeCore.GetIHistory(),
	})

	var newPublisher engine.PublisherFactory
	if brokerURL != "" {
		newPublisher = func() (engine.Publisher, error) {
			return mqtt.NewClient(mqtt.Config{
				BrokerURL:        brokerURL,
				ConnectTimeout:   connectTimeout,
				ReconnectBackoff: reconnectBackoff,
			})
		}

		// long-lived subscription for device config acks
		ackClient, err := mqtt.NewClient(mqtt.Config{
			BrokerURL:        brokerURL,
			ClientID:         "starterbox-settings-acks",
			ConnectTimeout:   connectTimeout,
			ReconnectBackoff: reconnectBackoff,
		})
		if err != nil {
			log.Fatalf("failed to connect ack listener to broker: %v", err)
		}
		if err := mqtt.ListenForStatus(ackClient, storeCore.History); err != nil {
			log.Fatalf("failed to subscribe to device status topic: %v", err)
		}
		logger.Info("Listening for device status", zap.String("broker", brokerURL))
	} else {
		logger.Warn("SBX_MQTT_BROKER_URL not set, panels will open without a device connection")
	}

	panels := engine.NewManager(engine.ManagerOpts{
		Settings:            storeCore.GetISettings(),
		Limits:              storeCore.GetILimits(),
		NewPublisher:        newPublisher,
		DefaultGatewayTitle: defaultGatewayTitle,
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &sbxHttp.RestfulServer{
		Server:           gin.Default(),
		Store:            &storeCore,
		Panels:           panels,
		RateLimiterStore: store.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}

func envMillis(key string, fallback int64) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return time.Duration(fallback) * time.Millisecond
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid %s, should be milliseconds as an int value", key)
	}
	return time.Duration(ms) * time.Millisecond
}
