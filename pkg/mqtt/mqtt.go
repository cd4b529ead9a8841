package mqtt

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
	"pondlink.io/starterbox-settings-service/pkg/common"
)

type Config struct {
	BrokerURL string
	ClientID  string

	// ConnectTimeout bounds the initial connect; ReconnectBackoff is the
	// fixed retry period the underlying client uses after a lost connection.
	ConnectTimeout   time.Duration
	ReconnectBackoff time.Duration
}

// Client wraps the paho client with the surface the engine needs. One client
// is created per open settings panel and shared across its publishes.
type Client struct {
	cli mqtt.Client
}

// Handler receives raw messages from a subscription.
type Handler func(topic string, payload []byte)

func NewClient(cfg Config) (*Client, error) {
	logger := common.GetLoggerWith(common.LoggerNameMqttClient)

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "starterbox-settings-" + time.Now().Format("150405.000")
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.BrokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.ReconnectBackoff > 0 {
		opts.SetMaxReconnectInterval(cfg.ReconnectBackoff)
	}
	opts.OnConnect = func(c mqtt.Client) {
		logger.Info("Connected to broker", zap.String("broker", cfg.BrokerURL))
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		logger.Warn("Connection to broker lost", zap.Error(err))
	}

	cli := mqtt.NewClient(opts)

	token := cli.Connect()
	if cfg.ConnectTimeout > 0 {
		if !token.WaitTimeout(cfg.ConnectTimeout) {
			return nil, fmt.Errorf("connect to broker %s: timeout after %s", cfg.BrokerURL, cfg.ConnectTimeout)
		}
	} else {
		token.Wait()
	}
	if token.Error() != nil {
		return nil, fmt.Errorf("connect to broker %s: %w", cfg.BrokerURL, token.Error())
	}

	return &Client{cli: cli}, nil
}

func (c *Client) IsConnected() bool {
	return c.cli.IsConnected()
}

func (c *Client) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := c.cli.Publish(topic, qos, retained, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("publish to topic %s: %w", topic, token.Error())
	}
	return nil
}

func (c *Client) Subscribe(topic string, qos byte, handler Handler) error {
	token := c.cli.Subscribe(topic, qos, func(client mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("subscribe to topic %s: %w", topic, token.Error())
	}
	return nil
}

// Close disconnects best effort, allowing in-flight work 250ms to finish.
func (c *Client) Close() {
	c.cli.Disconnect(250)
}
