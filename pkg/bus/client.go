package bus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// Client provides a high-level interface to the pub/sub broker.
type Client struct {
	cfg    Config
	logger *slog.Logger
	topics *Topics

	mu     sync.RWMutex
	conn   mqtt.Client
	closed bool

	// Stats
	messagesSent     atomic.Int64
	messagesReceived atomic.Int64
	reconnectCount   atomic.Int64
}

// New creates a new bus client.
// Call Connect() to establish the broker session.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "d1-" + uuid.NewString()[:8]
	}

	return &Client{
		cfg:    cfg,
		logger: logger,
		topics: NewTopics(cfg.DomainID),
	}, nil
}

// Connect establishes the broker session.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return io.ErrClosedPipe
	}
	if c.conn != nil && c.conn.IsConnected() {
		return nil // Already connected
	}

	c.logger.Info("connecting to broker",
		"broker", c.cfg.Broker,
		"client_id", c.cfg.ClientID,
		"domain", c.cfg.DomainID,
	)

	opts := mqtt.NewClientOptions()
	opts.AddBroker(c.cfg.Broker)
	opts.SetClientID(c.cfg.ClientID)
	opts.SetConnectTimeout(c.cfg.ConnectTimeout)
	opts.SetAutoReconnect(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		c.reconnectCount.Add(1)
		c.logger.Warn("broker connection lost", "error", err)
	})

	conn := mqtt.NewClient(opts)

	token := conn.Connect()
	select {
	case <-ctx.Done():
		conn.Disconnect(0)
		return ctx.Err()
	case <-token.Done():
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}

	c.conn = conn
	c.logger.Info("connected to broker", "broker", c.cfg.Broker)
	return nil
}

// ConnectWithRetry connects with automatic retry on failure.
func (c *Client) ConnectWithRetry(ctx context.Context) error {
	attempts := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := c.Connect(ctx)
		if err == nil {
			return nil
		}

		attempts++

		if c.cfg.MaxReconnectAttempts > 0 && attempts >= c.cfg.MaxReconnectAttempts {
			return fmt.Errorf("max reconnect attempts (%d) reached: %w", c.cfg.MaxReconnectAttempts, err)
		}

		c.logger.Warn("broker connection failed, retrying",
			"error", err,
			"attempt", attempts,
			"retry_in", c.cfg.ReconnectInterval,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.cfg.ReconnectInterval):
		}
	}
}

// Topics returns the topics helper for this client's domain.
func (c *Client) Topics() *Topics {
	return c.topics
}

// IsConnected returns true if the client has a live broker session.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.closed && c.conn.IsConnected()
}

// Publish publishes data to a topic.
func (c *Client) Publish(topic string, data []byte) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	token := conn.Publish(topic, 0, false, data)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	c.messagesSent.Add(1)
	return nil
}

// Subscribe subscribes to a topic and calls the handler for each message.
func (c *Client) Subscribe(topic string, handler func(data []byte)) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	token := conn.Subscribe(topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		c.messagesReceived.Add(1)
		handler(msg.Payload())
	})
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	c.logger.Debug("subscribed to topic", "topic", topic)
	return nil
}

// Close closes the broker session and releases resources.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.conn != nil {
		c.conn.Disconnect(250)
		c.conn = nil
	}

	c.logger.Info("bus client closed")
	return nil
}

// Stats returns client statistics.
func (c *Client) Stats() ClientStats {
	c.mu.RLock()
	connected := c.conn != nil && !c.closed && c.conn.IsConnected()
	c.mu.RUnlock()

	return ClientStats{
		Connected:        connected,
		MessagesSent:     c.messagesSent.Load(),
		MessagesReceived: c.messagesReceived.Load(),
		ReconnectCount:   c.reconnectCount.Load(),
	}
}

// ClientStats contains client statistics.
type ClientStats struct {
	Connected        bool  `json:"connected"`
	MessagesSent     int64 `json:"messages_sent"`
	MessagesReceived int64 `json:"messages_received"`
	ReconnectCount   int64 `json:"reconnect_count"`
}
