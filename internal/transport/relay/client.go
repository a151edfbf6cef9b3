// internal/transport/relay/client.go
package relay

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Client subscribes to a pub/sub relay topic and retains the newest
// message, giving the poll loop "get latest" semantics over a push
// transport. The publisher sets the retained flag, so a fresh subscriber
// receives the last snapshot immediately.
//
// Reconnects are handled by the MQTT library; while disconnected the
// last received payload keeps being served and staleness does the rest.
type Client struct {
	client mqtt.Client

	mu     sync.Mutex
	latest []byte
}

// Config is minimal transport config.
type Config struct {
	Broker  string // e.g. tcp://host:1883
	Topic   string
	Timeout time.Duration
}

// New connects and subscribes. Fails fast when the broker is unreachable
// at startup; later drops are silent reconnects.
func New(cfg Config) (*Client, error) {
	if cfg.Broker == "" {
		return nil, errors.New("relay: broker required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("relay: topic required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	c := &Client{}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(fmt.Sprintf("ion-monitor-%d", time.Now().UnixNano()))
	opts.SetConnectTimeout(cfg.Timeout)
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Minute)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Printf("relay: connection lost: %v", err)
	})
	opts.SetOnConnectHandler(func(cl mqtt.Client) {
		// (Re)subscribe on every connect; subscriptions are not
		// preserved across clean sessions.
		token := cl.Subscribe(cfg.Topic, 0, c.onMessage)
		token.Wait()
		if token.Error() != nil {
			log.Printf("relay: subscribe %s: %v", cfg.Topic, token.Error())
		}
	})

	c.client = mqtt.NewClient(opts)

	token := c.client.Connect()
	if !token.WaitTimeout(cfg.Timeout) {
		return nil, fmt.Errorf("relay: connect %s: timeout", cfg.Broker)
	}
	if token.Error() != nil {
		return nil, fmt.Errorf("relay: connect %s: %w", cfg.Broker, token.Error())
	}

	return c, nil
}

func (c *Client) onMessage(_ mqtt.Client, msg mqtt.Message) {
	payload := msg.Payload()
	buf := make([]byte, len(payload))
	copy(buf, payload)

	c.mu.Lock()
	c.latest = buf
	c.mu.Unlock()
}

// FetchLatest returns the newest payload seen on the topic, or empty
// before the first message arrives.
func (c *Client) FetchLatest() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.latest == nil {
		return nil, nil
	}
	out := make([]byte, len(c.latest))
	copy(out, c.latest)
	return out, nil
}

// Close disconnects from the broker.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	c.client.Disconnect(250)
	return nil
}
