// Package mock provides an in-memory [mqtt.Client] for tests.
package mock

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/uomgrade/log"
)

// Message is a message published through a [Client].
type Message struct {
	Topic    string
	QoS      byte
	Retained bool
	Payload  []byte
}

// Client is an [mqtt.Client] that never touches the network. Subscribing
// to a topic immediately delivers the messages queued for it with
// [Client.Deliver], and everything published is recorded.
type Client struct {
	connected bool

	opts      *mqtt.ClientOptions
	w         io.Writer
	queued    map[string][][]byte
	published []Message
	notify    chan struct{}
	pubErr    error
	mu        sync.Mutex
}

// NewClient returns a new Client. If w is not nil, every published
// message is also written to w as a JSON object keyed by topic.
func NewClient(o *mqtt.ClientOptions, w io.Writer) *Client {
	if o == nil {
		o = mqtt.NewClientOptions()
	}
	return &Client{
		opts:   o,
		w:      w,
		queued: make(map[string][][]byte),
		notify: make(chan struct{}, 1),
	}
}

// Deliver queues payload to be delivered to the next subscriber of topic.
func (c *Client) Deliver(topic string, payload []byte) {
	c.mu.Lock()
	c.queued[topic] = append(c.queued[topic], payload)
	c.mu.Unlock()
}

// SetPublishError makes every following publish complete with err. The
// message is still recorded.
func (c *Client) SetPublishError(err error) {
	c.mu.Lock()
	c.pubErr = err
	c.mu.Unlock()
}

// Published returns a copy of the messages published so far.
func (c *Client) Published() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.published...)
}

// Notify receives a value after every publish.
func (c *Client) Notify() <-chan struct{} {
	return c.notify
}

func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Client) IsConnectionOpen() bool {
	return c.IsConnected()
}

func (c *Client) Connect() mqtt.Token {
	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()
	if c.opts.OnConnect != nil {
		c.opts.OnConnect(c)
	}
	return &mqtt.DummyToken{}
}

func (c *Client) Disconnect(_ uint) {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
}

func (c *Client) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	var p []byte
	switch v := payload.(type) {
	case []byte:
		p = v
	case string:
		p = []byte(v)
	}

	c.mu.Lock()
	c.published = append(c.published, Message{Topic: topic, QoS: qos, Retained: retained, Payload: p})
	if c.w != nil {
		raw := json.RawMessage(p)
		if !json.Valid(p) {
			raw, _ = json.Marshal(string(p))
		}
		if err := json.NewEncoder(c.w).Encode(map[string]json.RawMessage{topic: raw}); err != nil {
			log.Error("Error encoding "+topic, err)
		}
	}
	pubErr := c.pubErr
	c.mu.Unlock()

	select {
	case c.notify <- struct{}{}:
	default:
	}
	if pubErr != nil {
		return errToken{pubErr}
	}
	return &mqtt.DummyToken{}
}

func (c *Client) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	queued := c.queued[topic]
	delete(c.queued, topic)
	c.mu.Unlock()

	for _, payload := range queued {
		callback(c, &message{topic: topic, qos: qos, payload: payload})
	}
	return &mqtt.DummyToken{}
}

func (c *Client) SubscribeMultiple(filters map[string]byte, callback mqtt.MessageHandler) mqtt.Token {
	for topic, qos := range filters {
		c.Subscribe(topic, qos, callback)
	}
	return &mqtt.DummyToken{}
}

func (c *Client) Unsubscribe(topics ...string) mqtt.Token {
	return &mqtt.DummyToken{}
}

func (c *Client) AddRoute(topic string, callback mqtt.MessageHandler) {}

func (c *Client) OptionsReader() mqtt.ClientOptionsReader {
	return mqtt.NewOptionsReader(c.opts)
}

type message struct {
	topic   string
	qos     byte
	payload []byte
}

func (m *message) Duplicate() bool   { return false }
func (m *message) Qos() byte         { return m.qos }
func (m *message) Retained() bool    { return false }
func (m *message) MessageID() uint16 { return 0 }
func (m *message) Ack()              {}
func (m *message) Topic() string     { return m.topic }
func (m *message) Payload() []byte   { return m.payload }

// errToken is a completed [mqtt.Token] that failed with err.
type errToken struct {
	err error
}

func (errToken) Wait() bool                       { return true }
func (errToken) WaitTimeout(_ time.Duration) bool { return true }
func (t errToken) Error() error                   { return t.err }

func (errToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
