// Package bridge grades answers received over MQTT.
//
// Requests are published to <prefix>/grade as JSON:
//
//	{"id": "q1", "input": "celsius", "target": "kelvin", "control": "70", "answer": "343.15"}
//
// and each verdict is published to <prefix>/answer:
//
//	{"id": "q1", "verdict": "correct", "expected": 343.15}
//
// A message on <prefix>/bridge/stop stops the bridge.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/uomgrade"
	"github.com/lone-faerie/uomgrade/config"
	"github.com/lone-faerie/uomgrade/log"
	"github.com/lone-faerie/uomgrade/tolerance"
)

// Number is a numeric value given as either a JSON number or a JSON string.
// It is kept as text so that malformed values are graded rather than
// rejected while decoding.
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	*n = Number(b)
	return nil
}

// Request is the payload of a grade request.
type Request struct {
	ID      string `json:"id,omitempty"`
	Input   string `json:"input"`
	Target  string `json:"target"`
	Control Number `json:"control"`
	Answer  Number `json:"answer"`
}

// Response is the payload published for every request.
type Response struct {
	ID       string           `json:"id,omitempty"`
	Verdict  uomgrade.Verdict `json:"verdict"`
	Expected *float64         `json:"expected,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// Bridge is the mqtt client that grades requests from the mqtt broker.
type Bridge struct {
	client mqtt.Client
	grader atomic.Pointer[uomgrade.Grader]

	prefix      string
	statusTopic string
	statusSet   bool
	qos         byte

	requests chan mqtt.Message

	ready chan struct{}
	done  chan struct{}
	err   error

	once   sync.Once
	cancel context.CancelFunc
}

// New returns a new Bridge with the given config and options. The config is
// used to fill in any values not provided by the options. The bridge must
// have [Bridge.Start] called on it before it may be used.
func New(cfg *config.Config, opts ...Option) *Bridge {
	b := &Bridge{}

	for _, opt := range opts {
		opt(b)
	}

	if b.client == nil {
		b.client = mqtt.NewClient(cfg.MQTT.ClientOptions())
		WithLogLevel(cfg.MQTT.LogLevel)(b)
	}

	if b.grader.Load() == nil {
		b.grader.Store(uomgrade.New(uomgrade.WithProfile(cfg.Tolerance.Profile)))
	}

	if b.prefix == "" {
		b.prefix = cfg.TopicPrefix
	}

	if !b.statusSet && cfg.MQTT.BirthWillEnabled {
		b.statusTopic = cfg.MQTT.StatusTopic
	}

	if b.qos == 0 {
		b.qos = cfg.MQTT.QoS
	}

	return b
}

// Topic returns the full topic name of the given bridge topic.
func (b *Bridge) Topic(name string) string {
	return b.prefix + "/" + name
}

// SetProfile replaces the tolerance profile used for following requests.
func (b *Bridge) SetProfile(p tolerance.Profile) {
	log.Info("Tolerance changed", "profile", p)
	b.grader.Store(uomgrade.New(uomgrade.WithProfile(p)))
}

// Profile returns the tolerance profile currently used by the bridge.
func (b *Bridge) Profile() tolerance.Profile {
	return b.grader.Load().Profile()
}

// waitToken waits for the first of ctx.Done() or t.Done() and returns t.Error(), or nil if
// ctx.Done() finished first.
func waitToken(ctx context.Context, t mqtt.Token) error {
	select {
	case <-ctx.Done():
		return nil
	case <-t.Done():
	}

	return t.Error()
}

// maybeSend sends t on ch, unless the given context is cancelled before it can send.
func maybeSend[T any](ctx context.Context, ch chan<- T, t T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- t:
		return true
	}
}

// nilToken implements [mqtt.Token] with a nil channel.
type nilToken struct{}

func (nilToken) Wait() bool                       { return true }
func (nilToken) WaitTimeout(_ time.Duration) bool { return true }
func (nilToken) Done() <-chan struct{}            { return nil }
func (nilToken) Error() error                     { return nil }

// Grade grades the request payload. A payload that is not a valid request
// yields an [uomgrade.Invalid] response. Expected is omitted when it is
// not finite, since JSON has no representation for it.
func (b *Bridge) Grade(payload []byte) Response {
	var req Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return Response{Verdict: uomgrade.Invalid, Error: err.Error()}
	}

	res := b.grader.Load().Grade(req.Input, req.Target, string(req.Control), string(req.Answer))
	resp := Response{ID: req.ID, Verdict: res.Verdict}
	switch {
	case res.Err != nil:
		resp.Error = res.Err.Error()
	case !math.IsInf(res.Expected, 0) && !math.IsNaN(res.Expected):
		resp.Expected = &res.Expected
	}
	return resp
}

func (b *Bridge) publishStatus(status string) mqtt.Token {
	if b.statusTopic == "" {
		return nilToken{}
	}
	return b.client.Publish(b.statusTopic, 1, true, status)
}

// loop is the event loop for the bridge and publishes a response for every
// request received.
func (b *Bridge) loop(ctx context.Context) {
	defer func() {
		if b.client.IsConnected() || b.client.IsConnectionOpen() {
			b.publishStatus("offline").WaitTimeout(time.Second)
			b.client.Disconnect(500)
		}

		close(b.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-b.requests:
			resp := b.Grade(msg.Payload())
			log.Debug("Graded", "id", resp.ID, "verdict", resp.Verdict)

			data, err := json.Marshal(resp)
			if err != nil {
				log.Error("Unable to marshal response", err, "id", resp.ID)
				break
			}

			go logToken(b.client.Publish(b.Topic("answer"), b.qos, false, data), resp.ID)
		}
	}
}

// logToken waits for the publish of an answer and logs its error, if any.
func logToken(t mqtt.Token, id string) {
	<-t.Done()
	if err := t.Error(); err != nil {
		log.Error("Unable to publish answer", err, "id", id)
	}
}

func (b *Bridge) start(ctx context.Context) {
	defer close(b.ready)

	go b.loop(ctx)

	t := b.client.Subscribe(b.Topic("grade"), b.qos, func(_ mqtt.Client, msg mqtt.Message) {
		msg.Ack()
		maybeSend(ctx, b.requests, msg)
	})
	if err := waitToken(ctx, t); err != nil {
		b.err = err
		return
	}

	t = b.client.Subscribe(b.Topic("bridge/stop"), 0, func(_ mqtt.Client, _ mqtt.Message) {
		go b.Stop()
	})
	if err := waitToken(ctx, t); err != nil {
		b.err = err
		return
	}

	if err := waitToken(ctx, b.publishStatus("online")); err != nil {
		b.err = err
	}
}

var errNotStarted = errors.New("bridge not started")

// Start connects to the broker and starts handling requests. Start returns
// once connected, use [Bridge.Ready] to wait for the subscriptions.
func (b *Bridge) Start(ctx context.Context) error {
	t := b.client.Connect()
	if err := waitToken(ctx, t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b.once.Do(func() {
		b.ready = make(chan struct{})
		b.done = make(chan struct{})
		b.requests = make(chan mqtt.Message)

		ctx, b.cancel = context.WithCancel(ctx)

		go b.start(ctx)
	})

	return nil
}

// Stop stops the bridge and waits for it to disconnect.
func (b *Bridge) Stop() {
	log.Debug("Stopping bridge")

	if b.ready == nil {
		return
	}

	<-b.ready
	b.cancel()
	<-b.done
}

// Ready is closed once the bridge has subscribed to its topics. If there was
// an error subscribing, it is returned by [Bridge.Error].
func (b *Bridge) Ready() <-chan struct{} {
	return b.ready
}

// Done is closed once the bridge has stopped.
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}

func (b *Bridge) Error() error {
	if b.ready == nil {
		return errNotStarted
	}
	return b.err
}
