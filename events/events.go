// Package events publishes notifications about the changes the relay makes on GitHub.
package events

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"github.com/icecrime/ghrelay/configuration"

	nsq "github.com/nsqio/go-nsq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// IssueCreated is the message published when an issue is opened through the relay.
type IssueCreated struct {
	Repository string    `json:"repository"`
	Title      string    `json:"title"`
	IssueURL   string    `json:"issue_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// Publisher publishes relay events.
type Publisher interface {
	PublishIssueCreated(evt IssueCreated) error
	Stop()
}

const (
	// QueueSize is the number of events an AsyncPublisher buffers before dropping new ones.
	QueueSize = 64

	// DialTimeout bounds connection attempts to nsqd.
	DialTimeout = 500 * time.Millisecond
)

// New returns an NSQ backed publisher when configured, and a no-op one otherwise. The NSQ
// publisher runs in the background.
func New(c configuration.NSQConfig) (Publisher, error) {
	if !c.Enabled() {
		return NopPublisher{}, nil
	}
	p, err := NewNSQPublisher(c)
	if err != nil {
		return nil, err
	}
	return NewAsyncPublisher(p, QueueSize), nil
}

// NopPublisher discards all events.
type NopPublisher struct{}

func (NopPublisher) PublishIssueCreated(IssueCreated) error { return nil }

func (NopPublisher) Stop() {}

type producer interface {
	Publish(topic string, body []byte) error
	Stop()
}

// NSQPublisher publishes events to an nsqd instance.
type NSQPublisher struct {
	producer producer
	topic    string
}

// NewNSQPublisher returns a new NSQPublisher instance.
func NewNSQPublisher(c configuration.NSQConfig) (*NSQPublisher, error) {
	logger := log.New(os.Stderr, "", log.Flags())
	config := nsq.NewConfig()
	config.DialTimeout = DialTimeout
	p, err := nsq.NewProducer(c.NSQDAddr, config)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create producer for %q", c.NSQDAddr)
	}
	p.SetLogger(logger, nsq.LogLevelWarning)

	logrus.WithField("nsqd", c.NSQDAddr).WithField("topic", c.Topic).Info("publishing issue events")
	return &NSQPublisher{producer: p, topic: c.Topic}, nil
}

// PublishIssueCreated synchronously publishes the event.
func (p *NSQPublisher) PublishIssueCreated(evt IssueCreated) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return errors.Wrapf(p.producer.Publish(p.topic, body), "failed to publish to topic %q", p.topic)
}

// Stop disconnects from nsqd.
func (p *NSQPublisher) Stop() {
	p.producer.Stop()
}

// AsyncPublisher hands events over to another publisher from a background goroutine. Failures
// are logged, and events are dropped when the queue is full.
type AsyncPublisher struct {
	next  Publisher
	queue chan IssueCreated
	done  chan struct{}

	mu      sync.RWMutex
	stopped bool
}

// NewAsyncPublisher returns a new AsyncPublisher instance and starts its goroutine.
func NewAsyncPublisher(next Publisher, size int) *AsyncPublisher {
	p := &AsyncPublisher{
		next:  next,
		queue: make(chan IssueCreated, size),
		done:  make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *AsyncPublisher) run() {
	defer close(p.done)
	for evt := range p.queue {
		if err := p.next.PublishIssueCreated(evt); err != nil {
			logrus.WithField("error", err).WithField("issue_url", evt.IssueURL).Warn("publishing issue event")
		}
	}
}

// PublishIssueCreated queues the event without waiting for it to be published.
func (p *AsyncPublisher) PublishIssueCreated(evt IssueCreated) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return errors.New("publisher is stopped")
	}

	select {
	case p.queue <- evt:
		return nil
	default:
		return errors.Errorf("event queue full, dropping event for %q", evt.IssueURL)
	}
}

// Stop publishes the queued events, then stops the underlying publisher.
func (p *AsyncPublisher) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	p.next.Stop()
}
