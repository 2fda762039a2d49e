// Package notify publishes finalized schedules to downstream consumers
// such as wall displays or home-automation hooks.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/lmercadier/timetable/core/planner"
	"github.com/lmercadier/timetable/infra/logger"
	"github.com/lmercadier/timetable/pkg/export"
)

// Config defines the MQTT announcement settings.
type Config struct {
	Enabled        bool   `json:"enabled"`
	Broker         string `json:"broker"`
	Topic          string `json:"topic"`
	ClientID       string `json:"client_id"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Topic == "" {
		c.Topic = "timetable/schedule"
	}
	if c.ClientID == "" {
		c.ClientID = "timetable-" + uuid.NewString()[:8]
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 5
	}
}

// Validate checks mandatory fields when announcements are enabled.
func (c Config) Validate() error {
	if c.Enabled && c.Broker == "" {
		return fmt.Errorf("notify broker is required")
	}
	return nil
}

// payload is the wire shape of an announcement.
type payload struct {
	RunID       string         `json:"run_id"`
	Date        string         `json:"date"`
	FinalEnergy float64        `json:"final_energy"`
	Entries     []export.Entry `json:"entries"`
}

// Announcer publishes finalized schedules over MQTT.
type Announcer struct {
	client  mqtt.Client
	topic   string
	timeout time.Duration
	log     logger.Logger
}

// New connects to the broker and returns a ready Announcer.
func New(cfg Config) (*Announcer, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	client := mqtt.NewClient(opts)
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	tok := client.Connect()
	if !tok.WaitTimeout(timeout) {
		return nil, fmt.Errorf("mqtt connect to %s: timeout", cfg.Broker)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", cfg.Broker, err)
	}
	return &Announcer{
		client:  client,
		topic:   cfg.Topic,
		timeout: timeout,
		log:     logger.New("notify"),
	}, nil
}

// Announce publishes the result as a retained JSON message so late
// subscribers still receive the day's schedule.
func (a *Announcer) Announce(res *planner.Result) error {
	body, err := json.Marshal(payload{
		RunID:       res.RunID,
		Date:        res.Date,
		FinalEnergy: res.FinalEnergy,
		Entries:     export.Entries(res),
	})
	if err != nil {
		return fmt.Errorf("marshal announcement: %w", err)
	}
	tok := a.client.Publish(a.topic, 1, true, body)
	if !tok.WaitTimeout(a.timeout) {
		return fmt.Errorf("publish to %s: timeout", a.topic)
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", a.topic, err)
	}
	a.log.Infof("announced schedule for %s on %s", res.Date, a.topic)
	return nil
}

// Close disconnects from the broker.
func (a *Announcer) Close() {
	a.client.Disconnect(uint(a.timeout.Milliseconds()))
}
