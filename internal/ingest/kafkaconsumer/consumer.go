// Package kafkaconsumer drains position reports from Kafka and warms the
// encode cache with them.
package kafkaconsumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"github.com/mohammed-shakir/csquares-cache/internal/core/model"
	obs "github.com/mohammed-shakir/csquares-cache/internal/core/observability"
	"github.com/mohammed-shakir/csquares-cache/internal/ingest"
)

// Encoder is the cache-warming seam; satisfied by squares.Service.
type Encoder interface {
	Encode(ctx context.Context, lat, lng float64, decimals int) (model.SquareResponse, error)
}

type Consumer struct {
	cfg             Config
	logger          *slog.Logger
	enc             Encoder
	defaultDecimals int
}

func New(cfg Config, logger *slog.Logger, enc Encoder, defaultDecimals int) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{cfg: cfg, logger: logger, enc: enc, defaultDecimals: defaultDecimals}
}

// Start joins the consumer group and processes reports until ctx is
// cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	if c.enc == nil {
		return errors.New("kafkaconsumer: missing encoder")
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_1_0_0
	cfg.Consumer.Group.Session.Timeout = c.cfg.SessionTimeout
	cfg.Consumer.Group.Heartbeat.Interval = c.cfg.Heartbeat
	cfg.Consumer.Group.Rebalance.Timeout = c.cfg.RebalanceTimeout
	if c.cfg.InitialOffsetOldest {
		cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	}
	cfg.Consumer.Offsets.AutoCommit.Enable = true

	group, err := sarama.NewConsumerGroup(c.cfg.Brokers, c.cfg.GroupID, cfg)
	if err != nil {
		return fmt.Errorf("create consumer group: %w", err)
	}
	defer func() { _ = group.Close() }()

	handler := &groupHandler{process: c.ProcessOne}

	c.logger.Info("position ingest consumer starting",
		"brokers", c.cfg.Brokers, "topic", c.cfg.Topic, "group", c.cfg.GroupID)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("position ingest consumer shutting down")
			return nil
		default:
			if err := group.Consume(ctx, []string{c.cfg.Topic}, handler); err != nil {
				c.logger.Error("consumer error", "err", err)
				time.Sleep(2 * time.Second)
			}
		}
	}
}

// ProcessOne handles a single position report message. Malformed reports
// are counted and skipped without failing the claim; encode errors fail it
// so the message is retried.
func (c *Consumer) ProcessOne(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var rep ingest.PositionReport
	if err := json.Unmarshal(msg.Value, &rep); err != nil {
		obs.IncIngest("decode_error")
		c.logger.Warn("undecodable position report",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "err", err)
		return nil
	}
	if err := rep.Validate(); err != nil {
		obs.IncIngest("invalid")
		c.logger.Warn("invalid position report",
			"source", rep.Source, "offset", msg.Offset, "err", err)
		return nil
	}

	decimals := c.defaultDecimals
	if rep.Decimals != nil {
		decimals = *rep.Decimals
	}

	resp, err := c.enc.Encode(ctx, rep.Lat, rep.Lng, decimals)
	if err != nil {
		obs.IncIngest("encode_error")
		return fmt.Errorf("encode report (source=%s, off=%d): %w", rep.Source, msg.Offset, err)
	}

	obs.IncIngest("ok")
	c.logger.Debug("position report encoded",
		"source", rep.Source, "identifier", resp.Identifier)
	return nil
}
