// Package sms sends order confirmation messages through the Bonga-style SMS
// gateway. The gateway is treated as an opaque external service: one
// form-encoded POST per notification, any 2xx is success.
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Config carries the gateway endpoint and account credentials. They are
// injected explicitly so the client can be pointed at a fake gateway in tests.
type Config struct {
	BaseURL   string
	Key       string
	Secret    string
	ClientID  string
	ServiceID string
	Timeout   time.Duration
}

// Notification is the transient payload for one confirmation attempt. Phone
// must already be in canonical international form.
type Notification struct {
	FullName string
	Phone    string
	OrderID  int64
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient builds a gateway client with a bounded request timeout, so a slow
// gateway cannot stall order placement indefinitely.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Send issues a single synchronous notification attempt. There is no retry;
// the caller decides what a failure means. For order placement it means
// nothing: the order is already committed.
func (c *Client) Send(ctx context.Context, n Notification) error {
	form := url.Values{}
	form.Set("apiClientID", c.cfg.ClientID)
	form.Set("secret", c.cfg.Secret)
	form.Set("key", c.cfg.Key)
	form.Set("txtMessage", confirmationMessage(n.FullName, n.OrderID))
	form.Set("MSISDN", n.Phone)
	form.Set("serviceID", c.cfg.ServiceID)
	form.Set("enqueue", "yes")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	// Drain so the connection can be reused; the gateway body is not used.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("send sms: gateway returned status %d", resp.StatusCode)
	}

	c.logger.Info("order confirmation sent",
		zap.Int64("order_id", n.OrderID),
		zap.String("msisdn", n.Phone),
	)
	return nil
}

func confirmationMessage(name string, orderID int64) string {
	return "Dear " + name + ", your order no " + strconv.FormatInt(orderID, 10) +
		" has been successfully placed, one of our agents will contact you within an hour"
}
