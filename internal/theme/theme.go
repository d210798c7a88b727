package theme

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/daytally/internal/storage"
)

const ioTimeout = 2 * time.Second

// Controller holds the light/dark preference. The zero preference is dark.
type Controller struct {
	kv        storage.KV
	namespace string
	logger    *log.Logger
	light     bool
}

func NewController(kv storage.KV, namespace string, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{kv: kv, namespace: namespace, logger: logger}
}

// Load reads the persisted flag; anything unreadable resets to dark.
func (c *Controller) Load() bool {
	c.light = false
	if c.kv == nil {
		return c.light
	}
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()
	raw, err := c.kv.Load(ctx, c.namespace)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Warn("could not load theme", "namespace", c.namespace, "err", err)
		}
		return c.light
	}
	var light bool
	if err := json.Unmarshal(raw, &light); err != nil {
		c.logger.Warn("discarding malformed theme", "namespace", c.namespace, "err", err)
		return c.light
	}
	c.light = light
	return c.light
}

func (c *Controller) Light() bool { return c.light }

func (c *Controller) Toggle() bool {
	c.Set(!c.light)
	return c.light
}

func (c *Controller) Set(light bool) {
	c.light = light
	c.save()
}

func (c *Controller) save() {
	if c.kv == nil {
		return
	}
	payload, _ := json.Marshal(c.light)
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()
	if err := c.kv.Save(ctx, c.namespace, payload); err != nil {
		c.logger.Warn("could not save theme", "namespace", c.namespace, "err", err)
	}
}
