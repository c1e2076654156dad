package main

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"roomorganizer/config"
	"roomorganizer/internal/bootstrap"
)

type commandContext struct {
	jsonFlag *bool

	appOnce sync.Once
	app     *bootstrap.App
	appErr  error
}

func newCommandContext(jsonFlag *bool) *commandContext {
	return &commandContext{jsonFlag: jsonFlag}
}

// ensureApp loads configuration and wires the services once per invocation.
func (c *commandContext) ensureApp(ctx context.Context) (*bootstrap.App, error) {
	c.appOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			c.appErr = err
			return
		}
		c.app, c.appErr = bootstrap.New(ctx, cfg, config.NewLogger())
	})
	return c.app, c.appErr
}

func (c *commandContext) close() {
	if c.app != nil {
		c.app.Close()
	}
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
