package client

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/ubiwhere/go-postal-codes/internal/queue/task"
)

// Client enqueues country import tasks for the background worker.
type Client struct {
	inner *asynq.Client
}

func New(opts asynq.RedisConnOpt) *Client {
	return &Client{
		inner: asynq.NewClient(opts),
	}
}

func (c *Client) EnqueueImport(ctx context.Context, sourceName string) (*asynq.TaskInfo, error) {
	t, err := task.NewImportCountryTask(sourceName)
	if err != nil {
		return nil, err
	}
	info, err := c.inner.EnqueueContext(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("enqueue import country task failed: %w", err)
	}
	return info, nil
}

func (c *Client) Close() error {
	return c.inner.Close()
}
