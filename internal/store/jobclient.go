package store

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"
)

// AsynqJobClient is the concrete JobClient backed by Redis.
var _ JobClient = (*AsynqJobClient)(nil)

type AsynqJobClient struct {
	client *asynq.Client
}

func NewAsynqJobClient(redisAddr, password string, db int) *AsynqJobClient {
	cli := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})
	return &AsynqJobClient{client: cli}
}

func (jc *AsynqJobClient) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if jc.client == nil {
		return nil, fmt.Errorf("job client is not initialized")
	}
	info, err := jc.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return nil, fmt.Errorf("enqueue task %s: %w", task.Type(), err)
	}
	log.Debugf("enqueued task type=%s id=%s queue=%s", task.Type(), info.ID, info.Queue)
	return info, nil
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}
