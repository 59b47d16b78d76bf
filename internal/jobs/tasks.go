package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the queue every ledger job runs on.
	QueueDefault = "default"
	// TaskProjectRepair recomputes projects whose cached remaining amount drifted.
	TaskProjectRepair = "ledger:project_repair"
)

// ProjectRepairPayload selects the companies to repair. An empty CompanyID
// repairs every active company as the system user.
type ProjectRepairPayload struct {
	CompanyID   string `json:"companyID,omitempty"`
	RequestedBy string `json:"requestedBy,omitempty"`
}

// NewProjectRepairTask constructs a project repair task.
func NewProjectRepairTask(payload ProjectRepairPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskProjectRepair, data), nil
}

// Client submits jobs to the queue.
type Client struct {
	client *asynq.Client
}

// NewClient constructs an asynq client.
func NewClient(redisOpts asynq.RedisConnOpt) *Client {
	return &Client{client: asynq.NewClient(redisOpts)}
}

// EnqueueProjectRepair schedules a repair of one company on behalf of userID.
// It returns the id of the queued task.
func (c *Client) EnqueueProjectRepair(ctx context.Context, companyID, userID string) (string, error) {
	task, err := NewProjectRepairTask(ProjectRepairPayload{CompanyID: companyID, RequestedBy: userID})
	if err != nil {
		return "", err
	}
	info, err := c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault), asynq.MaxRetry(3))
	if err != nil {
		return "", fmt.Errorf("failed to enqueue project repair: %w", err)
	}
	return info.ID, nil
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.client.Close()
}
