package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	"github.com/wsjobs/go-job-board/internal/mail"
)

const TaskSendJobPostedEmail = "task:send_job_posted_email"

type PayloadSendJobPostedEmail struct {
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
}

// DistributeTaskSendJobPostedEmail distributes the task of sending an email
// to the employer after their job was published.
func (distributor *RedisTaskDistributor) DistributeTaskSendJobPostedEmail(
	ctx context.Context,
	payload *PayloadSendJobPostedEmail,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskSendJobPostedEmail, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).
		Msg("enqueued task")

	return nil
}

// ProcessTaskSendJobPostedEmail processes the task of sending an email
// to the employer after their job was published.
func (processor *RedisTaskProcessor) ProcessTaskSendJobPostedEmail(ctx context.Context, task *asynq.Task) error {
	var payload PayloadSendJobPostedEmail
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	data := mail.Data{
		To:      []string{payload.Email},
		Subject: "Your job listing is live",
		Content: fmt.Sprintf(`Hello %s,<br/>
	Your job listing <b>%s</b> at <b>%s</b> has been published and is now visible to job seekers.<br/>
	Thank you for posting with us!`, payload.FullName, payload.JobTitle, payload.CompanyName),
	}

	err := processor.emailSender.SendEmail(data)
	if err != nil {
		return fmt.Errorf("failed to send job posted email: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("email", payload.Email).Msg("processed task")

	return nil
}
