package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
)

// Worker runs Asynq task handlers (task reminders, webhook delivery).
type Worker struct {
	srv     *asynq.Server
	mux     *asynq.ServeMux
	emitter ports.WebhookEmitter
	log     zerolog.Logger
}

// NewWorker creates an Asynq server and registers handlers. Call Run() to start.
func NewWorker(redisOpt asynq.RedisClientOpt, emitter ports.WebhookEmitter, log zerolog.Logger) *Worker {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
		LogLevel:    asynq.InfoLevel,
	})
	mux := asynq.NewServeMux()
	w := &Worker{srv: srv, mux: mux, emitter: emitter, log: log}
	mux.HandleFunc(TypeTaskReminder, w.handleTaskReminder)
	mux.HandleFunc(TypeWebhook, w.handleWebhook)
	return w
}

func (w *Worker) handleTaskReminder(ctx context.Context, t *asynq.Task) error {
	var p taskReminderPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		w.log.Error().Err(err).Msg("task reminder payload invalid")
		return err
	}
	// Dev: log the reminder; production would push/email the user.
	w.log.Info().
		Str("user_id", p.UserID).
		Str("plan_title", p.PlanTitle).
		Str("task_title", p.TaskTitle).
		Str("starts_at", p.StartsAt).
		Msg("task reminder (log only; configure a push channel for delivery)")
	return nil
}

func (w *Worker) handleWebhook(ctx context.Context, t *asynq.Task) error {
	var event ports.PlanEvent
	if err := json.Unmarshal(t.Payload(), &event); err != nil {
		w.log.Error().Err(err).Msg("webhook task payload invalid")
		return err
	}
	if w.emitter == nil {
		w.log.Debug().Str("event", event.Event).Msg("webhook task (no emitter configured)")
		return nil
	}
	return w.emitter.Emit(ctx, event)
}

// Run blocks until shutdown. Use Shutdown for graceful stop.
func (w *Worker) Run() error {
	return w.srv.Run(w.mux)
}

// Shutdown stops the worker.
func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}
