// File: /jobs/expiration_job.go
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Expirer moves stale records to their expired state and reports how many
// changed.
type Expirer interface {
	ExpireStale(ctx context.Context) (int64, error)
}

// Task is one named expiry run by the job.
type Task struct {
	Name    string
	Expirer Expirer
}

// ExpirationJob periodically expires stale payments and proposals.
type ExpirationJob struct {
	tasks    []Task
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	done    chan struct{}
	stopped sync.WaitGroup
	once    sync.Once
}

func NewExpirationJob(interval time.Duration, logger *slog.Logger, tasks ...Task) *ExpirationJob {
	timeout := interval / 2
	if timeout <= 0 || timeout > time.Minute {
		timeout = time.Minute
	}
	return &ExpirationJob{
		tasks:    tasks,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start runs the job once immediately and then on every tick.
func (j *ExpirationJob) Start() {
	j.logger.Info("expiration job started", "interval", j.interval)
	ticker := time.NewTicker(j.interval)

	j.stopped.Add(1)
	go func() {
		defer j.stopped.Done()
		defer ticker.Stop()

		j.RunOnce()
		for {
			select {
			case <-ticker.C:
				j.RunOnce()
			case <-j.done:
				j.logger.Info("expiration job stopped")
				return
			}
		}
	}()
}

// Stop signals the job and waits for the current run to finish.
func (j *ExpirationJob) Stop() {
	j.once.Do(func() { close(j.done) })
	j.stopped.Wait()
}

// RunOnce executes every task. A failing task does not stop the others.
func (j *ExpirationJob) RunOnce() {
	for _, task := range j.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		count, err := task.Expirer.ExpireStale(ctx)
		cancel()

		if err != nil {
			j.logger.Error("expiration failed", "task", task.Name, "error", err)
			continue
		}
		if count > 0 {
			j.logger.Info("expired stale records", "task", task.Name, "count", count)
		}
	}
}
