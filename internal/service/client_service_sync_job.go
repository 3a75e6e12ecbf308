package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/MKhiriev/go-clip-relay/internal/workers"
)

type clientSyncJob struct {
	watcher ChangeWatcher
	puller  SyncPuller
	cfg     *config.DeviceConfig

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that runs watcher.Tick on the
// watch interval and puller.Tick on the poll interval. The job is idle until
// Start is called.
func NewClientSyncJob(watcher ChangeWatcher, puller SyncPuller, cfg *config.DeviceConfig, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		watcher: watcher,
		puller:  puller,
		cfg:     cfg,
		logger:  logger,
	}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches both loops as workers.Periodic in a background goroutine. The
// loops exit when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	group := workers.NewWorkers(
		workers.NewPeriodic("watcher", j.cfg.WatchInterval, j.watcher.Tick, j.logger),
		workers.NewPeriodic("puller", j.cfg.PollInterval, j.puller.Tick, j.logger),
	)

	go func() {
		defer j.wg.Done()
		if err := group.Run(jobCtx); err != nil {
			j.logger.Error().Err(err).Msg("sync loops stopped")
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background loops and blocks
// until they have fully exited. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
