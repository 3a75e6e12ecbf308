package service

import (
	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
)

type ClientServices struct {
	State   *SyncState
	Watcher ChangeWatcher
	Puller  SyncPuller
	SyncJob ClientSyncJob
}

func NewClientServices(deps ClientDeps, cfg *config.DeviceConfig, logger *logger.Logger) *ClientServices {
	state := NewSyncState()
	watcher := NewChangeWatcher(deps, state, cfg, logger)
	puller := NewSyncPuller(deps, state, cfg, logger)

	return &ClientServices{
		State:   state,
		Watcher: watcher,
		Puller:  puller,
		SyncJob: NewClientSyncJob(watcher, puller, cfg, logger),
	}
}
