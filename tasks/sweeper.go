package tasks

import (
	"os"
	"strconv"
	"sync"
	"time"

	"tuneloom-backend/utils"
)

const defaultSweepInterval = 5 * time.Minute

// Sweeper runs the maintenance batches periodically in the background.
// The same batches are also exposed on the admin maintenance endpoints for
// ad hoc runs.
type Sweeper struct {
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSweeper reads SWEEP_INTERVAL_MINUTES (default 5).
func NewSweeper() *Sweeper {
	interval := defaultSweepInterval
	if v := os.Getenv("SWEEP_INTERVAL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			interval = time.Duration(minutes) * time.Minute
		}
	}
	return &Sweeper{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	utils.LogInfo("Starting the maintenance sweeper")
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runOnce()

		for {
			select {
			case <-ticker.C:
				s.runOnce()
			case <-s.stopChan:
				return
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
	utils.LogInfo("Maintenance sweeper stopped")
}

func (s *Sweeper) runOnce() {
	if _, err := RepairStuckSongs(); err != nil {
		utils.LogError(err, "Stuck-song repair sweep failed")
	}
	if _, err := ClearFinishedTaskIDs(); err != nil {
		utils.LogError(err, "Task-id cleanup sweep failed")
	}
	if _, err := CleanupAbandonedProfiles(); err != nil {
		utils.LogError(err, "Abandoned-profile cleanup sweep failed")
	}
}
