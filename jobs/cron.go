package jobs

import (
	"time"

	"github.com/robfig/cron/v3"

	"stayhub/services/logger"
)

var jobLog logger.Logger = logger.NewDefaultLogger(logger.InfoLevel)

// StayCompleter marks confirmed bookings whose checkout date has passed
type StayCompleter interface {
	CompleteElapsed(now time.Time) (int64, error)
}

var stayCompleter StayCompleter

// SetStayCompleter installs the implementation used by the nightly sweep
func SetStayCompleter(completer StayCompleter) {
	stayCompleter = completer
}

// InitCronJobs registers scheduled jobs and starts the scheduler
func InitCronJobs(c *cron.Cron) error {
	// Nightly at midnight: close out stays that have ended
	_, err := c.AddFunc("0 0 * * *", func() {
		if stayCompleter == nil {
			jobLog.Error("stay completion sweep skipped: no completer installed")
			return
		}
		now := time.Now()
		n, err := stayCompleter.CompleteElapsed(now)
		if err != nil {
			jobLog.Error("stay completion sweep failed: %v", err)
			return
		}
		if n > 0 {
			jobLog.Info("stay completion sweep marked %d bookings completed", n)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	jobLog.Info("cron jobs initialized")
	return nil
}
