package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ErrBadSchedule is returned for rotation times and intervals cron cannot run.
var ErrBadSchedule = errors.New("bad schedule")

// SchedulerService runs board rotations on a cron schedule.
type SchedulerService struct {
	cron *cron.Cron
	log  *zap.Logger
}

func NewSchedulerService(loc *time.Location, log *zap.Logger) *SchedulerService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SchedulerService{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		log: log,
	}
}

// ScheduleDaily registers a daily job at the given HH:MM time string.
func (s *SchedulerService) ScheduleDaily(timeStr string, job func()) (cron.EntryID, error) {
	spec, err := dailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	s.log.Debug("schedule daily", zap.String("at", timeStr), zap.String("spec", spec))
	return s.cron.AddFunc(spec, job)
}

// ScheduleInterval registers a periodic job every given duration, rounded
// down to whole seconds.
func (s *SchedulerService) ScheduleInterval(interval time.Duration, job func()) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("%w: interval %s must be positive", ErrBadSchedule, interval)
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	spec := fmt.Sprintf("@every %ds", seconds)
	s.log.Debug("schedule interval", zap.String("spec", spec))
	return s.cron.AddFunc(spec, job)
}

// Next returns the next activation time of the entry.
func (s *SchedulerService) Next(id cron.EntryID) time.Time {
	return s.cron.Entry(id).Next
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs.
func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// dailySpec turns a wall-clock "15:04" time into a six-field cron spec
// that fires once a day on the zero second.
func dailySpec(at string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(at))
	if err != nil {
		return "", fmt.Errorf("%w: daily time %q, want HH:MM", ErrBadSchedule, at)
	}
	return fmt.Sprintf("0 %d %d * * *", t.Minute(), t.Hour()), nil
}
