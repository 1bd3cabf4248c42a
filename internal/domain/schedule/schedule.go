package schedule

import (
	"errors"
	"time"
)

var ErrUnknownTaskType = errors.New("unknown task type")

type TaskType string

const (
	TaskAllocationRun       TaskType = "allocation_run"
	TaskDailyNotification   TaskType = "daily_notification"
	TaskWeeklyNotification  TaskType = "weekly_notification"
	TaskRequestReminder     TaskType = "request_reminder"
	TaskSoftInterruptUpdate TaskType = "soft_interrupt_update"
)

func ParseTaskType(value string) (TaskType, error) {
	switch TaskType(value) {
	case TaskAllocationRun, TaskDailyNotification, TaskWeeklyNotification,
		TaskRequestReminder, TaskSoftInterruptUpdate:
		return TaskType(value), nil
	default:
		return "", ErrUnknownTaskType
	}
}

// Schedule records when a recurring task next runs. A run that fails must
// not advance NextRun, so the next poll retries it.
type Schedule struct {
	Task    TaskType
	NextRun time.Time
}

// IsDue reports whether the task falls due within the given horizon of now.
// A zero horizon means "due right now".
func (s Schedule) IsDue(now time.Time, within time.Duration) bool {
	return !s.NextRun.After(now.Add(within))
}
