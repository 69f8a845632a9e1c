package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/farhananowshin/SkillBridge/internal/logging"
	"github.com/farhananowshin/SkillBridge/internal/service"
)

const TopicAssignmentReminders = "assignment.reminders"

// ReminderWorker periodically finds assignments approaching their due
// date and nudges every enrolled student who has not submitted yet.
type ReminderWorker struct {
	assignmentRepo service.AssignmentRepository
	events         service.EventProducer
	logger         *logging.Logger
	interval       time.Duration
	window         time.Duration
}

func NewReminderWorker(
	assignmentRepo service.AssignmentRepository,
	events service.EventProducer,
	logger *logging.Logger,
	interval time.Duration,
	window time.Duration,
) *ReminderWorker {
	return &ReminderWorker{
		assignmentRepo: assignmentRepo,
		events:         events,
		logger:         logger,
		interval:       interval,
		window:         window,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "reminder worker stopped")
			return
		case <-ticker.C:
			w.processReminders(ctx)
		}
	}
}

func (w *ReminderWorker) processReminders(ctx context.Context) {
	assignments, err := w.assignmentRepo.FindAssignmentsDueSoon(ctx, w.window)
	if err != nil {
		w.logger.Error(ctx, "failed to get assignments due soon", zap.Error(err))
		return
	}

	for _, assignment := range assignments {
		students, err := w.assignmentRepo.FindStudentsMissingSubmission(ctx, assignment.Id)
		if err != nil {
			w.logger.Error(ctx, "failed to find students missing submission",
				zap.String("assignment_id", assignment.Id.String()),
				zap.Error(err),
			)
			continue
		}

		for _, studentID := range students {
			message := map[string]interface{}{
				"assignment_id": assignment.Id,
				"course_id":     assignment.CourseId,
				"student_id":    studentID,
				"title":         assignment.Title,
				"due_date":      assignment.DueDate,
			}

			if err := w.events.Send(ctx, TopicAssignmentReminders, message); err != nil {
				w.logger.Error(ctx, "failed to send reminder",
					zap.String("assignment_id", assignment.Id.String()),
					zap.Error(err),
				)
				continue
			}
		}

		if len(students) > 0 {
			w.logger.Info(ctx, "sent reminders",
				zap.String("assignment_id", assignment.Id.String()),
				zap.Int("students", len(students)),
			)
		}
	}
}
