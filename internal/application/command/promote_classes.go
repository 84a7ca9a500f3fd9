package command

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/session"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// PROMOTE CLASSES COMMAND
// Advances every student's class by one grade at year end. Class names that
// do not parse as "<grade>-<suffix>", and grade 12, stay as they are.
// ══════════════════════════════════════════════════════════════════════════════

// PromoteClassesCommand promotes the whole student body.
type PromoteClassesCommand struct{}

// PromoteClassesResult reports promoted and unchanged students.
type PromoteClassesResult struct {
	Promoted  int
	Unchanged int
}

// PromoteClassesHandler handles PromoteClassesCommand.
type PromoteClassesHandler struct {
	students records.StudentRepository
	log      *logger.Logger
}

// NewPromoteClassesHandler creates the handler.
func NewPromoteClassesHandler(students records.StudentRepository, log *logger.Logger) *PromoteClassesHandler {
	return &PromoteClassesHandler{students: students, log: log}
}

// Handle promotes in one load, rewrite, save session.
func (h *PromoteClassesHandler) Handle(ctx context.Context, cmd PromoteClassesCommand) (*PromoteClassesResult, error) {
	sess, err := session.Begin(h.students, func(s records.StudentRecord) string { return s.ID })
	if err != nil {
		return nil, err
	}

	result := &PromoteClassesResult{}
	students := sess.All()
	for i := range students {
		next, promoted := records.PromoteClassName(students[i].ClassName)
		if !promoted {
			result.Unchanged++
			continue
		}
		students[i].ClassName = next
		result.Promoted++
	}

	if err := sess.Commit(); err != nil {
		return nil, err
	}

	h.log.Info("classes promoted",
		logger.Int("promoted", result.Promoted),
		logger.Int("unchanged", result.Unchanged))
	return result, nil
}
