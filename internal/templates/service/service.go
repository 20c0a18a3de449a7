// Package service holds the one piece of business logic that is more than a
// pass-through store call: fanning a template out into tasks.
package service

import (
	"context"

	taskdomain "github.com/company-mgmt/company-api-backend/internal/tasks/domain"
	"github.com/company-mgmt/company-api-backend/internal/templates/repository"
)

// TaskCreator is the slice of the task store the fan-out needs.
type TaskCreator interface {
	Create(ctx context.Context, t *taskdomain.Task) (*taskdomain.Task, error)
}

type AssignService struct {
	templates repository.Store
	tasks     TaskCreator
}

func NewAssignService(templates repository.Store, tasks TaskCreator) *AssignService {
	return &AssignService{templates: templates, tasks: tasks}
}

type AssignInput struct {
	CompanyIDs []string
	StartDate  string
	DueDate    string
}

// Assign creates one task per company id, copying the template's title and
// description. Policy on partial failure: fail fast. The loop stops at the
// first store error and returns it together with the tasks created so far;
// nothing is rolled back, since the store offers no transaction spanning the
// writes. Company ids are not checked for existence, matching the rest of
// the API.
func (s *AssignService) Assign(ctx context.Context, templateID string, in AssignInput) ([]taskdomain.Task, error) {
	tpl, err := s.templates.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	created := make([]taskdomain.Task, 0, len(in.CompanyIDs))
	for _, companyID := range in.CompanyIDs {
		task := &taskdomain.Task{
			CompanyID:   companyID,
			Title:       tpl.Title,
			Description: tpl.Description,
			StartDate:   in.StartDate,
			DueDate:     in.DueDate,
		}

		out, err := s.tasks.Create(ctx, task)
		if err != nil {
			return created, err
		}
		created = append(created, *out)
	}

	return created, nil
}
