package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/company-mgmt/company-api-backend/internal/storage"
	taskdomain "github.com/company-mgmt/company-api-backend/internal/tasks/domain"
	taskrepo "github.com/company-mgmt/company-api-backend/internal/tasks/repository"
	"github.com/company-mgmt/company-api-backend/internal/templates/domain"
	"github.com/company-mgmt/company-api-backend/internal/templates/repository"
)

func TestAssign_FansOutOneTaskPerCompany(t *testing.T) {
	ctx := context.Background()
	templates := repository.NewMemoryRepo()
	tasks := taskrepo.NewMemoryRepo()

	tpl, err := templates.Create(ctx, &domain.TaskTemplate{
		UserID:      "u1",
		Title:       "Quarterly filing",
		Description: "due at quarter end",
	})
	require.NoError(t, err)

	svc := NewAssignService(templates, tasks)
	created, err := svc.Assign(ctx, tpl.ID, AssignInput{
		CompanyIDs: []string{"c1", "c2"},
		StartDate:  "2024-01-01",
		DueDate:    "2024-03-31",
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	byCompany := map[string]taskdomain.Task{}
	for _, task := range created {
		byCompany[task.CompanyID] = task
		assert.Equal(t, "Quarterly filing", task.Title)
		assert.Equal(t, "due at quarter end", task.Description)
		assert.Equal(t, "2024-01-01", task.StartDate)
		assert.Equal(t, "2024-03-31", task.DueDate)
		assert.NotEmpty(t, task.ID)
	}
	assert.Contains(t, byCompany, "c1")
	assert.Contains(t, byCompany, "c2")

	// tasks are real documents, not references to the template
	stored, err := tasks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestAssign_UnknownTemplate(t *testing.T) {
	svc := NewAssignService(repository.NewMemoryRepo(), taskrepo.NewMemoryRepo())

	_, err := svc.Assign(context.Background(), "missing", AssignInput{CompanyIDs: []string{"c1"}})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

type failingAfter struct {
	inner   *taskrepo.MemoryRepo
	allowed int
	calls   int
}

func (f *failingAfter) Create(ctx context.Context, task *taskdomain.Task) (*taskdomain.Task, error) {
	f.calls++
	if f.calls > f.allowed {
		return nil, storage.ErrUnavailable
	}
	return f.inner.Create(ctx, task)
}

func TestAssign_FailFastKeepsEarlierTasks(t *testing.T) {
	ctx := context.Background()
	templates := repository.NewMemoryRepo()

	tpl, err := templates.Create(ctx, &domain.TaskTemplate{Title: "t"})
	require.NoError(t, err)

	tasks := &failingAfter{inner: taskrepo.NewMemoryRepo(), allowed: 1}
	svc := NewAssignService(templates, tasks)

	created, err := svc.Assign(ctx, tpl.ID, AssignInput{CompanyIDs: []string{"c1", "c2", "c3"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrUnavailable))

	// fail-fast: first create landed, the loop stopped at the second
	assert.Len(t, created, 1)
	assert.Equal(t, 2, tasks.calls)
}
