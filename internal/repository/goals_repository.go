package repository

import (
	"context"
	"errors"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/pkg/entity"
)

type GoalsRepository struct {
	store *Store
}

func NewGoalsRepo(store *Store) *GoalsRepository {
	return &GoalsRepository{
		store: store,
	}
}

// cloneGoal detaches the optional subject pointer from the stored row.
func cloneGoal(g entity.Goal) *entity.Goal {
	if g.SubjectID != nil {
		sid := *g.SubjectID
		g.SubjectID = &sid
	}
	return &g
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) (int, error) {
	if goal == nil {
		return 0, errors.New("goal is nil")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	gr.store.mu.Lock()
	defer gr.store.mu.Unlock()
	id := gr.store.goals.insert(func(id int) entity.Goal {
		g := cloneGoal(*goal)
		g.ID = id
		return *g
	})
	return id, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id int) (*entity.Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	gr.store.mu.RLock()
	defer gr.store.mu.RUnlock()
	goal, ok := gr.store.goals.get(id)
	if !ok {
		return nil, errorvalues.ErrGoalNotFound
	}
	return cloneGoal(goal), nil
}

func (gr *GoalsRepository) ListByUser(ctx context.Context, uid int) ([]*entity.Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	gr.store.mu.RLock()
	defer gr.store.mu.RUnlock()
	goals := make([]*entity.Goal, 0)
	gr.store.goals.each(func(g entity.Goal) {
		if g.UserID == uid {
			goals = append(goals, cloneGoal(g))
		}
	})
	return goals, nil
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gr.store.mu.Lock()
	defer gr.store.mu.Unlock()
	current, ok := gr.store.goals.get(goal.ID)
	if !ok {
		return errorvalues.ErrGoalNotFound
	}
	updated := cloneGoal(*goal)
	updated.UserID = current.UserID
	gr.store.goals.replace(goal.ID, *updated)
	return nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gr.store.mu.Lock()
	defer gr.store.mu.Unlock()
	if !gr.store.goals.remove(id) {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}
