package services

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-manager/backend/logging"
	"task-manager/backend/models"
)

const (
	taskNotFound = "Task not found"
	taskConflict = "Task with this title already exists"
)

type TaskInput struct {
	Title           string
	Description     string
	Deadline        time.Time
	Project         primitive.ObjectID
	AssignedMembers []primitive.ObjectID
	Status          models.TaskStatus
}

type TaskUpdate struct {
	Title           omit.Val[string]
	Description     omit.Val[string]
	Deadline        omit.Val[time.Time]
	Project         omit.Val[primitive.ObjectID]
	AssignedMembers omit.Val[[]primitive.ObjectID]
	Status          omit.Val[models.TaskStatus]
}

type TaskService struct {
	tasks    TaskRepository
	projects ProjectRepository
	teams    TeamRepository
}

func NewTaskService(tasks TaskRepository, projects ProjectRepository, teams TeamRepository) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, teams: teams}
}

// List returns a filtered page of tasks with project and assignees resolved.
func (s *TaskService) List(ctx context.Context, f TaskFilter, p Pagination) (*Page[models.TaskView], error) {
	filter, err := BuildTaskFilter(f)
	if err != nil {
		return nil, err
	}

	total, err := s.tasks.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "count tasks")
	}

	tasks, err := s.tasks.Find(ctx, filter, p.Skip(), int64(p.Limit))
	if err != nil {
		return nil, errors.Wrap(err, "list tasks")
	}

	views, err := s.populate(ctx, tasks)
	if err != nil {
		return nil, err
	}

	return &Page[models.TaskView]{Items: views, Page: p.Page, Pages: p.Pages(total)}, nil
}

func (s *TaskService) populate(ctx context.Context, tasks []models.Task) ([]models.TaskView, error) {
	projectIDs := make([]primitive.ObjectID, 0, len(tasks))
	memberGroups := make([][]primitive.ObjectID, 0, len(tasks))
	for _, task := range tasks {
		projectIDs = append(projectIDs, task.Project)
		memberGroups = append(memberGroups, task.AssignedMembers)
	}

	projects := make(map[primitive.ObjectID]models.ProjectRef)
	if ids := uniqueIDs(projectIDs); len(ids) > 0 {
		found, err := s.projects.FindByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "load task projects")
		}
		for _, project := range found {
			projects[project.ID] = models.ProjectRef{ID: project.ID, Name: project.Name}
		}
	}

	members, err := teamsByID(ctx, s.teams, uniqueIDs(memberGroups...))
	if err != nil {
		return nil, err
	}

	views := make([]models.TaskView, 0, len(tasks))
	for _, task := range tasks {
		view := models.TaskView{
			ID:              task.ID,
			Title:           task.Title,
			Description:     task.Description,
			Deadline:        task.Deadline,
			AssignedMembers: pick(members, task.AssignedMembers),
			Status:          task.Status,
		}
		if ref, ok := projects[task.Project]; ok {
			view.Project = &ref
		}
		views = append(views, view)
	}
	return views, nil
}

// Suggest returns up to SuggestionLimit titles starting with prefix.
func (s *TaskService) Suggest(ctx context.Context, prefix string) ([]string, error) {
	if prefix == "" {
		return []string{}, nil
	}

	titles, err := s.tasks.FindTitles(ctx, TitlePrefixFilter(prefix), SuggestionLimit)
	if err != nil {
		return nil, errors.Wrap(err, "suggest task titles")
	}
	return titles, nil
}

func (s *TaskService) Create(ctx context.Context, in TaskInput) (*models.Task, error) {
	_, err := s.tasks.FindByTitle(ctx, in.Title)
	found, err := exists(err)
	if err != nil {
		return nil, errors.Wrap(err, "check task title")
	}
	if found {
		logging.Logger.Warnf("Event ID: TASK_CREATE_CONFLICT, Description: Task '%s' already exists", in.Title)
		return nil, NewError(ErrorCodeConflict, taskConflict)
	}

	if err := s.requireProject(ctx, in.Project); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:           in.Title,
		Description:     in.Description,
		Deadline:        in.Deadline,
		Project:         in.Project,
		AssignedMembers: in.AssignedMembers,
		Status:          in.Status,
	}
	if task.Description == "" {
		task.Description = models.DefaultDescription
	}
	if task.Status == "" {
		task.Status = models.StatusToDo
	}
	if err := validStatus(task.Status); err != nil {
		return nil, err
	}
	if task.AssignedMembers == nil {
		task.AssignedMembers = []primitive.ObjectID{}
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, classify(err, taskNotFound, taskConflict)
	}

	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task %s created in project %s", task.ID.Hex(), task.Project.Hex())
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id primitive.ObjectID, in TaskUpdate) (*models.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, taskNotFound, taskConflict)
	}

	if title, ok := in.Title.Get(); ok && title != task.Title {
		other, err := s.tasks.FindByTitle(ctx, title)
		taken, err := exists(err)
		if err != nil {
			return nil, errors.Wrap(err, "check task title")
		}
		if taken && other.ID != task.ID {
			return nil, NewError(ErrorCodeConflict, taskConflict)
		}
		task.Title = title
	}
	if project, ok := in.Project.Get(); ok && project != task.Project {
		if err := s.requireProject(ctx, project); err != nil {
			return nil, err
		}
		task.Project = project
	}
	if description, ok := in.Description.Get(); ok {
		task.Description = description
	}
	if deadline, ok := in.Deadline.Get(); ok {
		task.Deadline = deadline
	}
	if members, ok := in.AssignedMembers.Get(); ok {
		if members == nil {
			members = []primitive.ObjectID{}
		}
		task.AssignedMembers = members
	}
	if status, ok := in.Status.Get(); ok {
		if err := validStatus(status); err != nil {
			return nil, err
		}
		task.Status = status
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, classify(err, taskNotFound, taskConflict)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.tasks.FindByID(ctx, id); err != nil {
		return classify(err, taskNotFound, taskConflict)
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return classify(err, taskNotFound, taskConflict)
	}

	logging.Logger.Infof("Event ID: TASK_DELETED, Description: Task %s removed", id.Hex())
	return nil
}

func (s *TaskService) requireProject(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.projects.FindByID(ctx, id)
	found, err := exists(err)
	if err != nil {
		return errors.Wrap(err, "check task project")
	}
	if !found {
		return validationError("Referenced project does not exist")
	}
	return nil
}
