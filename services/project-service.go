package services

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-manager/backend/logging"
	"task-manager/backend/models"
)

const (
	projectNotFound = "Project not found"
	projectConflict = "Project with this name already exists"
)

type ProjectInput struct {
	Name        string
	Description string
	TeamMembers []primitive.ObjectID
}

type ProjectUpdate struct {
	Name        omit.Val[string]
	Description omit.Val[string]
	TeamMembers omit.Val[[]primitive.ObjectID]
}

type ProjectService struct {
	projects ProjectRepository
	teams    TeamRepository
}

func NewProjectService(projects ProjectRepository, teams TeamRepository) *ProjectService {
	return &ProjectService{projects: projects, teams: teams}
}

// List returns a page of projects with team members resolved.
func (s *ProjectService) List(ctx context.Context, p Pagination) (*Page[models.ProjectView], error) {
	total, err := s.projects.Count(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "count projects")
	}

	projects, err := s.projects.Find(ctx, bson.M{}, p.Skip(), int64(p.Limit))
	if err != nil {
		return nil, errors.Wrap(err, "list projects")
	}

	views, err := s.populate(ctx, projects)
	if err != nil {
		return nil, err
	}

	return &Page[models.ProjectView]{Items: views, Page: p.Page, Pages: p.Pages(total)}, nil
}

func (s *ProjectService) populate(ctx context.Context, projects []models.Project) ([]models.ProjectView, error) {
	groups := make([][]primitive.ObjectID, 0, len(projects))
	for _, project := range projects {
		groups = append(groups, project.TeamMembers)
	}

	members, err := teamsByID(ctx, s.teams, uniqueIDs(groups...))
	if err != nil {
		return nil, err
	}

	views := make([]models.ProjectView, 0, len(projects))
	for _, project := range projects {
		views = append(views, models.ProjectView{
			ID:          project.ID,
			Name:        project.Name,
			Description: project.Description,
			TeamMembers: pick(members, project.TeamMembers),
		})
	}
	return views, nil
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	_, err := s.projects.FindByName(ctx, in.Name)
	found, err := exists(err)
	if err != nil {
		return nil, errors.Wrap(err, "check project name")
	}
	if found {
		logging.Logger.Warnf("Event ID: PROJECT_CREATE_CONFLICT, Description: Project '%s' already exists", in.Name)
		return nil, NewError(ErrorCodeConflict, projectConflict)
	}

	project := &models.Project{
		Name:        in.Name,
		Description: in.Description,
		TeamMembers: in.TeamMembers,
	}
	if project.Description == "" {
		project.Description = models.DefaultDescription
	}
	if project.TeamMembers == nil {
		project.TeamMembers = []primitive.ObjectID{}
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, classify(err, projectNotFound, projectConflict)
	}

	logging.Logger.Infof("Event ID: PROJECT_CREATED, Description: Project %s created", project.ID.Hex())
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id primitive.ObjectID, in ProjectUpdate) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, projectNotFound, projectConflict)
	}

	if name, ok := in.Name.Get(); ok && name != project.Name {
		other, err := s.projects.FindByName(ctx, name)
		taken, err := exists(err)
		if err != nil {
			return nil, errors.Wrap(err, "check project name")
		}
		if taken && other.ID != project.ID {
			return nil, NewError(ErrorCodeConflict, projectConflict)
		}
		project.Name = name
	}
	if description, ok := in.Description.Get(); ok {
		project.Description = description
	}
	if members, ok := in.TeamMembers.Get(); ok {
		if members == nil {
			members = []primitive.ObjectID{}
		}
		project.TeamMembers = members
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, classify(err, projectNotFound, projectConflict)
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return classify(err, projectNotFound, projectConflict)
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return classify(err, projectNotFound, projectConflict)
	}

	logging.Logger.Infof("Event ID: PROJECT_DELETED, Description: Project %s removed", id.Hex())
	return nil
}

// teamsByID loads the given team members in one query, keyed by id.
func teamsByID(ctx context.Context, teams TeamRepository, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Team, error) {
	byID := make(map[primitive.ObjectID]models.Team, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	found, err := teams.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "load team members")
	}
	for _, team := range found {
		byID[team.ID] = team
	}
	return byID, nil
}

// pick returns the records for ids in order, dropping ids that no longer resolve.
func pick(byID map[primitive.ObjectID]models.Team, ids []primitive.ObjectID) []models.Team {
	out := make([]models.Team, 0, len(ids))
	for _, id := range ids {
		if team, ok := byID[id]; ok {
			out = append(out, team)
		}
	}
	return out
}
