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
	teamNotFound = "Team member not found"
	teamConflict = "Team member with this email already exists"
)

type TeamInput struct {
	Name        string
	Email       string
	Designation string
}

// TeamUpdate carries only the fields the client supplied.
type TeamUpdate struct {
	Name        omit.Val[string]
	Email       omit.Val[string]
	Designation omit.Val[string]
}

type TeamService struct {
	teams TeamRepository
}

func NewTeamService(teams TeamRepository) *TeamService {
	return &TeamService{teams: teams}
}

func (s *TeamService) List(ctx context.Context, p Pagination) (*Page[models.Team], error) {
	total, err := s.teams.Count(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "count team members")
	}

	teams, err := s.teams.Find(ctx, bson.M{}, p.Skip(), int64(p.Limit))
	if err != nil {
		return nil, errors.Wrap(err, "list team members")
	}

	return &Page[models.Team]{Items: teams, Page: p.Page, Pages: p.Pages(total)}, nil
}

func (s *TeamService) Create(ctx context.Context, in TeamInput) (*models.Team, error) {
	_, err := s.teams.FindByEmail(ctx, in.Email)
	found, err := exists(err)
	if err != nil {
		return nil, errors.Wrap(err, "check team member email")
	}
	if found {
		logging.Logger.Warnf("Event ID: TEAM_CREATE_CONFLICT, Description: Team member with email '%s' already exists", in.Email)
		return nil, NewError(ErrorCodeConflict, teamConflict)
	}

	team := &models.Team{
		Name:        in.Name,
		Email:       in.Email,
		Designation: in.Designation,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, classify(err, teamNotFound, teamConflict)
	}

	logging.Logger.Infof("Event ID: TEAM_CREATED, Description: Team member %s created", team.ID.Hex())
	return team, nil
}

func (s *TeamService) Update(ctx context.Context, id primitive.ObjectID, in TeamUpdate) (*models.Team, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, teamNotFound, teamConflict)
	}

	if email, ok := in.Email.Get(); ok && email != team.Email {
		other, err := s.teams.FindByEmail(ctx, email)
		taken, err := exists(err)
		if err != nil {
			return nil, errors.Wrap(err, "check team member email")
		}
		if taken && other.ID != team.ID {
			return nil, NewError(ErrorCodeConflict, teamConflict)
		}
		team.Email = email
	}
	if name, ok := in.Name.Get(); ok {
		team.Name = name
	}
	if designation, ok := in.Designation.Get(); ok {
		team.Designation = designation
	}

	if err := s.teams.Update(ctx, team); err != nil {
		return nil, classify(err, teamNotFound, teamConflict)
	}
	return team, nil
}

func (s *TeamService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.teams.FindByID(ctx, id); err != nil {
		return classify(err, teamNotFound, teamConflict)
	}
	if err := s.teams.Delete(ctx, id); err != nil {
		return classify(err, teamNotFound, teamConflict)
	}

	logging.Logger.Infof("Event ID: TEAM_DELETED, Description: Team member %s removed", id.Hex())
	return nil
}
