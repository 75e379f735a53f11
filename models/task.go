package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusToDo       TaskStatus = "to-do"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
	StatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone, StatusCancelled:
		return true
	}
	return false
}

type Task struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title           string               `bson:"title" json:"title"`
	Description     string               `bson:"description" json:"description"`
	Deadline        time.Time            `bson:"deadline" json:"deadline"`
	Project         primitive.ObjectID   `bson:"project" json:"project"`
	AssignedMembers []primitive.ObjectID `bson:"assignedMembers" json:"assignedMembers"`
	Status          TaskStatus           `bson:"status" json:"status"`
}

// TaskView is a task with its project and assignees resolved. Project is nil
// when the referenced project no longer exists.
type TaskView struct {
	ID              primitive.ObjectID `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Deadline        time.Time          `json:"deadline"`
	Project         *ProjectRef        `json:"project"`
	AssignedMembers []Team             `json:"assignedMembers"`
	Status          TaskStatus         `json:"status"`
}
