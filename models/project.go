package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const DefaultDescription = "No description"

type Project struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	TeamMembers []primitive.ObjectID `bson:"teamMembers" json:"teamMembers"`
}

// ProjectView is a project with its team members resolved.
type ProjectView struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	TeamMembers []Team             `json:"teamMembers"`
}

// ProjectRef is the short form of a project embedded in task listings.
type ProjectRef struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}
