package models

import "time"

// Project is a container tasks are grouped under. Projects are reference
// data in this application: they are seeded from configuration and have no
// edit or delete operations.
type Project struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
