package domain

import "time"

// Organization anchors invitation links and the approval ownership check:
// accounts registered into an organization are approved by its owner.
type Organization struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
