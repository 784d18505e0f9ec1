package company

import "time"

type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// LikedCompany is a company annotated with its membership in the Liked collection.
type LikedCompany struct {
	Company
	Liked bool
}
