package collection

import "time"

type Collection struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Membership links a company to a collection. The pair is unique.
type Membership struct {
	CollectionID string
	CompanyID    int64
}

// LikedCollection is the resolved reference to the collection that backs the
// "liked" flag on companies. It is looked up once at startup.
type LikedCollection struct {
	ID   string
	Name string
}

// Is reports whether collectionID refers to the Liked collection.
func (l LikedCollection) Is(collectionID string) bool {
	return l.ID != "" && l.ID == collectionID
}
