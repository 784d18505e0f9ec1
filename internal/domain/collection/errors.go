package collection

import "errors"

var (
	ErrCollectionNotFound      = errors.New("collection not found")
	ErrLikedCollectionNotFound = errors.New("liked collection not found")
	ErrMembershipUpdateFailed  = errors.New("failed to update collection memberships")
)
