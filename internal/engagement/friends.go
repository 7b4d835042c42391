package engagement

import (
	"context"
)

// StatusPending is the only friend-request status the app produces.
const StatusPending = "pending"

// FriendRequest is an outgoing friend request awaiting acceptance.
type FriendRequest struct {
	ID         int64  `json:"id"`
	UserName   string `json:"userName"`
	AvatarText string `json:"avatarText"`
	Status     string `json:"status"`
}

// Friend is an accepted friend.
type Friend struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EnqueueResult is the outcome of EnqueueFriendRequest.
type EnqueueResult int

const (
	// Created means a new pending request was persisted.
	Created EnqueueResult = iota
	// AlreadyPending means a request to that user already existed; nothing changed.
	AlreadyPending
)

func (r EnqueueResult) String() string {
	switch r {
	case Created:
		return "created"
	case AlreadyPending:
		return "already_pending"
	default:
		return "unknown"
	}
}

// EnqueueFriendRequest appends a pending request for userName unless one
// already exists. On AlreadyPending the existing request is returned.
func (s *Store) EnqueueFriendRequest(ctx context.Context, userName, avatarText string) (FriendRequest, EnqueueResult) {
	pending := s.PendingRequests(ctx)
	for _, r := range pending {
		if r.UserName == userName {
			s.metrics.FriendRequests.WithLabelValues(AlreadyPending.String()).Inc()
			return r, AlreadyPending
		}
	}

	req := FriendRequest{
		ID:         s.clock.Now().UnixMilli(),
		UserName:   userName,
		AvatarText: avatarText,
		Status:     StatusPending,
	}
	s.writeJSON(ctx, KeyFriendRequests, append(pending, req))
	s.metrics.FriendRequests.WithLabelValues(Created.String()).Inc()
	s.log.Debug("friend request enqueued", "user", userName, "id", req.ID)
	return req, Created
}

// HasPendingRequest reports whether a request to userName exists.
func (s *Store) HasPendingRequest(ctx context.Context, userName string) bool {
	for _, r := range s.PendingRequests(ctx) {
		if r.UserName == userName {
			return true
		}
	}
	return false
}

// PendingRequests returns the request queue in insertion order.
func (s *Store) PendingRequests(ctx context.Context) []FriendRequest {
	var reqs []FriendRequest
	s.readJSON(ctx, KeyFriendRequests, &reqs)
	return reqs
}

// Friends returns the friend list.
func (s *Store) Friends(ctx context.Context) []Friend {
	var friends []Friend
	s.readJSON(ctx, KeyFriends, &friends)
	return friends
}

// RemoveFriend deletes the friend with id and reports whether one was removed.
func (s *Store) RemoveFriend(ctx context.Context, id int64) bool {
	friends := s.Friends(ctx)
	kept := friends[:0]
	removed := false
	for _, f := range friends {
		if f.ID == id {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		return false
	}
	s.writeJSON(ctx, KeyFriends, kept)
	return true
}
