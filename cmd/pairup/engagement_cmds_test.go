package main

import (
	"context"
	"errors"
	"testing"

	"github.com/cristianoliveira/pairup/internal/core"
	"github.com/cristianoliveira/pairup/internal/engagement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngagementClient struct {
	markedIDs []int
	markErr   error

	resetCalls int

	requests []engagement.FriendRequest
	friends  []engagement.Friend
	removed  []int64
}

func (f *fakeEngagementClient) MarkChatRead(ctx context.Context, chatID int) error {
	f.markedIDs = append(f.markedIDs, chatID)
	return f.markErr
}

func (f *fakeEngagementClient) ResetUnread(ctx context.Context) error {
	f.resetCalls++
	return nil
}

func (f *fakeEngagementClient) SendFriendRequest(ctx context.Context, userName, avatar string) (engagement.FriendRequest, engagement.EnqueueResult, error) {
	for _, r := range f.requests {
		if r.UserName == userName {
			return r, engagement.AlreadyPending, nil
		}
	}
	req := engagement.FriendRequest{ID: int64(len(f.requests) + 1), UserName: userName, AvatarText: avatar, Status: engagement.StatusPending}
	f.requests = append(f.requests, req)
	return req, engagement.Created, nil
}

func (f *fakeEngagementClient) PendingRequests(ctx context.Context) ([]engagement.FriendRequest, error) {
	return f.requests, nil
}

func (f *fakeEngagementClient) Friends(ctx context.Context) ([]engagement.Friend, error) {
	return f.friends, nil
}

func (f *fakeEngagementClient) RemoveFriend(ctx context.Context, id int64) (bool, error) {
	for i, fr := range f.friends {
		if fr.ID == id {
			f.friends = append(f.friends[:i], f.friends[i+1:]...)
			f.removed = append(f.removed, id)
			return true, nil
		}
	}
	return false, nil
}

func TestMarkReadSuccess(t *testing.T) {
	client := &fakeEngagementClient{}
	out, err := execute(t, NewMarkReadCmd(client), "3")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, client.markedIDs)
	assert.Contains(t, out, "Chat 3 marked as read")
}

func TestMarkReadInvalidID(t *testing.T) {
	client := &fakeEngagementClient{}
	_, err := execute(t, NewMarkReadCmd(client), "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid chat id")
	assert.Empty(t, client.markedIDs)
}

func TestMarkReadSeveralIDs(t *testing.T) {
	client := &fakeEngagementClient{}
	out, err := execute(t, NewMarkReadCmd(client), "1", "3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, client.markedIDs)
	assert.Contains(t, out, "Chat 1 marked as read")
	assert.Contains(t, out, "Chat 3 marked as read")
}

func TestMarkReadValidatesAllBeforeMarking(t *testing.T) {
	client := &fakeEngagementClient{}
	_, err := execute(t, NewMarkReadCmd(client), "1", "x")
	require.Error(t, err)
	assert.Empty(t, client.markedIDs)
}

func TestMarkReadUnknownChat(t *testing.T) {
	client := &fakeEngagementClient{markErr: core.ErrUnknownChat}
	_, err := execute(t, NewMarkReadCmd(client), "99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnknownChat))
}

func TestMarkReadRequiresArgument(t *testing.T) {
	_, err := execute(t, NewMarkReadCmd(&fakeEngagementClient{}))
	assert.Error(t, err)
}

func TestResetUnread(t *testing.T) {
	client := &fakeEngagementClient{}
	out, err := execute(t, NewResetUnreadCmd(client))
	require.NoError(t, err)
	assert.Equal(t, 1, client.resetCalls)
	assert.Contains(t, out, "Unread count reset")
}

func TestFriendRequestCreatedThenPending(t *testing.T) {
	client := &fakeEngagementClient{}

	out, err := execute(t, NewFriendRequestCmd(client), "alice", "AL")
	require.NoError(t, err)
	assert.Contains(t, out, "Friend request sent to alice")
	require.Len(t, client.requests, 1)
	assert.Equal(t, "AL", client.requests[0].AvatarText)

	out, err = execute(t, NewFriendRequestCmd(client), "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "already pending")
	assert.Len(t, client.requests, 1)
}

func TestFriendsListAndRemove(t *testing.T) {
	client := &fakeEngagementClient{
		requests: []engagement.FriendRequest{{ID: 10, UserName: "한소희", AvatarText: "한소", Status: engagement.StatusPending}},
		friends:  []engagement.Friend{{ID: 7, Name: "bob"}},
	}

	out, err := execute(t, NewFriendsCmd(client))
	require.NoError(t, err)
	assert.Contains(t, out, "[한소] 한소희")
	assert.Contains(t, out, "7\tbob")

	out, err = execute(t, NewFriendsCmd(client), "remove", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Friend 7 removed")
	assert.Equal(t, []int64{7}, client.removed)

	_, err = execute(t, NewFriendsCmd(client), "remove", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no friend with id 7")
}

func TestFriendsEmpty(t *testing.T) {
	out, err := execute(t, NewFriendsCmd(&fakeEngagementClient{}))
	require.NoError(t, err)
	assert.Contains(t, out, "PENDING REQUESTS\n  (none)\nFRIENDS\n  (none)")
}

func TestEngagementCommandsPanicOnNil(t *testing.T) {
	assert.Panics(t, func() { NewMarkReadCmd(nil) })
	assert.Panics(t, func() { NewResetUnreadCmd(nil) })
	assert.Panics(t, func() { NewFriendRequestCmd(nil) })
	assert.Panics(t, func() { NewFriendsCmd(nil) })
	assert.Panics(t, func() { NewClearCmd(nil) })
}
