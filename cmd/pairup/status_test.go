package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cristianoliveira/pairup/internal/core"
	"github.com/cristianoliveira/pairup/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatusClient struct {
	status core.Status
	err    error
	calls  int
}

func (f *fakeStatusClient) Status(ctx context.Context) (core.Status, error) {
	f.calls++
	return f.status, f.err
}

func sampleStatus() core.Status {
	return core.Status{
		Backend:         "sqlite",
		Unread:          4,
		ReadChats:       2,
		TotalChats:      6,
		ChatBadges:      9,
		PendingRequests: 1,
		Friends:         0,
		Theme:           settings.ThemeDark,
		Language:        "ko",
	}
}

func TestStatusText(t *testing.T) {
	client := &fakeStatusClient{status: sampleStatus()}
	out, err := execute(t, NewStatusCmd(client))
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Contains(t, out, "Unread notifications: 4")
	assert.Contains(t, out, "2/6 (9 unread messages)")
	assert.Contains(t, out, "Theme:                dark")
	assert.Contains(t, out, "한국어 (ko)")
	assert.Contains(t, out, "Backend:              sqlite")
}

func TestStatusJSON(t *testing.T) {
	client := &fakeStatusClient{status: sampleStatus()}
	out, err := execute(t, NewStatusCmd(client), "--format=json")
	require.NoError(t, err)

	var got statusJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got.Unread)
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, 1, got.PendingRequests)
}

func TestStatusUnknownFormat(t *testing.T) {
	_, err := execute(t, NewStatusCmd(&fakeStatusClient{}), "--format=xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestStatusClientError(t *testing.T) {
	_, err := execute(t, NewStatusCmd(&fakeStatusClient{err: errors.New("storage down")}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage down")
}
