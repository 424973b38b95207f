package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// PlaylistFilter narrows the playlist list.
type PlaylistFilter struct {
	PlaylistID int
	Name       string
	Tags       string
	FolderID   int
}

// ListPlaylists returns playlists matching the filter.
func (c *Client) ListPlaylists(ctx context.Context, filter PlaylistFilter) ([]Playlist, error) {
	q := url.Values{}
	setInt(q, "playlistId", filter.PlaylistID)
	setStr(q, "name", filter.Name)
	setStr(q, "tags", filter.Tags)
	setInt(q, "folderId", filter.FolderID)

	var playlists []Playlist
	if err := c.get(ctx, "playlist", "/api/playlist", q, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// PlaylistFields are the writable playlist attributes.
type PlaylistFields struct {
	Name     string
	Tags     string
	FolderID int
}

func playlistForm(fields PlaylistFields) url.Values {
	form := url.Values{}
	setStr(form, "name", fields.Name)
	setStr(form, "tags", fields.Tags)
	setInt(form, "folderId", fields.FolderID)
	return form
}

// AddPlaylist creates a playlist.
func (c *Client) AddPlaylist(ctx context.Context, fields PlaylistFields) (*Playlist, error) {
	var playlist Playlist
	if err := c.postForm(ctx, "playlist", "/api/playlist", playlistForm(fields), &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// EditPlaylist updates a playlist.
func (c *Client) EditPlaylist(ctx context.Context, playlistID int, fields PlaylistFields) (*Playlist, error) {
	var playlist Playlist
	if err := c.putForm(ctx, "playlist", fmt.Sprintf("/api/playlist/%d", playlistID), playlistForm(fields), &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// DeletePlaylist removes a playlist.
func (c *Client) DeletePlaylist(ctx context.Context, playlistID int) error {
	return c.delete(ctx, "playlist", fmt.Sprintf("/api/playlist/%d", playlistID), nil)
}

// AssignMediaToPlaylist appends library items to a playlist.
func (c *Client) AssignMediaToPlaylist(ctx context.Context, playlistID int, mediaIDs []int, duration int) error {
	form := url.Values{}
	setInts(form, "media[]", mediaIDs)
	setInt(form, "duration", duration)
	return c.postForm(ctx, "playlist", fmt.Sprintf("/api/playlist/library/assign/%d", playlistID), form, nil)
}
