package xibo

import (
	"context"
	"fmt"
	"io"
	"net/url"
)

// MediaFilter narrows the library list.
type MediaFilter struct {
	MediaID   int
	Name      string
	MediaType string
	Tags      string
	Retired   string // "0" or "1", empty for all
	FolderID  int
}

// ListMedia returns library files matching the filter.
func (c *Client) ListMedia(ctx context.Context, filter MediaFilter) ([]Media, error) {
	q := url.Values{}
	setInt(q, "mediaId", filter.MediaID)
	setStr(q, "media", filter.Name)
	setStr(q, "type", filter.MediaType)
	setStr(q, "tags", filter.Tags)
	setStr(q, "retired", filter.Retired)
	setInt(q, "folderId", filter.FolderID)

	var media []Media
	if err := c.get(ctx, "library", "/api/library", q, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// UploadMedia uploads a file to the library via a multipart form. The CMS
// wraps upload results in a files array rather than returning the entity
// directly; the returned Media is built from that entry so the upload stays
// a single request.
func (c *Client) UploadMedia(ctx context.Context, filename string, content io.Reader, folderID int) (*Media, error) {
	extra := url.Values{}
	setStr(extra, "name", filename)
	setInt(extra, "folderId", folderID)

	var result struct {
		Files []struct {
			MediaID   int    `json:"mediaId"`
			Name      string `json:"name"`
			MediaType string `json:"mediaType"`
			StoredAs  string `json:"storedAs"`
			FileSize  int64  `json:"fileSize"`
			Error     string `json:"error,omitempty"`
		} `json:"files"`
	}
	if err := c.upload(ctx, "library", "/api/library", "files", filename, content, extra, &result); err != nil {
		return nil, err
	}
	if len(result.Files) == 0 {
		return nil, &ValidationError{Reason: "upload response has no files entry"}
	}
	entry := result.Files[0]
	if entry.Error != "" {
		return nil, &APIError{Status: 200, Message: entry.Error}
	}
	if entry.MediaID == 0 {
		return nil, &ValidationError{Reason: "upload response entry missing mediaId"}
	}

	media := &Media{
		MediaID:   entry.MediaID,
		Name:      entry.Name,
		MediaType: entry.MediaType,
		StoredAs:  entry.StoredAs,
		FileSize:  entry.FileSize,
		FolderID:  folderID,
	}
	if media.Name == "" {
		media.Name = filename
	}
	return media, nil
}

// DownloadMedia fetches the stored file for a library item.
func (c *Client) DownloadMedia(ctx context.Context, mediaID int) ([]byte, error) {
	return c.download(ctx, "library", fmt.Sprintf("/api/library/download/%d", mediaID), nil)
}

// DeleteMedia removes a library file. forceDelete also purges it from any
// layouts that use it.
func (c *Client) DeleteMedia(ctx context.Context, mediaID int, forceDelete bool) error {
	form := url.Values{}
	if forceDelete {
		form.Set("forceDelete", "1")
	}
	return c.delete(ctx, "library", fmt.Sprintf("/api/library/%d", mediaID), form)
}
