package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// ListFolders returns the folder tree as a flat list.
func (c *Client) ListFolders(ctx context.Context) ([]Folder, error) {
	var folders []Folder
	if err := c.get(ctx, "folders", "/api/folders", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// AddFolder creates a folder under the given parent (0 for root).
func (c *Client) AddFolder(ctx context.Context, text string, parentID int) (*Folder, error) {
	form := url.Values{}
	setStr(form, "text", text)
	setInt(form, "parentId", parentID)

	var folder Folder
	if err := c.postForm(ctx, "folders", "/api/folders", form, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// EditFolder renames a folder.
func (c *Client) EditFolder(ctx context.Context, folderID int, text string) (*Folder, error) {
	form := url.Values{}
	setStr(form, "text", text)

	var folder Folder
	if err := c.putForm(ctx, "folders", fmt.Sprintf("/api/folders/%d", folderID), form, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// DeleteFolder removes an empty folder.
func (c *Client) DeleteFolder(ctx context.Context, folderID int) error {
	return c.delete(ctx, "folders", fmt.Sprintf("/api/folders/%d", folderID), nil)
}
