package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// UserGroupFilter narrows the user group list.
type UserGroupFilter struct {
	GroupID int
	Group   string
}

// ListUserGroups returns user groups matching the filter.
func (c *Client) ListUserGroups(ctx context.Context, filter UserGroupFilter) ([]UserGroup, error) {
	q := url.Values{}
	setInt(q, "userGroupId", filter.GroupID)
	setStr(q, "userGroup", filter.Group)

	var groups []UserGroup
	if err := c.get(ctx, "group", "/api/group", q, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// UserGroupFields are the writable user group attributes.
type UserGroupFields struct {
	Group        string
	Description  string
	LibraryQuota int
}

func userGroupForm(fields UserGroupFields) url.Values {
	form := url.Values{}
	setStr(form, "group", fields.Group)
	setStr(form, "description", fields.Description)
	setInt(form, "libraryQuota", fields.LibraryQuota)
	return form
}

// AddUserGroup creates a user group.
func (c *Client) AddUserGroup(ctx context.Context, fields UserGroupFields) (*UserGroup, error) {
	var group UserGroup
	if err := c.postForm(ctx, "group", "/api/group", userGroupForm(fields), &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// EditUserGroup updates a user group.
func (c *Client) EditUserGroup(ctx context.Context, groupID int, fields UserGroupFields) (*UserGroup, error) {
	var group UserGroup
	if err := c.putForm(ctx, "group", fmt.Sprintf("/api/group/%d", groupID), userGroupForm(fields), &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteUserGroup removes a user group.
func (c *Client) DeleteUserGroup(ctx context.Context, groupID int) error {
	return c.delete(ctx, "group", fmt.Sprintf("/api/group/%d", groupID), nil)
}

// AssignUserToGroup adds a user to a user group.
func (c *Client) AssignUserToGroup(ctx context.Context, groupID int, userIDs []int) error {
	form := url.Values{}
	setInts(form, "userId[]", userIDs)
	return c.postForm(ctx, "group", fmt.Sprintf("/api/group/members/assign/%d", groupID), form, nil)
}

// UnassignUserFromGroup removes a user from a user group.
func (c *Client) UnassignUserFromGroup(ctx context.Context, groupID int, userIDs []int) error {
	form := url.Values{}
	setInts(form, "userId[]", userIDs)
	return c.postForm(ctx, "group", fmt.Sprintf("/api/group/members/unassign/%d", groupID), form, nil)
}
