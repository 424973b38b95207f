package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// UserFilter narrows the user list.
type UserFilter struct {
	UserID   int
	UserName string
}

// ListUsers returns users matching the filter.
func (c *Client) ListUsers(ctx context.Context, filter UserFilter) ([]User, error) {
	q := url.Values{}
	setInt(q, "userId", filter.UserID)
	setStr(q, "userName", filter.UserName)

	var users []User
	if err := c.get(ctx, "user", "/api/user", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Me returns the user the configured credentials act as.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "user", "/api/user/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserFields are the writable user attributes.
type UserFields struct {
	UserName     string
	Email        string
	UserTypeID   int
	GroupID      int
	Password     string
	HomeFolderID int
}

func userForm(fields UserFields) url.Values {
	form := url.Values{}
	setStr(form, "userName", fields.UserName)
	setStr(form, "email", fields.Email)
	setInt(form, "userTypeId", fields.UserTypeID)
	setInt(form, "groupId", fields.GroupID)
	setStr(form, "password", fields.Password)
	setInt(form, "homeFolderId", fields.HomeFolderID)
	return form
}

// AddUser creates a user account.
func (c *Client) AddUser(ctx context.Context, fields UserFields) (*User, error) {
	var user User
	if err := c.postForm(ctx, "user", "/api/user", userForm(fields), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// EditUser updates a user account.
func (c *Client) EditUser(ctx context.Context, userID int, fields UserFields) (*User, error) {
	var user User
	if err := c.putForm(ctx, "user", fmt.Sprintf("/api/user/%d", userID), userForm(fields), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	return c.delete(ctx, "user", fmt.Sprintf("/api/user/%d", userID), nil)
}
