package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// NotificationFilter narrows the notification list.
type NotificationFilter struct {
	NotificationID int
	Subject        string
}

// ListNotifications returns notifications matching the filter.
func (c *Client) ListNotifications(ctx context.Context, filter NotificationFilter) ([]Notification, error) {
	q := url.Values{}
	setInt(q, "notificationId", filter.NotificationID)
	setStr(q, "subject", filter.Subject)

	var notifications []Notification
	if err := c.get(ctx, "notification", "/api/notification", q, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// NotificationFields are the writable notification attributes.
type NotificationFields struct {
	Subject         string
	Body            string
	ReleaseDt       string
	IsInterrupt     int
	DisplayGroupIDs []int
	UserGroupIDs    []int
}

func notificationForm(fields NotificationFields) url.Values {
	form := url.Values{}
	setStr(form, "subject", fields.Subject)
	setStr(form, "body", fields.Body)
	setStr(form, "releaseDt", fields.ReleaseDt)
	setFlag(form, "isInterrupt", fields.IsInterrupt)
	setInts(form, "displayGroupIds[]", fields.DisplayGroupIDs)
	setInts(form, "userGroupIds[]", fields.UserGroupIDs)
	return form
}

// AddNotification creates a notification.
func (c *Client) AddNotification(ctx context.Context, fields NotificationFields) (*Notification, error) {
	var notification Notification
	if err := c.postForm(ctx, "notification", "/api/notification", notificationForm(fields), &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

// EditNotification updates a notification.
func (c *Client) EditNotification(ctx context.Context, notificationID int, fields NotificationFields) (*Notification, error) {
	var notification Notification
	if err := c.putForm(ctx, "notification", fmt.Sprintf("/api/notification/%d", notificationID), notificationForm(fields), &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

// DeleteNotification removes a notification.
func (c *Client) DeleteNotification(ctx context.Context, notificationID int) error {
	return c.delete(ctx, "notification", fmt.Sprintf("/api/notification/%d", notificationID), nil)
}
