package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func notificationTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_notifications",
			description: "List notifications, optionally filtered by id or subject.",
			schema: objectSchema(nil, map[string]Property{
				"notificationId": intProp("Filter by notification ID"),
				"subject":        strProp("Filter by partial subject"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					NotificationID int    `json:"notificationId"`
					Subject        string `json:"subject"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListNotifications(ctx, xibo.NotificationFilter{
					NotificationID: params.NotificationID,
					Subject:        params.Subject,
				})
			},
		},
		&apiTool{
			name:        "add_notification",
			description: "Create a notification shown to displays or CMS users.",
			schema: objectSchema([]string{"subject"}, map[string]Property{
				"subject":         strProp("Notification subject"),
				"body":            strProp("Notification body, may contain HTML"),
				"releaseDt":       strProp("When to release, format 2006-01-02 15:04:05"),
				"isInterrupt":     boolIntProp("Interrupt playback to show it (1) or not (0)"),
				"displayGroupIds": intArrayProp("Display groups to notify"),
				"userGroupIds":    intArrayProp("User groups to notify"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params notificationParams
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddNotification(ctx, params.fields())
			},
		},
		&apiTool{
			name:        "edit_notification",
			description: "Update an existing notification.",
			schema: objectSchema([]string{"notificationId", "subject"}, map[string]Property{
				"notificationId":  intProp("ID of the notification to edit"),
				"subject":         strProp("Notification subject"),
				"body":            strProp("Notification body, may contain HTML"),
				"releaseDt":       strProp("When to release, format 2006-01-02 15:04:05"),
				"isInterrupt":     boolIntProp("Interrupt playback to show it (1) or not (0)"),
				"displayGroupIds": intArrayProp("Display groups to notify"),
				"userGroupIds":    intArrayProp("User groups to notify"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					NotificationID int `json:"notificationId"`
					notificationParams
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.EditNotification(ctx, params.NotificationID, params.fields())
			},
		},
		&apiTool{
			name:        "delete_notification",
			description: "Delete a notification.",
			schema: objectSchema([]string{"notificationId"}, map[string]Property{
				"notificationId": intProp("ID of the notification to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					NotificationID int `json:"notificationId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteNotification(ctx, params.NotificationID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("notification %d deleted", params.NotificationID)), nil
			},
		},
	}
}

type notificationParams struct {
	Subject         string `json:"subject"`
	Body            string `json:"body"`
	ReleaseDt       string `json:"releaseDt"`
	IsInterrupt     int    `json:"isInterrupt"`
	DisplayGroupIDs []int  `json:"displayGroupIds"`
	UserGroupIDs    []int  `json:"userGroupIds"`
}

func (p notificationParams) fields() xibo.NotificationFields {
	return xibo.NotificationFields{
		Subject:         p.Subject,
		Body:            p.Body,
		ReleaseDt:       p.ReleaseDt,
		IsInterrupt:     p.IsInterrupt,
		DisplayGroupIDs: p.DisplayGroupIDs,
		UserGroupIDs:    p.UserGroupIDs,
	}
}
