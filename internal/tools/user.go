package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func userTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_users",
			description: "List CMS user accounts, optionally filtered by id or name.",
			schema: objectSchema(nil, map[string]Property{
				"userId":   intProp("Filter by user ID"),
				"userName": strProp("Filter by partial user name"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					UserID   int    `json:"userId"`
					UserName string `json:"userName"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListUsers(ctx, xibo.UserFilter{
					UserID:   params.UserID,
					UserName: params.UserName,
				})
			},
		},
		&apiTool{
			name:        "get_current_user",
			description: "Return the user account the configured credentials act as.",
			schema:      objectSchema(nil, nil),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				return c.Me(ctx)
			},
		},
		&apiTool{
			name:        "add_user",
			description: "Create a CMS user account.",
			schema: objectSchema([]string{"userName", "userTypeId", "groupId", "password"}, map[string]Property{
				"userName":     strProp("Login name for the new user"),
				"email":        strProp("Email address"),
				"userTypeId":   intProp("User type: 1 super admin, 2 group admin, 3 user"),
				"groupId":      intProp("Initial user group"),
				"password":     strProp("Initial password"),
				"homeFolderId": intProp("Home folder for the user's content"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					UserName     string `json:"userName"`
					Email        string `json:"email"`
					UserTypeID   int    `json:"userTypeId"`
					GroupID      int    `json:"groupId"`
					Password     string `json:"password"`
					HomeFolderID int    `json:"homeFolderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddUser(ctx, xibo.UserFields{
					UserName:     params.UserName,
					Email:        params.Email,
					UserTypeID:   params.UserTypeID,
					GroupID:      params.GroupID,
					Password:     params.Password,
					HomeFolderID: params.HomeFolderID,
				})
			},
		},
		&apiTool{
			name:        "edit_user",
			description: "Update a CMS user account.",
			schema: objectSchema([]string{"userId"}, map[string]Property{
				"userId":       intProp("ID of the user to edit"),
				"userName":     strProp("New login name"),
				"email":        strProp("New email address"),
				"userTypeId":   intProp("User type: 1 super admin, 2 group admin, 3 user"),
				"homeFolderId": intProp("Home folder for the user's content"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					UserID       int    `json:"userId"`
					UserName     string `json:"userName"`
					Email        string `json:"email"`
					UserTypeID   int    `json:"userTypeId"`
					HomeFolderID int    `json:"homeFolderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.EditUser(ctx, params.UserID, xibo.UserFields{
					UserName:     params.UserName,
					Email:        params.Email,
					UserTypeID:   params.UserTypeID,
					HomeFolderID: params.HomeFolderID,
				})
			},
		},
		&apiTool{
			name:        "delete_user",
			description: "Delete a CMS user account.",
			schema: objectSchema([]string{"userId"}, map[string]Property{
				"userId": intProp("ID of the user to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					UserID int `json:"userId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteUser(ctx, params.UserID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("user %d deleted", params.UserID)), nil
			},
		},
		&apiTool{
			name:        "list_user_groups",
			description: "List user groups, optionally filtered by id or name.",
			schema: objectSchema(nil, map[string]Property{
				"userGroupId": intProp("Filter by group ID"),
				"userGroup":   strProp("Filter by partial group name"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					UserGroupID int    `json:"userGroupId"`
					UserGroup   string `json:"userGroup"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListUserGroups(ctx, xibo.UserGroupFilter{
					GroupID: params.UserGroupID,
					Group:   params.UserGroup,
				})
			},
		},
		&apiTool{
			name:        "add_user_group",
			description: "Create a user group.",
			schema: objectSchema([]string{"group"}, map[string]Property{
				"group":        strProp("Name for the new group"),
				"description":  strProp("Description"),
				"libraryQuota": intProp("Library quota in KiB, 0 for unlimited"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					Group        string `json:"group"`
					Description  string `json:"description"`
					LibraryQuota int    `json:"libraryQuota"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddUserGroup(ctx, xibo.UserGroupFields{
					Group:        params.Group,
					Description:  params.Description,
					LibraryQuota: params.LibraryQuota,
				})
			},
		},
		&apiTool{
			name:        "edit_user_group",
			description: "Update a user group.",
			schema: objectSchema([]string{"userGroupId"}, map[string]Property{
				"userGroupId":  intProp("ID of the group to edit"),
				"group":        strProp("New group name"),
				"description":  strProp("New description"),
				"libraryQuota": intProp("Library quota in KiB, 0 for unlimited"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					UserGroupID  int    `json:"userGroupId"`
					Group        string `json:"group"`
					Description  string `json:"description"`
					LibraryQuota int    `json:"libraryQuota"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.EditUserGroup(ctx, params.UserGroupID, xibo.UserGroupFields{
					Group:        params.Group,
					Description:  params.Description,
					LibraryQuota: params.LibraryQuota,
				})
			},
		},
		&apiTool{
			name:        "delete_user_group",
			description: "Delete a user group.",
			schema: objectSchema([]string{"userGroupId"}, map[string]Property{
				"userGroupId": intProp("ID of the group to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					UserGroupID int `json:"userGroupId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteUserGroup(ctx, params.UserGroupID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("user group %d deleted", params.UserGroupID)), nil
			},
		},
		&apiTool{
			name:        "assign_users_to_group",
			description: "Add one or more users to a user group.",
			schema: objectSchema([]string{"userGroupId", "userIds"}, map[string]Property{
				"userGroupId": intProp("ID of the target group"),
				"userIds":     intArrayProp("IDs of the users to assign"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					UserGroupID int   `json:"userGroupId"`
					UserIDs     []int `json:"userIds"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.AssignUserToGroup(ctx, params.UserGroupID, params.UserIDs); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("%d user(s) assigned to group %d", len(params.UserIDs), params.UserGroupID)), nil
			},
		},
		&apiTool{
			name:        "unassign_users_from_group",
			description: "Remove one or more users from a user group.",
			schema: objectSchema([]string{"userGroupId", "userIds"}, map[string]Property{
				"userGroupId": intProp("ID of the group"),
				"userIds":     intArrayProp("IDs of the users to remove"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					UserGroupID int   `json:"userGroupId"`
					UserIDs     []int `json:"userIds"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.UnassignUserFromGroup(ctx, params.UserGroupID, params.UserIDs); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("%d user(s) removed from group %d", len(params.UserIDs), params.UserGroupID)), nil
			},
		},
	}
}
