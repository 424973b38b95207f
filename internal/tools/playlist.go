package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func playlistTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_playlists",
			description: "List playlists, optionally filtered by id, name or tags.",
			schema: objectSchema(nil, map[string]Property{
				"playlistId": intProp("Filter by playlist ID"),
				"name":       strProp("Filter by partial playlist name"),
				"tags":       strProp("Filter by comma separated tags"),
				"folderId":   intProp("Filter by folder ID"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					PlaylistID int    `json:"playlistId"`
					Name       string `json:"name"`
					Tags       string `json:"tags"`
					FolderID   int    `json:"folderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListPlaylists(ctx, xibo.PlaylistFilter{
					PlaylistID: params.PlaylistID,
					Name:       params.Name,
					Tags:       params.Tags,
					FolderID:   params.FolderID,
				})
			},
		},
		&apiTool{
			name:        "add_playlist",
			description: "Create a standalone playlist that widgets can embed.",
			schema: objectSchema([]string{"name"}, map[string]Property{
				"name":     strProp("Name for the new playlist"),
				"tags":     strProp("Comma separated tags"),
				"folderId": intProp("Folder to create the playlist in"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					Name     string `json:"name"`
					Tags     string `json:"tags"`
					FolderID int    `json:"folderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddPlaylist(ctx, xibo.PlaylistFields{
					Name:     params.Name,
					Tags:     params.Tags,
					FolderID: params.FolderID,
				})
			},
		},
		&apiTool{
			name:        "edit_playlist",
			description: "Rename or retag a playlist.",
			schema: objectSchema([]string{"playlistId"}, map[string]Property{
				"playlistId": intProp("ID of the playlist to edit"),
				"name":       strProp("New playlist name"),
				"tags":       strProp("Comma separated tags"),
				"folderId":   intProp("Move the playlist into this folder"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					PlaylistID int    `json:"playlistId"`
					Name       string `json:"name"`
					Tags       string `json:"tags"`
					FolderID   int    `json:"folderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.EditPlaylist(ctx, params.PlaylistID, xibo.PlaylistFields{
					Name:     params.Name,
					Tags:     params.Tags,
					FolderID: params.FolderID,
				})
			},
		},
		&apiTool{
			name:        "delete_playlist",
			description: "Delete a playlist. Library items it references are not deleted.",
			schema: objectSchema([]string{"playlistId"}, map[string]Property{
				"playlistId": intProp("ID of the playlist to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					PlaylistID int `json:"playlistId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeletePlaylist(ctx, params.PlaylistID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("playlist %d deleted", params.PlaylistID)), nil
			},
		},
		&apiTool{
			name:        "assign_media_to_playlist",
			description: "Append library items to a playlist.",
			schema: objectSchema([]string{"playlistId", "mediaIds"}, map[string]Property{
				"playlistId": intProp("ID of the target playlist"),
				"mediaIds":   intArrayProp("Library items to append, in order"),
				"duration":   intProp("Seconds each item plays for, 0 for the item default"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					PlaylistID int   `json:"playlistId"`
					MediaIDs   []int `json:"mediaIds"`
					Duration   int   `json:"duration"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.AssignMediaToPlaylist(ctx, params.PlaylistID, params.MediaIDs, params.Duration); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("%d item(s) assigned to playlist %d", len(params.MediaIDs), params.PlaylistID)), nil
			},
		},
	}
}
