package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func libraryTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_media",
			description: "List files in the CMS library, optionally filtered by id, name, type or tags.",
			schema: objectSchema(nil, map[string]Property{
				"mediaId":  intProp("Filter by media ID"),
				"media":    strProp("Filter by partial file name"),
				"type":     strProp("Filter by media type, e.g. image or video"),
				"tags":     strProp("Filter by comma separated tags"),
				"retired":  strProp("Filter by retired state: \"0\" or \"1\""),
				"folderId": intProp("Filter by folder ID"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					MediaID  int    `json:"mediaId"`
					Media    string `json:"media"`
					Type     string `json:"type"`
					Tags     string `json:"tags"`
					Retired  string `json:"retired"`
					FolderID int    `json:"folderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListMedia(ctx, xibo.MediaFilter{
					MediaID:   params.MediaID,
					Name:      params.Media,
					MediaType: params.Type,
					Tags:      params.Tags,
					Retired:   params.Retired,
					FolderID:  params.FolderID,
				})
			},
		},
		&apiTool{
			name:        "upload_media",
			description: "Upload a local file to the CMS library.",
			schema: objectSchema([]string{"filePath"}, map[string]Property{
				"filePath": strProp("Path to the local file to upload"),
				"folderId": intProp("Folder to upload into"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					FilePath string `json:"filePath"`
					FolderID int    `json:"folderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				f, err := os.Open(params.FilePath)
				if err != nil {
					return nil, &inputError{err: err}
				}
				defer f.Close()
				return c.UploadMedia(ctx, filepath.Base(params.FilePath), f, params.FolderID)
			},
		},
		&apiTool{
			name:        "download_media",
			description: "Download a library file from the CMS to a local path.",
			schema: objectSchema([]string{"mediaId", "savePath"}, map[string]Property{
				"mediaId":  intProp("ID of the library file to download"),
				"savePath": strProp("Local path to write the file to"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					MediaID  int    `json:"mediaId"`
					SavePath string `json:"savePath"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				data, err := c.DownloadMedia(ctx, params.MediaID)
				if err != nil {
					return nil, err
				}
				if err := os.WriteFile(params.SavePath, data, 0o644); err != nil {
					return nil, &inputError{err: err}
				}
				return statusMessage(fmt.Sprintf("media %d saved to %s (%d bytes)", params.MediaID, params.SavePath, len(data))), nil
			},
		},
		&apiTool{
			name:        "delete_media",
			description: "Delete a library file. Force delete also purges it from layouts that use it.",
			schema: objectSchema([]string{"mediaId"}, map[string]Property{
				"mediaId":     intProp("ID of the library file to delete"),
				"forceDelete": boolIntProp("Also remove from layouts that use it (1) or refuse if in use (0)"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					MediaID     int `json:"mediaId"`
					ForceDelete int `json:"forceDelete"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteMedia(ctx, params.MediaID, params.ForceDelete == 1); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("media %d deleted", params.MediaID)), nil
			},
		},
		&apiTool{
			name:        "list_folders",
			description: "List the CMS folder tree as a flat list.",
			schema:      objectSchema(nil, nil),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				return c.ListFolders(ctx)
			},
		},
		&apiTool{
			name:        "add_folder",
			description: "Create a folder in the CMS, under a parent or at the root.",
			schema: objectSchema([]string{"name"}, map[string]Property{
				"name":     strProp("Name for the new folder"),
				"parentId": intProp("Parent folder ID, 0 for root"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					Name     string `json:"name"`
					ParentID int    `json:"parentId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddFolder(ctx, params.Name, params.ParentID)
			},
		},
		&apiTool{
			name:        "rename_folder",
			description: "Rename a folder.",
			schema: objectSchema([]string{"folderId", "name"}, map[string]Property{
				"folderId": intProp("ID of the folder to rename"),
				"name":     strProp("The new folder name"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					FolderID int    `json:"folderId"`
					Name     string `json:"name"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.EditFolder(ctx, params.FolderID, params.Name)
			},
		},
		&apiTool{
			name:        "delete_folder",
			description: "Delete an empty folder.",
			schema: objectSchema([]string{"folderId"}, map[string]Property{
				"folderId": intProp("ID of the folder to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					FolderID int `json:"folderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteFolder(ctx, params.FolderID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("folder %d deleted", params.FolderID)), nil
			},
		},
	}
}
