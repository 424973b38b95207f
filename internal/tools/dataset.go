package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func datasetTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_datasets",
			description: "List datasets, optionally filtered by id, name or code.",
			schema: objectSchema(nil, map[string]Property{
				"dataSetId": intProp("Filter by dataset ID"),
				"dataSet":   strProp("Filter by partial dataset name"),
				"code":      strProp("Filter by dataset code"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DataSetID int    `json:"dataSetId"`
					DataSet   string `json:"dataSet"`
					Code      string `json:"code"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListDataSets(ctx, xibo.DataSetFilter{
					DataSetID: params.DataSetID,
					DataSet:   params.DataSet,
					Code:      params.Code,
				})
			},
		},
		&apiTool{
			name:        "add_dataset",
			description: "Create a dataset for tabular content that widgets can render.",
			schema: objectSchema([]string{"dataSet"}, map[string]Property{
				"dataSet":     strProp("Name for the new dataset"),
				"description": strProp("Description"),
				"code":        strProp("Short code widgets reference the dataset by"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DataSet     string `json:"dataSet"`
					Description string `json:"description"`
					Code        string `json:"code"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddDataSet(ctx, xibo.DataSetFields{
					DataSet:     params.DataSet,
					Description: params.Description,
					Code:        params.Code,
				})
			},
		},
		&apiTool{
			name:        "delete_dataset",
			description: "Delete a dataset and its rows.",
			schema: objectSchema([]string{"dataSetId"}, map[string]Property{
				"dataSetId": intProp("ID of the dataset to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DataSetID int `json:"dataSetId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteDataSet(ctx, params.DataSetID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("dataset %d deleted", params.DataSetID)), nil
			},
		},
		&apiTool{
			name:        "get_dataset_rows",
			description: "Fetch the rows of a dataset. Row shape depends on the dataset's columns.",
			schema: objectSchema([]string{"dataSetId"}, map[string]Property{
				"dataSetId": intProp("ID of the dataset to read"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DataSetID int `json:"dataSetId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.DataSetRows(ctx, params.DataSetID)
			},
		},
		&apiTool{
			name:        "add_dataset_row",
			description: "Append a row to a dataset. Values are keyed by dataset column ID.",
			schema: objectSchema([]string{"dataSetId", "values"}, map[string]Property{
				"dataSetId": intProp("ID of the dataset to append to"),
				"values":    Property{Type: "object", Description: "Map of column ID to cell value, e.g. {\"3\": \"Monday\", \"4\": \"Open\"}"},
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DataSetID int               `json:"dataSetId"`
					Values    map[string]string `json:"values"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				columns := make(map[int]string, len(params.Values))
				for key, value := range params.Values {
					columnID, err := strconv.Atoi(key)
					if err != nil {
						return nil, &inputError{err: fmt.Errorf("values key %q is not a column ID", key)}
					}
					columns[columnID] = value
				}
				rowID, err := c.AddDataSetRow(ctx, params.DataSetID, columns)
				if err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("row %d added to dataset %d", rowID, params.DataSetID)), nil
			},
		},
	}
}
