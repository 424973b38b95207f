package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// DataSetFilter narrows the dataset list.
type DataSetFilter struct {
	DataSetID int
	DataSet   string
	Code      string
}

// ListDataSets returns datasets matching the filter.
func (c *Client) ListDataSets(ctx context.Context, filter DataSetFilter) ([]DataSet, error) {
	q := url.Values{}
	setInt(q, "dataSetId", filter.DataSetID)
	setStr(q, "dataSet", filter.DataSet)
	setStr(q, "code", filter.Code)

	var datasets []DataSet
	if err := c.get(ctx, "dataset", "/api/dataset", q, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

// DataSetFields are the writable dataset attributes.
type DataSetFields struct {
	DataSet     string
	Description string
	Code        string
}

// AddDataSet creates a dataset.
func (c *Client) AddDataSet(ctx context.Context, fields DataSetFields) (*DataSet, error) {
	form := url.Values{}
	setStr(form, "dataSet", fields.DataSet)
	setStr(form, "description", fields.Description)
	setStr(form, "code", fields.Code)

	var dataset DataSet
	if err := c.postForm(ctx, "dataset", "/api/dataset", form, &dataset); err != nil {
		return nil, err
	}
	return &dataset, nil
}

// DeleteDataSet removes a dataset.
func (c *Client) DeleteDataSet(ctx context.Context, dataSetID int) error {
	return c.delete(ctx, "dataset", fmt.Sprintf("/api/dataset/%d", dataSetID), nil)
}

// DataSetRows returns the raw rows of a dataset. Row shape is user-defined,
// so no schema validation applies beyond well-formed JSON.
func (c *Client) DataSetRows(ctx context.Context, dataSetID int) ([]map[string]any, error) {
	var rows []map[string]any
	if err := c.get(ctx, "dataset", fmt.Sprintf("/api/dataset/data/%d", dataSetID), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// AddDataSetRow appends a row to a dataset. Keys are dataSetColumnId_{id}
// per the CMS convention; the caller supplies column IDs and values.
func (c *Client) AddDataSetRow(ctx context.Context, dataSetID int, columns map[int]string) (int, error) {
	form := url.Values{}
	for columnID, value := range columns {
		form.Set(fmt.Sprintf("dataSetColumnId_%d", columnID), value)
	}

	var result struct {
		ID int `json:"id"`
	}
	if err := c.postForm(ctx, "dataset", fmt.Sprintf("/api/dataset/data/%d", dataSetID), form, &result); err != nil {
		return 0, err
	}
	return result.ID, nil
}
