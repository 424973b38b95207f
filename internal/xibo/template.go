package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// TemplateFilter narrows the template list.
type TemplateFilter struct {
	Template string
	Tags     string
}

// ListTemplates returns templates matching the filter.
func (c *Client) ListTemplates(ctx context.Context, filter TemplateFilter) ([]Template, error) {
	q := url.Values{}
	setStr(q, "template", filter.Template)
	setStr(q, "tags", filter.Tags)

	var templates []Template
	if err := c.get(ctx, "template", "/api/template", q, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// AddTemplateFromLayout saves an existing layout as a reusable template.
func (c *Client) AddTemplateFromLayout(ctx context.Context, layoutID int, name, description string, includeWidgets int) (*Template, error) {
	form := url.Values{}
	setStr(form, "name", name)
	setStr(form, "description", description)
	setFlag(form, "includeWidgets", includeWidgets)

	var template Template
	if err := c.postForm(ctx, "template", fmt.Sprintf("/api/template/%d", layoutID), form, &template); err != nil {
		return nil, err
	}
	return &template, nil
}
