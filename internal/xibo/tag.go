package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// TagFilter narrows the tag list.
type TagFilter struct {
	TagID    int
	Tag      string
	ExactTag string
}

// ListTags returns tags matching the filter.
func (c *Client) ListTags(ctx context.Context, filter TagFilter) ([]Tag, error) {
	q := url.Values{}
	setInt(q, "tagId", filter.TagID)
	setStr(q, "tag", filter.Tag)
	setStr(q, "exactTag", filter.ExactTag)

	var tags []Tag
	if err := c.get(ctx, "tag", "/api/tag", q, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// TagFields are the writable tag attributes.
type TagFields struct {
	Name       string
	IsRequired int
	Options    string // comma-separated allowed values
}

// AddTag creates a tag.
func (c *Client) AddTag(ctx context.Context, fields TagFields) (*Tag, error) {
	form := url.Values{}
	setStr(form, "name", fields.Name)
	setFlag(form, "isRequired", fields.IsRequired)
	setStr(form, "options", fields.Options)

	var tag Tag
	if err := c.postForm(ctx, "tag", "/api/tag", form, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// EditTag updates a tag.
func (c *Client) EditTag(ctx context.Context, tagID int, fields TagFields) (*Tag, error) {
	form := url.Values{}
	setStr(form, "name", fields.Name)
	setFlag(form, "isRequired", fields.IsRequired)
	setStr(form, "options", fields.Options)

	var tag Tag
	if err := c.putForm(ctx, "tag", fmt.Sprintf("/api/tag/%d", tagID), form, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag.
func (c *Client) DeleteTag(ctx context.Context, tagID int) error {
	return c.delete(ctx, "tag", fmt.Sprintf("/api/tag/%d", tagID), nil)
}
