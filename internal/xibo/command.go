package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// ListCommands returns the player shell commands.
func (c *Client) ListCommands(ctx context.Context) ([]Command, error) {
	var commands []Command
	if err := c.get(ctx, "command", "/api/command", nil, &commands); err != nil {
		return nil, err
	}
	return commands, nil
}

// AddCommand registers a player shell command.
func (c *Client) AddCommand(ctx context.Context, command, code, description string) (*Command, error) {
	form := url.Values{}
	setStr(form, "command", command)
	setStr(form, "code", code)
	setStr(form, "description", description)

	var result Command
	if err := c.postForm(ctx, "command", "/api/command", form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteCommand removes a player shell command.
func (c *Client) DeleteCommand(ctx context.Context, commandID int) error {
	return c.delete(ctx, "command", fmt.Sprintf("/api/command/%d", commandID), nil)
}
