package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// ScheduleFilter narrows the schedule event list.
type ScheduleFilter struct {
	EventID        int
	CampaignID     int
	DisplayGroupIDs []int
}

// ListScheduleEvents returns schedule events matching the filter.
func (c *Client) ListScheduleEvents(ctx context.Context, filter ScheduleFilter) ([]ScheduleEvent, error) {
	q := url.Values{}
	setInt(q, "eventId", filter.EventID)
	setInt(q, "campaignId", filter.CampaignID)
	setInts(q, "displayGroupIds[]", filter.DisplayGroupIDs)

	var events []ScheduleEvent
	if err := c.get(ctx, "schedule", "/api/schedule", q, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ScheduleEventFields are the writable schedule event attributes.
type ScheduleEventFields struct {
	EventTypeID     int
	CampaignID      int
	CommandID       int
	DisplayGroupIDs []int
	FromDt          string // "2006-01-02 15:04:05"
	ToDt            string
	IsPriority      int
	DisplayOrder    int
	DayPartID       int
	RecurrenceType  string
}

func scheduleForm(fields ScheduleEventFields) url.Values {
	form := url.Values{}
	setInt(form, "eventTypeId", fields.EventTypeID)
	setInt(form, "campaignId", fields.CampaignID)
	setInt(form, "commandId", fields.CommandID)
	setInts(form, "displayGroupIds[]", fields.DisplayGroupIDs)
	setStr(form, "fromDt", fields.FromDt)
	setStr(form, "toDt", fields.ToDt)
	setFlag(form, "isPriority", fields.IsPriority)
	setFlag(form, "displayOrder", fields.DisplayOrder)
	setInt(form, "dayPartId", fields.DayPartID)
	setStr(form, "recurrenceType", fields.RecurrenceType)
	return form
}

// AddScheduleEvent schedules a campaign, layout or command.
func (c *Client) AddScheduleEvent(ctx context.Context, fields ScheduleEventFields) (*ScheduleEvent, error) {
	var event ScheduleEvent
	if err := c.postForm(ctx, "schedule", "/api/schedule", scheduleForm(fields), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// EditScheduleEvent updates a schedule event.
func (c *Client) EditScheduleEvent(ctx context.Context, eventID int, fields ScheduleEventFields) (*ScheduleEvent, error) {
	var event ScheduleEvent
	if err := c.putForm(ctx, "schedule", fmt.Sprintf("/api/schedule/%d", eventID), scheduleForm(fields), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteScheduleEvent removes a schedule event.
func (c *Client) DeleteScheduleEvent(ctx context.Context, eventID int) error {
	return c.delete(ctx, "schedule", fmt.Sprintf("/api/schedule/%d", eventID), nil)
}
