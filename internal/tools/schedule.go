package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func scheduleTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_schedule_events",
			description: "List schedule events, optionally filtered by event, campaign or display group.",
			schema: objectSchema(nil, map[string]Property{
				"eventId":         intProp("Filter by event ID"),
				"campaignId":      intProp("Filter by scheduled campaign or layout"),
				"displayGroupIds": intArrayProp("Filter by display group IDs"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					EventID         int   `json:"eventId"`
					CampaignID      int   `json:"campaignId"`
					DisplayGroupIDs []int `json:"displayGroupIds"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListScheduleEvents(ctx, xibo.ScheduleFilter{
					EventID:         params.EventID,
					CampaignID:      params.CampaignID,
					DisplayGroupIDs: params.DisplayGroupIDs,
				})
			},
		},
		&apiTool{
			name:        "add_schedule_event",
			description: "Schedule a campaign, layout or command onto one or more display groups.",
			schema: objectSchema([]string{"eventTypeId", "displayGroupIds"}, map[string]Property{
				"eventTypeId":     intProp("Event type: 1 layout/campaign, 2 command, 3 overlay"),
				"campaignId":      intProp("Campaign or layout-specific campaign to show"),
				"commandId":       intProp("Command to run, for command events"),
				"displayGroupIds": intArrayProp("Display groups the event targets"),
				"fromDt":          strProp("Start, format 2006-01-02 15:04:05"),
				"toDt":            strProp("End, format 2006-01-02 15:04:05"),
				"isPriority":      boolIntProp("Priority event (1) overrides normal events (0)"),
				"displayOrder":    intProp("Order among events sharing a slot"),
				"dayPartId":       intProp("Daypart to schedule within"),
				"recurrenceType":  Property{Type: "string", Description: "Repeat interval", Enum: []any{"", "Minute", "Hour", "Day", "Week", "Month", "Year"}},
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params scheduleEventParams
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddScheduleEvent(ctx, params.fields())
			},
		},
		&apiTool{
			name:        "edit_schedule_event",
			description: "Update an existing schedule event.",
			schema: objectSchema([]string{"eventId", "eventTypeId", "displayGroupIds"}, map[string]Property{
				"eventId":         intProp("ID of the event to edit"),
				"eventTypeId":     intProp("Event type: 1 layout/campaign, 2 command, 3 overlay"),
				"campaignId":      intProp("Campaign or layout-specific campaign to show"),
				"commandId":       intProp("Command to run, for command events"),
				"displayGroupIds": intArrayProp("Display groups the event targets"),
				"fromDt":          strProp("Start, format 2006-01-02 15:04:05"),
				"toDt":            strProp("End, format 2006-01-02 15:04:05"),
				"isPriority":      boolIntProp("Priority event (1) overrides normal events (0)"),
				"displayOrder":    intProp("Order among events sharing a slot"),
				"dayPartId":       intProp("Daypart to schedule within"),
				"recurrenceType":  Property{Type: "string", Description: "Repeat interval", Enum: []any{"", "Minute", "Hour", "Day", "Week", "Month", "Year"}},
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					EventID int `json:"eventId"`
					scheduleEventParams
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.EditScheduleEvent(ctx, params.EventID, params.fields())
			},
		},
		&apiTool{
			name:        "delete_schedule_event",
			description: "Remove a schedule event.",
			schema: objectSchema([]string{"eventId"}, map[string]Property{
				"eventId": intProp("ID of the event to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					EventID int `json:"eventId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteScheduleEvent(ctx, params.EventID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("schedule event %d deleted", params.EventID)), nil
			},
		},
	}
}

type scheduleEventParams struct {
	EventTypeID     int    `json:"eventTypeId"`
	CampaignID      int    `json:"campaignId"`
	CommandID       int    `json:"commandId"`
	DisplayGroupIDs []int  `json:"displayGroupIds"`
	FromDt          string `json:"fromDt"`
	ToDt            string `json:"toDt"`
	IsPriority      int    `json:"isPriority"`
	DisplayOrder    int    `json:"displayOrder"`
	DayPartID       int    `json:"dayPartId"`
	RecurrenceType  string `json:"recurrenceType"`
}

func (p scheduleEventParams) fields() xibo.ScheduleEventFields {
	return xibo.ScheduleEventFields{
		EventTypeID:     p.EventTypeID,
		CampaignID:      p.CampaignID,
		CommandID:       p.CommandID,
		DisplayGroupIDs: p.DisplayGroupIDs,
		FromDt:          p.FromDt,
		ToDt:            p.ToDt,
		IsPriority:      p.IsPriority,
		DisplayOrder:    p.DisplayOrder,
		DayPartID:       p.DayPartID,
		RecurrenceType:  p.RecurrenceType,
	}
}
