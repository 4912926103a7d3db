package restclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"bid-tracking-api/internal/external"
)

type CalendarClient struct {
	restClient
}

func NewCalendarClient(baseUrl string) *CalendarClient {
	return &CalendarClient{newRestClient(baseUrl)}
}

type eventPayload struct {
	Title       string  `json:"title"`
	Start       string  `json:"start"`
	End         *string `json:"end,omitempty"`
	AllDay      bool    `json:"allDay"`
	Location    string  `json:"location,omitempty"`
	Description string  `json:"description,omitempty"`
}

func toEventPayload(ev external.Event) eventPayload {
	payload := eventPayload{
		Title:       ev.Title,
		Start:       ev.Start.Format(time.RFC3339),
		AllDay:      ev.AllDay,
		Location:    ev.Location,
		Description: ev.Description,
	}
	if ev.End != nil {
		end := ev.End.Format(time.RFC3339)
		payload.End = &end
	}

	return payload
}

func (c *CalendarClient) GetEvent(ctx context.Context, calendarId string, eventId string) error {
	path := fmt.Sprintf("/calendars/%s/events/%s", url.PathEscape(calendarId), url.PathEscape(eventId))

	return c.doJson(ctx, http.MethodGet, path, nil, nil)
}

func (c *CalendarClient) CreateEvent(ctx context.Context, calendarId string, ev external.Event) (string, error) {
	path := fmt.Sprintf("/calendars/%s/events", url.PathEscape(calendarId))

	var out idResponse
	if err := c.doJson(ctx, http.MethodPost, path, toEventPayload(ev), &out); err != nil {
		return "", err
	}

	return out.Id, nil
}

func (c *CalendarClient) UpdateEvent(ctx context.Context, calendarId string, eventId string, ev external.Event) (string, error) {
	path := fmt.Sprintf("/calendars/%s/events/%s", url.PathEscape(calendarId), url.PathEscape(eventId))

	var out idResponse
	if err := c.doJson(ctx, http.MethodPatch, path, toEventPayload(ev), &out); err != nil {
		return "", err
	}

	return out.Id, nil
}
