package shipstation

import (
	"context"
	"net/http"
	"time"
)

const pickupsPath = "/v2/pickups"

// PickupContact is the person the carrier contacts about a pickup.
type PickupContact struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone"`
}

// PickupWindow is the time range the carrier may collect in.
type PickupWindow struct {
	StartAt time.Time
	EndAt   time.Time
}

// SchedulePickupRequest schedules a carrier collection for purchased labels.
type SchedulePickupRequest struct {
	LabelIDs []string
	Contact  PickupContact
	Notes    string
	Window   *PickupWindow
}

type pickupWindowBody struct {
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
}

type schedulePickupBody struct {
	LabelIDs       []string          `json:"labelIds"`
	ContactDetails PickupContact     `json:"contactDetails"`
	PickupNotes    string            `json:"pickupNotes,omitempty"`
	PickupWindow   *pickupWindowBody `json:"pickupWindow,omitempty"`
}

func (r SchedulePickupRequest) body() schedulePickupBody {
	b := schedulePickupBody{
		LabelIDs:       nonNil(r.LabelIDs),
		ContactDetails: r.Contact,
		PickupNotes:    r.Notes,
	}
	if r.Window != nil {
		b.PickupWindow = &pickupWindowBody{
			StartAt: FormatTime(r.Window.StartAt),
			EndAt:   FormatTime(r.Window.EndAt),
		}
	}
	return b
}

// SchedulePickup schedules a pickup.
func (c *Client) SchedulePickup(ctx context.Context, req SchedulePickupRequest) (Object, error) {
	return fetchObject(ctx, c, "pickups.schedule", http.MethodPost, pickupsPath, nil, req.body())
}

// GetPickup returns one scheduled pickup.
func (c *Client) GetPickup(ctx context.Context, pickupID string) (Object, error) {
	return fetchObject(ctx, c, "pickups.get", http.MethodGet, resourcePath(pickupsPath, pickupID), nil, nil)
}
