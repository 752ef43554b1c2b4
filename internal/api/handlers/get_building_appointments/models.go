package get_building_appointments

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments/models"
)

// parseRequest builds the service request from the path variable and
// the query string (date=YYYY-MM-DD, room=, status=, includeInactive=).
func parseRequest(buildingIDRaw string, query url.Values) (*models.GetBuildingAppointmentsRequest, error) {
	buildingID, err := uuid.Parse(buildingIDRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid building ID: %v", err)
	}

	req := &models.GetBuildingAppointmentsRequest{BuildingID: buildingID}

	if query.Has("room") {
		room := query.Get("room")
		req.Room = &room
	}

	if raw := query.Get("date"); raw != "" {
		date, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
