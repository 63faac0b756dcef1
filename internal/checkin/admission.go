package checkin

import (
	"strings"
	"time"

	checkinerrors "go-fieldtrack/internal/checkin/errors"
	"go-fieldtrack/internal/client"
	"go-fieldtrack/internal/domain"
	"go-fieldtrack/internal/geo"

	"github.com/google/uuid"
)

const (
	MessageCheckedIn    = "Checked in successfully"
	MessageCheckedInFar = "Checked in (Warning: You are far from client location)"
	MessageCheckedOut   = "Checked out successfully"
)

// AdmissionInput is everything the admission decision looks at. The lookups are
// filled in by the caller; a nil Assignment means no employee_clients row exists.
type AdmissionInput struct {
	Caller       domain.Caller
	Request      CheckinRequest
	Assignment   *client.AssignedClient
	ClientExists bool
	Active       *Checkin
	Now          time.Time
}

type Admission struct {
	Session    Checkin
	DistanceKm float64
	Far        bool
	Message    string
}

// ValidateRequest runs the checks that need no storage: caller role, then
// presence and range of client_id, latitude and longitude.
func ValidateRequest(caller domain.Caller, req CheckinRequest) (uuid.UUID, error) {
	if caller.Role != domain.RoleEmployee {
		return uuid.Nil, checkinerrors.ErrCheckinEmployeeOnly
	}

	rawID := strings.TrimSpace(req.ClientID)
	if rawID == "" || req.Latitude == nil || req.Longitude == nil {
		return uuid.Nil, checkinerrors.ErrLocationRequired
	}
	if !geo.ValidLatitude(*req.Latitude) || !geo.ValidLongitude(*req.Longitude) {
		return uuid.Nil, checkinerrors.ErrCoordinatesOutOfRange
	}

	clientID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, checkinerrors.ErrInvalidClientID
	}
	return clientID, nil
}

// Admit decides whether a check-in may start. Checks run in a fixed order and the
// first failure is returned; on success the new session is built but not stored.
func Admit(in AdmissionInput) (Admission, error) {
	clientID, err := ValidateRequest(in.Caller, in.Request)
	if err != nil {
		return Admission{}, err
	}

	employeeID, err := uuid.Parse(in.Caller.UserID)
	if err != nil {
		return Admission{}, checkinerrors.ErrCheckinEmployeeOnly
	}

	if in.Assignment == nil {
		if !in.ClientExists {
			return Admission{}, checkinerrors.ErrClientNotFound
		}
		return Admission{}, checkinerrors.ErrNotAssigned
	}

	if !in.Assignment.HasCoordinates() {
		return Admission{}, checkinerrors.ErrClientCoordinatesMissing
	}

	if in.Active != nil {
		return Admission{}, checkinerrors.ErrAlreadyCheckedIn
	}

	lat, lng := *in.Request.Latitude, *in.Request.Longitude
	distance := geo.Distance(lat, lng, *in.Assignment.Latitude, *in.Assignment.Longitude)
	far := geo.IsFar(distance)

	message := MessageCheckedIn
	if far {
		message = MessageCheckedInFar
	}

	return Admission{
		Session: Checkin{
			ID:                 uuid.New(),
			EmployeeID:         employeeID,
			ClientID:           clientID,
			Latitude:           lat,
			Longitude:          lng,
			DistanceFromClient: distance,
			Notes:              normalizeNotes(in.Request.Notes),
			Status:             StatusCheckedIn,
			CheckinTime:        in.Now,
		},
		DistanceKm: distance,
		Far:        far,
		Message:    message,
	}, nil
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (a Admission) Response() CheckinResponse {
	return CheckinResponse{
		ID:                 a.Session.ID.String(),
		Message:            a.Message,
		DistanceFromClient: geo.FormatKm(a.DistanceKm),
		FarFromClient:      a.Far,
	}
}
