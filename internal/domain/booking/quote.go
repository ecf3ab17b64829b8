package booking

import (
	"strings"
	"time"

	"resort-booking/internal/pkg/ptr"
	"resort-booking/internal/pkg/validate"

	"github.com/google/uuid"
)

type QuoteSubmission struct {
	InquiryType string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	StartDate   string
	EndDate     string
	Adults      int
	Children    int
	Rooms       int
	RoomTypes   []string
	Notes       string
}

// QuoteRequest is a non-binding inquiry. Only email is mandatory.
type QuoteRequest struct {
	id          uuid.UUID
	inquiryType string
	firstName   *string
	lastName    *string
	email       string
	phone       string
	stay        *StayDates
	adults      int
	children    int
	rooms       int
	roomTypes   []string
	notes       *string
	status      string
	createdAt   time.Time
}

func (f *Factory) CreateQuote(sub QuoteSubmission) (*QuoteRequest, error) {
	email := strings.TrimSpace(sub.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	stay, err := NewOptionalStayDates(strings.TrimSpace(sub.StartDate), strings.TrimSpace(sub.EndDate))
	if err != nil {
		return nil, err
	}

	inquiry := strings.TrimSpace(sub.InquiryType)
	if inquiry == "" {
		inquiry = DefaultInquiryType
	}

	return &QuoteRequest{
		id:          uuid.New(),
		inquiryType: inquiry,
		firstName:   ptr.NonEmpty(sub.FirstName),
		lastName:    ptr.NonEmpty(sub.LastName),
		email:       email,
		phone:       validate.NormalizePhone(sub.Phone),
		stay:        stay,
		adults:      positiveOr(sub.Adults, 1),
		children:    nonNegative(sub.Children),
		rooms:       positiveOr(sub.Rooms, 1),
		roomTypes:   cleanRoomTypes(sub.RoomTypes),
		notes:       ptr.NonEmpty(sub.Notes),
		status:      QuoteStatusNew,
		createdAt:   f.Clock.Now().UTC(),
	}, nil
}

func (q *QuoteRequest) ID() uuid.UUID        { return q.id }
func (q *QuoteRequest) InquiryType() string  { return q.inquiryType }
func (q *QuoteRequest) FirstName() *string   { return q.firstName }
func (q *QuoteRequest) LastName() *string    { return q.lastName }
func (q *QuoteRequest) Email() string        { return q.email }
func (q *QuoteRequest) Phone() string        { return q.phone }
func (q *QuoteRequest) Adults() int          { return q.adults }
func (q *QuoteRequest) Children() int        { return q.children }
func (q *QuoteRequest) Rooms() int           { return q.rooms }
func (q *QuoteRequest) RoomTypes() []string  { return q.roomTypes }
func (q *QuoteRequest) Notes() *string       { return q.notes }
func (q *QuoteRequest) Status() string       { return q.status }
func (q *QuoteRequest) CreatedAt() time.Time { return q.createdAt }

func (q *QuoteRequest) StartDate() string {
	if q.stay == nil {
		return ""
	}
	return q.stay.Start()
}

func (q *QuoteRequest) EndDate() string {
	if q.stay == nil {
		return ""
	}
	return q.stay.End()
}

func (q *QuoteRequest) FullName() *string {
	return joinName(q.firstName, q.lastName)
}
