package booking

import (
	"encoding/json"
	"strings"
	"time"

	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/ptr"
	"resort-booking/internal/pkg/validate"

	"github.com/google/uuid"
)

// Submission is a booking request after input keys have been coalesced but
// before any validation.
type Submission struct {
	StartDate   string
	EndDate     string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Type        string
	Room        string
	BoardType   string
	BoardPlan   []BoardNight
	RoomID      string
	RoomTypes   []string
	Adults      int
	Children    int
	Rooms       int
	TotalPrice  *float64
	Notes       string
	Nationality string
	IDDocument  string
}

type Reservation struct {
	id            uuid.UUID
	requestType   string
	roomLabel     *string
	roomID        *string
	roomType      *string
	roomTypes     []string
	firstName     *string
	lastName      *string
	email         string
	phone         string
	stay          StayDates
	adults        int
	children      int
	rooms         int
	currency      string
	totalPrice    *float64
	boardType     *string
	boardPlan     BoardPlan
	status        Status
	paymentStatus string
	notes         *string
	nationality   *string
	idDocument    *string
	createdAt     time.Time
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{Clock: c}
}

// CreateReservation validates and normalizes a submission in a fixed order,
// stopping at the first failing rule.
func (f *Factory) CreateReservation(sub Submission) (*Reservation, error) {
	start := strings.TrimSpace(sub.StartDate)
	end := strings.TrimSpace(sub.EndDate)

	stay, err := NewStayDates(start, end, clock.Today(f.Clock))
	if err != nil {
		return nil, err
	}

	if !validate.IsValidEmail(sub.Email) {
		return nil, ErrInvalidEmail
	}
	if !validate.IsValidPhone(sub.Phone) {
		return nil, ErrInvalidPhone
	}

	plan := NewBoardPlan(sub.BoardPlan, stay)
	summary := SummarizeBoard(sub.Type, sub.BoardType, plan)

	var roomID *string
	if id := strings.TrimSpace(sub.RoomID); validate.IsUUID(id) {
		roomID = &id
	}

	roomTypes := cleanRoomTypes(sub.RoomTypes)
	var roomType *string
	if len(roomTypes) > 0 {
		roomType = ptr.To(roomTypes[0])
	}

	var total *float64
	if sub.TotalPrice != nil && *sub.TotalPrice >= 0 {
		total = ptr.To(*sub.TotalPrice)
	}

	requestType := strings.TrimSpace(sub.Type)
	if requestType == "" {
		requestType = DefaultInquiryType
	}
	roomLabel := ptr.NonEmpty(sub.Room)
	if roomLabel == nil {
		roomLabel = roomType
	}

	return &Reservation{
		id:            uuid.New(),
		requestType:   requestType,
		roomLabel:     roomLabel,
		roomID:        roomID,
		roomType:      roomType,
		roomTypes:     roomTypes,
		firstName:     ptr.NonEmpty(sub.FirstName),
		lastName:      ptr.NonEmpty(sub.LastName),
		email:         strings.TrimSpace(sub.Email),
		phone:         validate.NormalizePhone(sub.Phone),
		stay:          stay,
		adults:        positiveOr(sub.Adults, 1),
		children:      nonNegative(sub.Children),
		rooms:         positiveOr(sub.Rooms, 1),
		currency:      Currency,
		totalPrice:    total,
		boardType:     summary,
		boardPlan:     plan,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		notes:         ptr.NonEmpty(sub.Notes),
		nationality:   ptr.NonEmpty(sub.Nationality),
		idDocument:    ptr.NonEmpty(sub.IDDocument),
		createdAt:     f.Clock.Now().UTC(),
	}, nil
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) RequestType() string   { return r.requestType }
func (r *Reservation) RoomID() *string       { return r.roomID }
func (r *Reservation) RoomType() *string     { return r.roomType }
func (r *Reservation) RoomTypes() []string   { return r.roomTypes }
func (r *Reservation) FirstName() *string    { return r.firstName }
func (r *Reservation) LastName() *string     { return r.lastName }
func (r *Reservation) Email() string         { return r.email }
func (r *Reservation) Phone() string         { return r.phone }
func (r *Reservation) StartDate() string     { return r.stay.Start() }
func (r *Reservation) EndDate() string       { return r.stay.End() }
func (r *Reservation) Adults() int           { return r.adults }
func (r *Reservation) Children() int         { return r.children }
func (r *Reservation) Rooms() int            { return r.rooms }
func (r *Reservation) Currency() string      { return r.currency }
func (r *Reservation) TotalPrice() *float64  { return r.totalPrice }
func (r *Reservation) BoardType() *string    { return r.boardType }
func (r *Reservation) BoardPlan() BoardPlan  { return r.boardPlan }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) PaymentStatus() string { return r.paymentStatus }
func (r *Reservation) Notes() *string        { return r.notes }
func (r *Reservation) Nationality() *string  { return r.nationality }
func (r *Reservation) IDDocument() *string   { return r.idDocument }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }

// FullName joins the present name parts with a single space.
func (r *Reservation) FullName() *string {
	return joinName(r.firstName, r.lastName)
}

// ParseRoomTypes accepts a JSON array or a JSON string holding one.
// Non-string elements are stringified; unparseable input yields nil.
func ParseRoomTypes(raw json.RawMessage) []string {
	data := []byte(strings.TrimSpace(string(raw)))
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return nil
		}
		data = []byte(strings.TrimSpace(encoded))
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, looseString(it))
	}
	return cleanRoomTypes(out)
}

func cleanRoomTypes(in []string) []string {
	var out []string
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func joinName(first, last *string) *string {
	parts := make([]string, 0, 2)
	if first != nil {
		parts = append(parts, *first)
	}
	if last != nil {
		parts = append(parts, *last)
	}
	if len(parts) == 0 {
		return nil
	}
	return ptr.To(strings.Join(parts, " "))
}

func positiveOr(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
