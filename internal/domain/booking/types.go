package booking

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCancelled  Status = "cancelled"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCheckedIn, StatusCheckedOut:
		return true
	default:
		return false
	}
}

const (
	PaymentPending = "pending"

	// Currency is fixed; no conversion happens anywhere.
	Currency = "USD"

	QuoteStatusNew = "new"

	DefaultInquiryType = "room"
)
