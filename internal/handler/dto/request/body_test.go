//go:build unit

package request_test

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"resort-booking/internal/domain/availability"
	reqdto "resort-booking/internal/handler/dto/request"
	"resort-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) reqdto.Body {
	t.Helper()
	var b reqdto.Body
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	return b
}

func TestBindBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bind := func(contentType, body string) (reqdto.Body, error) {
		rec := nethttptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = nethttptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if contentType != "" {
			c.Request.Header.Set("Content-Type", contentType)
		}
		return reqdto.BindBody(c)
	}

	t.Run("empty body", func(t *testing.T) {
		b, err := bind("application/json", "")
		require.NoError(t, err)
		assert.Empty(t, b)
	})

	t.Run("json object", func(t *testing.T) {
		b, err := bind("application/json", `{"guests":2,"email":"ada@example.com"}`)
		require.NoError(t, err)
		assert.Equal(t, 2, b.Int(1, 1, "guests"))
		assert.Equal(t, "ada@example.com", b.String("email"))
	})

	t.Run("json null", func(t *testing.T) {
		b, err := bind("application/json", `null`)
		require.NoError(t, err)
		assert.NotNil(t, b)
	})

	t.Run("url-encoded form", func(t *testing.T) {
		b, err := bind("application/x-www-form-urlencoded", "guests=3&email=ada%40example.com")
		require.NoError(t, err)
		assert.Equal(t, 3, b.Int(1, 1, "guests"))
		assert.Equal(t, "ada@example.com", b.String("email"))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := bind("application/json", `{"guests":`)
		assert.ErrorIs(t, err, reqdto.ErrInvalidBody)
	})

	t.Run("json array", func(t *testing.T) {
		_, err := bind("application/json", `[1,2]`)
		assert.ErrorIs(t, err, reqdto.ErrInvalidBody)
	})
}

func TestBody_String(t *testing.T) {
	b := decode(t, `{"a":"  ","b":" x ","n":2.5,"flag":true,"obj":{"k":1}}`)

	assert.Equal(t, "x", b.String("a", "b"))
	assert.Equal(t, "2.5", b.String("n"))
	assert.Equal(t, "true", b.String("flag"))
	assert.Equal(t, "", b.String("obj", "missing"))
}

func TestBody_Int(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "absent uses default", raw: `{}`, want: 1},
		{name: "null falls through to next key", raw: `{"guests":null,"adults":3}`, want: 3},
		{name: "numeric string", raw: `{"guests":"4"}`, want: 4},
		{name: "below floor uses default", raw: `{"guests":0,"adults":5}`, want: 1},
		{name: "not a number uses default", raw: `{"guests":"two"}`, want: 1},
		{name: "fraction truncates", raw: `{"guests":2.9}`, want: 2},
		{name: "huge number saturates", raw: `{"guests":1e20}`, want: reqdto.MaxCount},
		{name: "infinity string saturates", raw: `{"guests":"Infinity"}`, want: reqdto.MaxCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decode(t, tt.raw).Int(1, 1, "guests", "adults"))
		})
	}
}

func TestBody_Float(t *testing.T) {
	assert.Nil(t, decode(t, `{}`).Float("total_price"))
	assert.Nil(t, decode(t, `{"total_price":"abc"}`).Float("total_price"))
	got := decode(t, `{"total_price":"","totalPrice":"120.5"}`).Float("total_price", "totalPrice")
	require.NotNil(t, got)
	assert.Equal(t, 120.5, *got)
}

func TestBody_ToAvailabilityInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want queries.AvailabilityInput
	}{
		{
			name: "camelCase wins over snake_case",
			raw:  `{"roomType":"double","room_type":"single","checkIn":"2025-06-10","check_in":"2025-01-01","checkOut":"2025-06-12"}`,
			want: queries.AvailabilityInput{RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: 1},
		},
		{
			name: "room label and start/end aliases",
			raw:  `{"room":"suite","startDate":"2025-06-10","end_date":"2025-06-12","quantity":2}`,
			want: queries.AvailabilityInput{RoomType: "suite", CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: 2},
		},
		{
			name: "single room_id becomes a unit list",
			raw:  `{"room_id":"abc","checkIn":"2025-06-10","checkOut":"2025-06-12","rooms":0}`,
			want: queries.AvailabilityInput{UnitIDs: []string{"abc"}, CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: 1},
		},
		{
			name: "huge room count saturates",
			raw:  `{"roomType":"double","checkIn":"2025-06-10","checkOut":"2025-06-12","rooms":1e20}`,
			want: queries.AvailabilityInput{RoomType: "double", CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: reqdto.MaxCount},
		},
		{
			name: "room_ids array",
			raw:  `{"room_ids":["a","b"],"checkIn":"2025-06-10","checkOut":"2025-06-12"}`,
			want: queries.AvailabilityInput{UnitIDs: []string{"a", "b"}, CheckIn: "2025-06-10", CheckOut: "2025-06-12", RequestedRooms: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decode(t, tt.raw).ToAvailabilityInput()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToAvailabilityInput() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBody_HugeRoomCountIsUnavailable(t *testing.T) {
	in := decode(t, `{"rooms":1e20}`).ToAvailabilityInput()
	assert.False(t, availability.Compute(10, 0, in.RequestedRooms).Available)
}

func TestBody_ToBookingSubmission(t *testing.T) {
	sub := decode(t, `{
		"check_in":"2025-06-10","checkOut":"2025-06-12",
		"firstName":"Ada","last_name":"Lovelace","email":"ada@example.com","phone":"555 123 4567",
		"roomTypes":"[\"double\",\"suite\"]","adults":3,"kids":-1,"num_rooms":2,
		"boardPlan":[{"date":"2025-06-10","board_type":"Half Board"}],
		"totalPrice":"450"
	}`).ToBookingSubmission()

	assert.Equal(t, "2025-06-10", sub.StartDate)
	assert.Equal(t, "2025-06-12", sub.EndDate)
	assert.Equal(t, "Ada", sub.FirstName)
	assert.Equal(t, "Lovelace", sub.LastName)
	assert.Equal(t, []string{"double", "suite"}, sub.RoomTypes)
	assert.Equal(t, 3, sub.Adults)
	assert.Equal(t, 0, sub.Children)
	assert.Equal(t, 2, sub.Rooms)
	require.Len(t, sub.BoardPlan, 1)
	assert.Equal(t, "2025-06-10", sub.BoardPlan[0].Date)
	require.NotNil(t, sub.TotalPrice)
	assert.Equal(t, 450.0, *sub.TotalPrice)
}

func TestBody_ToQuoteSubmission(t *testing.T) {
	sub := decode(t, `{"email":"g@example.com","type":"wedding","guests":40}`).ToQuoteSubmission()

	assert.Equal(t, "wedding", sub.InquiryType)
	assert.Equal(t, 40, sub.Adults)
	assert.Equal(t, 1, sub.Rooms)
}
