package booking

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"resort-booking/internal/pkg/validate"
)

type BoardType string

const (
	BoardBedOnly         BoardType = "Bed Only"
	BoardBedAndBreakfast BoardType = "Bed and Breakfast"
	BoardHalfBoard       BoardType = "Half Board"
	BoardFullBoard       BoardType = "Full Board"

	// BoardMixed is the summary used when a plan mixes board types.
	BoardMixed = "mixed"
)

var knownBoardTypes = []BoardType{BoardBedOnly, BoardBedAndBreakfast, BoardHalfBoard, BoardFullBoard}

func (b BoardType) String() string {
	return string(b)
}

// CanonicalBoardType maps a case-insensitive match of a known board type to
// its canonical label. Unknown labels are returned trimmed.
func CanonicalBoardType(label string) BoardType {
	trimmed := strings.TrimSpace(label)
	for _, k := range knownBoardTypes {
		if strings.EqualFold(trimmed, string(k)) {
			return k
		}
	}
	return BoardType(trimmed)
}

type BoardNight struct {
	Date      string    `json:"date"`
	BoardType BoardType `json:"board_type"`
}

// BoardPlan is an ordered per-night board assignment, one entry per date.
type BoardPlan struct {
	nights []BoardNight
}

type rawBoardNight struct {
	Date      any `json:"date"`
	BoardType any `json:"board_type"`
}

// ParseBoardPlan accepts either a JSON array of {date, board_type} or a JSON
// string holding such an array. Anything unparseable yields an empty slice.
func ParseBoardPlan(raw json.RawMessage) []BoardNight {
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

	var items []rawBoardNight
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	nights := make([]BoardNight, 0, len(items))
	for _, it := range items {
		nights = append(nights, BoardNight{
			Date:      looseString(it.Date),
			BoardType: BoardType(looseString(it.BoardType)),
		})
	}
	return nights
}

// NewBoardPlan keeps entries whose date is a real night of the stay and whose
// board type is non-empty, canonicalizes board types, keeps the last entry
// for a repeated date, and sorts by date.
func NewBoardPlan(nights []BoardNight, stay StayDates) BoardPlan {
	byDate := make(map[string]BoardType, len(nights))
	for _, n := range nights {
		date := strings.TrimSpace(n.Date)
		bt := CanonicalBoardType(string(n.BoardType))
		if bt == "" || !validate.IsCalendarDate(date) || !stay.Contains(date) {
			continue
		}
		byDate[date] = bt
	}

	plan := make([]BoardNight, 0, len(byDate))
	for date, bt := range byDate {
		plan = append(plan, BoardNight{Date: date, BoardType: bt})
	}
	sort.Slice(plan, func(i, j int) bool { return plan[i].Date < plan[j].Date })

	return BoardPlan{nights: plan}
}

func (p BoardPlan) Nights() []BoardNight {
	out := make([]BoardNight, len(p.nights))
	copy(out, p.nights)
	return out
}

func (p BoardPlan) IsEmpty() bool {
	return len(p.nights) == 0
}

// DistinctTypes returns board types in first-seen order.
func (p BoardPlan) DistinctTypes() []BoardType {
	seen := make(map[BoardType]struct{}, len(p.nights))
	var out []BoardType
	for _, n := range p.nights {
		if _, ok := seen[n.BoardType]; ok {
			continue
		}
		seen[n.BoardType] = struct{}{}
		out = append(out, n.BoardType)
	}
	return out
}

// SummarizeBoard derives the reservation's board summary. An explicit
// request type wins unless it is "room", in which case the explicit board
// type is used. Without either, the plan decides: its single distinct type,
// "mixed" for several, nil for none.
func SummarizeBoard(requestType, boardType string, plan BoardPlan) *string {
	requestType = strings.TrimSpace(requestType)
	boardType = strings.TrimSpace(boardType)

	candidate := requestType
	if strings.EqualFold(requestType, "room") {
		candidate = boardType
	} else if candidate == "" {
		candidate = boardType
	}
	if candidate != "" {
		s := CanonicalBoardType(candidate).String()
		return &s
	}

	distinct := plan.DistinctTypes()
	switch len(distinct) {
	case 0:
		return nil
	case 1:
		s := distinct[0].String()
		return &s
	default:
		s := BoardMixed
		return &s
	}
}

func looseString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
