package domain

import (
	"fmt"
	"strings"
)

// RoomType closed set of room categories
type RoomType string

const (
	RoomTypeSingle   RoomType = "single"
	RoomTypeTwin     RoomType = "twin"
	RoomTypeDouble   RoomType = "double"
	RoomTypeTriple   RoomType = "triple"
	RoomTypeJapanese RoomType = "japanese"
	RoomTypeSuite    RoomType = "suite"
)

// roomTypeCodes maps external catalog codes to room types
// Matching is exact (after case folding); unknown codes are rejected
var roomTypeCodes = map[string]RoomType{
	"single":       RoomTypeSingle,
	"sgl":          RoomTypeSingle,
	"twin":         RoomTypeTwin,
	"twn":          RoomTypeTwin,
	"double":       RoomTypeDouble,
	"dbl":          RoomTypeDouble,
	"triple":       RoomTypeTriple,
	"tpl":          RoomTypeTriple,
	"japanese":     RoomTypeJapanese,
	"washitsu":     RoomTypeJapanese,
	"tatami":       RoomTypeJapanese,
	"suite":        RoomTypeSuite,
	"suite_room":   RoomTypeSuite,
	"junior_suite": RoomTypeSuite,
}

// ParseRoomType converts an external catalog code into a RoomType
func ParseRoomType(code string) (RoomType, error) {
	t, ok := roomTypeCodes[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoomType, code)
	}
	return t, nil
}

// Room is a bookable room from the catalog
type Room struct {
	ID        int64
	Name      string // display name, leading digit encodes the floor ("305" -> 3)
	Floor     int
	Type      RoomType
	Capacity  int
	BasePrice int64 // nightly, currency units
}

// FloorFromName extracts the floor from the leading digit of a room name
// Returns false when the name does not start with a digit
func FloorFromName(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	c := name[0]
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}
