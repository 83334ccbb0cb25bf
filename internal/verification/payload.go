package verification

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/runera/runera-backend/internal/domain"
)

// timestampLayouts are tried in order; a bare date is midnight UTC
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02"}

// Number holds a numeric field sent either as a JSON number or as a numeric string.
// Anything else is kept verbatim and rejected by Parse.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	*n = Number(data)
	return nil
}

// Float returns the value when it is a finite number
func (n Number) Float() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// RunPayload is the raw submission body. Numbers and timestamps are validated by Parse.
type RunPayload struct {
	WalletAddress   string  `json:"walletAddress"`
	DistanceMeters  Number  `json:"distanceMeters"`
	DurationSeconds Number  `json:"durationSeconds"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DeviceHash      *string `json:"deviceHash"`
}

// Parse validates the payload and converts it into a SubmitRunInput.
// Every problem is reported in a single *domain.ValidationError.
func (p RunPayload) Parse() (SubmitRunInput, error) {
	var problems []string

	wallet := strings.TrimSpace(p.WalletAddress)
	switch {
	case wallet == "":
		problems = append(problems, "walletAddress is required")
	case !domain.IsValidWalletAddress(wallet):
		problems = append(problems, "walletAddress must be a valid 0x address")
	}

	distance, ok := p.DistanceMeters.Float()
	if !ok || distance <= 0 {
		problems = append(problems, "distanceMeters must be a positive number")
	}
	duration, ok := p.DurationSeconds.Float()
	if !ok || duration <= 0 {
		problems = append(problems, "durationSeconds must be a positive number")
	}

	start, startErr := parseTimestamp(p.StartTime)
	if startErr != nil {
		problems = append(problems, "startTime must be a valid ISO8601 date")
	}
	end, endErr := parseTimestamp(p.EndTime)
	if endErr != nil {
		problems = append(problems, "endTime must be a valid ISO8601 date")
	}
	if startErr == nil && endErr == nil && !end.After(start) {
		problems = append(problems, "endTime must be after startTime")
	}

	if len(problems) > 0 {
		return SubmitRunInput{}, &domain.ValidationError{Problems: problems}
	}

	var deviceHash string
	if p.DeviceHash != nil {
		deviceHash = strings.TrimSpace(*p.DeviceHash)
	}

	return SubmitRunInput{
		WalletAddress:   strings.ToLower(wallet),
		DistanceMeters:  distance,
		DurationSeconds: duration,
		StartTime:       start.UTC(),
		EndTime:         end.UTC(),
		DeviceHash:      deviceHash,
	}, nil
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
