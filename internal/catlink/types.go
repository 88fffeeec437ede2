package catlink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString is a string that also accepts JSON numbers. The vendor API
// is inconsistent about whether identifiers and readings are quoted.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(b)
	return nil
}

func (s FlexString) String() string { return string(s) }

// FlexInt is an int that also accepts quoted JSON numbers.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		if v == "" {
			*n = 0
			return nil
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("numeric string expected: %w", err)
		}
		*n = FlexInt(i)
		return nil
	}
	var i int
	if err := json.Unmarshal(b, &i); err != nil {
		return err
	}
	*n = FlexInt(i)
	return nil
}

// Device is one entry from the account device list.
type Device struct {
	ID    FlexString `json:"id"`
	DevID FlexString `json:"deviceId"`
	Mac   string     `json:"mac"`
	Name  string     `json:"deviceName"`
	Type  DeviceType `json:"deviceType"`
	Model string     `json:"model"`
}

// Key returns the best available identifier, used for de-duplication.
func (d Device) Key() string {
	switch {
	case d.ID != "":
		return string(d.ID)
	case d.DevID != "":
		return string(d.DevID)
	default:
		return d.Mac
	}
}

// DeviceDetail is the per-device status payload. Field availability
// varies by device type; pointer fields are absent when the hardware
// lacks the sensor.
type DeviceDetail struct {
	WorkStatus         FlexString `json:"workStatus"`
	WorkModel          FlexString `json:"workModel"`
	Online             bool       `json:"online"`
	CatLitterWeight    *float64   `json:"catLitterWeight"`
	LitterCountdown    *FlexInt   `json:"litterCountdown"`
	InductionTimes     FlexInt    `json:"inductionTimes"`
	ManualTimes        FlexInt    `json:"manualTimes"`
	DeodorantCountdown *FlexInt   `json:"deodorantCountdown"`
	Temperature        FlexString `json:"temperature"`
	Humidity           FlexString `json:"humidity"`
	CurrentMessage     string     `json:"currentMessage"`
	CurrentError       string     `json:"currentError"`
}

// TotalCleans is the sum of sensor-triggered and manual cleaning cycles.
func (d DeviceDetail) TotalCleans() int {
	return int(d.InductionTimes) + int(d.ManualTimes)
}

// ErrorMessage returns the device's current error message, if any.
func (d DeviceDetail) ErrorMessage() string {
	if d.CurrentMessage != "" {
		return d.CurrentMessage
	}
	return d.CurrentError
}

// LogEntry is one device event log record. The vendor uses different
// field names per device type.
type LogEntry struct {
	Time       FlexString `json:"time"`
	CreateTime FlexString `json:"createTime"`
	Event      string     `json:"event"`
	Msg        string     `json:"msg"`
}

// Timestamp returns whichever timestamp field is populated.
func (e LogEntry) Timestamp() string {
	if e.Time != "" {
		return string(e.Time)
	}
	return string(e.CreateTime)
}

// Text returns whichever event text field is populated.
func (e LogEntry) Text() string {
	if e.Event != "" {
		return e.Event
	}
	return e.Msg
}

// Cat is one entry from the account pet list. The pet endpoints use two
// generations of field names.
type Cat struct {
	ID       FlexString `json:"id"`
	PetID    FlexString `json:"petId"`
	Name     string     `json:"name"`
	PetName  string     `json:"petName"`
	Weight   FlexString `json:"weight"`
	Breed    string     `json:"breed"`
	BreedNew string     `json:"breedName"`
}

// Key returns the pet identifier.
func (c Cat) Key() string {
	if c.ID != "" {
		return string(c.ID)
	}
	return string(c.PetID)
}

// DisplayName returns the pet's name, whichever field carries it.
func (c Cat) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.PetName != "" {
		return c.PetName
	}
	return "unnamed"
}

// BreedName returns the pet's breed, whichever field carries it.
func (c Cat) BreedName() string {
	if c.BreedNew != "" {
		return c.BreedNew
	}
	return c.Breed
}
