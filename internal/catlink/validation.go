package catlink

import (
	"fmt"
	"sort"
	"strings"
)

// DeviceType distinguishes CatLink hardware variants. Different types
// support different modes, actions, and operations.
type DeviceType string

const (
	DeviceScooper      DeviceType = "SCOOPER"
	DeviceLitterBox599 DeviceType = "LITTER_BOX_599"
	DeviceC08          DeviceType = "C08"
	DeviceFeeder       DeviceType = "FEEDER"
	DevicePurePro      DeviceType = "PUREPRO"
)

// DeviceTypes lists every known type, in display order.
func DeviceTypes() []DeviceType {
	return []DeviceType{DeviceScooper, DeviceLitterBox599, DeviceC08, DeviceFeeder, DevicePurePro}
}

// ParseDeviceType converts a user-supplied type name.
func ParseDeviceType(s string) (DeviceType, error) {
	dt := DeviceType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range DeviceTypes() {
		if dt == known {
			return dt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDeviceType, s)
}

// ConsumableType identifies a resettable consumable counter.
type ConsumableType string

const (
	ConsumableCatLitter  ConsumableType = "CAT_LITTER"
	ConsumableDeodorizer ConsumableType = "DEODORIZER_02"
)

// deviceModes maps vendor mode codes to names, per device type.
var deviceModes = map[DeviceType]map[string]string{
	DeviceScooper: {
		"00": "auto",
		"01": "manual",
		"02": "time",
		"03": "empty",
	},
	DeviceLitterBox599: {
		"00": "auto",
		"01": "manual",
		"02": "time",
	},
}

// deviceActions maps vendor action codes to names, per device type.
var deviceActions = map[DeviceType]map[string]string{
	DeviceScooper: {
		"00": "pause",
		"01": "start",
	},
	DeviceLitterBox599: {
		"00": "pause",
		"01": "clean",
	},
}

// workStatuses maps vendor work-status codes to display names.
var workStatuses = map[string]string{
	"00": "idle",
	"01": "running",
	"02": "need_reset",
}

// Per-operation device-type applicability.
var (
	detailTypes     = typeSet(DeviceScooper, DeviceLitterBox599, DeviceC08, DeviceFeeder)
	logTypes        = typeSet(DeviceScooper, DeviceLitterBox599, DeviceFeeder)
	modeTypes       = typeSet(DeviceScooper, DeviceLitterBox599)
	actionTypes     = typeSet(DeviceScooper, DeviceLitterBox599)
	bagReplaceTypes = typeSet(DeviceLitterBox599)
	consumableTypes = typeSet(DeviceScooper, DeviceLitterBox599)
	feedTypes       = typeSet(DeviceFeeder)
)

func typeSet(types ...DeviceType) map[DeviceType]bool {
	s := make(map[DeviceType]bool, len(types))
	for _, t := range types {
		s[t] = true
	}
	return s
}

func validateDeviceType(operation string, allowed map[DeviceType]bool, dt DeviceType) error {
	if allowed[dt] {
		return nil
	}
	names := make([]string, 0, len(allowed))
	for t := range allowed {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return fmt.Errorf("%w: %s does not support %s (supported: %s)",
		ErrUnsupportedDeviceType, dt, operation, strings.Join(names, ", "))
}

// ModeCode resolves a mode name to its vendor code for the device type.
func ModeCode(dt DeviceType, mode string) (string, error) {
	modes, ok := deviceModes[dt]
	if !ok {
		return "", validateDeviceType("mode changes", modeTypes, dt)
	}
	for code, name := range modes {
		if name == mode {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %q for %s (valid: %s)", ErrInvalidMode, mode, dt, strings.Join(ModeNames(dt), ", "))
}

// ModeName resolves a vendor mode code to its display name, falling back
// to the raw code for unknown values.
func ModeName(dt DeviceType, code string) string {
	if name, ok := deviceModes[dt][code]; ok {
		return name
	}
	return code
}

// ModeNames lists the mode names supported by the device type, sorted.
func ModeNames(dt DeviceType) []string {
	return sortedValues(deviceModes[dt])
}

// ActionCode resolves an action name to its vendor code for the device type.
func ActionCode(dt DeviceType, action string) (string, error) {
	actions, ok := deviceActions[dt]
	if !ok {
		return "", validateDeviceType("actions", actionTypes, dt)
	}
	for code, name := range actions {
		if name == action {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %q for %s (valid: %s)", ErrInvalidAction, action, dt, strings.Join(ActionNames(dt), ", "))
}

// ActionNames lists the action names supported by the device type, sorted.
func ActionNames(dt DeviceType) []string {
	return sortedValues(deviceActions[dt])
}

// CleanActionCode returns the device type's cleaning-cycle action code
// (SCOOPER calls it "start", LITTER_BOX_599 calls it "clean").
func CleanActionCode(dt DeviceType) (string, error) {
	for code, name := range deviceActions[dt] {
		if name == "start" || name == "clean" {
			return code, nil
		}
	}
	return "", validateDeviceType("cleaning", actionTypes, dt)
}

// PauseActionCode returns the device type's pause action code.
func PauseActionCode(dt DeviceType) (string, error) {
	for code, name := range deviceActions[dt] {
		if name == "pause" {
			return code, nil
		}
	}
	return "", validateDeviceType("pausing", actionTypes, dt)
}

// WorkStatusName resolves a vendor work-status code to a display name,
// falling back to the raw code.
func WorkStatusName(code string) string {
	if name, ok := workStatuses[strings.TrimSpace(code)]; ok {
		return name
	}
	return code
}

func sortedValues(m map[string]string) []string {
	vals := make([]string, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return vals
}
