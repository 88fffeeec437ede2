package catlink

import (
	"context"
	"strconv"
)

// Devices returns every device on the account. The sorted union list
// omits feeders on some accounts, so when none is present the list is
// expanded with additional type filters and de-duplicated by device key.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	devices, err := c.deviceList(ctx, "NONE")
	if err != nil {
		return nil, err
	}
	for _, d := range devices {
		if d.Type == DeviceFeeder {
			return devices, nil
		}
	}
	return c.expandDevices(ctx, devices), nil
}

func (c *Client) deviceList(ctx context.Context, typeFilter string) ([]Device, error) {
	var data struct {
		Devices []Device `json:"devices"`
	}
	err := c.get(ctx, "token/device/union/list/sorted", map[string]string{"type": typeFilter}, &data)
	if err != nil {
		return nil, err
	}
	return data.Devices, nil
}

// expandDevices retries the list with alternate type filters, merging
// best-effort: a failing filter leaves the list as is.
func (c *Client) expandDevices(ctx context.Context, devices []Device) []Device {
	for _, filter := range []string{"FEEDER", "ALL"} {
		extra, err := c.deviceList(ctx, filter)
		if err != nil {
			c.options.requestLogger.Debugf("catlink: device list expansion %q failed: %v", filter, err)
			continue
		}
		if len(extra) > 0 {
			devices = mergeDevices(devices, extra)
		}
	}
	return devices
}

func mergeDevices(primary, extra []Device) []Device {
	merged := make([]Device, 0, len(primary)+len(extra))
	seen := make(map[string]bool)
	for _, d := range append(append([]Device(nil), primary...), extra...) {
		if key := d.Key(); key != "" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		merged = append(merged, d)
	}
	return merged
}

// detailEndpoints maps device types to their status endpoint.
var detailEndpoints = map[DeviceType]string{
	DeviceScooper:      "token/device/info",
	DeviceLitterBox599: "token/litterbox/info",
	DeviceC08:          "token/litterbox/info/c08",
	DeviceFeeder:       "token/device/feeder/detail",
}

// DeviceDetail fetches detailed status for one device.
func (c *Client) DeviceDetail(ctx context.Context, deviceID string, dt DeviceType) (DeviceDetail, error) {
	if deviceID == "" {
		return DeviceDetail{}, ErrEmptyDeviceID
	}
	if err := validateDeviceType("status", detailTypes, dt); err != nil {
		return DeviceDetail{}, err
	}

	var data struct {
		DeviceDetail
		DeviceInfo *DeviceDetail `json:"deviceInfo"`
	}
	err := c.get(ctx, detailEndpoints[dt], map[string]string{"deviceId": deviceID}, &data)
	if err != nil {
		return DeviceDetail{}, err
	}
	if data.DeviceInfo != nil {
		return *data.DeviceInfo, nil
	}
	return data.DeviceDetail, nil
}

// ChangeMode sets the device working mode. The mode code must come from
// [ModeCode] for the same device type.
func (c *Client) ChangeMode(ctx context.Context, deviceID string, dt DeviceType, modeCode string) error {
	if deviceID == "" {
		return ErrEmptyDeviceID
	}
	if err := validateDeviceType("mode changes", modeTypes, dt); err != nil {
		return err
	}

	path := "token/device/changeMode"
	if dt == DeviceLitterBox599 {
		path = "token/litterbox/changeMode"
	}
	return c.post(ctx, path, map[string]string{"workModel": modeCode, "deviceId": deviceID}, nil)
}

// SendAction sends an action command. The action code must come from
// [ActionCode], [CleanActionCode], or [PauseActionCode] for the same
// device type.
func (c *Client) SendAction(ctx context.Context, deviceID string, dt DeviceType, actionCode string) error {
	if deviceID == "" {
		return ErrEmptyDeviceID
	}
	if err := validateDeviceType("actions", actionTypes, dt); err != nil {
		return err
	}

	path := "token/device/actionCmd"
	if dt == DeviceLitterBox599 {
		path = "token/litterbox/actionCmd"
	}
	return c.post(ctx, path, map[string]string{"cmd": actionCode, "deviceId": deviceID}, nil)
}

// logEndpoints maps device types to their recent-logs endpoint.
var logEndpoints = map[DeviceType]string{
	DeviceScooper:      "token/device/scooper/stats/log/top5",
	DeviceLitterBox599: "token/litterbox/stats/log/top5",
	DeviceFeeder:       "token/device/feeder/stats/log/top5",
}

// DeviceLogs fetches the device's recent event log.
func (c *Client) DeviceLogs(ctx context.Context, deviceID string, dt DeviceType) ([]LogEntry, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}
	if err := validateDeviceType("logs", logTypes, dt); err != nil {
		return nil, err
	}

	var data struct {
		ScooperLogTop5 []LogEntry `json:"scooperLogTop5"`
		FeederLogTop5  []LogEntry `json:"feederLogTop5"`
		Logs           []LogEntry `json:"logs"`
		List           []LogEntry `json:"list"`
	}
	err := c.get(ctx, logEndpoints[dt], map[string]string{"deviceId": deviceID}, &data)
	if err != nil {
		return nil, err
	}
	for _, entries := range [][]LogEntry{data.ScooperLogTop5, data.FeederLogTop5, data.Logs, data.List} {
		if len(entries) > 0 {
			return entries, nil
		}
	}
	return nil, nil
}

// ReplaceGarbageBag triggers garbage bag replacement on a litter box.
func (c *Client) ReplaceGarbageBag(ctx context.Context, deviceID string, dt DeviceType, enable bool) error {
	if deviceID == "" {
		return ErrEmptyDeviceID
	}
	if err := validateDeviceType("garbage bag replacement", bagReplaceTypes, dt); err != nil {
		return err
	}

	flag := "0"
	if enable {
		flag = "1"
	}
	return c.post(ctx, "token/litterbox/replaceGarbageBagCmd", map[string]string{"enable": flag, "deviceId": deviceID}, nil)
}

// ResetConsumable resets a consumable counter (litter or deodorizer).
func (c *Client) ResetConsumable(ctx context.Context, deviceID string, dt DeviceType, consumable ConsumableType) error {
	if deviceID == "" {
		return ErrEmptyDeviceID
	}
	if err := validateDeviceType("consumable reset", consumableTypes, dt); err != nil {
		return err
	}

	params := map[string]string{
		"consumablesType": string(consumable),
		"deviceId":        deviceID,
		"deviceType":      string(dt),
	}
	return c.post(ctx, "token/device/union/consumableReset", params, nil)
}

// FoodOut dispenses the given number of portions from a feeder.
func (c *Client) FoodOut(ctx context.Context, deviceID string, dt DeviceType, portions int) error {
	if deviceID == "" {
		return ErrEmptyDeviceID
	}
	if err := validateDeviceType("food dispensing", feedTypes, dt); err != nil {
		return err
	}

	params := map[string]string{
		"footOutNum": strconv.Itoa(portions),
		"deviceId":   deviceID,
	}
	return c.post(ctx, "token/device/feeder/foodOut", params, nil)
}
