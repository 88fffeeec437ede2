package catlink

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestModeCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dt       DeviceType
		mode     string
		expected string
		wantErr  error
	}{
		{"scooper auto", DeviceScooper, "auto", "00", nil},
		{"scooper empty", DeviceScooper, "empty", "03", nil},
		{"litterbox time", DeviceLitterBox599, "time", "02", nil},
		{"litterbox empty not supported", DeviceLitterBox599, "empty", "", ErrInvalidMode},
		{"unknown mode", DeviceScooper, "turbo", "", ErrInvalidMode},
		{"feeder has no modes", DeviceFeeder, "auto", "", ErrUnsupportedDeviceType},
		{"purepro has no modes", DevicePurePro, "auto", "", ErrUnsupportedDeviceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, err := ModeCode(tt.dt, tt.mode)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if code != tt.expected {
				t.Errorf("expected code %s, got %s", tt.expected, code)
			}
		})
	}
}

func TestActionCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dt       DeviceType
		action   string
		expected string
		wantErr  error
	}{
		{"scooper start", DeviceScooper, "start", "01", nil},
		{"scooper pause", DeviceScooper, "pause", "00", nil},
		{"litterbox clean", DeviceLitterBox599, "clean", "01", nil},
		{"scooper clean is called start", DeviceScooper, "clean", "", ErrInvalidAction},
		{"litterbox start is called clean", DeviceLitterBox599, "start", "", ErrInvalidAction},
		{"c08 has no actions", DeviceC08, "pause", "", ErrUnsupportedDeviceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, err := ActionCode(tt.dt, tt.action)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if code != tt.expected {
				t.Errorf("expected code %s, got %s", tt.expected, code)
			}
		})
	}
}

func TestCleanAndPauseActionCodes(t *testing.T) {
	t.Parallel()

	if code, err := CleanActionCode(DeviceScooper); err != nil || code != "01" {
		t.Errorf("expected scooper clean=01, got %s (%v)", code, err)
	}

	if code, err := CleanActionCode(DeviceLitterBox599); err != nil || code != "01" {
		t.Errorf("expected litterbox clean=01, got %s (%v)", code, err)
	}

	if code, err := PauseActionCode(DeviceScooper); err != nil || code != "00" {
		t.Errorf("expected scooper pause=00, got %s (%v)", code, err)
	}

	if _, err := CleanActionCode(DeviceFeeder); !errors.Is(err, ErrUnsupportedDeviceType) {
		t.Errorf("expected ErrUnsupportedDeviceType for feeder, got %v", err)
	}
}

func TestWorkStatusName(t *testing.T) {
	t.Parallel()

	if got := WorkStatusName("00"); got != "idle" {
		t.Errorf("expected idle, got %s", got)
	}

	if got := WorkStatusName(" 01 "); got != "running" {
		t.Errorf("expected running for padded code, got %s", got)
	}

	if got := WorkStatusName("99"); got != "99" {
		t.Errorf("expected raw fallback, got %s", got)
	}
}

func TestParseDeviceType(t *testing.T) {
	t.Parallel()

	if dt, err := ParseDeviceType("scooper"); err != nil || dt != DeviceScooper {
		t.Errorf("expected case-insensitive parse, got %s (%v)", dt, err)
	}

	if _, err := ParseDeviceType("TOASTER"); !errors.Is(err, ErrUnsupportedDeviceType) {
		t.Errorf("expected ErrUnsupportedDeviceType, got %v", err)
	}
}

// Validation failures must never reach the network.
func TestValidation_NoNetworkCall(t *testing.T) {
	t.Parallel()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"returnCode":0}`))
	}))
	defer server.Close()

	client := New(server.URL, WithToken("T1"))
	ctx := context.Background()

	cases := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{"detail purepro", func() error {
			_, err := client.DeviceDetail(ctx, "d1", DevicePurePro)
			return err
		}, ErrUnsupportedDeviceType},
		{"mode feeder", func() error {
			return client.ChangeMode(ctx, "d1", DeviceFeeder, "00")
		}, ErrUnsupportedDeviceType},
		{"action c08", func() error {
			return client.SendAction(ctx, "d1", DeviceC08, "00")
		}, ErrUnsupportedDeviceType},
		{"logs c08", func() error {
			_, err := client.DeviceLogs(ctx, "d1", DeviceC08)
			return err
		}, ErrUnsupportedDeviceType},
		{"bag change scooper", func() error {
			return client.ReplaceGarbageBag(ctx, "d1", DeviceScooper, true)
		}, ErrUnsupportedDeviceType},
		{"consumable feeder", func() error {
			return client.ResetConsumable(ctx, "d1", DeviceFeeder, ConsumableCatLitter)
		}, ErrUnsupportedDeviceType},
		{"feed scooper", func() error {
			return client.FoodOut(ctx, "d1", DeviceScooper, 5)
		}, ErrUnsupportedDeviceType},
		{"empty device id", func() error {
			_, err := client.DeviceDetail(ctx, "", DeviceScooper)
			return err
		}, ErrEmptyDeviceID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if calls != 0 {
		t.Errorf("expected no HTTP calls, got %d", calls)
	}
}
