package domain

import "testing"

func boolp(v bool) *bool { return &v }

func TestMotion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		vehicle Vehicle
		want    MotionState
	}{
		{"offline masks everything", Vehicle{DeviceStatus: DeviceOffline, LastSpeedKmh: 80}, MotionOffline},
		{"fast is moving", Vehicle{DeviceStatus: DeviceOnline, LastSpeedKmh: 40}, MotionMoving},
		{"slow with ignition is idle", Vehicle{DeviceStatus: DeviceOnline, LastSpeedKmh: 3, LastIgnition: boolp(true)}, MotionIdle},
		{"slow without ignition is stopped", Vehicle{DeviceStatus: DeviceOnline, LastSpeedKmh: 3, LastIgnition: boolp(false)}, MotionStopped},
		{"unknown ignition is stopped", Vehicle{DeviceStatus: DeviceOnline, LastSpeedKmh: 0}, MotionStopped},
		{"exactly at threshold is not moving", Vehicle{DeviceStatus: DeviceOnline, LastSpeedKmh: MovingSpeedKmh}, MotionStopped},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.vehicle.Motion(); got != tc.want {
				t.Fatalf("Motion() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestNormalizeDeviceStatus(t *testing.T) {
	t.Parallel()

	if NormalizeDeviceStatus("online") != DeviceOnline {
		t.Error("online not recognized")
	}
	if NormalizeDeviceStatus("OFFLINE") != DeviceOffline {
		t.Error("OFFLINE not recognized")
	}
	if NormalizeDeviceStatus("sleeping") != DeviceUnknown {
		t.Error("unrecognized status must map to UNKNOWN")
	}
}
