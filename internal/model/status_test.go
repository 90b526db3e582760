package model

import "testing"

func TestPlayerStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   PlayerStatus
		expected bool
	}{
		{PlayerStatusStopped, false},
		{PlayerStatusLoading, true},
		{PlayerStatusPlaying, true},
		{PlayerStatusPaused, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("PlayerStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestPlayerStatus_IsEngaged(t *testing.T) {
	tests := []struct {
		status   PlayerStatus
		expected bool
	}{
		{PlayerStatusStopped, false},
		{PlayerStatusLoading, true},
		{PlayerStatusPlaying, true},
		{PlayerStatusPaused, true},
	}

	for _, test := range tests {
		result := test.status.IsEngaged()
		if result != test.expected {
			t.Errorf("PlayerStatus(%s).IsEngaged() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestPlayerStatus_String(t *testing.T) {
	status := PlayerStatusPlaying
	expected := "Playing"
	result := status.String()

	if result != expected {
		t.Errorf("PlayerStatus.String() = %s, expected %s", result, expected)
	}
}
