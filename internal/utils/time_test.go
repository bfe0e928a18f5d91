package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{
			name:     "empty string returns local",
			timezone: "",
			wantErr:  false,
		},
		{
			name:     "Local returns local",
			timezone: "Local",
			wantErr:  false,
		},
		{
			name:     "valid timezone UTC",
			timezone: "UTC",
			wantErr:  false,
		},
		{
			name:     "valid timezone Asia/Shanghai",
			timezone: "Asia/Shanghai",
			wantErr:  false,
		},
		{
			name:     "invalid timezone",
			timezone: "Invalid/Timezone",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestNowInTimezone(t *testing.T) {
	now, err := NowInTimezone("UTC")
	if err != nil {
		t.Fatalf("NowInTimezone(UTC) error = %v", err)
	}
	if now.Location() != time.UTC {
		t.Errorf("NowInTimezone(UTC) location = %v, want UTC", now.Location())
	}

	if _, err := NowInTimezone("Not/A-Zone"); err == nil {
		t.Errorf("NowInTimezone(Not/A-Zone) expected error, got nil")
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("Asia/Shanghai") {
		t.Errorf("ValidateTimezone(Asia/Shanghai) = false, want true")
	}
	if !ValidateTimezone("Local") {
		t.Errorf("ValidateTimezone(Local) = false, want true")
	}
	if ValidateTimezone("Nowhere/Earth") {
		t.Errorf("ValidateTimezone(Nowhere/Earth) = true, want false")
	}
}
