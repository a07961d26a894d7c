package types

import (
	"testing"
	"time"
)

func TestHookTimeoutsValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     HookTimeouts
		wantErr bool
	}{
		{
			name: "zero config is valid",
			cfg:  HookTimeouts{},
		},
		{
			name: "consistent bounds",
			cfg:  HookTimeouts{Min: time.Second, Default: 10 * time.Second, Max: time.Minute},
		},
		{
			name:    "min above max",
			cfg:     HookTimeouts{Min: time.Minute, Max: time.Second},
			wantErr: true,
		},
		{
			name:    "default below min",
			cfg:     HookTimeouts{Min: 10 * time.Second, Default: time.Second},
			wantErr: true,
		},
		{
			name:    "default above max",
			cfg:     HookTimeouts{Max: time.Second, Default: time.Minute},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHookTimeoutsValidateTimeout(t *testing.T) {
	cfg := HookTimeouts{Min: time.Second, Max: time.Minute}

	if err := cfg.ValidateTimeout(10 * time.Second); err != nil {
		t.Errorf("in-bounds timeout rejected: %v", err)
	}
	if err := cfg.ValidateTimeout(time.Millisecond); err == nil {
		t.Error("below-min timeout accepted")
	}
	if err := cfg.ValidateTimeout(time.Hour); err == nil {
		t.Error("above-max timeout accepted")
	}
}

func TestHookTimeoutsResolveTimeout(t *testing.T) {
	tests := []struct {
		name      string
		cfg       HookTimeouts
		requested time.Duration
		want      time.Duration
	}{
		{
			name:      "requested wins",
			cfg:       HookTimeouts{Default: time.Minute},
			requested: 5 * time.Second,
			want:      5 * time.Second,
		},
		{
			name: "config default",
			cfg:  HookTimeouts{Default: time.Minute},
			want: time.Minute,
		},
		{
			name: "sdk default",
			want: 30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ResolveTimeout(tt.requested); got != tt.want {
				t.Errorf("ResolveTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}
