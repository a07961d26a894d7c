package mixin

import "testing"

func TestCallContext(t *testing.T) {
	tests := []struct {
		name   string
		cap    Capability
		method string
		want   string
	}{
		{
			name:   "startup hook",
			cap:    StartupPlugin,
			method: "OnAfterStartup",
			want:   "StartupPlugin.OnAfterStartup",
		},
		{
			name:   "progress hook",
			cap:    ProgressPlugin,
			method: "OnPrintProgress",
			want:   "ProgressPlugin.OnPrintProgress",
		},
		{
			name:   "host-defined capability",
			cap:    Capability("WebcamPlugin"),
			method: "OnFrame",
			want:   "WebcamPlugin.OnFrame",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CallContext(tt.cap, tt.method); got != tt.want {
				t.Errorf("CallContext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCapabilityString(t *testing.T) {
	if got := StartupPlugin.String(); got != "StartupPlugin" {
		t.Errorf("String() = %q, want %q", got, "StartupPlugin")
	}
}
