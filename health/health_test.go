package health

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/printhive/sdk/types"
)

func TestBinaryCheck(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		status := BinaryCheck("")
		if !status.IsUnhealthy() {
			t.Error("expected unhealthy status for empty name")
		}
	})

	t.Run("existing binary", func(t *testing.T) {
		// sh is present on any platform these tests run on
		status := BinaryCheck("sh")
		if !status.IsHealthy() {
			t.Errorf("expected healthy status, got %s: %s", status.Status, status.Message)
		}
	})

	t.Run("missing binary", func(t *testing.T) {
		status := BinaryCheck("printhive-definitely-not-a-binary")
		if !status.IsUnhealthy() {
			t.Error("expected unhealthy status for missing binary")
		}
		if status.Details["binary"] != "printhive-definitely-not-a-binary" {
			t.Errorf("details = %v", status.Details)
		}
	})
}

func TestFileCheck(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		if status := FileCheck(""); !status.IsUnhealthy() {
			t.Error("expected unhealthy status for empty path")
		}
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profile.yaml")
		if err := os.WriteFile(path, []byte("layer_height: 0.2"), 0o644); err != nil {
			t.Fatal(err)
		}

		status := FileCheck(path)
		if !status.IsHealthy() {
			t.Errorf("expected healthy status, got %s", status.Status)
		}
	})

	t.Run("existing directory", func(t *testing.T) {
		status := FileCheck(t.TempDir())
		if !status.IsHealthy() {
			t.Errorf("expected healthy status, got %s", status.Status)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		status := FileCheck(filepath.Join(t.TempDir(), "missing"))
		if !status.IsUnhealthy() {
			t.Error("expected unhealthy status for missing path")
		}
	})
}

func TestCombine(t *testing.T) {
	healthy := types.NewHealthyStatus("ok")
	degraded := types.NewDegradedStatus("slow", nil)
	unhealthy := types.NewUnhealthyStatus("broken", nil)

	tests := []struct {
		name   string
		checks []types.HealthStatus
		want   string
	}{
		{
			name: "no checks",
			want: types.StatusHealthy,
		},
		{
			name:   "all healthy",
			checks: []types.HealthStatus{healthy, healthy},
			want:   types.StatusHealthy,
		},
		{
			name:   "one degraded",
			checks: []types.HealthStatus{healthy, degraded},
			want:   types.StatusDegraded,
		},
		{
			name:   "unhealthy wins over degraded",
			checks: []types.HealthStatus{healthy, degraded, unhealthy},
			want:   types.StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(tt.checks...)
			if got.Status != tt.want {
				t.Errorf("Combine() status = %s, want %s", got.Status, tt.want)
			}
		})
	}
}

func TestCombine_Details(t *testing.T) {
	got := Combine(
		types.NewHealthyStatus("ok"),
		types.NewUnhealthyStatus("ffmpeg missing", nil),
	)

	if got.Details["total"] != 2 {
		t.Errorf("total = %v", got.Details["total"])
	}
	failed, ok := got.Details["failed_checks"].([]string)
	if !ok || len(failed) != 1 || failed[0] != "ffmpeg missing" {
		t.Errorf("failed_checks = %v", got.Details["failed_checks"])
	}
}
