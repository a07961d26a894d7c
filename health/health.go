// Package health provides reusable health check functions for PrintHive
// plugins. It offers standardized ways to verify external requirements a
// plugin declares, such as slicer binaries and printer profile files.
package health

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/printhive/sdk/types"
)

// BinaryCheck verifies that a binary exists and is executable in the system
// PATH. It returns a healthy status if the binary is found, unhealthy
// otherwise.
//
// Example:
//
//	status := health.BinaryCheck("ffmpeg")
//	if status.IsUnhealthy() {
//	    log.Fatal("ffmpeg is required but not installed")
//	}
func BinaryCheck(name string) types.HealthStatus {
	if name == "" {
		return types.NewUnhealthyStatus("binary name cannot be empty", nil)
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return types.NewUnhealthyStatus(
			fmt.Sprintf("binary '%s' not found in PATH", name),
			map[string]any{
				"binary": name,
				"error":  err.Error(),
			},
		)
	}

	return types.NewHealthyStatus(
		fmt.Sprintf("binary '%s' found at %s", name, path),
	)
}

// FileCheck verifies that a file or directory exists at the specified path.
// It returns healthy if the path exists, unhealthy otherwise.
//
// Example:
//
//	status := health.FileCheck("/etc/printhive/profiles/pla.yaml")
func FileCheck(path string) types.HealthStatus {
	if path == "" {
		return types.NewUnhealthyStatus("path cannot be empty", nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.NewUnhealthyStatus(
				fmt.Sprintf("path '%s' does not exist", path),
				map[string]any{
					"path": path,
				},
			)
		}

		return types.NewUnhealthyStatus(
			fmt.Sprintf("failed to stat path '%s'", path),
			map[string]any{
				"path":  path,
				"error": err.Error(),
			},
		)
	}

	fileType := "file"
	if info.IsDir() {
		fileType = "directory"
	}

	return types.NewHealthyStatus(
		fmt.Sprintf("%s '%s' exists", fileType, path),
	)
}

// Combine aggregates multiple health checks into a single status.
// The result follows this priority:
//   - If any check is unhealthy, the result is unhealthy
//   - If any check is degraded (and none unhealthy), the result is degraded
//   - If all checks are healthy, the result is healthy
func Combine(checks ...types.HealthStatus) types.HealthStatus {
	if len(checks) == 0 {
		return types.NewHealthyStatus("no checks provided")
	}

	var unhealthyChecks []string
	var degradedChecks []string
	var healthyCount int

	for _, check := range checks {
		switch check.Status {
		case types.StatusUnhealthy:
			msg := check.Message
			if msg == "" {
				msg = "unnamed check"
			}
			unhealthyChecks = append(unhealthyChecks, msg)
		case types.StatusDegraded:
			msg := check.Message
			if msg == "" {
				msg = "unnamed check"
			}
			degradedChecks = append(degradedChecks, msg)
		case types.StatusHealthy:
			healthyCount++
		}
	}

	if len(unhealthyChecks) > 0 {
		return types.NewUnhealthyStatus(
			fmt.Sprintf("%d check(s) failed", len(unhealthyChecks)),
			map[string]any{
				"total":         len(checks),
				"unhealthy":     len(unhealthyChecks),
				"degraded":      len(degradedChecks),
				"healthy":       healthyCount,
				"failed_checks": unhealthyChecks,
			},
		)
	}

	if len(degradedChecks) > 0 {
		return types.NewDegradedStatus(
			fmt.Sprintf("%d check(s) degraded", len(degradedChecks)),
			map[string]any{
				"total":           len(checks),
				"degraded":        len(degradedChecks),
				"healthy":         healthyCount,
				"degraded_checks": degradedChecks,
			},
		)
	}

	return types.NewHealthyStatus(
		fmt.Sprintf("all %d check(s) passed", len(checks)),
	)
}
