// Package doctor runs environment health checks for pulling images.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uenv-tools/uenvpull/internal/config"
	"github.com/uenv-tools/uenvpull/internal/messages"
	"github.com/uenv-tools/uenvpull/internal/oras"
)

// Status classifies a check outcome.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one check outcome with an optional remediation.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// CheckOras verifies that the oras executable resolves and runs.
func CheckOras(client *oras.Client) Result {
	path, err := client.Resolve()
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameOras,
			Message:        fmt.Sprintf(messages.DoctorOrasNotFoundFmt, err),
			Recommendation: messages.DoctorOrasNotFoundRecmd,
		}
	}
	proc, err := client.Launch("version")
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameOras,
			Message:        fmt.Sprintf(messages.DoctorOrasNotRunnableFmt, err),
			Recommendation: messages.DoctorOrasNotRunnableRecmd,
		}
	}
	defer proc.Terminate()
	_, stderr, code := proc.Wait()
	if err := oras.Classify(code, stderr); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameOras,
			Message:        fmt.Sprintf(messages.DoctorOrasNotRunnableFmt, err),
			Recommendation: messages.DoctorOrasNotRunnableRecmd,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameOras,
		Message:   fmt.Sprintf(messages.DoctorOrasResolvedFmt, path),
	}
}

// CheckImagePath verifies that the destination directory is writable.
func CheckImagePath(imagePath string) Result {
	probe := filepath.Join(imagePath, ".uenvpull-probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameImagePath,
			Message:        fmt.Sprintf(messages.DoctorImagePathFmt, imagePath, err),
			Recommendation: messages.DoctorImagePathRecmd,
		}
	}
	_ = os.Remove(probe)
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameImagePath,
		Message:   fmt.Sprintf(messages.DoctorImagePathOKFmt, imagePath),
	}
}

// CheckConfig verifies that the config file, if present, parses.
func CheckConfig(path string) Result {
	if _, err := os.Stat(path); err != nil {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   messages.DoctorConfigDefault,
		}
	}
	if _, err := config.Load(path); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadFailedRecmd,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigOKFmt, path),
	}
}
