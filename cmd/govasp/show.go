package main

import (
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// show opens the files with the desktop's default viewer, if --show was given.
// A viewer that can't be started is logged, not returned as an error, since
// the plots are already written.
func (a *app) show(paths []string) error {
	if !a.v.GetBool(showKey) {
		return nil
	}
	for _, p := range paths {
		cmd := viewer(p)
		if err := cmd.Start(); err != nil {
			a.log.Warn("Can't open plot", zap.String("file", p), zap.Error(err))
			continue
		}
		_ = cmd.Process.Release()
	}
	return nil
}

func viewer(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	default:
		return exec.Command("xdg-open", path)
	}
}
