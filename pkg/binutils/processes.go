// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package binutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"time"

	"github.com/praxislabs/cli/pkg/application"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/utils"
	"github.com/praxislabs/cli/pkg/ux"
	"github.com/shirou/gopsutil/process"
)

// ErrEngineNotRunning is returned when an operation needs a running
// engine process but the run file is absent.
var ErrEngineNotRunning = errors.New("no engine process is running")

// EngineProcess is the run file written next to a started engine
// process.
type EngineProcess struct {
	Pid       int       `json:"pid"`
	LogFile   string    `json:"logFile"`
	Version   string    `json:"version"`
	StartedAt time.Time `json:"startedAt"`
}

// GetEngineProcess reads the engine run file.
func GetEngineProcess(app *application.Praxis) (*EngineProcess, error) {
	runFilePath := app.GetRunFile()
	data, err := os.ReadFile(runFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrEngineNotRunning
		}
		return nil, fmt.Errorf("failed reading process info file at %s: %w", runFilePath, err)
	}
	var proc EngineProcess
	if err := json.Unmarshal(data, &proc); err != nil {
		return nil, fmt.Errorf("failed unmarshalling run file at %s: %w", runFilePath, err)
	}
	if proc.Pid == 0 {
		return nil, fmt.Errorf("failed reading pid from run file at %s", runFilePath)
	}
	return &proc, nil
}

// IsEngineRunning reports whether the process recorded in the run file
// is alive. A stale run file (process gone) reports false.
func IsEngineRunning(app *application.Praxis) (bool, *EngineProcess, error) {
	proc, err := GetEngineProcess(app)
	if err != nil {
		if errors.Is(err, ErrEngineNotRunning) {
			return false, nil, nil
		}
		return false, nil, err
	}

	// get OS process list
	procs, err := process.Processes()
	if err != nil {
		return false, proc, err
	}

	p32 := int32(proc.Pid)
	for _, p := range procs {
		if p.Pid == p32 {
			return true, proc, nil
		}
	}
	return false, proc, nil
}

// StartEngineProcess spawns the engine detached from the CLI, with
// output redirected to the engine log file, and records the run file.
// The engine home dir is initialized on first start.
func StartEngineProcess(app *application.Praxis, version string, binaryPath string) error {
	if running, proc, err := IsEngineRunning(app); err != nil {
		return err
	} else if running {
		return fmt.Errorf("engine already running with pid %d", proc.Pid)
	}

	homeDir := app.GetEngineHomeDir()
	if err := initEngineHome(app, binaryPath, homeDir); err != nil {
		return err
	}

	if err := os.MkdirAll(app.GetLogDir(), constants.DefaultPerms755); err != nil {
		return err
	}
	logFile, err := os.Create(app.GetEngineLogPath())
	if err != nil {
		return err
	}

	cmd := exec.Command(binaryPath, "node", "--home", homeDir, "--proxy_app", constants.EngineProxyApp)
	cmd.Env = os.Environ()
	// engine output goes to its own log file, separate from CLI logs
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed starting engine process: %w", err)
	}

	ux.Logger.PrintToUser("Engine started, pid: %d, output at: %s", cmd.Process.Pid, logFile.Name())

	proc := EngineProcess{
		Pid:       cmd.Process.Pid,
		LogFile:   logFile.Name(),
		Version:   version,
		StartedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(&proc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(app.GetRunDir(), constants.DefaultPerms755); err != nil {
		return err
	}
	if err := os.WriteFile(app.GetRunFile(), data, constants.WriteReadReadPerms); err != nil {
		app.Log.Warnw("could not write engine process info to run file", "error", err)
	}
	return nil
}

// initEngineHome runs the engine's init subcommand once, creating keys
// and a default genesis under the home dir.
func initEngineHome(app *application.Praxis, binaryPath string, homeDir string) error {
	if utils.DirExists(homeDir) {
		return nil
	}
	app.Log.Infow("initializing engine home", "dir", homeDir)
	cmd := exec.Command(binaryPath, "init", "--home", homeDir)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed initializing engine home: %w: %s", err, string(out))
	}
	return nil
}

// StopEngineProcess interrupts the running engine and removes the run
// file. It escalates to a kill if the process ignores the interrupt.
func StopEngineProcess(app *application.Praxis) error {
	proc, err := GetEngineProcess(app)
	if err != nil {
		return err
	}

	osProc, err := os.FindProcess(proc.Pid)
	if err != nil {
		return fmt.Errorf("could not find process with pid %d: %w", proc.Pid, err)
	}
	if err := osProc.Signal(os.Interrupt); err != nil {
		return fmt.Errorf("failed interrupting process with pid %d: %w", proc.Pid, err)
	}

	deadline := time.Now().Add(constants.EngineStopTimeout)
	for time.Now().Before(deadline) {
		if alive, err := pidAlive(proc.Pid); err == nil && !alive {
			break
		}
		time.Sleep(constants.HealthCheckInterval)
	}
	if alive, err := pidAlive(proc.Pid); err == nil && alive {
		app.Log.Warnw("engine ignored interrupt, killing", "pid", proc.Pid)
		_ = osProc.Kill()
	}

	runFilePath := app.GetRunFile()
	if err := os.Remove(runFilePath); err != nil {
		return fmt.Errorf("failed removing run file %s: %w", runFilePath, err)
	}
	return nil
}

func pidAlive(pid int) (bool, error) {
	procs, err := process.Processes()
	if err != nil {
		return false, err
	}
	p32 := int32(pid)
	for _, p := range procs {
		if p.Pid == p32 {
			return true, nil
		}
	}
	return false, nil
}

// EngineRPCReachable reports whether the engine's RPC server answers
// its health endpoint. A freshly started engine can take a few seconds
// to open the port.
func EngineRPCReachable(rpcURL string) bool {
	client := http.Client{Timeout: constants.ProbeRequestTimeout}
	resp, err := client.Get(rpcURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
