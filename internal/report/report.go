// Package report builds the end-of-run summary printed by cmd/tsplk:
// trial-length statistics (via gonum/stat) and host/CPU/memory
// diagnostics (via gopsutil), in the style of the teacher pack's
// solver diagnostics.
package report

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"gonum.org/v1/gonum/stat"
)

// TrialStats summarizes a run's per-trial tour lengths.
type TrialStats struct {
	Count     int
	Mean      float64
	StdDev    float64
	BestSoFar int
}

// Summarize computes mean/stddev over the supplied trial lengths.
// If lengths is empty, only BestSoFar is set; Count, Mean and StdDev
// are zero.
func Summarize(lengths []int, best int) TrialStats {
	if len(lengths) == 0 {
		return TrialStats{BestSoFar: best}
	}
	xs := make([]float64, len(lengths))
	for i, v := range lengths {
		xs[i] = float64(v)
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return TrialStats{Count: len(lengths), Mean: mean, StdDev: std, BestSoFar: best}
}

// Diagnostics captures a best-effort snapshot of the host running the
// solve; any field left at its zero value means gopsutil couldn't
// retrieve it (never treated as fatal — diagnostics are advisory).
type Diagnostics struct {
	HostName    string
	Platform    string
	CPUModel    string
	CPUCores    int
	TotalMemMB  uint64
	UsedMemPct  float64
}

// Collect gathers host/CPU/memory diagnostics, ignoring individual
// collector errors (a missing /proc entry in a sandbox must not abort
// the report).
func Collect() Diagnostics {
	var d Diagnostics

	if hostStat, err := host.Info(); err == nil && hostStat != nil {
		d.HostName = hostStat.Hostname
		d.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		d.CPUModel = cpuStat[0].ModelName
		d.CPUCores = len(cpuStat)
	}
	if vmStat, err := mem.VirtualMemory(); err == nil && vmStat != nil {
		d.TotalMemMB = vmStat.Total / (1024 * 1024)
		d.UsedMemPct = vmStat.UsedPercent
	}
	return d
}

// String renders a short human-readable summary suitable for CLI
// output at the end of a run.
func (s TrialStats) String() string {
	return fmt.Sprintf("trials=%d meanLength=%.1f stddevLength=%.1f bestLength=%d",
		s.Count, s.Mean, s.StdDev, s.BestSoFar)
}

// String renders a short human-readable summary of the host.
func (d Diagnostics) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "host=%s platform=%s cpu=%s cores=%d memMB=%d memUsed=%.1f%%",
		d.HostName, d.Platform, d.CPUModel, d.CPUCores, d.TotalMemMB, d.UsedMemPct)
	return b.String()
}
