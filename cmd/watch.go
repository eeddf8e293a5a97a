package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/1byung/tepdash/engine"
	"github.com/1byung/tepdash/model"
)

// ── ANSI color/style codes ──────────────────────────────────────────────────

const (
	R = "\033[0m" // reset
	B = "\033[1m" // bold
	D = "\033[2m" // dim

	FRed = "\033[31m"
	FYel = "\033[33m"
	FCyn = "\033[36m"

	FBRed = "\033[91m"
	FBGrn = "\033[92m"
	FBYel = "\033[93m"
	FBWht = "\033[97m"

	BBlu = "\033[44m"
)

// watchTopN is how many of the highest-risk channels the watch table shows.
const watchTopN = 10

func hr() string {
	return D + strings.Repeat("─", 78) + R
}

// crisk colors a risk score: green below 50, yellow below 80, red above.
func crisk(v float64) string {
	switch {
	case v >= 80:
		return fmt.Sprintf("%s%s%6.2f%s", B, FBRed, v, R)
	case v >= 50:
		return fmt.Sprintf("%s%6.2f%s", FBYel, v, R)
	default:
		return fmt.Sprintf("%s%6.2f%s", FBGrn, v, R)
	}
}

func cstatus(s model.Status) string {
	if s == model.StatusCritical {
		return fmt.Sprintf("%s%sCRIT%s  ", B, FBRed, R)
	}
	return fmt.Sprintf("%sNORMAL%s", FBGrn, R)
}

func csystem(s model.SystemStatus) string {
	switch s {
	case model.SystemCritical:
		return fmt.Sprintf("%s%sCRITICAL%s", B, FBRed, R)
	case model.SystemWarning:
		return fmt.Sprintf("%s%sWARNING%s", B, FBYel, R)
	default:
		return fmt.Sprintf("%sNORMAL%s", FBGrn, R)
	}
}

// runWatch prints a refreshing plain-terminal view of the simulation.
func runWatch(eng *engine.Engine, cfg Config) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	iteration := 0

	for {
		select {
		case <-sig:
			fmt.Printf("\n%sStopped.%s\n", D, R)
			return nil
		case <-ticker.C:
			iteration++
			snap := eng.Tick()

			fmt.Print("\033[2J\033[H")

			// Title bar
			ts := snap.Timestamp.Format("15:04:05")
			iter := fmt.Sprintf("#%d", iteration)
			if cfg.WatchCount > 0 {
				iter = fmt.Sprintf("#%d/%d", iteration, cfg.WatchCount)
			}
			fmt.Printf(" %s%s tepdash v%s %s  %s  %s%s%s  %s\n",
				B, BBlu+FBWht, Version, R,
				B+ts+R,
				D, cfg.Interval, R,
				D+iter+R)
			fmt.Println(hr())

			watchKPIs(snap)
			fmt.Println()
			watchSensors(snap)
			fmt.Println()
			watchLog(snap)

			fmt.Println(hr())
			fmt.Printf(" %sCtrl+C%s to quit", B, R)
			if cfg.WatchCount > 0 && iteration >= cfg.WatchCount {
				fmt.Println()
				return nil
			}
			fmt.Println()
		}
	}
}

func watchKPIs(snap *model.Snapshot) {
	kpi := snap.KPI
	fmt.Printf(" System: %s   Avg risk: %s   Critical: %s%d%s/52   Uptime: %s%s%s\n",
		csystem(kpi.System),
		crisk(kpi.AvgRisk),
		B, kpi.CriticalCount, R,
		FCyn, kpi.Uptime, R)

	fmt.Printf(" %sAvg value by category%s  temp %s%6.2f%s  press %s%6.2f%s  flow %s%6.2f%s  comp %s%6.2f%s\n",
		D, R,
		FBWht, kpi.CategoryAvg[model.TypeTemperature], R,
		FBWht, kpi.CategoryAvg[model.TypePressure], R,
		FBWht, kpi.CategoryAvg[model.TypeFlow], R,
		FBWht, kpi.CategoryAvg[model.TypeComposition], R)
}

func watchSensors(snap *model.Snapshot) {
	fmt.Printf(" %s%-4s %-10s %-13s %8s %8s  %s%s\n", B, "RANK", "CHANNEL", "TYPE", "VALUE", "RISK", "STATUS", R)
	n := watchTopN
	if n > len(snap.Sensors) {
		n = len(snap.Sensors)
	}
	for i, s := range snap.Sensors[:n] {
		fmt.Printf(" %-4d %-10s %-13s %8.2f %s  %s\n",
			i+1, s.Name, s.Type, s.Value, crisk(s.Risk), cstatus(s.Status))
	}
}

func watchLog(snap *model.Snapshot) {
	fmt.Printf(" %sRecent readings%s\n", B, R)
	n := 5
	if n > len(snap.Log) {
		n = len(snap.Log)
	}
	for _, e := range snap.Log[:n] {
		fmt.Printf(" %s#%-5d%s %s  %-10s %8s  %s\n",
			D, e.No, R, e.Time, e.SensorName, e.Value, cstatus(e.Status))
	}
}
