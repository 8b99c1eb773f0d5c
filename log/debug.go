// Package log provides file-backed loggers and a debug mode with render profiling.
// Enable debug mode by setting TVFOV_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// DebugEnvVar turns on debug logging when set to "1".
const DebugEnvVar = "TVFOV_DEBUG"

// frameWindow is how many recent frame timings the profiler keeps.
const frameWindow = 100

// slowFrame is the 60fps frame budget.
const slowFrame = 16 * time.Millisecond

var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "tvfov-debug.log")

// InitDebug initializes debug logging if TVFOV_DEBUG=1 is set.
func InitDebug() {
	if os.Getenv(DebugEnvVar) != "1" {
		DebugEnabled = false
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true
	profiler.Reset()

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f
	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug writes the render profile and closes the debug log file.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	profiler.LogStats()
	_ = debugLogFile.Close()
	debugLogFile = nil
	fmt.Fprintln(os.Stderr, "wrote debug logs to "+debugLogFileName)
}

// Debug logs a message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// InputTrace logs how a key or message changed the calculator inputs.
func InputTrace(format string, v ...interface{}) {
	Debug("[INPUT] "+format, v...)
}

// LayoutTrace logs layout computation events.
func LayoutTrace(format string, v ...interface{}) {
	Debug("[LAYOUT] "+format, v...)
}

// RenderTrace logs render events for a component.
func RenderTrace(component, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[RENDER:%s] %s", component, fmt.Sprintf(format, v...))
	}
}

// ComponentMetrics tracks render timings for a single component.
type ComponentMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MinTime     time.Duration
	MaxTime     time.Duration
}

// Average returns the mean render time.
func (m *ComponentMetrics) Average() time.Duration {
	if m.RenderCount == 0 {
		return 0
	}
	return m.TotalTime / time.Duration(m.RenderCount)
}

// RenderProfiler tracks how long each View takes.
type RenderProfiler struct {
	mu           sync.Mutex
	components   map[string]*ComponentMetrics
	frameCount   int64
	totalTime    time.Duration
	frameTimings []time.Duration
}

var profiler = newRenderProfiler()

func newRenderProfiler() *RenderProfiler {
	return &RenderProfiler{
		components:   make(map[string]*ComponentMetrics),
		frameTimings: make([]time.Duration, 0, frameWindow),
	}
}

// GetProfiler returns the global render profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender begins timing a component render.
// Returns a function to call when the render completes.
func (p *RenderProfiler) StartRender(component string) func() {
	if !DebugEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.record(component, time.Since(start))
	}
}

func (p *RenderProfiler) record(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.components[component]
	if !ok {
		m = &ComponentMetrics{Name: component, MinTime: elapsed, MaxTime: elapsed}
		p.components[component] = m
	}
	m.RenderCount++
	m.TotalTime += elapsed
	if elapsed < m.MinTime {
		m.MinTime = elapsed
	}
	if elapsed > m.MaxTime {
		m.MaxTime = elapsed
	}
}

// RecordFrame records a complete frame render.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.totalTime += elapsed
	if len(p.frameTimings) >= frameWindow {
		p.frameTimings = p.frameTimings[1:]
	}
	p.frameTimings = append(p.frameTimings, elapsed)

	if elapsed > slowFrame && DebugLog != nil {
		DebugLog.Printf("SLOW FRAME: %v", elapsed)
	}
}

// GetStats returns a summary of render statistics. Empty when debug is off.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("\n=== Render Profile ===\n")
	fmt.Fprintf(&sb, "Total frames: %d\n", p.frameCount)
	if p.frameCount > 0 {
		fmt.Fprintf(&sb, "Avg frame time: %v\n", p.totalTime/time.Duration(p.frameCount))
	}
	if n := len(p.frameTimings); n > 0 {
		var sum, worst time.Duration
		for _, t := range p.frameTimings {
			sum += t
			if t > worst {
				worst = t
			}
		}
		fmt.Fprintf(&sb, "Recent %d frames: avg=%v max=%v\n", n, sum/time.Duration(n), worst)
	}

	sorted := make([]*ComponentMetrics, 0, len(p.components))
	for _, m := range p.components {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})

	sb.WriteString("\n--- Components ---\n")
	for _, m := range sorted {
		fmt.Fprintf(&sb, "  %s: count=%d total=%v avg=%v min=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, m.Average(), m.MinTime, m.MaxTime)
	}
	return sb.String()
}

// LogStats writes the current render statistics to the debug log.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset clears all profiling data.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.components = make(map[string]*ComponentMetrics)
	p.frameCount = 0
	p.totalTime = 0
	p.frameTimings = make([]time.Duration, 0, frameWindow)
}
