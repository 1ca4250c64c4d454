package cmd

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// stepsPerSite is the number of pipeline steps reported for each site:
// thirteen probes plus versioning, performance, and screenshot.
const stepsPerSite = 16

// progressPrinter renders a live one-line progress display. It implements
// checker.Reporter so the runner can notify it after every probe step.
type progressPrinter struct {
	total    int
	mu       sync.Mutex
	done     int
	current  string
	updates  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

func newProgressPrinter(sites int) *progressPrinter {
	if sites <= 0 {
		sites = 1
	}
	return &progressPrinter{
		total:   sites * stepsPerSite,
		updates: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
}

func (p *progressPrinter) Start() {
	go p.loop()
}

// Step records one completed pipeline step for the target.
func (p *progressPrinter) Step(target, description string) {
	p.mu.Lock()
	p.done++
	p.current = fmt.Sprintf("%s - %s", target, description)
	p.mu.Unlock()

	select {
	case p.updates <- struct{}{}:
	default:
	}
}

func (p *progressPrinter) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
	fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", 100))
}

func (p *progressPrinter) loop() {
	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-p.updates:
			p.print()
		case <-ticker.C:
			p.print()
		case <-p.stop:
			return
		}
	}
}

func (p *progressPrinter) print() {
	p.mu.Lock()
	done := p.done
	current := p.current
	p.mu.Unlock()

	if done > p.total {
		p.total = done
	}
	percent := (float64(done) / float64(p.total)) * 100

	line := fmt.Sprintf("\rProgress: %d/%d (%.0f%%) %s", done, p.total, percent, current)
	if len(line) > 100 {
		line = line[:100]
	}
	fmt.Fprintf(os.Stdout, "%-100s", line)
}
