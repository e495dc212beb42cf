package core

import "fmt"

// Segment is a contiguous stretch of CPU time. Idle segments have no process.
type Segment struct {
	ProcessId int
	Idle      bool
	Start     int64
	End       int64
}

// CPU records the execution timeline of a single simulated core.
type CPU struct {
	Segments []Segment

	BusyTime int64
	IdleTime int64
}

func NewCPU() *CPU {
	return &CPU{Segments: make([]Segment, 0)}
}

// Execute runs process from start to end. When the previous segment belongs
// to the same process and ends at start, it is extended instead of opening a
// new one.
func (c *CPU) Execute(process *ProcessState, start, end int64) {
	c.checkBounds(start, end)
	elapsed := end - start
	if elapsed > process.Remaining {
		panic(fmt.Sprintf("cpu: pid %d executed for %d with only %d remaining", process.Id(), elapsed, process.Remaining))
	}

	if !process.Started {
		process.Started = true
		process.FirstStart = start
	}
	process.Remaining -= elapsed
	if process.Remaining == 0 {
		process.Completion = end
	}
	c.BusyTime += elapsed

	if n := len(c.Segments); n > 0 {
		last := &c.Segments[n-1]
		if !last.Idle && last.ProcessId == process.Id() && last.End == start {
			last.End = end
			return
		}
	}
	c.Segments = append(c.Segments, Segment{ProcessId: process.Id(), Start: start, End: end})
}

// Idle records a gap with nothing ready to run.
func (c *CPU) Idle(start, end int64) {
	c.checkBounds(start, end)
	c.IdleTime += end - start
	c.Segments = append(c.Segments, Segment{Idle: true, Start: start, End: end})
}

// Makespan is the end of the last recorded segment.
func (c *CPU) Makespan() int64 {
	if len(c.Segments) == 0 {
		return 0
	}
	return c.Segments[len(c.Segments)-1].End
}

func (c *CPU) checkBounds(start, end int64) {
	if start >= end {
		panic(fmt.Sprintf("cpu: empty or inverted segment [%d, %d)", start, end))
	}
	if got := c.Makespan(); got != start {
		panic(fmt.Sprintf("cpu: segment starting at %d does not follow timeline end %d", start, got))
	}
}
