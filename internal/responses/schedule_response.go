package responses

// GanttEntry is one execution segment. ProcessId is nil for idle time.
type GanttEntry struct {
	ProcessId *int  `json:"processId"`
	StartTime int64 `json:"startTime"`
	EndTime   int64 `json:"endTime"`
}

func (g GanttEntry) Duration() int64 {
	return g.EndTime - g.StartTime
}

func (g GanttEntry) Idle() bool {
	return g.ProcessId == nil
}

type ProcessResult struct {
	Id             int   `json:"id"`
	ArrivalTime    int   `json:"arrivalTime"`
	BurstTime      int   `json:"burstTime"`
	Priority       int   `json:"priority"`
	CompletionTime int64 `json:"completionTime"`
	TurnaroundTime int64 `json:"turnaroundTime"`
	WaitingTime    int64 `json:"waitingTime"`
	ResponseTime   int64 `json:"responseTime"`
}

type AlgorithmResult struct {
	Name              string          `json:"name"`
	GanttChart        []GanttEntry    `json:"ganttChart"`
	Processes         []ProcessResult `json:"processes"`
	AvgTurnaroundTime float64         `json:"avgTurnaroundTime"`
	AvgWaitingTime    float64         `json:"avgWaitingTime"`
	AvgResponseTime   float64         `json:"avgResponseTime"`
	AvgCompletionTime float64         `json:"avgCompletionTime"`
	CpuUtilization    float64         `json:"cpuUtilization"`
	Throughput        float64         `json:"throughput"`
	Makespan          int64           `json:"makespan"`
	IdleTime          int64           `json:"idleTime"`
}
