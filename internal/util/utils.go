package util

import "cpu-scheduler/internal/responses"

func CalculateAverage(processDetails []responses.ProcessResult) (averageWaitingTime, averageResponseTime, averageTurnaroundTime, averageCompletionTime float64) {
	if len(processDetails) == 0 {
		return
	}

	var waitingTimeSum int64
	var responseTimeSum int64
	var turnaroundTimeSum int64
	var completionTimeSum int64

	for _, process := range processDetails {
		waitingTimeSum += process.WaitingTime
		responseTimeSum += process.ResponseTime
		turnaroundTimeSum += process.TurnaroundTime
		completionTimeSum += process.CompletionTime
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTurnaroundTime = float64(turnaroundTimeSum) / processCount
	averageCompletionTime = float64(completionTimeSum) / processCount
	return
}
