package board

import "log"

// Notifier is the fire-and-forget user notification surface. The board
// never consumes a return value from it.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to the process log
type LogNotifier struct{}

func (LogNotifier) Success(message string) {
	log.Println("notify:", message)
}

func (LogNotifier) Error(message string) {
	log.Println("notify error:", message)
}
