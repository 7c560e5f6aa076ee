package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain field helpers

// Strategy names the offload strategy handling the flow
func Strategy(name string) Field {
	return String("strategy", name)
}

// Flow describes the endpoints of a flow request
func Flow(source, destination string) Field {
	return String("flow", source+"->"+destination)
}

// ComputeNode names the compute node an evaluation selected
func ComputeNode(id string) Field {
	return String("compute_node", id)
}

// Delay reports an end-to-end delay in model units (ms)
func Delay(d float64) Field {
	return Float64("delay_ms", d)
}

// RunID tags all log lines of one comparison run
func RunID(id string) Field {
	return String("run_id", id)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}
