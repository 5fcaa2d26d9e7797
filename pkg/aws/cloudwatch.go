package aws

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
)

type cloudWatchLogsAPI interface {
	CreateLogGroup(ctx context.Context, params *cloudwatchlogs.CreateLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogGroupOutput, error)
	CreateLogStream(ctx context.Context, params *cloudwatchlogs.CreateLogStreamInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogStreamOutput, error)
	PutLogEvents(ctx context.Context, params *cloudwatchlogs.PutLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.PutLogEventsOutput, error)
}

const (
	logBufferSize    = 1024
	logBatchSize     = 100
	logFlushInterval = time.Second
	logPutTimeout    = 5 * time.Second
)

// LogWriter ships written lines to a CloudWatch Logs stream. It implements
// zapcore.WriteSyncer so it can be tee'd into the zap core next to stdout.
// Lines are queued and sent in batches from a background goroutine; when the
// queue is full new lines are dropped rather than blocking the caller.
type LogWriter struct {
	client        cloudWatchLogsAPI
	logGroupName  string
	logStreamName string

	events   chan types.InputLogEvent
	flushReq chan chan struct{}
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	dropped  atomic.Int64

	// owned by run
	sequenceToken *string
}

// NewLogWriter makes sure the group exists and opens a fresh stream named after the service.
func NewLogWriter(ctx context.Context, cfg sdkaws.Config, logGroupName, serviceName string) (*LogWriter, error) {
	return newLogWriter(ctx, cloudwatchlogs.NewFromConfig(cfg), logGroupName, serviceName, logFlushInterval)
}

func newLogWriter(ctx context.Context, api cloudWatchLogsAPI, logGroupName, serviceName string, flushInterval time.Duration) (*LogWriter, error) {
	if logGroupName == "" {
		logGroupName = "/order-management/services"
	}
	w := &LogWriter{
		client:        api,
		logGroupName:  logGroupName,
		logStreamName: fmt.Sprintf("%s-%d", serviceName, time.Now().Unix()),
		events:        make(chan types.InputLogEvent, logBufferSize),
		flushReq:      make(chan chan struct{}),
		done:          make(chan struct{}),
		stopped:       make(chan struct{}),
	}

	_, err := api.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{LogGroupName: sdkaws.String(w.logGroupName)})
	if err != nil {
		var exists *types.ResourceAlreadyExistsException
		if !errors.As(err, &exists) {
			return nil, fmt.Errorf("failed to create log group: %w", err)
		}
	}

	_, err = api.CreateLogStream(ctx, &cloudwatchlogs.CreateLogStreamInput{
		LogGroupName:  sdkaws.String(w.logGroupName),
		LogStreamName: sdkaws.String(w.logStreamName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create log stream: %w", err)
	}

	go w.run(flushInterval)
	return w, nil
}

// Write queues p and never blocks or fails the caller.
func (w *LogWriter) Write(p []byte) (int, error) {
	ev := types.InputLogEvent{
		Message:   sdkaws.String(string(p)),
		Timestamp: sdkaws.Int64(time.Now().UnixMilli()),
	}
	select {
	case w.events <- ev:
	default:
		w.dropped.Add(1)
	}
	return len(p), nil
}

// Sync sends everything queued so far and waits for it.
func (w *LogWriter) Sync() error {
	ack := make(chan struct{})
	select {
	case w.flushReq <- ack:
		<-ack
	case <-w.stopped:
	}
	return nil
}

// Close flushes the queue and stops the background sender. Later writes are dropped.
func (w *LogWriter) Close() error {
	w.stopOnce.Do(func() {
		close(w.done)
		<-w.stopped
		if n := w.dropped.Load(); n > 0 {
			fmt.Fprintf(os.Stderr, "CloudWatch writer dropped %d log lines\n", n)
		}
	})
	return nil
}

func (w *LogWriter) run(flushInterval time.Duration) {
	defer close(w.stopped)

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]types.InputLogEvent, 0, logBatchSize)
	for {
		select {
		case ev := <-w.events:
			batch = append(batch, ev)
			if len(batch) >= logBatchSize {
				batch = w.put(batch)
			}
		case <-ticker.C:
			batch = w.put(batch)
		case ack := <-w.flushReq:
			batch = w.put(w.drain(batch))
			close(ack)
		case <-w.done:
			w.put(w.drain(batch))
			return
		}
	}
}

func (w *LogWriter) drain(batch []types.InputLogEvent) []types.InputLogEvent {
	for {
		select {
		case ev := <-w.events:
			batch = append(batch, ev)
		default:
			return batch
		}
	}
}

// put sends batch in chunks of logBatchSize and returns it emptied. Shipping
// errors go to stderr.
func (w *LogWriter) put(batch []types.InputLogEvent) []types.InputLogEvent {
	for start := 0; start < len(batch); start += logBatchSize {
		end := min(start+logBatchSize, len(batch))

		ctx, cancel := context.WithTimeout(context.Background(), logPutTimeout)
		out, err := w.client.PutLogEvents(ctx, &cloudwatchlogs.PutLogEventsInput{
			LogGroupName:  sdkaws.String(w.logGroupName),
			LogStreamName: sdkaws.String(w.logStreamName),
			LogEvents:     batch[start:end],
			SequenceToken: w.sequenceToken,
		})
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "CloudWatch write error: %v\n", err)
			continue
		}
		w.sequenceToken = out.NextSequenceToken
	}
	return batch[:0]
}
