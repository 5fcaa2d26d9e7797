package aws

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- stubs ----

type stubSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (s *stubSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	s.inputs = append(s.inputs, in)
	return &sns.PublishOutput{}, s.err
}

type stubSecrets struct {
	calls int
	value *string
	err   error
}

func (s *stubSecrets) GetSecretValue(_ context.Context, _ *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: s.value}, nil
}

type stubCloudWatch struct{ puts int }

func (s *stubCloudWatch) PutMetricData(_ context.Context, _ *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	s.puts++
	return &cloudwatch.PutMetricDataOutput{}, nil
}

type stubLogs struct {
	groupErr error
	block    chan struct{}

	mu          sync.Mutex
	tokens      []*string
	messages    []string
	next        int
	hasDeadline bool
}

func (s *stubLogs) CreateLogGroup(_ context.Context, _ *cloudwatchlogs.CreateLogGroupInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogGroupOutput, error) {
	return &cloudwatchlogs.CreateLogGroupOutput{}, s.groupErr
}

func (s *stubLogs) CreateLogStream(_ context.Context, _ *cloudwatchlogs.CreateLogStreamInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogStreamOutput, error) {
	return &cloudwatchlogs.CreateLogStreamOutput{}, nil
}

func (s *stubLogs) PutLogEvents(ctx context.Context, in *cloudwatchlogs.PutLogEventsInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.PutLogEventsOutput, error) {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, s.hasDeadline = ctx.Deadline()
	s.tokens = append(s.tokens, in.SequenceToken)
	for _, ev := range in.LogEvents {
		s.messages = append(s.messages, *ev.Message)
	}
	s.next++
	return &cloudwatchlogs.PutLogEventsOutput{NextSequenceToken: sdkaws.String(string(rune('a' + s.next)))}, nil
}

func (s *stubLogs) snapshot() (tokens []*string, messages []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*string(nil), s.tokens...), append([]string(nil), s.messages...)
}

// ---- tests ----

func TestSNSClient_Publish(t *testing.T) {
	stub := &stubSNS{}
	c := &SNSClient{client: stub}

	err := c.Publish(context.Background(), "arn:aws:sns:us-east-1:000000000000:orders", []byte(`{"ok":true}`))
	require.NoError(t, err)
	require.Len(t, stub.inputs, 1)
	assert.Equal(t, `{"ok":true}`, *stub.inputs[0].Message)
}

func TestSNSClient_EmptyTopic(t *testing.T) {
	stub := &stubSNS{}
	c := &SNSClient{client: stub}

	err := c.Publish(context.Background(), "", []byte("x"))
	assert.Error(t, err)
	assert.Empty(t, stub.inputs)
}

func TestSNSClient_WrapsError(t *testing.T) {
	c := &SNSClient{client: &stubSNS{err: errors.New("throttled")}}

	err := c.Publish(context.Background(), "arn", []byte("x"))
	assert.ErrorContains(t, err, "throttled")
}

func TestSecretsClient_CachesValue(t *testing.T) {
	stub := &stubSecrets{value: sdkaws.String(`{"POSTGRES_USER":"app"}`)}
	c := newSecretsClient(stub)

	m, err := c.GetSecretMap(context.Background(), "orders/DB_CREDENTIALS")
	require.NoError(t, err)
	assert.Equal(t, "app", m["POSTGRES_USER"])

	_, err = c.GetSecret(context.Background(), "orders/DB_CREDENTIALS")
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
}

func TestSecretsClient_NoStringValue(t *testing.T) {
	c := newSecretsClient(&stubSecrets{})

	_, err := c.GetSecret(context.Background(), "binary")
	assert.Error(t, err)
}

func TestSecretsClient_NotJSON(t *testing.T) {
	c := newSecretsClient(&stubSecrets{value: sdkaws.String("plain")})

	_, err := c.GetSecretMap(context.Background(), "plain")
	assert.Error(t, err)
}

func TestMetricsClient_DisabledDropsMetrics(t *testing.T) {
	stub := &stubCloudWatch{}
	m := &MetricsClient{client: stub, namespace: "test", enabled: false}

	require.NoError(t, m.RecordCount(context.Background(), MetricHTTPRequests, nil))
	assert.Equal(t, 0, stub.puts)

	var nilClient *MetricsClient
	assert.False(t, nilClient.IsEnabled())
}

func TestMetricsClient_EnabledPuts(t *testing.T) {
	stub := &stubCloudWatch{}
	m := &MetricsClient{client: stub, namespace: "test", enabled: true}

	require.NoError(t, m.RecordCount(context.Background(), MetricHTTPRequests, map[string]string{"Path": "/ping"}))
	assert.Equal(t, 1, stub.puts)
}

func TestLogWriter_BatchesAndSequenceToken(t *testing.T) {
	stub := &stubLogs{groupErr: &types.ResourceAlreadyExistsException{}}
	w, err := newLogWriter(context.Background(), stub, "", "orders", time.Hour)
	require.NoError(t, err)

	_, _ = w.Write([]byte("first"))
	_, _ = w.Write([]byte("second"))
	require.NoError(t, w.Sync())

	tokens, messages := stub.snapshot()
	require.Len(t, tokens, 1)
	assert.Nil(t, tokens[0])
	assert.Equal(t, []string{"first", "second"}, messages)

	_, _ = w.Write([]byte("third"))
	require.NoError(t, w.Close())

	tokens, messages = stub.snapshot()
	require.Len(t, tokens, 2)
	assert.NotNil(t, tokens[1])
	assert.Equal(t, []string{"first", "second", "third"}, messages)
	assert.True(t, stub.hasDeadline)

	// Closed writers drop silently and Sync returns at once.
	n, err := w.Write([]byte("late"))
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.NoError(t, w.Sync())
	assert.NoError(t, w.Close())
}

func TestLogWriter_FlushesOnInterval(t *testing.T) {
	stub := &stubLogs{}
	w, err := newLogWriter(context.Background(), stub, "g", "orders", 10*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	_, _ = w.Write([]byte("tick"))
	assert.Eventually(t, func() bool {
		_, messages := stub.snapshot()
		return len(messages) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestLogWriter_WriteDoesNotBlockOnSlowService(t *testing.T) {
	stub := &stubLogs{block: make(chan struct{})}
	w, err := newLogWriter(context.Background(), stub, "g", "orders", time.Hour)
	require.NoError(t, err)

	total := logBufferSize + logBatchSize + 50
	for i := 0; i < total; i++ {
		_, _ = w.Write([]byte("line"))
	}
	dropped := w.dropped.Load()
	assert.Positive(t, dropped)

	close(stub.block)
	require.NoError(t, w.Close())

	_, messages := stub.snapshot()
	assert.Equal(t, total, len(messages)+int(dropped))
}

func TestLogWriter_GroupFailure(t *testing.T) {
	_, err := newLogWriter(context.Background(), &stubLogs{groupErr: errors.New("denied")}, "g", "orders", time.Hour)
	assert.Error(t, err)
}
