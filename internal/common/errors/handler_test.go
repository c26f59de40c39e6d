package errors

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// ==========================
// Test Helper Functions
// ==========================

// recordingGateway captures the requests the job commands send and the
// state of the context they were sent with.
type recordingGateway struct {
	pb.GatewayClient

	failed    *pb.FailJobRequest
	thrown    *pb.ThrowErrorRequest
	sendCtxOK bool
}

func (g *recordingGateway) FailJob(ctx context.Context, in *pb.FailJobRequest, _ ...grpc.CallOption) (*pb.FailJobResponse, error) {
	g.failed = in
	g.sendCtxOK = ctx.Err() == nil
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &pb.FailJobResponse{}, nil
}

func (g *recordingGateway) ThrowError(ctx context.Context, in *pb.ThrowErrorRequest, _ ...grpc.CallOption) (*pb.ThrowErrorResponse, error) {
	g.thrown = in
	g.sendCtxOK = ctx.Err() == nil
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &pb.ThrowErrorResponse{}, nil
}

func noRetry(context.Context, error) bool { return false }

type jobClient struct{ gateway *recordingGateway }

func (c jobClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	return commands.NewCompleteJobCommand(c.gateway, noRetry)
}

func (c jobClient) NewFailJobCommand() commands.FailJobCommandStep1 {
	return commands.NewFailJobCommand(c.gateway, noRetry)
}

func (c jobClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 {
	return commands.NewThrowErrorCommand(c.gateway, noRetry)
}

type recordingLogger struct{ messages []string }

func (l *recordingLogger) Error(msg string, _ map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

func expiredContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	t.Cleanup(cancel)
	<-ctx.Done()
	return ctx
}

func testJob(retries int32) entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 42, Type: "analyze-skill-gap", Retries: retries}}
}

// ==========================
// Job Error Handling Tests
// ==========================

func TestHandleJobError_ThrowsBPMNErrorAfterDeadline(t *testing.T) {
	gw := &recordingGateway{}
	log := &recordingLogger{}
	h := NewJobErrorHandler(log)

	h.HandleJobError(expiredContext(t), jobClient{gw}, testJob(3), NewRoleNotFoundError("Astronaut", []string{"Data Scientist"}))

	require.NotNil(t, gw.thrown)
	assert.True(t, gw.sendCtxOK)
	assert.Equal(t, int64(42), gw.thrown.JobKey)
	assert.Equal(t, "ROLE_NOT_FOUND", gw.thrown.ErrorCode)
	assert.Nil(t, gw.failed)
	assert.Equal(t, []string{"job failed"}, log.messages)
}

func TestHandleJobError_FailsRetryableJobAfterDeadline(t *testing.T) {
	gw := &recordingGateway{}
	log := &recordingLogger{}
	h := NewJobErrorHandler(log)

	h.HandleJobError(expiredContext(t), jobClient{gw}, testJob(3), NewNewsFetchFailedError(stderrors.New("502")))

	require.NotNil(t, gw.failed)
	assert.True(t, gw.sendCtxOK)
	assert.Equal(t, int64(42), gw.failed.JobKey)
	assert.Equal(t, int32(2), gw.failed.Retries)
	assert.Nil(t, gw.thrown)
	assert.Equal(t, []string{"job failed"}, log.messages)
}

func TestHandleJobError_LastRetryThrows(t *testing.T) {
	gw := &recordingGateway{}
	h := NewJobErrorHandler(&recordingLogger{})

	h.HandleJobError(context.Background(), jobClient{gw}, testJob(0), NewNewsTimeoutError(0))

	require.NotNil(t, gw.thrown)
	assert.Equal(t, "NEWS_TIMEOUT", gw.thrown.ErrorCode)
}
