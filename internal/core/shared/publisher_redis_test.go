// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shared_test

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/constants"
)

// pipelineRecorder is a go-redis hook that captures pipelines instead of
// sending them.
type pipelineRecorder struct {
	pipelines [][]redis.Cmder
	err       error
}

func (r *pipelineRecorder) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, errors.New("dial disabled in tests")
	}
}

func (r *pipelineRecorder) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		return errors.New("unexpected single command")
	}
}

func (r *pipelineRecorder) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		r.pipelines = append(r.pipelines, cmds)
		return r.err
	}
}

func newRecordedClient(t *testing.T, err error) (*redis.Client, *pipelineRecorder) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })

	recorder := &pipelineRecorder{err: err}
	client.AddHook(recorder)
	return client, recorder
}

type renamedEvent struct {
	shared.EventHeader
	From string `json:"from"`
	To   string `json:"to"`
}

type brokenEvent struct {
	shared.EventHeader
	Stream chan int `json:"stream"`
}

// entryFields reads the field/value pairs that follow the "*" id of an XADD.
func entryFields(t *testing.T, cmd redis.Cmder) map[string]any {
	t.Helper()

	args := cmd.Args()
	for i, arg := range args {
		if arg != "*" {
			continue
		}
		fields := map[string]any{}
		for j := i + 1; j+1 < len(args); j += 2 {
			fields[args[j].(string)] = args[j+1]
		}
		return fields
	}

	t.Fatalf("no entry id in %v", args)
	return nil
}

/*
TestRedisPublisher_Publish writes one capped XADD per event in a single pipeline.
*/
func TestRedisPublisher_Publish(t *testing.T) {
	client, recorder := newRecordedClient(t, nil)
	publisher := shared.NewRedisPublisher(client, "test:events")

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first := renamedEvent{EventHeader: shared.NewEventHeader("Renamed", "agg-1", at), From: "a", To: "b"}
	second := renamedEvent{EventHeader: shared.NewEventHeader("Renamed", "agg-2", at), From: "b", To: "c"}

	require.NoError(t, publisher.Publish(testContext(t), first, second))
	require.Len(t, recorder.pipelines, 1)

	cmds := recorder.pipelines[0]
	require.Len(t, cmds, 2)

	for i, event := range []renamedEvent{first, second} {
		args := cmds[i].Args()
		assert.Equal(t, []any{"xadd", "test:events", "maxlen", "~", int64(constants.EventStreamMaxLen)}, args[:5])

		fields := entryFields(t, cmds[i])
		assert.Equal(t, "Renamed", fields["event_type"])
		assert.Equal(t, event.AggregateID(), fields["aggregate_id"])

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(fields["payload"].(string)), &decoded))
		assert.Equal(t, event.EventID(), decoded["event_id"])
		assert.Equal(t, event.To, decoded["to"])
		assert.Equal(t, "2026-01-02T03:04:05Z", decoded["occurred_on"])
	}
}

/*
TestRedisPublisher_Publish_NoEvents skips the round trip.
*/
func TestRedisPublisher_Publish_NoEvents(t *testing.T) {
	client, recorder := newRecordedClient(t, nil)
	publisher := shared.NewRedisPublisher(client, "test:events")

	require.NoError(t, publisher.Publish(testContext(t)))
	assert.Empty(t, recorder.pipelines)
}

/*
TestRedisPublisher_Publish_Failures wraps encode and transport errors.
*/
func TestRedisPublisher_Publish_Failures(t *testing.T) {
	unreachable := errors.New("connection refused")

	tests := []struct {
		name        string
		execErr     error
		event       shared.Event
		wantErr     string
		wantSent    int
		wantWrapped error
	}{
		{
			name:        "exec_failure",
			execErr:     unreachable,
			event:       renamedEvent{EventHeader: shared.NewEventHeader("Renamed", "agg-1", time.Now())},
			wantErr:     "redis_event_publish_failed",
			wantSent:    1,
			wantWrapped: unreachable,
		},
		{
			name:     "encode_failure",
			event:    brokenEvent{EventHeader: shared.NewEventHeader("Broken", "agg-1", time.Now()), Stream: make(chan int)},
			wantErr:  "redis_event_encode_failed",
			wantSent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, recorder := newRecordedClient(t, tt.execErr)
			publisher := shared.NewRedisPublisher(client, "test:events")

			err := publisher.Publish(testContext(t), tt.event)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Len(t, recorder.pipelines, tt.wantSent)
			if tt.wantWrapped != nil {
				assert.ErrorIs(t, err, tt.wantWrapped)
			}
		})
	}
}

// testContext mirrors testing.T.Context (Go 1.24+): canceled when the test ends.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
