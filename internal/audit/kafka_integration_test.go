//go:build integration

package audit_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/BartokGyorgy07/webkert-insurance/internal/audit"
	"github.com/BartokGyorgy07/webkert-insurance/pkg/testutil/containers"
)

func TestKafkaSink_Integration(t *testing.T) {
	rp := containers.NewRedpandaContainer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	const topic = "insurance.audit"

	sink, err := audit.NewKafkaSink(ctx, rp.Brokers, topic)
	require.NoError(t, err)
	defer sink.Close()

	event := audit.Event{
		ID:        "evt-1",
		OwnerID:   "owner-1",
		Action:    audit.ActionRecordCreated,
		RecordID:  "ins-1",
		Timestamp: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, sink.Append(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Brokers...),
		kgo.ConsumeTopics(topic),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "owner-1", string(records[0].Key))

	var got audit.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, event, got)
}

func TestKafkaSink_TopicAlreadyExists(t *testing.T) {
	rp := containers.NewRedpandaContainer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	const topic = "insurance.audit"

	first, err := audit.NewKafkaSink(ctx, rp.Brokers, topic)
	require.NoError(t, err)
	first.Close()

	second, err := audit.NewKafkaSink(ctx, rp.Brokers, topic)
	require.NoError(t, err)
	second.Close()
}
