// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends start/stop events to a shared log.
type recordingWorker struct {
	id  string
	log *[]string
}

func (r *recordingWorker) Start(context.Context) { *r.log = append(*r.log, "start "+r.id) }
func (r *recordingWorker) Stop()                 { *r.log = append(*r.log, "stop "+r.id) }

func TestWorkers_StartAndStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: "a", log: &log},
		&recordingWorker{id: "b", log: &log},
		&recordingWorker{id: "c", log: &log},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start a", "start b", "start c", "stop c", "stop b", "stop a"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

func TestWorkers_ZeroValue(t *testing.T) {
	var ws Workers

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}
