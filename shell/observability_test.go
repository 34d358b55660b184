package shell_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
)

func Test_ClassifyError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, shell.StatusSuccess},
		{"canceled", fmt.Errorf("renew: %w", context.Canceled), shell.StatusCanceled},
		{"timeout", errors.Join(catalog.ErrQueryingFailed, context.DeadlineExceeded), shell.StatusTimeout},
		{"not found", catalog.ErrNotFound, shell.StatusNotFound},
		{"invalid page", catalog.ErrInvalidPage, shell.StatusNotFound},
		{"validation", fmt.Errorf("author: %w", catalog.ValidationErrors{"first_name": "required"}), shell.StatusInvalid},
		{"credentials", catalog.ErrInvalidCredentials, shell.StatusInvalid},
		{"short password", shell.ErrPasswordTooShort, shell.StatusInvalid},
		{"store failure", errors.Join(catalog.ErrExecutingFailed, errors.New("boom")), shell.StatusError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, shell.ClassifyError(tc.err))
		})
	}
}

func Test_ToMilliseconds(t *testing.T) {
	assert.InDelta(t, 1.5, shell.ToMilliseconds(1500*time.Microsecond), 0.0001)
}

func Test_RecordCommandMetrics_NilCollector(t *testing.T) {
	assert.NotPanics(t, func() {
		shell.RecordCommandMetrics(context.Background(), nil, "Renew", shell.StatusSuccess, time.Millisecond)
	})
}

func Test_RecordQueryMetrics_TimeoutCounter(t *testing.T) {
	// arrange
	collector := NewMetricsCollectorSpy(true)

	// act
	shell.RecordQueryMetrics(context.Background(), collector, "BookList", shell.StatusTimeout, time.Millisecond)

	// assert
	assert.True(t, collector.HasCounterRecordForMetric(shell.QueryHandlerTimeoutMetric).
		WithLabel(shell.LogAttrQueryType, "BookList").
		Assert())
	assert.Equal(t, 1, collector.CountCounterRecordsForMetric(shell.QueryHandlerCallsMetric))
}

func Test_StartCommandSpan_WithoutCollector(t *testing.T) {
	// arrange
	ctx := context.Background()

	// act
	spanCtx, span := shell.StartCommandSpan(ctx, nil, "Renew")

	// assert
	assert.Equal(t, ctx, spanCtx)
	assert.Nil(t, span)
	assert.NotPanics(t, func() {
		shell.FinishSpan(nil, span, shell.StatusSuccess, time.Millisecond, nil)
	})
}
