package mapper

import (
	"context"
	"fmt"
	"time"
)

// transformLeaf runs the connected transform on one leaf value and emits telemetry.
func (m *Mapper[A, B]) transformLeaf(ctx context.Context, value A) (B, error) {
	result, err := m.transform(value)
	if err != nil {
		result, err = m.handleTransformError(ctx, value, err)
		if err != nil {
			m.notifyError(err, value)
			return result, err
		}
	}

	m.notifyNodeTransformed(value)
	return result, nil
}

func (m *Mapper[A, B]) handleTransformError(ctx context.Context, value A, originalErr error) (B, error) {
	if m.insulatorFunc == nil {
		var zero B
		return zero, originalErr
	}
	return m.attemptRecovery(ctx, value, originalErr)
}

// attemptRecovery applies the insulator retry policy when configured.
func (m *Mapper[A, B]) attemptRecovery(ctx context.Context, value A, originalErr error) (B, error) {
	var zero B

	threshold := m.retryThreshold
	if threshold <= 0 {
		return zero, originalErr
	}
	interval := m.retryInterval

	var timer *time.Timer
	if interval > 0 && threshold > 1 {
		timer = time.NewTimer(interval)
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		defer timer.Stop()
	}

	var retryErr error
	for attempt := 1; attempt <= threshold; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := m.insulatorFunc(ctx, value, originalErr)
		retryErr = err
		if retryErr == nil {
			m.notifyInsulatorSuccess(value, originalErr, attempt, threshold)
			return result, nil
		}

		if attempt == threshold {
			m.notifyInsulatorFailure(value, retryErr, attempt, threshold)
			return zero, fmt.Errorf("retry threshold of %d reached with error: %v", threshold, retryErr)
		}

		m.notifyInsulatorAttempt(value, retryErr, attempt, threshold)

		if interval > 0 && timer != nil {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(interval)
			select {
			case <-timer.C:
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}
	}

	return zero, retryErr
}
