package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	httpClient "github.com/iudanet/cartsync/internal/client/api"
	"github.com/iudanet/cartsync/internal/client/storage"
	"github.com/iudanet/cartsync/internal/models"
	"github.com/iudanet/cartsync/pkg/api"
)

// Flush replays ready outbox ops in FIFO order. Each op gets a few quick
// retries; if it still fails with a temporary error it is rescheduled and the
// flush stops so later ops cannot overtake it. Permanent rejections and ops
// out of attempts are marked dead and skipped.
func (s *service) Flush(ctx context.Context) (*FlushResult, error) {
	result := &FlushResult{}

	ops, err := s.outbox.ListReady(ctx, s.cfg.Clock.Now(), s.cfg.BatchSize)
	if err != nil {
		return result, fmt.Errorf("failed to list outbox: %w", err)
	}
	if len(ops) == 0 {
		return result, nil
	}

	s.logger.Debug("Flushing outbox", "ready", len(ops))

	for _, op := range ops {
		attempts, err := s.deliver(ctx, op)
		op.Attempts += attempts

		if err == nil {
			if ackErr := s.outbox.Ack(ctx, op.Seq); ackErr != nil && !errors.Is(ackErr, storage.ErrOpNotFound) {
				return result, fmt.Errorf("failed to ack op %s: %w", op.ID, ackErr)
			}
			result.Delivered++
			continue
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			s.record(ctx, op, err)
			return result, ctxErr
		}

		op.LastError = err.Error()
		if httpClient.IsPermanent(err) || errors.Is(err, errUnknownOp) || op.Attempts >= s.cfg.MaxAttempts {
			op.Status = models.OpStatusDead
			s.logger.Error("Outbox op dropped",
				"op_id", op.ID,
				"kind", op.Kind,
				"product_id", op.ProductID,
				"attempts", op.Attempts,
				"error", err)
			if err := s.store(ctx, op); err != nil {
				return result, err
			}
			result.Dead++
			continue
		}

		op.NextAttemptAt = s.cfg.Clock.Now().Add(s.backoff(op.Attempts))
		s.logger.Warn("Outbox op deferred",
			"op_id", op.ID,
			"kind", op.Kind,
			"attempts", op.Attempts,
			"next_attempt_at", op.NextAttemptAt,
			"error", err)
		if err := s.store(ctx, op); err != nil {
			return result, err
		}
		result.Deferred++
		break
	}

	s.logger.Info("Outbox flushed",
		"delivered", result.Delivered,
		"dead", result.Dead,
		"deferred", result.Deferred)

	return result, nil
}

// deliver sends op with in-flush retries and returns the number of attempts made.
func (s *service) deliver(ctx context.Context, op *models.OutboxOp) (int, error) {
	b := retry.NewExponential(s.cfg.BaseBackoff)
	b = retry.WithCappedDuration(s.cfg.MaxBackoff, b)
	b = retry.WithMaxRetries(uint64(s.cfg.InFlightRetries), b)

	attempts := 0
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempts++
		err := s.send(ctx, op)
		if err == nil {
			return nil
		}
		if httpClient.IsPermanent(err) || errors.Is(err, errUnknownOp) {
			return err
		}
		s.logger.Debug("Outbox op attempt failed", "op_id", op.ID, "attempt", attempts, "error", err)
		return retry.RetryableError(err)
	})
	return attempts, err
}

func (s *service) send(ctx context.Context, op *models.OutboxOp) error {
	switch op.Kind {
	case models.OpAddItem:
		item, err := s.apiClient.AddItem(ctx, api.AddItemRequest{
			ProductID: op.NumericID,
			Quantity:  op.Quantity,
		})
		if err != nil {
			return err
		}
		if op.LineItemID == "" {
			return nil
		}
		if item != nil && !item.ID.IsZero() {
			s.ledger.AdoptLineItemID(ctx, op.LineItemID, item.ID.String())
			return nil
		}
		// подтверждение без id строки: ищем строку в удалённой корзине
		if !s.ledger.LearnLineItemID(ctx, op.LineItemID, op.ProductID) {
			s.logger.Debug("Remote line id unknown after add", "line_item_id", op.LineItemID, "product_id", op.ProductID)
		}
		return nil
	case models.OpClearCart:
		return s.apiClient.ClearCart(ctx)
	default:
		return fmt.Errorf("%w: %q", errUnknownOp, op.Kind)
	}
}

// backoff returns the capped exponential delay before attempt number attempts+1.
func (s *service) backoff(attempts int) time.Duration {
	b := retry.WithCappedDuration(s.cfg.MaxBackoff, retry.NewExponential(s.cfg.BaseBackoff))

	var d time.Duration
	for i := 0; i < attempts && i < 64; i++ {
		next, stop := b.Next()
		if stop {
			break
		}
		d = next
	}
	if d <= 0 {
		d = s.cfg.BaseBackoff
	}
	return d
}

func (s *service) store(ctx context.Context, op *models.OutboxOp) error {
	err := s.outbox.UpdateOp(ctx, op)
	if err == nil || errors.Is(err, storage.ErrOpNotFound) {
		// операция могла быть отменена ledger'ом во время отправки
		return nil
	}
	return fmt.Errorf("failed to update op %s: %w", op.ID, err)
}

func (s *service) record(ctx context.Context, op *models.OutboxOp, err error) {
	op.LastError = err.Error()
	if err := s.store(context.WithoutCancel(ctx), op); err != nil {
		s.logger.Warn("Failed to record op attempt", "op_id", op.ID, "error", err)
	}
}
