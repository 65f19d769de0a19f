package operator

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/logging"
	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage storage.Store
	locks   *WalletLocks
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s storage.Store, locks *WalletLocks, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		locks:   locks,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	release := o.locks.Acquire(item.action.WalletIDs())
	defer release()

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		if errors.Is(err, core.ErrInconsistentState) {
			logging.CriticalFault(o.logger, err, "operator", item.action)
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
