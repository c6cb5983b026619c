package usecase

import (
	"context"

	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
)

// publish отправляет событие, если издатель настроен. Ошибка доставки
// только логируется: состояние к этому моменту уже сохранено.
func publish(ctx context.Context, publisher EventPublisher, logger logger.Logger, event *Event) {
	const op = "usecase.publish"

	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warnf("failed to publish event %s for %s: %v", event.Type, event.AggregateID, e.Wrap(op, err))
	}
}

// uniqueID генерирует идентификатор, не совпадающий ни с одним из занятых.
func uniqueID(newID func() string, taken func(id string) bool) string {
	for {
		id := newID()
		if !taken(id) {
			return id
		}
	}
}
