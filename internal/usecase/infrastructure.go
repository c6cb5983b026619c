package usecase

import "context"

// EventPublisher получает уведомления об изменении каталога и заказов.
type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error
}

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
}
