package domain

// Image описывает изображение товара, которое сохраняется в объектное хранилище
type Image struct {
	ObjectKey   string
	Data        []byte
	Size        int64
	ContentType string // Например: "image/jpeg"
}

func NewImage(objectKey string, data []byte, contentType string) *Image {
	return &Image{
		ObjectKey:   objectKey,
		Data:        data,
		Size:        int64(len(data)),
		ContentType: contentType,
	}
}
