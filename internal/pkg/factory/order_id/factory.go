package order_id

import "github.com/google/uuid"

type UUIDFactory struct{}

func New() *UUIDFactory {
	return &UUIDFactory{}
}

// NewID возвращает случайный UUID v4 в каноническом виде.
func (f *UUIDFactory) NewID() string {
	return uuid.NewString()
}
