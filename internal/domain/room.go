package domain

import "strings"

// RoomType идентификатор комнаты, в который адресуются бронирования (например, "ELAIESE")
type RoomType string

// Normalize приводит идентификатор к каноническому виду
func (t RoomType) Normalize() RoomType {
	return RoomType(strings.ToUpper(strings.TrimSpace(string(t))))
}

// Room справочная запись о переговорной
type Room struct {
	ID       int64
	Name     string
	Level    string
	Type     RoomType
	Capacity int
}

// Fits true, если комната вмещает указанное число участников
func (r *Room) Fits(participants int) bool {
	return r.Capacity <= 0 || participants <= r.Capacity
}
