package game

import "errors"

var ErrRoomClosed = errors.New("room closed")
