package game

import (
	"time"

	"github.com/gorilla/websocket"
)

// NetworkSession abstracts the transport connection so the engine
// never touches gorilla directly and tests can substitute mocks.
type NetworkSession interface {
	Close(errCode string)
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}

type websocketConnection struct {
	socket *websocket.Conn
}

func NewWebsocketConnection(conn *websocket.Conn) *websocketConnection {
	conn.SetReadDeadline(time.Now().Add(time.Minute))
	conn.SetPongHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(time.Minute))
		return nil
	})
	return &websocketConnection{socket: conn}
}

func (wc *websocketConnection) Write(data []byte) error {
	return wc.socket.WriteMessage(websocket.TextMessage, data)
}

func (wc *websocketConnection) Read() ([]byte, error) {
	_, p, err := wc.socket.ReadMessage()
	return p, err
}

func (wc *websocketConnection) Ping() error {
	return wc.socket.WriteMessage(websocket.PingMessage, nil)
}

func (wc *websocketConnection) Close(errCode string) {
	wc.socket.SetWriteDeadline(time.Now().Add(time.Second * 20))
	wc.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, errCode))
	wc.socket.Close()
}
