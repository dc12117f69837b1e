package http

import "net/http"

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}
