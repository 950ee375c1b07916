package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"eventos/internal/storage"
)

// localStore backs storage.Store with window.localStorage, so the token
// and user snapshot survive page reloads.
type localStore struct{}

var _ storage.Store = localStore{}

func newLocalStore() localStore { return localStore{} }

func (localStore) Get(key string) (string, bool) {
	v := app.Window().Get("localStorage").Call("getItem", key)
	if !v.Truthy() {
		return "", false
	}
	return v.String(), true
}

func (localStore) Set(key, value string) {
	app.Window().Get("localStorage").Call("setItem", key, value)
}

func (localStore) Del(key string) {
	app.Window().Get("localStorage").Call("removeItem", key)
}
