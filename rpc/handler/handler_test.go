// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/rpc/fixtures"
	"github.com/bitmark-inc/propertyd/rpc/handler"
)

type Arith struct{}

type AddArguments struct {
	A int `json:"a"`
	B int `json:"b"`
}

func (a *Arith) Add(arguments *AddArguments, reply *int) error {
	*reply = arguments.A + arguments.B
	return nil
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newHandler(t *testing.T, status handler.StatusFunc) handler.Handler {
	server := rpc.NewServer()
	err := server.Register(&Arith{})
	assert.Nil(t, err, "register")
	return handler.New(logger.New(fixtures.LogCategory), server, time.Now(), "1.2.3", 10, status)
}

func TestRoot(t *testing.T) {
	h := newHandler(t, nil)

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status")
	assert.Contains(t, w.Body.String(), "not found", "wrong body")
}

func TestRPC(t *testing.T) {
	h := newHandler(t, nil)

	body := []byte(`{"id":1,"method":"Arith.Add","params":[{"a":2,"b":40}]}`)
	w := httptest.NewRecorder()
	h.RPC(w, httptest.NewRequest(http.MethodPost, "/propertyd/rpc", bytes.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status")

	var reply struct {
		ID     int         `json:"id"`
		Result int         `json:"result"`
		Error  interface{} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, 1, reply.ID, "wrong id")
	assert.Equal(t, 42, reply.Result, "wrong result")
	assert.Nil(t, reply.Error, "unexpected error")
}

func TestRPCMethodNotAllowed(t *testing.T) {
	h := newHandler(t, nil)

	w := httptest.NewRecorder()
	h.RPC(w, httptest.NewRequest(http.MethodGet, "/propertyd/rpc", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "wrong status")
	assert.Contains(t, w.Body.String(), "method not allowed", "wrong body")
}

func TestDetails(t *testing.T) {
	h := newHandler(t, func() (interface{}, error) {
		return map[string]string{"logic": "property-v1"}, nil
	})

	_, loopback, err := net.ParseCIDR("127.0.0.0/8")
	assert.Nil(t, err, "parse CIDR")
	h.SetAllow(map[string][]*net.IPNet{
		handler.DetailsPath: {loopback},
	})

	r := httptest.NewRequest(http.MethodGet, "/propertyd/details", nil)
	r.RemoteAddr = "127.0.0.1:43210"
	w := httptest.NewRecorder()
	h.Details(w, r)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status")

	var reply handler.DetailsReply
	err = json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, "1.2.3", reply.Version, "wrong version")
	assert.Equal(t, uint64(0), reply.Connections, "wrong connections")
	assert.Equal(t, map[string]interface{}{"logic": "property-v1"}, reply.Status, "wrong status")
}

func TestDetailsForbidden(t *testing.T) {
	h := newHandler(t, nil)

	r := httptest.NewRequest(http.MethodGet, "/propertyd/details", nil)
	r.RemoteAddr = "10.1.2.3:5555"
	w := httptest.NewRecorder()
	h.Details(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status")
	assert.Contains(t, w.Body.String(), "forbidden", "wrong body")

	w = httptest.NewRecorder()
	h.Details(w, httptest.NewRequest(http.MethodPost, "/propertyd/details", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "wrong status for POST")
}
