// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTP access to the rpc server and node details
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/counter"
)

// paths that can be restricted by SetAllow
const (
	DetailsPath = "details"
)

// Handler - the HTTP endpoints
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// StatusFunc - extra details of the active logic, included in Details
type StatusFunc func() (interface{}, error)

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}

func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}

// Close - nothing to close, the http server owns the connection
func (c *InternalConnection) Close() error {
	return nil
}

type httpHandler struct {
	sync.RWMutex // guards allow

	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	status             StatusFunc
	allow              map[string][]*net.IPNet
	count              counter.Counter
	maximumConnections uint64
}

// New - create the handler; status may be nil
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maximumConnections uint64, status StatusFunc) Handler {
	return &httpHandler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		status:             status,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - networks permitted to use each restricted path
func (h *httpHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

// Root - this matches anything not matched and returns error
func (h *httpHandler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *httpHandler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Warnf("rpc request error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// DetailsReply - node details
type DetailsReply struct {
	Version     string      `json:"version"`
	Uptime      string      `json:"uptime"`
	Connections uint64      `json:"connections"`
	Status      interface{} `json:"status,omitempty"`
}

// Details - GET a summary of the node (restricted by SetAllow)
func (h *httpHandler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.allowed(DetailsPath, r.RemoteAddr) {
		h.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	reply := DetailsReply{
		Version:     h.version,
		Uptime:      time.Since(h.start).String(),
		Connections: h.count.Uint64() - 1,
	}
	if nil != h.status {
		status, err := h.status()
		if nil != err {
			h.log.Errorf("details status error: %s", err)
			sendInternalServerError(w)
			return
		}
		reply.Status = status
	}

	sendReply(w, reply)
}

func (h *httpHandler) allowed(path string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}

	h.RLock()
	defer h.RUnlock()

	for _, network := range h.allow[path] {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}

func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}

func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}

func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// send a JSON error reply with a status code
func sendError(w http.ResponseWriter, message string, code int) {
	type errorReply struct {
		Code  int    `json:"code"`
		Error string `json:"error"`
	}
	text, _ := json.Marshal(errorReply{
		Code:  code,
		Error: message,
	})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
