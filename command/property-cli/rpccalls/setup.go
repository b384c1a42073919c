// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a propertyd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, verbose, handle), nil
}

func newClient(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the propertyd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// run a single call, showing the request and reply if verbose
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if c.verbose {
		c.printJson(method+" request", arguments)
	}

	if err := c.client.Call(method, arguments, reply); nil != err {
		return err
	}

	if c.verbose {
		c.printJson(method+" reply", reply)
	}
	return nil
}

func (c *Client) printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
}
