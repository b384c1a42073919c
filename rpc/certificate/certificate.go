// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS configuration for the rpc listeners
package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Get - verify that a PEM certificate and key are a pair and return
// the TLS configuration and certificate fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// GetFiles - Get from a certificate file and key file
func GetFiles(log *logger.L, name, certificateFileName, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s: read certificate: %q  error: %s", name, certificateFileName, err)
		return nil, fin, err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s: read private key: %q  error: %s", name, keyFileName, err)
		return nil, fin, err
	}
	return Get(log, name, string(certificate), string(key))
}

// Fingerprint - compute the fingerprint of a DER certificate
//
// FreeBSD: openssl x509 -outform DER -in propertyd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
