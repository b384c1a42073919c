// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/util"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	publicLength  = 32
	privateLength = 32
)

// MakeKeyPair - create a new public/private keypair and write them to
// separate files
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) {
		return fault.ErrKeyFileAlreadyExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileAlreadyExists
	}

	// keys are encoded in in Z85 (ZeroMQ Base-85 Encoding) see: http://rfc.zeromq.org/spec:32
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	publicKey = taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	privateKey = taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	if err = ioutil.WriteFile(publicKeyFileName, []byte(publicKey), 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, []byte(privateKey), 0600); err != nil {
		os.Remove(publicKeyFileName)
		return err
	}

	return nil
}

// ReadPublicKeyFile - read a public key file returning the 32 byte key
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPublicKey(string(data))
}

// ReadPrivateKeyFile - read a private key file returning the 32 byte key
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPrivateKey(string(data))
}

// ReadPublicKey - decode a tagged public key
func ReadPublicKey(key string) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if private {
		return nil, fault.ErrInvalidPublicKeyFile
	}
	return data, nil
}

// ReadPrivateKey - decode a tagged private key
func ReadPrivateKey(key string) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if !private {
		return nil, fault.ErrInvalidPrivateKeyFile
	}
	return data, nil
}

// ParseKey - decode either form of key, true if private
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)
	if strings.HasPrefix(s, taggedPrivate) {
		h, err := hex.DecodeString(s[len(taggedPrivate):])
		if nil != err {
			return nil, false, err
		}
		if len(h) != privateLength {
			return nil, false, fault.ErrInvalidPrivateKeyFile
		}
		return h, true, nil
	} else if strings.HasPrefix(s, taggedPublic) {
		h, err := hex.DecodeString(s[len(taggedPublic):])
		if nil != err {
			return nil, false, err
		}
		if len(h) != publicLength {
			return nil, false, fault.ErrInvalidPublicKeyFile
		}
		return h, false, nil
	}

	return nil, false, fault.ErrInvalidPublicKeyFile
}
