// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Watcher - serve a certificate and key pair, reloading it whenever
// either file is rewritten
//
// a pair that fails to load (e.g. only one file written so far) is
// ignored and the previous pair stays in use
type Watcher struct {
	sync.RWMutex
	log             *logger.L
	name            string
	certificateFile string
	keyFile         string
	current         *tls.Certificate
	fingerprint     [32]byte
	watcher         *fsnotify.Watcher
	reloaded        chan struct{}
}

// NewWatcher - load the initial pair and watch the directories holding
// the two files
func NewWatcher(log *logger.L, name string, certificateFileName string, keyFileName string) (*Watcher, error) {

	certificateFile, err := filepath.Abs(certificateFileName)
	if nil != err {
		return nil, err
	}
	keyFile, err := filepath.Abs(keyFileName)
	if nil != err {
		return nil, err
	}

	w := &Watcher{
		log:             log,
		name:            name,
		certificateFile: certificateFile,
		keyFile:         keyFile,
		reloaded:        make(chan struct{}, 1),
	}
	if err := w.load(); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	// editors and certificate tools replace files, so watch directories
	directories := map[string]struct{}{
		filepath.Dir(certificateFile): {},
		filepath.Dir(keyFile):         {},
	}
	for d := range directories {
		if err := watcher.Add(d); nil != err {
			log.Errorf("%s: watch: %q  error: %s", name, d, err)
			watcher.Close()
			return nil, err
		}
	}
	w.watcher = watcher

	return w, nil
}

// TLSConfig - configuration whose certificate follows the watched files
func (w *Watcher) TLSConfig() *tls.Config {
	return &tls.Config{
		GetCertificate: w.GetCertificate,
	}
}

// GetCertificate - the pair currently in use
func (w *Watcher) GetCertificate(_ *tls.ClientHelloInfo) (*tls.Certificate, error) {
	w.RLock()
	defer w.RUnlock()
	return w.current, nil
}

// Fingerprint - SHA3-256 of the current certificate
func (w *Watcher) Fingerprint() [32]byte {
	w.RLock()
	defer w.RUnlock()
	return w.fingerprint
}

// Reloaded - receives after each successful reload
func (w *Watcher) Reloaded() <-chan struct{} {
	return w.reloaded
}

// Close - release the file watcher of a Watcher that was never run
func (w *Watcher) Close() {
	w.watcher.Close()
}

// Run - background process handling file events until shutdown
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if !w.isWatched(event) {
				continue loop
			}
			w.log.Debugf("%s: file event: %s", w.name, event)
			if err := w.load(); nil != err {
				w.log.Warnf("%s: keeping previous certificate", w.name)
				continue loop
			}
			select {
			case w.reloaded <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("%s: watcher error: %s", w.name, err)
		}
	}
	w.log.Infof("%s: certificate watcher stopped", w.name)
}

func (w *Watcher) isWatched(event fsnotify.Event) bool {
	if 0 == event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	return name == w.certificateFile || name == w.keyFile
}

func (w *Watcher) load() error {
	tlsConfig, fingerprint, err := GetFiles(w.log, w.name, w.certificateFile, w.keyFile)
	if nil != err {
		return err
	}

	w.Lock()
	defer w.Unlock()

	if w.fingerprint != fingerprint {
		w.log.Infof("%s: SHA3-256 fingerprint: %x", w.name, fingerprint)
	}
	w.current = &tlsConfig.Certificates[0]
	w.fingerprint = fingerprint
	return nil
}
