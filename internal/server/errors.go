// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errListening           = errors.New("cannot listen on address")
	errServing             = errors.New("server stopped unexpectedly")
)
