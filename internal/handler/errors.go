// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server config
// names neither an HTTP nor a gRPC address, so nothing could ever serve the
// route table.
var errNoHandlersAreCreated = errors.New("no transport handlers are created: neither HTTP nor gRPC address is set")
